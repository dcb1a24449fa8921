package application

import (
	"context"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/repository"
)

// RoleService resolves requested role names to role entities. All-or-nothing:
// a single unknown name rejects the whole set.
type RoleService struct {
	Repo repository.RoleRepository
}

func NewRoleService(repo repository.RoleRepository) *RoleService {
	return &RoleService{Repo: repo}
}

func (s *RoleService) FindRolesByNames(ctx context.Context, names []string) ([]entity.Role, error) {
	roles, err := s.Repo.FindByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	found := make(map[string]bool, len(roles))
	for _, r := range roles {
		found[r.Name] = true
	}
	var missing []string
	for _, n := range names {
		if !found[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, &UnknownRolesError{Names: missing}
	}
	return roles, nil
}
