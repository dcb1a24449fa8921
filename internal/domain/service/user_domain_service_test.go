package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/valueobject"
)

type fakeUniquenessChecker struct {
	takenUsernames map[string]int64 // username -> holder user ID
	takenEmails    map[string]int64
	err            error

	usernameChecks int
	emailChecks    int
}

func newFakeUnique() *fakeUniquenessChecker {
	return &fakeUniquenessChecker{
		takenUsernames: map[string]int64{},
		takenEmails:    map[string]int64{},
	}
}

func (f *fakeUniquenessChecker) IsUsernameUnique(ctx context.Context, u valueobject.Username) (bool, error) {
	f.usernameChecks++
	if f.err != nil {
		return false, f.err
	}
	_, taken := f.takenUsernames[u.Value()]
	return !taken, nil
}

func (f *fakeUniquenessChecker) IsEmailUnique(ctx context.Context, e valueobject.Email) (bool, error) {
	f.emailChecks++
	if f.err != nil {
		return false, f.err
	}
	_, taken := f.takenEmails[e.Value()]
	return !taken, nil
}

func (f *fakeUniquenessChecker) IsUsernameUniqueExcluding(ctx context.Context, u valueobject.Username, excludeUserID int64) (bool, error) {
	f.usernameChecks++
	if f.err != nil {
		return false, f.err
	}
	holder, taken := f.takenUsernames[u.Value()]
	return !taken || holder == excludeUserID, nil
}

func (f *fakeUniquenessChecker) IsEmailUniqueExcluding(ctx context.Context, e valueobject.Email, excludeUserID int64) (bool, error) {
	f.emailChecks++
	if f.err != nil {
		return false, f.err
	}
	holder, taken := f.takenEmails[e.Value()]
	return !taken || holder == excludeUserID, nil
}

type fakeHasher struct {
	err error
}

func (f fakeHasher) Hash(raw string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hashed:" + raw, nil
}

func mustVO(t *testing.T) (func(string) valueobject.Username, func(string) valueobject.Email, func(string) valueobject.Password) {
	t.Helper()
	un := func(s string) valueobject.Username {
		u, err := valueobject.NewUsername(s)
		if err != nil {
			t.Fatalf("NewUsername(%q): %v", s, err)
		}
		return u
	}
	em := func(s string) valueobject.Email {
		e, err := valueobject.NewEmail(s)
		if err != nil {
			t.Fatalf("NewEmail(%q): %v", s, err)
		}
		return e
	}
	pw := func(s string) valueobject.Password {
		p, err := valueobject.NewPassword(s)
		if err != nil {
			t.Fatalf("NewPassword: %v", err)
		}
		return p
	}
	return un, em, pw
}

func adminRole() entity.Role {
	return entity.Role{ID: 1, Name: entity.RoleUserAdmin, Description: "User account administration"}
}

func TestCreateUser(t *testing.T) {
	un, em, pw := mustVO(t)
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		unique := newFakeUnique()
		svc := NewUserDomainService(unique, fakeHasher{})

		u, err := svc.CreateUser(ctx, un("alice"), em("alice@example.com"), pw("password123"), []entity.Role{adminRole()}, 42)
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if u.Username != "alice" || u.Email != "alice@example.com" {
			t.Errorf("aggregate = %q/%q", u.Username, u.Email)
		}
		if u.PasswordHash != "hashed:password123" {
			t.Errorf("PasswordHash = %q, want hashed value", u.PasswordHash)
		}
		if u.CreatedBy != 42 || u.UpdatedBy != 42 {
			t.Errorf("audit actor = %d/%d, want 42", u.CreatedBy, u.UpdatedBy)
		}
		if u.RegistrationDate.IsZero() {
			t.Error("RegistrationDate not set")
		}
		if len(u.Roles) != 1 || u.Roles[0].Name != entity.RoleUserAdmin {
			t.Errorf("Roles = %v", u.Roles)
		}
	})

	t.Run("duplicate username fails before email check", func(t *testing.T) {
		unique := newFakeUnique()
		unique.takenUsernames["alice"] = 7
		unique.takenEmails["alice@example.com"] = 7
		svc := NewUserDomainService(unique, fakeHasher{})

		_, err := svc.CreateUser(ctx, un("alice"), em("alice@example.com"), pw("password123"), nil, 1)
		if !errors.Is(err, ErrDuplicateUsername) {
			t.Fatalf("err = %v, want ErrDuplicateUsername", err)
		}
		if unique.emailChecks != 0 {
			t.Errorf("email checked %d times after username failure, want 0", unique.emailChecks)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		unique := newFakeUnique()
		unique.takenEmails["alice@example.com"] = 7
		svc := NewUserDomainService(unique, fakeHasher{})

		_, err := svc.CreateUser(ctx, un("alice"), em("alice@example.com"), pw("password123"), nil, 1)
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Fatalf("err = %v, want ErrDuplicateEmail", err)
		}
	})

	t.Run("hasher failure", func(t *testing.T) {
		unique := newFakeUnique()
		svc := NewUserDomainService(unique, fakeHasher{err: errors.New("boom")})

		_, err := svc.CreateUser(ctx, un("alice"), em("alice@example.com"), pw("password123"), nil, 1)
		if !errors.Is(err, ErrHashing) {
			t.Fatalf("err = %v, want ErrHashing", err)
		}
	})

	t.Run("checker error propagates", func(t *testing.T) {
		unique := newFakeUnique()
		unique.err = errors.New("db down")
		svc := NewUserDomainService(unique, fakeHasher{})

		_, err := svc.CreateUser(ctx, un("alice"), em("alice@example.com"), pw("password123"), nil, 1)
		if err == nil || errors.Is(err, ErrDuplicateUsername) {
			t.Fatalf("err = %v, want raw checker error", err)
		}
	})
}

func existingUser() entity.User {
	return entity.User{
		ID:           10,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed:password123",
		Roles:        []entity.Role{adminRole()},
		AuditMeta:    entity.AuditMeta{CreatedBy: 1, UpdatedBy: 1},
	}
}

func TestUpdateUser(t *testing.T) {
	un, em, _ := mustVO(t)
	ctx := context.Background()

	t.Run("changes values and leaves input untouched", func(t *testing.T) {
		unique := newFakeUnique()
		unique.takenUsernames["alice"] = 10
		unique.takenEmails["alice@example.com"] = 10
		svc := NewUserDomainService(unique, fakeHasher{})

		orig := existingUser()
		employee := entity.Role{ID: 3, Name: entity.RoleEmployee}
		updated, ev, err := svc.UpdateUser(ctx, orig, un("alicia"), em("alicia@example.com"), []entity.Role{employee}, 99)
		if err != nil {
			t.Fatalf("UpdateUser: %v", err)
		}

		if orig.Username != "alice" || orig.Email != "alice@example.com" {
			t.Errorf("input aggregate mutated: %q/%q", orig.Username, orig.Email)
		}
		if updated.Username != "alicia" || updated.Email != "alicia@example.com" {
			t.Errorf("updated = %q/%q", updated.Username, updated.Email)
		}
		if updated.UpdatedBy != 99 {
			t.Errorf("UpdatedBy = %d, want 99", updated.UpdatedBy)
		}
		if updated.CreatedBy != 1 {
			t.Errorf("CreatedBy = %d, want preserved 1", updated.CreatedBy)
		}
		if updated.PasswordHash != orig.PasswordHash {
			t.Error("password hash changed on update")
		}

		if ev.UserID != 10 || ev.UpdatedBy != 99 {
			t.Errorf("event identity = %d/%d", ev.UserID, ev.UpdatedBy)
		}
		if ev.OldUsername.Value() != "alice" || ev.NewUsername.Value() != "alicia" {
			t.Errorf("event usernames = %s -> %s", ev.OldUsername, ev.NewUsername)
		}
		if ev.OldEmail.Value() != "alice@example.com" || ev.NewEmail.Value() != "alicia@example.com" {
			t.Errorf("event emails = %s -> %s", ev.OldEmail, ev.NewEmail)
		}
		if !reflect.DeepEqual(ev.OldRoleNames, []string{entity.RoleUserAdmin}) {
			t.Errorf("OldRoleNames = %v", ev.OldRoleNames)
		}
		if !reflect.DeepEqual(ev.NewRoleNames, []string{entity.RoleEmployee}) {
			t.Errorf("NewRoleNames = %v", ev.NewRoleNames)
		}
	})

	t.Run("keeping own values passes uniqueness", func(t *testing.T) {
		unique := newFakeUnique()
		unique.takenUsernames["alice"] = 10
		unique.takenEmails["alice@example.com"] = 10
		svc := NewUserDomainService(unique, fakeHasher{})

		_, _, err := svc.UpdateUser(ctx, existingUser(), un("alice"), em("alice@example.com"), existingUser().Roles, 99)
		if err != nil {
			t.Fatalf("update to own values failed: %v", err)
		}
	})

	t.Run("username held by another user", func(t *testing.T) {
		unique := newFakeUnique()
		unique.takenUsernames["testadmin"] = 77
		svc := NewUserDomainService(unique, fakeHasher{})

		_, _, err := svc.UpdateUser(ctx, existingUser(), un("testadmin"), em("alice@example.com"), nil, 99)
		if !errors.Is(err, ErrDuplicateUsername) {
			t.Fatalf("err = %v, want ErrDuplicateUsername", err)
		}
	})

	t.Run("email held by another user", func(t *testing.T) {
		unique := newFakeUnique()
		unique.takenEmails["taken@example.com"] = 77
		svc := NewUserDomainService(unique, fakeHasher{})

		_, _, err := svc.UpdateUser(ctx, existingUser(), un("alice"), em("taken@example.com"), nil, 99)
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Fatalf("err = %v, want ErrDuplicateEmail", err)
		}
	})
}

func TestUserCreatedEvent(t *testing.T) {
	svc := NewUserDomainService(newFakeUnique(), fakeHasher{})
	u := existingUser()

	ev := svc.UserCreatedEvent(&u, 42)
	if ev.UserID != 10 || ev.CreatedBy != 42 {
		t.Errorf("event identity = %d/%d", ev.UserID, ev.CreatedBy)
	}
	if ev.Username.Value() != "alice" || ev.Email.Value() != "alice@example.com" {
		t.Errorf("event snapshot = %s/%s", ev.Username, ev.Email)
	}
	if !reflect.DeepEqual(ev.RoleNames, []string{entity.RoleUserAdmin}) {
		t.Errorf("RoleNames = %v", ev.RoleNames)
	}
	if ev.OccurredAt.IsZero() {
		t.Error("OccurredAt not set")
	}
}

func TestUserDeletedEvent(t *testing.T) {
	svc := NewUserDomainService(newFakeUnique(), fakeHasher{})
	u := existingUser()

	ev := svc.UserDeletedEvent(&u, 42)
	if ev.UserID != 10 || ev.DeletedBy != 42 {
		t.Errorf("event identity = %d/%d", ev.UserID, ev.DeletedBy)
	}
	if ev.Username.Value() != "alice" || ev.Email.Value() != "alice@example.com" {
		t.Errorf("event snapshot = %s/%s", ev.Username, ev.Email)
	}
}
