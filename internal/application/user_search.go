package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"user-admin-service/internal/domain/entity"
)

// SearchIndex keeps an Elasticsearch mirror of the user directory for the
// admin search endpoint. The store stays the source of truth; index writes
// run after commit and may lag.
type SearchIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewSearchIndex(es *elasticsearch.Client, index string) *SearchIndex {
	return &SearchIndex{ES: es, Index: index}
}

// UserDocument is the indexed shape of a user. No password hash, ever.
type UserDocument struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	RoleNames        []string  `json:"roleNames"`
	RegistrationDate time.Time `json:"registrationDate"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (s *SearchIndex) IndexUser(ctx context.Context, u *entity.User) error {
	doc := UserDocument{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		RoleNames:        u.RoleNames(),
		RegistrationDate: u.RegistrationDate,
		UpdatedAt:        u.UpdatedAt,
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      s.Index,
		DocumentID: fmt.Sprintf("%d", u.ID),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index user %d: %s", u.ID, res.Status())
	}
	return nil
}

func (s *SearchIndex) RemoveUser(ctx context.Context, id int64) error {
	req := esapi.DeleteRequest{Index: s.Index, DocumentID: fmt.Sprintf("%d", id)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("remove user %d: %s", id, res.Status())
	}
	return nil
}

// Search matches username/email substrings the way the admin UI expects.
// Empty terms match everything within the size cap.
func (s *SearchIndex) Search(ctx context.Context, username, email string, size int) ([]UserDocument, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	var must []map[string]any
	if strings.TrimSpace(username) != "" {
		must = append(must, map[string]any{
			"wildcard": map[string]any{"username": map[string]any{"value": "*" + strings.ToLower(username) + "*", "case_insensitive": true}},
		})
	}
	if strings.TrimSpace(email) != "" {
		must = append(must, map[string]any{
			"wildcard": map[string]any{"email": map[string]any{"value": "*" + strings.ToLower(email) + "*", "case_insensitive": true}},
		})
	}
	if must == nil {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}
	query := map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": must}},
		"size":  size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search users: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source UserDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]UserDocument, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
