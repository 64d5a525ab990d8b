package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/domain/repository"
)

const requestTimeout = 3 * time.Second

// UserIndex keeps a searchable copy of users in an Elasticsearch index.
type UserIndex struct {
	ES        *es.Client
	IndexName string
}

func NewUserIndex(client *es.Client, index string) *UserIndex {
	return &UserIndex{ES: client, IndexName: index}
}

type userDoc struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func newUserDoc(u *entity.User) userDoc {
	d := userDoc{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt().UTC().Format(time.RFC3339Nano),
	}
	if t, ok := u.UpdatedAt(); ok {
		d.UpdatedAt = t.UTC().Format(time.RFC3339Nano)
	}
	return d
}

func (x *UserIndex) Index(ctx context.Context, u *entity.User) error {
	b, err := json.Marshal(newUserDoc(u))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: x.IndexName, DocumentID: u.ID(), Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index %s: %s", u.ID(), res.Status())
	}
	return nil
}

func (x *UserIndex) Remove(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: x.IndexName, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es delete %s: %s", id, res.Status())
	}
	return nil
}

// Search performs a multi_match query over email and name.
func (x *UserIndex) Search(ctx context.Context, q string, size int) ([]repository.UserSearchHit, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.ES.Search(x.ES.Search.WithContext(c), x.ES.Search.WithIndex(x.IndexName), x.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string  `json:"_id"`
				Source userDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]repository.UserSearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		created, _ := time.Parse(time.RFC3339Nano, h.Source.CreatedAt)
		out = append(out, repository.UserSearchHit{
			ID:        h.ID,
			Email:     h.Source.Email,
			Name:      h.Source.Name,
			Role:      h.Source.Role,
			IsActive:  h.Source.IsActive,
			CreatedAt: created,
		})
	}
	return out, nil
}

var _ repository.UserSearchIndex = (*UserIndex)(nil)

const userIndexMapping = `{
  "mappings": {
    "properties": {
      "id":        {"type": "keyword"},
      "email":     {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "name":      {"type": "text"},
      "role":      {"type": "keyword"},
      "isActive":  {"type": "boolean"},
      "createdAt": {"type": "date"},
      "updatedAt": {"type": "date"}
    }
  }
}`

// EnsureIndex creates the users index with its mapping when it is missing.
func (x *UserIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := esapi.IndicesExistsRequest{Index: []string{x.IndexName}}.Do(c, x.ES)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = esapi.IndicesCreateRequest{Index: x.IndexName, Body: bytes.NewReader([]byte(userIndexMapping))}.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es create index %s: %s", x.IndexName, res.Status())
	}
	return nil
}
