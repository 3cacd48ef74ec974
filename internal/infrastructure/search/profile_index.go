// Package search keeps creator profiles in an Elasticsearch index.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

const profileMapping = `{
  "mappings": {
    "properties": {
      "id":       {"type": "keyword"},
      "name":     {"type": "text"},
      "handle":   {"type": "text"},
      "category": {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "bio":      {"type": "text"},
      "location": {"type": "text"},
      "followersCount": {"type": "integer"}
    }
  }
}`

type ProfileIndex struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewProfileIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *ProfileIndex {
	return &ProfileIndex{ES: es, Index: index, Logger: logger}
}

// EnsureIndex creates the index with its mapping when missing.
func (p *ProfileIndex) EnsureIndex(ctx context.Context) error {
	return helpers.EnsureIndex(ctx, p.ES, p.Index, profileMapping)
}

// IndexProfile upserts one profile document.
func (p *ProfileIndex) IndexProfile(ctx context.Context, cp entity.CreatorProfile) error {
	doc := map[string]any{
		"id":             cp.ID,
		"name":           cp.Name,
		"handle":         cp.Handle,
		"category":       cp.Category,
		"bio":            cp.Bio,
		"location":       cp.Location,
		"followersCount": cp.FollowersCount,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: p.Index, DocumentID: cp.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, p.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index profile %s: %s", cp.ID, res.Status())
	}
	return nil
}

// SearchProfiles runs a multi_match query and returns matching profile ids by relevance.
func (p *ProfileIndex) SearchProfiles(ctx context.Context, q string, size int) ([]string, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name^3", "handle^2", "category", "bio"},
				"fuzziness": "AUTO",
			},
		},
		"size":    size,
		"_source": false,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := p.ES.Search(p.ES.Search.WithContext(c), p.ES.Search.WithIndex(p.Index), p.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search profiles: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, nil
}

// Reindex pushes every profile; failures are logged per document.
func (p *ProfileIndex) Reindex(ctx context.Context, profiles []entity.CreatorProfile) int {
	n := 0
	for _, cp := range profiles {
		if err := p.IndexProfile(ctx, cp); err != nil {
			if p.Logger != nil {
				p.Logger.WithError(err).WithField("profile_id", cp.ID).Warn("es index failed")
			}
			continue
		}
		n++
	}
	return n
}
