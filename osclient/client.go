package osclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/opensearch-tools/osdsl/search"
)

// Client sends search-request documents to the cluster and decodes hits.
type Client struct {
	es        *elasticsearch.Client
	indexName string
}

// NewClient creates a Client from the given config.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("osclient: create client: %w", err)
	}

	return &Client{
		es:        es,
		indexName: config.IndexName,
	}, nil
}

// Hit is one matched document.
type Hit struct {
	ID     string          `json:"_id"`
	Score  *float64        `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

// SearchResult is the decoded response of one search.
type SearchResult struct {
	Total    int64
	MaxScore *float64
	Hits     []Hit
	Aggs     map[string]json.RawMessage
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []Hit    `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]json.RawMessage `json:"aggregations"`
}

// Search serializes the request document and executes it against the
// configured index.
func (c *Client) Search(ctx context.Context, req *search.SearchRequest) (*SearchResult, error) {
	requestID := uuid.NewString()

	body, err := json.Marshal(req.Source())
	if err != nil {
		return nil, fmt.Errorf("osclient: encode request body: %w", err)
	}

	slog.Debug("executing search",
		"request_id", requestID,
		"index", c.indexName,
		"body_bytes", len(body))

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.indexName),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("osclient: execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("osclient: search failed with status %s: %s", res.Status(), msg)
	}

	var decoded searchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("osclient: decode response: %w", err)
	}

	result := &SearchResult{
		Total:    decoded.Hits.Total.Value,
		MaxScore: decoded.Hits.MaxScore,
		Hits:     decoded.Hits.Hits,
		Aggs:     decoded.Aggregations,
	}

	slog.Info("search completed",
		"request_id", requestID,
		"index", c.indexName,
		"total", result.Total,
		"hits", len(result.Hits))

	return result, nil
}
