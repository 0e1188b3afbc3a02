package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceJSON(t *testing.T, q Query) string {
	t.Helper()
	return sourceJSONValue(t, q.Source())
}

func sourceJSONValue(t *testing.T, src any) string {
	t.Helper()
	data, err := json.Marshal(src)
	require.NoError(t, err)
	return string(data)
}

func TestTermQuery_Source(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "simple form without boost",
			query: NewTermQuery("status", "published"),
			want:  `{"term":{"status":"published"}}`,
		},
		{
			name:  "object form with boost",
			query: NewTermQuery("status", "published").Boost(2.0),
			want:  `{"term":{"status":{"value":"published","boost":2.0}}}`,
		},
		{
			name:  "numeric value",
			query: NewTermQuery("retry_count", 3),
			want:  `{"term":{"retry_count":3}}`,
		},
		{
			name:  "bool value",
			query: NewTermQuery("archived", false),
			want:  `{"term":{"archived":false}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, sourceJSON(t, tt.query))
		})
	}
}

func TestTermsQuery_Source(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "simple form without boost",
			query: NewTermsQuery("file_type", "pdf", "docx"),
			want:  `{"terms":{"file_type":["pdf","docx"]}}`,
		},
		{
			name:  "object form with boost",
			query: NewTermsQuery("file_type", "pdf", "docx").Boost(1.5),
			want:  `{"terms":{"file_type":{"terms":["pdf","docx"],"boost":1.5}}}`,
		},
		{
			name:  "empty value list serializes as empty array",
			query: NewTermsQuery("document_id"),
			want:  `{"terms":{"document_id":[]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, sourceJSON(t, tt.query))
		})
	}
}

func TestMatchAllQuery_Source(t *testing.T) {
	assert.JSONEq(t, `{"match_all":{}}`, sourceJSON(t, NewMatchAllQuery()))
}
