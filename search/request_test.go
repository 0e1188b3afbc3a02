package search

import (
	"encoding/json"
	"testing"

	"github.com/opensearch-tools/osdsl/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestJSON(t *testing.T, r *SearchRequest) string {
	t.Helper()
	data, err := json.Marshal(r.Source())
	require.NoError(t, err)
	return string(data)
}

func TestSearchRequest_EmptyOmitsEverything(t *testing.T) {
	assert.JSONEq(t, `{}`, requestJSON(t, NewSearchRequest()))
}

func TestSearchRequest_FullDocument(t *testing.T) {
	boolQuery := query.NewBoolQuery().
		Must(query.NewTermsQuery("file_type", "pdf", "docx")).
		Should(
			query.NewTermQuery("owner_id", "user"),
			query.NewTermsQuery("document_id"),
		).
		MinimumShouldMatch(1)

	req := NewSearchRequest().
		Query(boolQuery).
		From(2).
		Size(2).
		Sort(NewFieldSort("updated_at", Desc)).
		Highlight(NewHighlight().Field("content",
			NewHighlightField().
				Type("unified").
				NumberOfFragments(500).
				PreTags("<macro_em>").
				PostTags("</macro_em>"),
		))

	assert.JSONEq(t, `{
		"query": {
			"bool": {
				"must": [{"terms":{"file_type":["pdf","docx"]}}],
				"should": [
					{"term":{"owner_id":"user"}},
					{"terms":{"document_id":[]}}
				],
				"minimum_should_match": 1
			}
		},
		"from": 2,
		"size": 2,
		"sort": [{"updated_at":"desc"}],
		"highlight": {
			"fields": {
				"content": {
					"type": "unified",
					"number_of_fragments": 500,
					"pre_tags": ["<macro_em>"],
					"post_tags": ["</macro_em>"]
				}
			}
		}
	}`, requestJSON(t, req))
}

func TestSearchRequest_SortOrderPreserved(t *testing.T) {
	req := NewSearchRequest().
		Sort(NewFieldSort("updated_at", Desc)).
		Sort(NewFieldSort("document_id", Asc))

	src, ok := req.Source().(map[string]any)
	require.True(t, ok)
	sorts, ok := src["sort"].([]any)
	require.True(t, ok)
	require.Len(t, sorts, 2)

	first, err := json.Marshal(sorts[0])
	require.NoError(t, err)
	second, err := json.Marshal(sorts[1])
	require.NoError(t, err)

	assert.JSONEq(t, `{"updated_at":"desc"}`, string(first))
	assert.JSONEq(t, `{"document_id":"asc"}`, string(second))
}

func TestSearchRequest_AggsSourceAndCollapse(t *testing.T) {
	req := NewSearchRequest().
		Query(query.NewMatchAllQuery()).
		Aggregation("by_type", NewTermsAggregation("file_type").Size(10)).
		SourceFields("document_id", "title").
		TrackTotalHits(true).
		Collapse(NewCollapse("owner_id"))

	assert.JSONEq(t, `{
		"query": {"match_all":{}},
		"aggs": {
			"by_type": {"terms": {"field": "file_type", "size": 10}}
		},
		"_source": ["document_id", "title"],
		"track_total_hits": true,
		"collapse": {"field": "owner_id"}
	}`, requestJSON(t, req))
}

func TestRequestBuilder_IncrementalAssembly(t *testing.T) {
	b := NewRequestBuilder()
	b.Query(query.NewMatchQuery("content", "contract"))
	b.Size(20)

	fields := []string{"document_id", "title", "updated_at"}
	for _, f := range fields {
		b.AddSourceField(f)
	}

	b.AddSort(NewFieldSort("updated_at", Desc))
	b.AddSort(NewFieldSort("document_id", Asc))
	b.AddAggregation("by_type", NewTermsAggregation("file_type"))
	b.AddAggregation("distinct_owners", NewCardinalityAggregation("owner_id"))

	req := b.Build()

	assert.JSONEq(t, `{
		"query": {"match":{"content":"contract"}},
		"size": 20,
		"sort": [
			{"updated_at":"desc"},
			{"document_id":"asc"}
		],
		"aggs": {
			"by_type": {"terms": {"field": "file_type"}},
			"distinct_owners": {"cardinality": {"field": "owner_id"}}
		},
		"_source": ["document_id", "title", "updated_at"]
	}`, requestJSON(t, req))
}

func TestRequestBuilder_RemoveAndClear(t *testing.T) {
	b := NewRequestBuilder()
	b.AddSort(NewFieldSort("updated_at", Desc))
	b.AddAggregation("by_type", NewTermsAggregation("file_type"))
	b.AddAggregation("distinct_owners", NewCardinalityAggregation("owner_id"))
	b.AddSourceField("document_id")

	b.RemoveAggregation("by_type")
	b.ClearSorts()
	b.ClearSourceFields()

	req := b.Build()

	assert.JSONEq(t, `{
		"aggs": {
			"distinct_owners": {"cardinality": {"field": "owner_id"}}
		}
	}`, requestJSON(t, req))
}

func TestRequestBuilder_SetReplaces(t *testing.T) {
	b := NewRequestBuilder()
	b.AddSort(NewFieldSort("updated_at", Desc))
	b.SetSorts([]Sort{NewScoreSort()})
	b.AddSourceField("title")
	b.SetSourceFields("document_id")

	req := b.Build()

	src, ok := req.Source().(map[string]any)
	require.True(t, ok)

	sorts, ok := src["sort"].([]any)
	require.True(t, ok)
	require.Len(t, sorts, 1)
	assert.Equal(t, "_score", sorts[0])

	assert.Equal(t, []any{"document_id"}, src["_source"])
}

func TestRequestBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewRequestBuilder()
	b.AddSort(NewFieldSort("updated_at", Desc))
	b.AddAggregation("by_type", NewTermsAggregation("file_type"))

	req := b.Build()

	b.AddSort(NewFieldSort("document_id", Asc))
	b.RemoveAggregation("by_type")
	b.AddSourceField("title")

	assert.JSONEq(t, `{
		"sort": [{"updated_at":"desc"}],
		"aggs": {
			"by_type": {"terms": {"field": "file_type"}}
		}
	}`, requestJSON(t, req))
}

func TestHighlight_Source(t *testing.T) {
	tests := []struct {
		name      string
		highlight *Highlight
		want      string
	}{
		{
			name:      "empty highlight omits fields",
			highlight: NewHighlight(),
			want:      `{}`,
		},
		{
			name:      "require_field_match only",
			highlight: NewHighlight().RequireFieldMatch(false),
			want:      `{"require_field_match":false}`,
		},
		{
			name: "field with partial options",
			highlight: NewHighlight().Field("title",
				NewHighlightField().NumberOfFragments(3)),
			want: `{"fields":{"title":{"number_of_fragments":3}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.highlight.Source())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestCollapse_Source(t *testing.T) {
	data, err := json.Marshal(NewCollapse("owner_id").Source())
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"owner_id"}`, string(data))
}
