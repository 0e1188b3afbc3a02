package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolQuery_Source(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "empty bool serializes to bool with empty object",
			query: NewBoolQuery(),
			want:  `{"bool":{}}`,
		},
		{
			name:  "must only",
			query: NewBoolQuery().Must(NewTermQuery("status", "published")),
			want:  `{"bool":{"must":[{"term":{"status":"published"}}]}}`,
		},
		{
			name: "all buckets with options",
			query: NewBoolQuery().
				Must(NewTermQuery("status", "published")).
				MustNot(NewTermQuery("archived", true)).
				Should(NewMatchQuery("title", "report")).
				Filter(NewRangeQuery("updated_at").Gte("now-30d")).
				MinimumShouldMatch(1).
				Boost(2.0),
			want: `{
				"bool": {
					"must": [{"term":{"status":"published"}}],
					"must_not": [{"term":{"archived":true}}],
					"should": [{"match":{"title":"report"}}],
					"filter": [{"range":{"updated_at":{"gte":"now-30d"}}}],
					"minimum_should_match": 1,
					"boost": 2.0
				}
			}`,
		},
		{
			name: "nested bool",
			query: NewBoolQuery().Must(
				NewBoolQuery().Should(
					NewTermQuery("owner_id", "user"),
					NewTermQuery("shared", true),
				).MinimumShouldMatch(1),
			),
			want: `{
				"bool": {
					"must": [{
						"bool": {
							"should": [
								{"term":{"owner_id":"user"}},
								{"term":{"shared":true}}
							],
							"minimum_should_match": 1
						}
					}]
				}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, sourceJSON(t, tt.query))
		})
	}
}

func TestBoolQuery_ClauseOrderPreserved(t *testing.T) {
	q := NewBoolQuery().Should(
		NewTermQuery("owner_id", "a"),
		NewTermQuery("owner_id", "b"),
		NewTermQuery("owner_id", "c"),
	)

	src, ok := q.Source().(map[string]any)
	require.True(t, ok)
	boolObj, ok := src["bool"].(map[string]any)
	require.True(t, ok)
	should, ok := boolObj["should"].([]any)
	require.True(t, ok)
	require.Len(t, should, 3)

	for i, owner := range []string{"a", "b", "c"} {
		clause, err := json.Marshal(should[i])
		require.NoError(t, err)
		assert.JSONEq(t, `{"term":{"owner_id":"`+owner+`"}}`, string(clause))
	}
}

func TestBoolQueryBuilder_Build(t *testing.T) {
	b := NewBoolQueryBuilder()
	b.Must(NewTermQuery("status", "published"))

	for _, owner := range []string{"user-1", "user-2"} {
		b.Should(NewTermQuery("owner_id", owner))
	}
	b.MinimumShouldMatch(1)

	q := b.Build()

	assert.JSONEq(t, `{
		"bool": {
			"must": [{"term":{"status":"published"}}],
			"should": [
				{"term":{"owner_id":"user-1"}},
				{"term":{"owner_id":"user-2"}}
			],
			"minimum_should_match": 1
		}
	}`, sourceJSON(t, q))
}

func TestBoolQueryBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewBoolQueryBuilder()
	b.Must(NewTermQuery("status", "published"))
	q := b.Build()

	b.Must(NewTermQuery("archived", false))

	assert.JSONEq(t,
		`{"bool":{"must":[{"term":{"status":"published"}}]}}`,
		sourceJSON(t, q))
}
