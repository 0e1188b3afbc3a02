package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aggJSON(t *testing.T, a Aggregation) string {
	t.Helper()
	data, err := json.Marshal(a.Source())
	require.NoError(t, err)
	return string(data)
}

func TestTermsAggregation_Source(t *testing.T) {
	tests := []struct {
		name string
		agg  Aggregation
		want string
	}{
		{
			name: "field only",
			agg:  NewTermsAggregation("file_type"),
			want: `{"terms":{"field":"file_type"}}`,
		},
		{
			name: "with size",
			agg:  NewTermsAggregation("file_type").Size(10),
			want: `{"terms":{"field":"file_type","size":10}}`,
		},
		{
			name: "sub-aggregations are a sibling of terms",
			agg: NewTermsAggregation("owner_id").
				Size(5).
				SubAggregation("distinct_types", NewCardinalityAggregation("file_type")),
			want: `{
				"terms": {"field": "owner_id", "size": 5},
				"aggs": {
					"distinct_types": {"cardinality": {"field": "file_type"}}
				}
			}`,
		},
		{
			name: "nested terms inside terms",
			agg: NewTermsAggregation("owner_id").
				SubAggregation("by_type", NewTermsAggregation("file_type").Size(3)),
			want: `{
				"terms": {"field": "owner_id"},
				"aggs": {
					"by_type": {"terms": {"field": "file_type", "size": 3}}
				}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, aggJSON(t, tt.agg))
		})
	}
}

func TestCardinalityAggregation_Source(t *testing.T) {
	assert.JSONEq(t,
		`{"cardinality":{"field":"owner_id"}}`,
		aggJSON(t, NewCardinalityAggregation("owner_id")))
}

func TestAggregationCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		agg  Aggregation
	}{
		{
			name: "cardinality",
			agg:  NewCardinalityAggregation("owner_id"),
		},
		{
			name: "terms with nested sub-aggregations",
			agg: NewTermsAggregation("owner_id").
				Size(5).
				SubAggregation("by_type", NewTermsAggregation("file_type").
					SubAggregation("distinct_owners", NewCardinalityAggregation("owner_id"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalAggregation(tt.agg)
			require.NoError(t, err)

			decoded, err := UnmarshalAggregation(data)
			require.NoError(t, err)

			assert.Equal(t, tt.agg, decoded)
		})
	}
}

func TestUnmarshalAggregation_UnknownType(t *testing.T) {
	_, err := UnmarshalAggregation([]byte(`{"type":"date_histogram","params":{}}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown aggregation type "date_histogram"`)
}
