package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionScoreQuery_Source(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "empty serializes to minimal document",
			query: NewFunctionScoreQuery(),
			want:  `{"function_score":{}}`,
		},
		{
			name: "gauss decay with recency weighting",
			query: NewFunctionScoreQuery().
				Query(NewMatchQuery("content", "contract")).
				Function(
					NewScoreFunction(
						NewGaussFunction("updated_at_seconds", "21d").
							Origin("now").
							Offset("3d").
							Decay(0.5),
					).Weight(1.3),
				).
				ScoreMode(ScoreModeMultiply).
				BoostMode(BoostModeMultiply),
			want: `{
				"function_score": {
					"query": {"match":{"content":"contract"}},
					"functions": [{
						"gauss": {
							"updated_at_seconds": {
								"origin": "now",
								"scale": "21d",
								"offset": "3d",
								"decay": 0.5
							}
						},
						"weight": 1.3
					}],
					"score_mode": "multiply",
					"boost_mode": "multiply"
				}
			}`,
		},
		{
			name: "all tuning knobs",
			query: NewFunctionScoreQuery().
				Query(NewMatchAllQuery()).
				Function(NewScoreFunction(NewFieldValueFactor("popularity").Factor(1.2).Modifier("sqrt").Missing(1))).
				ScoreMode(ScoreModeSum).
				BoostMode(BoostModeReplace).
				MaxBoost(10).
				Boost(2).
				MinScore(0.1),
			want: `{
				"function_score": {
					"query": {"match_all":{}},
					"functions": [{
						"field_value_factor": {
							"field": "popularity",
							"factor": 1.2,
							"modifier": "sqrt",
							"missing": 1
						}
					}],
					"score_mode": "sum",
					"boost_mode": "replace",
					"max_boost": 10,
					"boost": 2,
					"min_score": 0.1
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

func TestScoreFunction_Source(t *testing.T) {
	tests := []struct {
		name     string
		function *ScoreFunction
		want     string
	}{
		{
			name:     "weight only emits no function-type key",
			function: NewWeightFunction(2.0),
			want:     `{"weight":2.0}`,
		},
		{
			name: "weight only with filter",
			function: NewWeightFunction(3.0).
				Filter(NewTermQuery("file_type", "pdf")),
			want: `{"filter":{"term":{"file_type":"pdf"}},"weight":3.0}`,
		},
		{
			name:     "random_score with no options is an empty object",
			function: NewScoreFunction(NewRandomScore()),
			want:     `{"random_score":{}}`,
		},
		{
			name:     "random_score with seed and field",
			function: NewScoreFunction(NewRandomScore().Seed(42).Field("_seq_no")),
			want:     `{"random_score":{"seed":42,"field":"_seq_no"}}`,
		},
		{
			name:     "script_score without params",
			function: NewScoreFunction(NewScriptScore("Math.log(2 + doc['views'].value)")),
			want:     `{"script_score":{"script":{"source":"Math.log(2 + doc['views'].value)"}}}`,
		},
		{
			name: "script_score with params",
			function: NewScoreFunction(
				NewScriptScore("doc['views'].value * params.factor").
					Params(map[string]any{"factor": 1.5}),
			),
			want: `{"script_score":{"script":{"source":"doc['views'].value * params.factor","params":{"factor":1.5}}}}`,
		},
		{
			name:     "exp decay requires only scale",
			function: NewScoreFunction(NewExpFunction("published_at", "10d")),
			want:     `{"exp":{"published_at":{"scale":"10d"}}}`,
		},
		{
			name:     "linear decay with origin",
			function: NewScoreFunction(NewLinearFunction("distance", "5km").Origin("52.52,13.40")),
			want:     `{"linear":{"distance":{"origin":"52.52,13.40","scale":"5km"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := sourceJSONValue(t, tt.function.Source())
			assert.JSONEq(t, tt.want, data)
		})
	}
}

func TestFunctionScoreQueryBuilder_Build(t *testing.T) {
	b := NewFunctionScoreQueryBuilder()
	b.Query(NewMatchQuery("content", "invoice"))
	b.Function(NewWeightFunction(1.1).Filter(NewTermQuery("file_type", "pdf")))
	b.Function(NewWeightFunction(0.9).Filter(NewTermQuery("file_type", "docx")))
	b.ScoreMode(ScoreModeMax)

	q := b.Build()

	assert.JSONEq(t, `{
		"function_score": {
			"query": {"match":{"content":"invoice"}},
			"functions": [
				{"filter":{"term":{"file_type":"pdf"}},"weight":1.1},
				{"filter":{"term":{"file_type":"docx"}},"weight":0.9}
			],
			"score_mode": "max"
		}
	}`, sourceJSON(t, q))
}

func TestFunctionScoreQueryBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewFunctionScoreQueryBuilder()
	b.Function(NewWeightFunction(1.0))
	q := b.Build()

	b.Function(NewWeightFunction(2.0))

	assert.JSONEq(t,
		`{"function_score":{"functions":[{"weight":1.0}]}}`,
		sourceJSON(t, q))
}
