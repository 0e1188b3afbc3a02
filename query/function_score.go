package query

import "encoding/json"

// ScoreMode controls how the results of multiple scoring functions are
// combined.
type ScoreMode string

// Score modes accepted by the engine.
const (
	ScoreModeMultiply ScoreMode = "multiply"
	ScoreModeSum      ScoreMode = "sum"
	ScoreModeAvg      ScoreMode = "avg"
	ScoreModeFirst    ScoreMode = "first"
	ScoreModeMax      ScoreMode = "max"
	ScoreModeMin      ScoreMode = "min"
)

// BoostMode controls how the combined function score is merged with the base
// query score.
type BoostMode string

// Boost modes accepted by the engine.
const (
	BoostModeMultiply BoostMode = "multiply"
	BoostModeReplace  BoostMode = "replace"
	BoostModeSum      BoostMode = "sum"
	BoostModeAvg      BoostMode = "avg"
	BoostModeMax      BoostMode = "max"
	BoostModeMin      BoostMode = "min"
)

// FunctionScoreQuery rescores the documents matched by a base query with a
// list of scoring functions.
type FunctionScoreQuery struct {
	query     Query
	functions []*ScoreFunction
	scoreMode *ScoreMode
	boostMode *BoostMode
	maxBoost  *float64
	boost     *float64
	minScore  *float64
}

// NewFunctionScoreQuery creates a new empty FunctionScoreQuery. A function
// score with no base query and no functions is legal; it serializes to a
// minimal-but-valid document.
func NewFunctionScoreQuery() *FunctionScoreQuery {
	return &FunctionScoreQuery{}
}

// Query sets the base query whose matches are rescored.
func (q *FunctionScoreQuery) Query(query Query) *FunctionScoreQuery {
	q.query = query
	return q
}

// Function appends a scoring function.
func (q *FunctionScoreQuery) Function(function *ScoreFunction) *FunctionScoreQuery {
	q.functions = append(q.functions, function)
	return q
}

// ScoreMode sets how function results are combined with each other.
func (q *FunctionScoreQuery) ScoreMode(scoreMode ScoreMode) *FunctionScoreQuery {
	q.scoreMode = &scoreMode
	return q
}

// BoostMode sets how the function score is combined with the query score.
func (q *FunctionScoreQuery) BoostMode(boostMode BoostMode) *FunctionScoreQuery {
	q.boostMode = &boostMode
	return q
}

// MaxBoost caps the score a function may contribute.
func (q *FunctionScoreQuery) MaxBoost(maxBoost float64) *FunctionScoreQuery {
	q.maxBoost = &maxBoost
	return q
}

// Boost sets the query-level boost. It is independent of per-function
// weights.
func (q *FunctionScoreQuery) Boost(boost float64) *FunctionScoreQuery {
	q.boost = &boost
	return q
}

// MinScore excludes documents scoring below the threshold.
func (q *FunctionScoreQuery) MinScore(minScore float64) *FunctionScoreQuery {
	q.minScore = &minScore
	return q
}

// Source builds the wire representation. Each part is omitted when unset;
// the functions array is omitted when empty.
func (q *FunctionScoreQuery) Source() any {
	fsObj := map[string]any{}
	if q.query != nil {
		fsObj["query"] = q.query.Source()
	}
	if len(q.functions) > 0 {
		functions := make([]any, len(q.functions))
		for i, f := range q.functions {
			functions[i] = f.Source()
		}
		fsObj["functions"] = functions
	}
	if q.scoreMode != nil {
		fsObj["score_mode"] = string(*q.scoreMode)
	}
	if q.boostMode != nil {
		fsObj["boost_mode"] = string(*q.boostMode)
	}
	if q.maxBoost != nil {
		fsObj["max_boost"] = *q.maxBoost
	}
	if q.boost != nil {
		fsObj["boost"] = *q.boost
	}
	if q.minScore != nil {
		fsObj["min_score"] = *q.minScore
	}
	return map[string]any{"function_score": fsObj}
}

func (q *FunctionScoreQuery) kind() string { return kindFunctionScore }
func (q *FunctionScoreQuery) isQuery()     {}

type functionScoreQueryJSON struct {
	Query     json.RawMessage   `json:"query,omitempty"`
	Functions []json.RawMessage `json:"functions,omitempty"`
	ScoreMode *ScoreMode        `json:"score_mode,omitempty"`
	BoostMode *BoostMode        `json:"boost_mode,omitempty"`
	MaxBoost  *float64          `json:"max_boost,omitempty"`
	Boost     *float64          `json:"boost,omitempty"`
	MinScore  *float64          `json:"min_score,omitempty"`
}

func (q *FunctionScoreQuery) MarshalJSON() ([]byte, error) {
	raw := functionScoreQueryJSON{
		ScoreMode: q.scoreMode,
		BoostMode: q.boostMode,
		MaxBoost:  q.maxBoost,
		Boost:     q.boost,
		MinScore:  q.minScore,
	}
	if q.query != nil {
		queryRaw, err := Marshal(q.query)
		if err != nil {
			return nil, err
		}
		raw.Query = queryRaw
	}
	for _, f := range q.functions {
		functionRaw, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		raw.Functions = append(raw.Functions, functionRaw)
	}
	return json.Marshal(raw)
}

func (q *FunctionScoreQuery) UnmarshalJSON(data []byte) error {
	var raw functionScoreQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.query = nil
	if len(raw.Query) > 0 {
		query, err := Unmarshal(raw.Query)
		if err != nil {
			return err
		}
		q.query = query
	}
	q.functions = nil
	for _, functionRaw := range raw.Functions {
		function := &ScoreFunction{}
		if err := json.Unmarshal(functionRaw, function); err != nil {
			return err
		}
		q.functions = append(q.functions, function)
	}
	q.scoreMode = raw.ScoreMode
	q.boostMode = raw.BoostMode
	q.maxBoost = raw.MaxBoost
	q.boost = raw.Boost
	q.minScore = raw.MinScore
	return nil
}

// FunctionScoreQueryBuilder incrementally assembles a FunctionScoreQuery
// before a terminal Build.
type FunctionScoreQueryBuilder struct {
	query     Query
	functions []*ScoreFunction
	scoreMode *ScoreMode
	boostMode *BoostMode
	maxBoost  *float64
	boost     *float64
	minScore  *float64
}

// NewFunctionScoreQueryBuilder creates a new empty builder.
func NewFunctionScoreQueryBuilder() *FunctionScoreQueryBuilder {
	return &FunctionScoreQueryBuilder{}
}

// Query sets the base query, replacing any previous one.
func (b *FunctionScoreQueryBuilder) Query(query Query) *FunctionScoreQueryBuilder {
	b.query = query
	return b
}

// Function appends a scoring function; call repeatedly to add several.
func (b *FunctionScoreQueryBuilder) Function(function *ScoreFunction) *FunctionScoreQueryBuilder {
	b.functions = append(b.functions, function)
	return b
}

// ScoreMode sets how function results are combined with each other.
func (b *FunctionScoreQueryBuilder) ScoreMode(scoreMode ScoreMode) *FunctionScoreQueryBuilder {
	b.scoreMode = &scoreMode
	return b
}

// BoostMode sets how the function score is combined with the query score.
func (b *FunctionScoreQueryBuilder) BoostMode(boostMode BoostMode) *FunctionScoreQueryBuilder {
	b.boostMode = &boostMode
	return b
}

// MaxBoost caps the score a function may contribute.
func (b *FunctionScoreQueryBuilder) MaxBoost(maxBoost float64) *FunctionScoreQueryBuilder {
	b.maxBoost = &maxBoost
	return b
}

// Boost sets the query-level boost.
func (b *FunctionScoreQueryBuilder) Boost(boost float64) *FunctionScoreQueryBuilder {
	b.boost = &boost
	return b
}

// MinScore excludes documents scoring below the threshold.
func (b *FunctionScoreQueryBuilder) MinScore(minScore float64) *FunctionScoreQueryBuilder {
	b.minScore = &minScore
	return b
}

// Build freezes the builder into a FunctionScoreQuery.
func (b *FunctionScoreQueryBuilder) Build() *FunctionScoreQuery {
	return &FunctionScoreQuery{
		query:     b.query,
		functions: append([]*ScoreFunction(nil), b.functions...),
		scoreMode: b.scoreMode,
		boostMode: b.boostMode,
		maxBoost:  b.maxBoost,
		boost:     b.boost,
		minScore:  b.minScore,
	}
}
