package query

import "encoding/json"

// MatchPhraseQuery matches documents containing the query text as an exact
// phrase, with configurable word-order tolerance (slop).
type MatchPhraseQuery struct {
	field    string
	query    string
	slop     *int
	analyzer *string
	boost    *float64
}

// NewMatchPhraseQuery creates a new MatchPhraseQuery for the given field and
// phrase.
func NewMatchPhraseQuery(field, queryText string) *MatchPhraseQuery {
	return &MatchPhraseQuery{
		field: field,
		query: queryText,
	}
}

// Slop sets how far apart matching terms may be while still counting as a
// phrase.
func (q *MatchPhraseQuery) Slop(slop int) *MatchPhraseQuery {
	q.slop = &slop
	return q
}

// Analyzer sets the analyzer used to tokenize the phrase.
func (q *MatchPhraseQuery) Analyzer(analyzer string) *MatchPhraseQuery {
	q.analyzer = &analyzer
	return q
}

// Boost sets the boost value.
func (q *MatchPhraseQuery) Boost(boost float64) *MatchPhraseQuery {
	q.boost = &boost
	return q
}

// Source builds the wire representation, using the simple form when no
// option is set.
func (q *MatchPhraseQuery) Source() any {
	hasOptions := q.slop != nil || q.analyzer != nil || q.boost != nil
	var inner any
	if hasOptions {
		fieldObj := map[string]any{"query": q.query}
		if q.analyzer != nil {
			fieldObj["analyzer"] = *q.analyzer
		}
		if q.slop != nil {
			fieldObj["slop"] = *q.slop
		}
		if q.boost != nil {
			fieldObj["boost"] = *q.boost
		}
		inner = fieldObj
	} else {
		inner = q.query
	}
	return map[string]any{
		"match_phrase": map[string]any{q.field: inner},
	}
}

func (q *MatchPhraseQuery) kind() string { return kindMatchPhrase }
func (q *MatchPhraseQuery) isQuery()     {}

type matchPhraseQueryJSON struct {
	Field    string   `json:"field"`
	Query    string   `json:"query"`
	Slop     *int     `json:"slop,omitempty"`
	Analyzer *string  `json:"analyzer,omitempty"`
	Boost    *float64 `json:"boost,omitempty"`
}

func (q *MatchPhraseQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchPhraseQueryJSON{
		Field:    q.field,
		Query:    q.query,
		Slop:     q.slop,
		Analyzer: q.analyzer,
		Boost:    q.boost,
	})
}

func (q *MatchPhraseQuery) UnmarshalJSON(data []byte) error {
	var raw matchPhraseQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.field = raw.Field
	q.query = raw.Query
	q.slop = raw.Slop
	q.analyzer = raw.Analyzer
	q.boost = raw.Boost
	return nil
}
