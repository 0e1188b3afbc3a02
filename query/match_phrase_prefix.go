package query

import "encoding/json"

// MatchPhrasePrefixQuery matches documents containing the query text as a
// phrase whose last term is treated as a prefix.
type MatchPhrasePrefixQuery struct {
	field         string
	query         string
	maxExpansions *int
	slop          *int
	boost         *float64
}

// NewMatchPhrasePrefixQuery creates a new MatchPhrasePrefixQuery for the
// given field and phrase prefix.
func NewMatchPhrasePrefixQuery(field, queryText string) *MatchPhrasePrefixQuery {
	return &MatchPhrasePrefixQuery{
		field: field,
		query: queryText,
	}
}

// MaxExpansions caps how many terms the trailing prefix may expand to.
func (q *MatchPhrasePrefixQuery) MaxExpansions(maxExpansions int) *MatchPhrasePrefixQuery {
	q.maxExpansions = &maxExpansions
	return q
}

// Slop sets how far apart matching terms may be.
func (q *MatchPhrasePrefixQuery) Slop(slop int) *MatchPhrasePrefixQuery {
	q.slop = &slop
	return q
}

// Boost sets the boost value.
func (q *MatchPhrasePrefixQuery) Boost(boost float64) *MatchPhrasePrefixQuery {
	q.boost = &boost
	return q
}

// Source builds the wire representation. Match-phrase-prefix always uses the
// object form with an explicit "query" key, even with no options set.
func (q *MatchPhrasePrefixQuery) Source() any {
	fieldObj := map[string]any{"query": q.query}
	if q.maxExpansions != nil {
		fieldObj["max_expansions"] = *q.maxExpansions
	}
	if q.slop != nil {
		fieldObj["slop"] = *q.slop
	}
	if q.boost != nil {
		fieldObj["boost"] = *q.boost
	}
	return map[string]any{
		"match_phrase_prefix": map[string]any{q.field: fieldObj},
	}
}

func (q *MatchPhrasePrefixQuery) kind() string { return kindMatchPhrasePrefix }
func (q *MatchPhrasePrefixQuery) isQuery()     {}

type matchPhrasePrefixQueryJSON struct {
	Field         string   `json:"field"`
	Query         string   `json:"query"`
	MaxExpansions *int     `json:"max_expansions,omitempty"`
	Slop          *int     `json:"slop,omitempty"`
	Boost         *float64 `json:"boost,omitempty"`
}

func (q *MatchPhrasePrefixQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(matchPhrasePrefixQueryJSON{
		Field:         q.field,
		Query:         q.query,
		MaxExpansions: q.maxExpansions,
		Slop:          q.slop,
		Boost:         q.boost,
	})
}

func (q *MatchPhrasePrefixQuery) UnmarshalJSON(data []byte) error {
	var raw matchPhrasePrefixQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.field = raw.Field
	q.query = raw.Query
	q.maxExpansions = raw.MaxExpansions
	q.slop = raw.Slop
	q.boost = raw.Boost
	return nil
}
