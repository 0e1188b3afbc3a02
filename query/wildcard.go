package query

import "encoding/json"

// WildcardQuery matches documents where the field value matches a wildcard
// pattern. The pattern is passed through verbatim; wrap it in `*` yourself.
type WildcardQuery struct {
	field           string
	value           string
	caseInsensitive bool
	boost           *float64
}

// NewWildcardQuery creates a new WildcardQuery for the given field and
// pattern.
func NewWildcardQuery(field, value string, caseInsensitive bool) *WildcardQuery {
	return &WildcardQuery{
		field:           field,
		value:           value,
		caseInsensitive: caseInsensitive,
	}
}

// Boost sets the boost value.
func (q *WildcardQuery) Boost(boost float64) *WildcardQuery {
	q.boost = &boost
	return q
}

// Source builds the wire representation. Wildcard always uses the object
// form and always emits case_insensitive; boost appears only when set.
func (q *WildcardQuery) Source() any {
	fieldObj := map[string]any{
		"value":            q.value,
		"case_insensitive": q.caseInsensitive,
	}
	if q.boost != nil {
		fieldObj["boost"] = *q.boost
	}
	return map[string]any{
		"wildcard": map[string]any{q.field: fieldObj},
	}
}

func (q *WildcardQuery) kind() string { return kindWildcard }
func (q *WildcardQuery) isQuery()     {}

type wildcardQueryJSON struct {
	Field           string   `json:"field"`
	Value           string   `json:"value"`
	CaseInsensitive bool     `json:"case_insensitive"`
	Boost           *float64 `json:"boost,omitempty"`
}

func (q *WildcardQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(wildcardQueryJSON{
		Field:           q.field,
		Value:           q.value,
		CaseInsensitive: q.caseInsensitive,
		Boost:           q.boost,
	})
}

func (q *WildcardQuery) UnmarshalJSON(data []byte) error {
	var raw wildcardQueryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.field = raw.Field
	q.value = raw.Value
	q.caseInsensitive = raw.CaseInsensitive
	q.boost = raw.Boost
	return nil
}
