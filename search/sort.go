package search

import "encoding/json"

// SortOrder is the direction of a sort criterion.
type SortOrder string

const (
	// Asc sorts ascending.
	Asc SortOrder = "asc"
	// Desc sorts descending.
	Desc SortOrder = "desc"
)

// SortMode picks the representative value of a multi-valued field when
// sorting on it.
type SortMode string

// Sort modes accepted by the engine.
const (
	SortModeMin    SortMode = "min"
	SortModeMax    SortMode = "max"
	SortModeSum    SortMode = "sum"
	SortModeAvg    SortMode = "avg"
	SortModeMedian SortMode = "median"
)

// Sort is one criterion in a search request's sort list. The set of
// implementations is closed: FieldSort, ScoreSort, ScoreWithOrderSort and
// ScriptSort.
type Sort interface {
	// Source builds the wire-format representation of this criterion.
	Source() any

	kind() string

	isSort()
}

// FieldSort sorts on a document field.
type FieldSort struct {
	field        string
	order        SortOrder
	missing      *string
	unmappedType *string
}

// NewFieldSort creates a sort on the given field and order.
func NewFieldSort(field string, order SortOrder) *FieldSort {
	return &FieldSort{field: field, order: order}
}

// Missing sets where documents lacking the field sort, e.g. "_last".
func (s *FieldSort) Missing(missing string) *FieldSort {
	s.missing = &missing
	return s
}

// UnmappedType sets the type assumed for indices where the field is
// unmapped.
func (s *FieldSort) UnmappedType(unmappedType string) *FieldSort {
	s.unmappedType = &unmappedType
	return s
}

// Source builds the wire representation. With no secondary option the
// simplified form {field: "asc"|"desc"} is used; any option switches to the
// object form with an explicit "order" key.
func (s *FieldSort) Source() any {
	if s.missing == nil && s.unmappedType == nil {
		return map[string]any{s.field: string(s.order)}
	}
	fieldObj := map[string]any{"order": string(s.order)}
	if s.missing != nil {
		fieldObj["missing"] = *s.missing
	}
	if s.unmappedType != nil {
		fieldObj["unmapped_type"] = *s.unmappedType
	}
	return map[string]any{s.field: fieldObj}
}

func (s *FieldSort) kind() string { return sortKindField }
func (s *FieldSort) isSort()      {}

type fieldSortJSON struct {
	Field        string    `json:"field"`
	Order        SortOrder `json:"order"`
	Missing      *string   `json:"missing,omitempty"`
	UnmappedType *string   `json:"unmapped_type,omitempty"`
}

func (s *FieldSort) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldSortJSON{
		Field:        s.field,
		Order:        s.order,
		Missing:      s.missing,
		UnmappedType: s.unmappedType,
	})
}

func (s *FieldSort) UnmarshalJSON(data []byte) error {
	var raw fieldSortJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.field = raw.Field
	s.order = raw.Order
	s.missing = raw.Missing
	s.unmappedType = raw.UnmappedType
	return nil
}

// ScoreSort sorts by relevance score; it serializes to the bare string
// "_score".
type ScoreSort struct{}

// NewScoreSort creates a relevance-score sort.
func NewScoreSort() *ScoreSort {
	return &ScoreSort{}
}

// Source builds the wire representation.
func (s *ScoreSort) Source() any { return "_score" }

func (s *ScoreSort) kind() string { return sortKindScore }
func (s *ScoreSort) isSort()      {}

// ScoreWithOrderSort sorts by relevance score with an explicit direction.
type ScoreWithOrderSort struct {
	order SortOrder
}

// NewScoreWithOrderSort creates a relevance-score sort with the given
// direction.
func NewScoreWithOrderSort(order SortOrder) *ScoreWithOrderSort {
	return &ScoreWithOrderSort{order: order}
}

// Source builds the wire representation: {"_score": "asc"|"desc"}.
func (s *ScoreWithOrderSort) Source() any {
	return map[string]any{"_score": string(s.order)}
}

func (s *ScoreWithOrderSort) kind() string { return sortKindScoreWithOrder }
func (s *ScoreWithOrderSort) isSort()      {}

type scoreWithOrderSortJSON struct {
	Order SortOrder `json:"order"`
}

func (s *ScoreWithOrderSort) MarshalJSON() ([]byte, error) {
	return json.Marshal(scoreWithOrderSortJSON{Order: s.order})
}

func (s *ScoreWithOrderSort) UnmarshalJSON(data []byte) error {
	var raw scoreWithOrderSortJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.order = raw.Order
	return nil
}
