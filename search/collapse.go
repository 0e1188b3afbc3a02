package search

// Collapse folds results so only the top hit per distinct field value is
// returned.
type Collapse struct {
	field string
}

// NewCollapse creates a Collapse on the given field.
func NewCollapse(field string) *Collapse {
	return &Collapse{field: field}
}

// Source builds the wire representation: {"field": f}.
func (c *Collapse) Source() any {
	return map[string]any{"field": c.field}
}
