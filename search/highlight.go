package search

// HighlightField configures highlighting for one field.
type HighlightField struct {
	highlightType     *string
	numberOfFragments *int
	preTags           []string
	postTags          []string
}

// NewHighlightField creates a HighlightField with no options set.
func NewHighlightField() *HighlightField {
	return &HighlightField{}
}

// Type sets the highlighter, e.g. "unified".
func (f *HighlightField) Type(highlightType string) *HighlightField {
	f.highlightType = &highlightType
	return f
}

// NumberOfFragments sets how many fragments are returned.
func (f *HighlightField) NumberOfFragments(numberOfFragments int) *HighlightField {
	f.numberOfFragments = &numberOfFragments
	return f
}

// PreTags sets the opening tags wrapped around highlighted terms.
func (f *HighlightField) PreTags(preTags ...string) *HighlightField {
	f.preTags = preTags
	return f
}

// PostTags sets the closing tags wrapped around highlighted terms.
func (f *HighlightField) PostTags(postTags ...string) *HighlightField {
	f.postTags = postTags
	return f
}

// Source builds the wire representation; every key appears only when
// set/non-empty.
func (f *HighlightField) Source() any {
	obj := map[string]any{}
	if f.highlightType != nil {
		obj["type"] = *f.highlightType
	}
	if f.numberOfFragments != nil {
		obj["number_of_fragments"] = *f.numberOfFragments
	}
	if len(f.preTags) > 0 {
		obj["pre_tags"] = stringList(f.preTags)
	}
	if len(f.postTags) > 0 {
		obj["post_tags"] = stringList(f.postTags)
	}
	return obj
}

// Highlight configures result highlighting per field.
type Highlight struct {
	fields            map[string]*HighlightField
	requireFieldMatch *bool
}

// NewHighlight creates an empty Highlight.
func NewHighlight() *Highlight {
	return &Highlight{}
}

// Field adds highlighting configuration for one field.
func (h *Highlight) Field(name string, field *HighlightField) *Highlight {
	if h.fields == nil {
		h.fields = make(map[string]*HighlightField)
	}
	h.fields[name] = field
	return h
}

// RequireFieldMatch sets whether only fields containing a query match are
// highlighted.
func (h *Highlight) RequireFieldMatch(requireFieldMatch bool) *Highlight {
	h.requireFieldMatch = &requireFieldMatch
	return h
}

// Source builds the wire representation; "fields" is emitted only when
// non-empty.
func (h *Highlight) Source() any {
	obj := map[string]any{}
	if len(h.fields) > 0 {
		fieldsObj := make(map[string]any, len(h.fields))
		for name, field := range h.fields {
			fieldsObj[name] = field.Source()
		}
		obj["fields"] = fieldsObj
	}
	if h.requireFieldMatch != nil {
		obj["require_field_match"] = *h.requireFieldMatch
	}
	return obj
}

func stringList(values []string) []any {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}
