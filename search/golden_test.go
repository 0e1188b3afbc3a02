package search

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/opensearch-tools/osdsl/query"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// encodeCanonical renders a request document as indented JSON without HTML
// escaping, so highlight tags like <macro_em> stay readable in fixtures.
func encodeCanonical(t *testing.T, req *SearchRequest) []byte {
	t.Helper()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	require.NoError(t, enc.Encode(req.Source()))
	return buf.Bytes()
}

func TestSearchRequest_Golden(t *testing.T) {
	boolQuery := query.NewBoolQuery().
		Must(query.NewTermsQuery("file_type", "pdf", "docx")).
		Should(
			query.NewTermQuery("owner_id", "user"),
			query.NewTermsQuery("document_id"),
		).
		MinimumShouldMatch(1)

	req := NewSearchRequest().
		Query(boolQuery).
		From(2).
		Size(2).
		Sort(NewFieldSort("updated_at", Desc)).
		Highlight(NewHighlight().Field("content",
			NewHighlightField().
				Type("unified").
				NumberOfFragments(500).
				PreTags("<macro_em>").
				PostTags("</macro_em>"),
		))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "search_request", encodeCanonical(t, req))
}
