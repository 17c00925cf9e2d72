package layout_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/docview/layout"
)

func mustDecode(t *testing.T, raw string) *layout.Document {
	t.Helper()

	doc, err := layout.Decode([]byte(raw))
	require.NoError(t, err)
	return doc
}

func TestExtract_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []layout.PageRegions
	}{
		{
			name:     "empty pdf_info",
			input:    `{"pdf_info": []}`,
			expected: []layout.PageRegions{},
		},
		{
			name:     "missing pdf_info",
			input:    `{"other": 1}`,
			expected: []layout.PageRegions{},
		},
		{
			name: "single preproc block",
			input: `{"pdf_info": [{
				"page_idx": 0, "page_size": [612, 792],
				"preproc_blocks": [{"type": "image", "bbox": [0, 0, 10, 10]}],
				"para_blocks": []
			}]}`,
			expected: []layout.PageRegions{
				{
					PageIdx: 0, PageWidth: 612, PageHeight: 792,
					Regions: []layout.Region{
						{Type: "image", BBox: [4]float64{0, 0, 10, 10}, Category: layout.CategoryPreproc},
					},
				},
			},
		},
		{
			name: "para block followed by equation line",
			input: `{"pdf_info": [{
				"page_idx": 3, "page_size": [100, 200],
				"para_blocks": [{
					"type": "interline_equation", "bbox": [0, 0, 5, 5],
					"lines": [{"bbox": [0, 0, 5, 1], "spans": [{"type": "interline_equation"}]}]
				}]
			}]}`,
			expected: []layout.PageRegions{
				{
					PageIdx: 3, PageWidth: 100, PageHeight: 200,
					Regions: []layout.Region{
						{Type: "interline_equation", BBox: [4]float64{0, 0, 5, 5}, Category: layout.CategoryPara},
						{Type: layout.TypeEquation, BBox: [4]float64{0, 0, 5, 1}, Category: layout.CategoryLine},
					},
				},
			},
		},
		{
			name: "short bbox is dropped and siblings survive",
			input: `{"pdf_info": [{
				"preproc_blocks": [
					{"type": "table", "bbox": [1, 2, 3]},
					{"type": "image", "bbox": [4, 5, 6, 7]}
				]
			}]}`,
			expected: []layout.PageRegions{
				{
					Regions: []layout.Region{
						{Type: "image", BBox: [4]float64{4, 5, 6, 7}, Category: layout.CategoryPreproc},
					},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := layout.Extract(mustDecode(t, tc.input))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestExtract_RegionOrder(t *testing.T) {
	doc := mustDecode(t, `{"pdf_info": [{
		"para_blocks": [
			{"type": "text", "bbox": [0, 0, 1, 1], "lines": [
				{"bbox": [0, 0, 1, 0.5], "spans": [{"type": "text"}]},
				{"bbox": [0, 0.5, 1, 1], "spans": []}
			]},
			{"type": "title", "bbox": [0, 2, 1, 3], "lines": [
				{"bbox": [0, 2, 1, 3]}
			]}
		],
		"preproc_blocks": [{"type": "image", "bbox": [9, 9, 9, 9]}]
	}]}`)

	pages := layout.Extract(doc)
	require.Len(t, pages, 1)

	var got []string
	for _, r := range pages[0].Regions {
		got = append(got, r.Category+":"+r.Type)
	}

	assert.Equal(t, []string{
		"preproc:image",
		"para:text",
		"line:text_line",
		"line:text_line",
		"para:title",
		"line:text_line",
	}, got)
}

func TestExtract_LinesWithoutBlockBBox(t *testing.T) {
	doc := mustDecode(t, `{"pdf_info": [{
		"para_blocks": [{"type": "text", "lines": [{"bbox": [1, 1, 2, 2]}, {"bbox": [1, 1]}]}]
	}]}`)

	pages := layout.Extract(doc)
	require.Len(t, pages, 1)
	assert.Equal(t, []layout.Region{
		{Type: layout.TypeTextLine, BBox: [4]float64{1, 1, 2, 2}, Category: layout.CategoryLine},
	}, pages[0].Regions)
}

func TestExtract_LineType(t *testing.T) {
	tests := []struct {
		name     string
		spans    string
		expected string
	}{
		{name: "no spans", spans: `[]`, expected: layout.TypeTextLine},
		{name: "text spans", spans: `[{"type": "text"}, {"type": "inline_equation"}]`, expected: layout.TypeTextLine},
		{name: "equation first", spans: `[{"type": "interline_equation"}, {"type": "text"}]`, expected: layout.TypeEquation},
		{name: "equation last", spans: `[{"type": "text"}, {"type": "interline_equation"}]`, expected: layout.TypeEquation},
		{name: "span without type", spans: `[{"content": "x"}, {"type": "interline_equation"}]`, expected: layout.TypeEquation},
		{name: "spans not a list", spans: `"interline_equation"`, expected: layout.TypeTextLine},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDecode(t, `{"pdf_info": [{"para_blocks": [{"lines": [{"bbox": [0, 0, 1, 1], "spans": `+tc.spans+`}]}]}]}`)

			pages := layout.Extract(doc)
			require.Len(t, pages, 1)
			require.Len(t, pages[0].Regions, 1)
			assert.Equal(t, tc.expected, pages[0].Regions[0].Type)
		})
	}
}

func TestExtract_Defaults(t *testing.T) {
	doc := mustDecode(t, `{"pdf_info": [
		{"page_size": [300], "preproc_blocks": [{"bbox": [0, 0, 1, 1]}]},
		{"page_idx": 7},
		{"page_idx": "seven", "page_size": "A4"},
		{"page_idx": 1e20},
		{"page_idx": -1e20},
		{"page_idx": 2.5}
	]}`)

	pages := layout.Extract(doc)
	require.Len(t, pages, 6, "pages are never dropped")

	assert.Equal(t, 0, pages[0].PageIdx)
	assert.InDelta(t, 300, pages[0].PageWidth, 0)
	assert.InDelta(t, 0, pages[0].PageHeight, 0)
	require.Len(t, pages[0].Regions, 1)
	assert.Equal(t, layout.TypeUnknown, pages[0].Regions[0].Type)

	assert.Equal(t, 7, pages[1].PageIdx)
	assert.Empty(t, pages[1].Regions)
	assert.NotNil(t, pages[1].Regions)

	assert.Equal(t, 0, pages[2].PageIdx)
	assert.InDelta(t, 0, pages[2].PageWidth, 0)

	for _, p := range pages[3:] {
		assert.Equal(t, 0, p.PageIdx, "out-of-range or fractional page_idx is absent")
	}
}

func TestExtract_MalformedElementsAreSkipped(t *testing.T) {
	doc := mustDecode(t, `{"pdf_info": [{
		"preproc_blocks": [
			"not a block",
			{"type": "image", "bbox": "0,0,1,1"},
			{"type": "image", "bbox": [0, null, 1, 1]},
			{"type": "image", "bbox": [0, "1", 1, 1]},
			{"type": 42, "bbox": [1, 2, 3, 4, 5]},
			null
		],
		"para_blocks": {"not": "a list"}
	}]}`)

	pages := layout.Extract(doc)
	require.Len(t, pages, 1)
	assert.Equal(t, []layout.Region{
		{Type: layout.TypeUnknown, BBox: [4]float64{1, 2, 3, 4}, Category: layout.CategoryPreproc},
	}, pages[0].Regions)
}

func TestExtract_Idempotent(t *testing.T) {
	doc := mustDecode(t, `{"pdf_info": [{
		"page_idx": 1, "page_size": [10, 20],
		"preproc_blocks": [{"type": "table", "bbox": [1, 1, 2, 2]}],
		"para_blocks": [{"type": "text", "bbox": [0, 0, 5, 5], "lines": [{"bbox": [0, 0, 5, 1]}]}]
	}]}`)

	first := layout.Extract(doc)
	second := layout.Extract(doc)
	assert.Equal(t, first, second)
}

func TestExtract_NilDocument(t *testing.T) {
	assert.Equal(t, []layout.PageRegions{}, layout.Extract(nil))
}

func TestExtract_JSONShape(t *testing.T) {
	doc := mustDecode(t, `{"pdf_info": [{"page_idx": 0, "page_size": [10, 20], "preproc_blocks": [{"type": "image", "bbox": [0, 0, 10, 10]}]}]}`)

	raw, err := json.Marshal(layout.Extract(doc))
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"page_idx": 0, "page_width": 10, "page_height": 20,
		"regions": [{"type": "image", "bbox": [0, 0, 10, 10], "category": "preproc"}]
	}]`, string(raw))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "not json", input: []byte("{oops")},
		{name: "top level array", input: []byte(`[{"pdf_info": []}]`)},
		{name: "invalid utf-8", input: []byte{'{', '"', 0xff, '"', ':', '1', '}'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.Decode(tc.input)
			require.Error(t, err)
		})
	}
}
