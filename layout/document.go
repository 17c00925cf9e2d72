// Package layout models the layout sidecar ("middle JSON") emitted by the document
// parsing pipeline and derives a flattened, page-indexed list of typed regions from it.
//
// The sidecar schema drifts between parser versions, so every field of the tree is
// optional and decoded leniently: a value of the wrong shape is treated as absent
// instead of failing the whole document. Read-or-default accessors on each node
// give the values the extractor works with.
package layout

import (
	"bytes"
	"encoding/json"
	"math"
	"unicode/utf8"

	"github.com/code19m/errx"
)

const (
	// CodeInvalidDocument is returned by Decode when the sidecar is not a JSON object.
	CodeInvalidDocument = "INVALID_LAYOUT_DOCUMENT"

	bboxLen = 4
)

// Document is the root of the layout sidecar.
type Document struct {
	PDFInfo List[Page] `json:"pdf_info"`
}

// Page describes one page of the parsed document.
type Page struct {
	PageIdx       Optional[float64]       `json:"page_idx"`
	PageSize      List[Optional[float64]] `json:"page_size"`
	PreprocBlocks List[Block]             `json:"preproc_blocks"`
	ParaBlocks    List[Block]             `json:"para_blocks"`
}

// Block is a layout block. Only para blocks carry lines.
type Block struct {
	Type  Optional[string] `json:"type"`
	BBox  BBox             `json:"bbox"`
	Lines List[Line]       `json:"lines"`
}

// Line is a text line inside a para block.
type Line struct {
	BBox  BBox       `json:"bbox"`
	Spans List[Span] `json:"spans"`
}

// Span is the smallest content unit of a line. Only its type matters here.
type Span struct {
	Type Optional[string] `json:"type"`
}

// Decode parses raw sidecar bytes.
// It fails only when the input is not valid UTF-8 JSON or its top level is not an object;
// malformed nested values are tolerated and surface as absent fields.
func Decode(data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, errx.New(
			"layout document is not valid utf-8",
			errx.WithCode(CodeInvalidDocument),
			errx.WithType(errx.T_Validation),
		)
	}

	var doc Document
	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithCode(CodeInvalidDocument), errx.WithType(errx.T_Validation))
	}

	return &doc, nil
}

// Index returns page_idx, or 0 when absent.
// Fractional values and values outside the int range count as absent.
func (p Page) Index() int {
	v := p.PageIdx.Or(0)
	// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
	if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
		return 0
	}
	return int(v)
}

// Width returns the first page_size entry, or 0 when absent.
func (p Page) Width() float64 {
	return p.sizeAt(0)
}

// Height returns the second page_size entry, or 0 when absent.
func (p Page) Height() float64 {
	return p.sizeAt(1)
}

func (p Page) sizeAt(i int) float64 {
	if i >= len(p.PageSize) {
		return 0
	}
	return p.PageSize[i].Or(0)
}

// TypeOr returns the block type or def when it is absent.
func (b Block) TypeOr(def string) string {
	return b.Type.Or(def)
}

// Optional is a JSON value that may be absent, null or of an unexpected shape.
// In all of those cases Valid is false.
type Optional[T any] struct {
	Value T
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	*o = Optional[T]{}
	if isNull(data) {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil //nolint:nilerr // wrong shape means absent
	}

	*o = Optional[T]{Value: v, Valid: true}
	return nil
}

// Or returns the value when valid, otherwise def.
func (o Optional[T]) Or(def T) T {
	if !o.Valid {
		return def
	}
	return o.Value
}

// List is a JSON array whose elements are decoded one by one.
// A non-array value decodes as an empty list and an element of the wrong shape
// decodes as the zero element, so siblings are never affected.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	*l = nil

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil //nolint:nilerr // wrong shape means empty
	}

	items := make(List[T], len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		items[i] = item
	}

	*l = items
	return nil
}

// BBox is an axis-aligned box [x0, y0, x1, y1].
// It is valid only when the source array has at least four leading numbers;
// extra entries are ignored.
type BBox struct {
	Coords [bboxLen]float64
	Valid  bool
}

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (b *BBox) UnmarshalJSON(data []byte) error {
	*b = BBox{}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) < bboxLen {
		return nil //nolint:nilerr // short or non-array bbox means absent
	}

	var coords [bboxLen]float64
	for i := range bboxLen {
		if isNull(raw[i]) {
			return nil
		}
		if err := json.Unmarshal(raw[i], &coords[i]); err != nil {
			return nil //nolint:nilerr // non-numeric coordinate means absent
		}
	}

	*b = BBox{Coords: coords, Valid: true}
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
