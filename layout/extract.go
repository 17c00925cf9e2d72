package layout

import "github.com/samber/lo"

// Region categories. A region's category is fixed by where it came from in the tree.
const (
	CategoryPreproc = "preproc"
	CategoryPara    = "para"
	CategoryLine    = "line"
)

// Region types assigned by the extractor itself.
const (
	TypeUnknown  = "unknown"
	TypeTextLine = "text_line"
	TypeEquation = "equation"

	spanInterlineEquation = "interline_equation"
)

// Region is a typed, page-relative bounding box.
type Region struct {
	Type     string     `json:"type"`
	BBox     [4]float64 `json:"bbox"`
	Category string     `json:"category"`
}

// PageRegions holds the regions of one page in emission order.
type PageRegions struct {
	PageIdx    int      `json:"page_idx"`
	PageWidth  float64  `json:"page_width"`
	PageHeight float64  `json:"page_height"`
	Regions    []Region `json:"regions"`
}

// Extract flattens the document into one PageRegions per page, in document order.
//
// Within a page all preproc block regions come first, then each para block's own
// region immediately followed by its line regions. Blocks and lines without a usable
// bbox contribute nothing; pages are never dropped. Extract is pure and safe for
// concurrent use.
func Extract(doc *Document) []PageRegions {
	if doc == nil {
		return []PageRegions{}
	}

	pages := make([]PageRegions, 0, len(doc.PDFInfo))
	for _, page := range doc.PDFInfo {
		pages = append(pages, extractPage(page))
	}
	return pages
}

func extractPage(page Page) PageRegions {
	regions := make([]Region, 0, len(page.PreprocBlocks)+len(page.ParaBlocks))

	for _, block := range page.PreprocBlocks {
		if block.BBox.Valid {
			regions = append(regions, Region{
				Type:     block.TypeOr(TypeUnknown),
				BBox:     block.BBox.Coords,
				Category: CategoryPreproc,
			})
		}
	}

	for _, block := range page.ParaBlocks {
		if block.BBox.Valid {
			regions = append(regions, Region{
				Type:     block.TypeOr(TypeUnknown),
				BBox:     block.BBox.Coords,
				Category: CategoryPara,
			})
		}

		// lines are emitted even when the block itself has no bbox
		for _, line := range block.Lines {
			if !line.BBox.Valid {
				continue
			}
			regions = append(regions, Region{
				Type:     lineType(line),
				BBox:     line.BBox.Coords,
				Category: CategoryLine,
			})
		}
	}

	return PageRegions{
		PageIdx:    page.Index(),
		PageWidth:  page.Width(),
		PageHeight: page.Height(),
		Regions:    regions,
	}
}

func lineType(line Line) string {
	hasEquation := lo.ContainsBy(line.Spans, func(s Span) bool {
		return s.Type.Valid && s.Type.Value == spanInterlineEquation
	})
	if hasEquation {
		return TypeEquation
	}
	return TypeTextLine
}
