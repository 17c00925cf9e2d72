package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/docview/layout"
	"github.com/rise-and-shine/docview/meta"
	"github.com/rise-and-shine/docview/observability/logger"
	"github.com/rise-and-shine/docview/ucdef"
)

// RegionsResponse lists the layout regions of a file grouped by page.
type RegionsResponse struct {
	Regions []layout.PageRegions `json:"regions"`
	Message string               `json:"message,omitempty"`
}

type getFileRegions struct {
	Deps
}

// NewGetFileRegions returns the layout regions of a file, page by page.
// A missing or unreadable sidecar yields an empty list with a notice instead of an error.
func NewGetFileRegions(deps Deps) ucdef.UserAction[*FileIDRequest, *RegionsResponse] {
	return &getFileRegions{Deps: deps}
}

func (uc *getFileRegions) OperationID() string { return "get-file-regions" }

func (uc *getFileRegions) Execute(ctx context.Context, in *FileIDRequest) (*RegionsResponse, error) {
	f, err := ownedFile(ctx, uc.Store, in.FileID)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	doc, err := uc.Sidecar.Fetch(ctx, f)
	if errx.IsCodeIn(err, CodeSidecarUnavailable) {
		logger.Named("regions").WithContext(ctx).With("reason", err.Error()).Debug("sidecar unavailable")
		return &RegionsResponse{
			Regions: []layout.PageRegions{},
			Message: meta.TrCtx(ctx, MsgNoRegions),
		}, nil
	}
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &RegionsResponse{Regions: layout.Extract(doc)}, nil
}
