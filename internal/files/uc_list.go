package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/docview/pagination"
	"github.com/rise-and-shine/docview/sorter"
	"github.com/rise-and-shine/docview/ucdef"
)

//nolint:gochecknoglobals // fixed list of sortable columns
var sortableFields = []string{"filename", "upload_time", "size", "status"}

//nolint:gochecknoglobals // default listing order
var defaultSort = sorter.Make(sorter.Opt{F: "upload_time", D: sorter.Desc})

// ListFilesRequest filters and pages the caller's files.
type ListFilesRequest struct {
	pagination.Request

	Search string `query:"search" json:"search"`
	Status string `query:"status" json:"status"`
	Sort   string `query:"sort"   json:"sort"   validate:"omitempty,sort_expr"`
}

// ListFilesResponse is one page of the caller's files.
type ListFilesResponse struct {
	pagination.Meta

	Files []File `json:"files"`
}

type listFiles struct {
	Deps
}

// NewListFiles lists the caller's files one page at a time, newest first unless
// another order is requested.
func NewListFiles(deps Deps) ucdef.UserAction[*ListFilesRequest, *ListFilesResponse] {
	return &listFiles{Deps: deps}
}

func (uc *listFiles) OperationID() string { return "list-files" }

func (uc *listFiles) Execute(ctx context.Context, in *ListFilesRequest) (*ListFilesResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	in.Normalize(
		pagination.WithDefaultPageSize(uc.Config.DefaultPageSize),
		pagination.WithMaxPageSize(uc.Config.MaxPageSize),
	)

	files, total, err := uc.Store.Files().ListWithCount(ctx, FileFilter{
		UserID: userID,
		Search: in.Search,
		Status: in.Status,
		Sort:   sorter.MakeFromStr(in.Sort, sortableFields...).OrDefault(defaultSort...),
		Limit:  in.Limit(),
		Offset: in.Offset(),
	})
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &ListFilesResponse{
		Meta:  pagination.NewMeta(int64(total), in.Request),
		Files: files,
	}, nil
}
