// Package files serves a caller's uploaded documents: metadata listing, byte
// streaming, deletion and layout region extraction from the parser sidecar.
package files

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/rise-and-shine/docview/sorter"
)

// Error and message codes. Messages are translated per request language.
const (
	CodeFileNotFound       = "FILE_NOT_FOUND"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeSidecarUnavailable = "SIDECAR_UNAVAILABLE"
	CodeFileReadFailed     = "FILE_READ_FAILED"
	CodeFileDeleteFailed   = "FILE_DELETE_FAILED"
	CodeRegionsFailed      = "REGIONS_FAILED"
	CodeDownloadURLFailed  = "DOWNLOAD_URL_FAILED"

	MsgFileDeleted = "FILE_DELETED"
	MsgNoRegions   = "NO_REGIONS"
)

// File statuses written by the upload and parsing pipeline.
const (
	StatusPending   = "PENDING"
	StatusParsing   = "PARSING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// File is an uploaded document owned by one user.
type File struct {
	bun.BaseModel `bun:"table:files,alias:f" json:"-"`

	ID          int64     `bun:"id,pk,autoincrement"                            json:"id"`
	UserID      string    `bun:"user_id,notnull"                                json:"user_id"`
	Filename    string    `bun:"filename,notnull"                               json:"filename"`
	MinioPath   string    `bun:"minio_path,notnull"                             json:"minio_path"`
	ContentType *string   `bun:"content_type"                                   json:"content_type"`
	Size        int64     `bun:"size"                                           json:"size"`
	Status      string    `bun:"status,notnull"                                 json:"status"`
	UploadTime  time.Time `bun:"upload_time,nullzero,notnull,default:current_timestamp" json:"upload_time"`
}

// ParsedContent is text extracted from a file by the parser.
type ParsedContent struct {
	bun.BaseModel `bun:"table:parsed_contents,alias:pc" json:"-"`

	ID        int64     `bun:"id,pk,autoincrement"                           json:"id"`
	FileID    int64     `bun:"file_id,notnull"                               json:"file_id"`
	UserID    string    `bun:"user_id,notnull"                               json:"user_id"`
	Content   string    `bun:"content"                                       json:"content"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// FileFilter selects files. UserID is always applied.
type FileFilter struct {
	ID     *int64
	UserID string
	Search string
	Status string
	Sort   sorter.SortOpts
	Limit  int
	Offset int
}

// ParsedContentFilter selects parsed content rows of one file.
type ParsedContentFilter struct {
	FileID int64
	UserID string
}
