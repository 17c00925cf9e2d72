package files

import (
	"context"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/docview/filestore"
	"github.com/rise-and-shine/docview/meta"
)

// Config tunes the file use cases.
type Config struct {
	DownloadURLExpiry time.Duration `yaml:"download_url_expiry" default:"1h"  validate:"gt=0"`
	StreamTimeout     time.Duration `yaml:"stream_timeout"      default:"10m" validate:"gt=0"`
	DefaultPageSize   int           `yaml:"default_page_size"   default:"20"  validate:"gt=0"`
	MaxPageSize       int           `yaml:"max_page_size"       default:"100" validate:"gtefield=DefaultPageSize"`
}

// Deps are the collaborators shared by all file use cases.
type Deps struct {
	Config  Config
	Store   Store
	Blobs   filestore.FileStore
	Sidecar *SidecarResolver
}

// FileIDRequest addresses one file of the caller.
type FileIDRequest struct {
	FileID int64 `params:"file_id" json:"file_id" validate:"required,gt=0"`
}

// callerID returns the authenticated user id of the request.
func callerID(ctx context.Context) (string, error) {
	id, err := meta.ShouldGetMeta(ctx, meta.ActorID)
	if err != nil {
		return "", errx.Wrap(err, errx.WithCode(CodeUnauthenticated), errx.WithType(errx.T_Authentication))
	}
	return id, nil
}

// ownedFile loads a file of the caller. Files of other users are reported as not found.
func ownedFile(ctx context.Context, store Store, fileID int64) (*File, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	f, err := store.Files().Get(ctx, FileFilter{ID: &fileID, UserID: userID})
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return f, nil
}
