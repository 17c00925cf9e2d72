package files

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/docview/meta"
	"github.com/rise-and-shine/docview/ucdef"
)

type getFile struct {
	Deps
}

// NewGetFile returns one file record of the caller.
func NewGetFile(deps Deps) ucdef.UserAction[*FileIDRequest, *File] {
	return &getFile{Deps: deps}
}

func (uc *getFile) OperationID() string { return "get-file" }

func (uc *getFile) Execute(ctx context.Context, in *FileIDRequest) (*File, error) {
	f, err := ownedFile(ctx, uc.Store, in.FileID)
	return f, errx.Wrap(err)
}

// DownloadURLResponse carries a presigned URL for the original file.
type DownloadURLResponse struct {
	URL string `json:"url"`
}

type getDownloadURL struct {
	Deps
}

// NewGetDownloadURL issues a presigned GET url for one file of the caller.
func NewGetDownloadURL(deps Deps) ucdef.UserAction[*FileIDRequest, *DownloadURLResponse] {
	return &getDownloadURL{Deps: deps}
}

func (uc *getDownloadURL) OperationID() string { return "get-download-url" }

func (uc *getDownloadURL) Execute(ctx context.Context, in *FileIDRequest) (*DownloadURLResponse, error) {
	f, err := ownedFile(ctx, uc.Store, in.FileID)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	url, err := uc.Blobs.PresignedGetURL(ctx, f.MinioPath, uc.Config.DownloadURLExpiry)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithCode(CodeDownloadURLFailed), errx.WithType(errx.T_Internal))
	}

	return &DownloadURLResponse{URL: url}, nil
}

// DeleteFileResponse confirms a deletion with a translated message.
type DeleteFileResponse struct {
	Msg string `json:"msg"`
}

type deleteFile struct {
	Deps
}

// NewDeleteFile removes a file blob, then its parsed content and the file record
// in one transaction.
func NewDeleteFile(deps Deps) ucdef.UserAction[*FileIDRequest, *DeleteFileResponse] {
	return &deleteFile{Deps: deps}
}

func (uc *deleteFile) OperationID() string { return "delete-file" }

func (uc *deleteFile) Execute(ctx context.Context, in *FileIDRequest) (*DeleteFileResponse, error) {
	f, err := ownedFile(ctx, uc.Store, in.FileID)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	err = uc.Blobs.Delete(ctx, f.MinioPath)
	if err != nil {
		return nil, deleteFailed(err, f)
	}

	err = uc.Store.RunInTx(ctx, func(ctx context.Context, tx Store) error {
		_, err := tx.ParsedContents().DeleteWhere(ctx, ParsedContentFilter{FileID: f.ID, UserID: f.UserID})
		if err != nil {
			return errx.Wrap(err)
		}
		return errx.Wrap(tx.Files().Delete(ctx, f))
	})
	if err != nil {
		return nil, deleteFailed(err, f)
	}

	return &DeleteFileResponse{Msg: meta.TrCtx(ctx, MsgFileDeleted)}, nil
}

func deleteFailed(err error, f *File) error {
	return errx.Wrap(
		err,
		errx.WithCode(CodeFileDeleteFailed),
		errx.WithType(errx.T_Internal),
		errx.WithDetails(errx.D{"file_id": f.ID, "minio_path": f.MinioPath}),
	)
}
