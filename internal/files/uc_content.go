package files

import (
	"context"
	"io"

	"github.com/code19m/errx"
	"github.com/samber/lo"

	"github.com/rise-and-shine/docview/filestore"
	"github.com/rise-and-shine/docview/http/server/forward"
	"github.com/rise-and-shine/docview/ucdef"
)

type streamFile struct {
	Deps

	operationID string
	disposition string
}

// NewGetFileContent streams a file for viewing in the browser.
// Files named *.pdf are always served as application/pdf.
func NewGetFileContent(deps Deps) ucdef.UserAction[*FileIDRequest, *forward.Stream] {
	return &streamFile{Deps: deps, operationID: "get-file-content", disposition: forward.DispositionInline}
}

// NewDownloadFile streams a file as an attachment with its recorded content type.
func NewDownloadFile(deps Deps) ucdef.UserAction[*FileIDRequest, *forward.Stream] {
	return &streamFile{Deps: deps, operationID: "download-file", disposition: forward.DispositionAttachment}
}

func (uc *streamFile) OperationID() string { return uc.operationID }

func (uc *streamFile) Execute(ctx context.Context, in *FileIDRequest) (*forward.Stream, error) {
	f, err := ownedFile(ctx, uc.Store, in.FileID)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	// the body is written after the handler returns, so the read cannot use the request context
	readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.Config.StreamTimeout)

	obj, err := uc.Blobs.Get(readCtx, f.MinioPath)
	if err != nil {
		cancel()
		if errx.IsCodeIn(err, filestore.CodeObjectNotFound) {
			return nil, errx.Wrap(err)
		}
		return nil, errx.Wrap(
			err,
			errx.WithCode(CodeFileReadFailed),
			errx.WithType(errx.T_Internal),
			errx.WithDetails(errx.D{"file_id": f.ID, "minio_path": f.MinioPath}),
		)
	}

	return &forward.Stream{
		Body:        &streamBody{ReadCloser: obj.Content, cancel: cancel},
		Size:        obj.Info.Size,
		ContentType: uc.contentType(f),
		Filename:    f.Filename,
		Disposition: uc.disposition,
	}, nil
}

func (uc *streamFile) contentType(f *File) string {
	recorded := lo.FromPtr(f.ContentType)
	if uc.disposition == forward.DispositionInline {
		return filestore.ResolveContentType(recorded, f.Filename)
	}
	return lo.Ternary(recorded != "", recorded, filestore.ContentTypeOctetStream)
}

// streamBody releases the read context once the response writer closes the body.
type streamBody struct {
	io.ReadCloser

	cancel context.CancelFunc
}

func (b *streamBody) Close() error {
	defer b.cancel()
	return b.ReadCloser.Close()
}
