package filestore

import (
	"context"
	"io"

	"github.com/code19m/errx"
)

// ReadAll reads the whole object at path. A positive maxSize rejects larger objects
// with CodeObjectTooLarge.
func ReadAll(ctx context.Context, store FileStore, path string, maxSize int64) ([]byte, error) {
	f, err := store.Get(ctx, path)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	defer f.Content.Close()

	r := f.Content
	if maxSize > 0 {
		if f.Info.Size > maxSize {
			return nil, tooLarge(store, path, maxSize)
		}
		r = io.NopCloser(io.LimitReader(f.Content, maxSize+1))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errx.Wrap(err, errx.WithDetails(errx.D{"bucket": store.Bucket(), "path": path}))
	}

	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, tooLarge(store, path, maxSize)
	}

	return data, nil
}

func tooLarge(store FileStore, path string, maxSize int64) error {
	return errx.New(
		"object exceeds size limit",
		errx.WithCode(CodeObjectTooLarge),
		errx.WithDetails(errx.D{"bucket": store.Bucket(), "path": path, "max_size": maxSize}),
	)
}
