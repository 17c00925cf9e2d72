package files_test

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/docview/filestore"
	"github.com/rise-and-shine/docview/internal/files"
	"github.com/rise-and-shine/docview/repogen"
)

type fakeFiles struct {
	mu      sync.Mutex
	rows    []files.File
	err     error
	listed  []files.FileFilter
	deleted []int64
}

func (r *fakeFiles) match(f files.FileFilter) []files.File {
	var out []files.File
	for _, row := range r.rows {
		if row.UserID != f.UserID {
			continue
		}
		if f.ID != nil && row.ID != *f.ID {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(row.Filename), strings.ToLower(f.Search)) {
			continue
		}
		if f.Status != "" && row.Status != strings.ToUpper(f.Status) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func (r *fakeFiles) Get(_ context.Context, f files.FileFilter) (*files.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	rows := r.match(f)
	if len(rows) == 0 {
		return nil, errx.New("no File found", errx.WithCode(files.CodeFileNotFound), errx.WithType(errx.T_NotFound))
	}
	return &rows[0], nil
}

func (r *fakeFiles) ListWithCount(_ context.Context, f files.FileFilter) ([]files.File, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listed = append(r.listed, f)
	if r.err != nil {
		return nil, 0, r.err
	}

	rows := r.match(f)
	total := len(rows)
	start := min(f.Offset, total)
	end := min(start+f.Limit, total)
	return rows[start:end], total, nil
}

func (r *fakeFiles) Exists(ctx context.Context, f files.FileFilter) (bool, error) {
	_, err := r.Get(ctx, f)
	return err == nil, nil
}

func (r *fakeFiles) Delete(_ context.Context, e *files.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = slices.DeleteFunc(r.rows, func(f files.File) bool { return f.ID == e.ID })
	r.deleted = append(r.deleted, e.ID)
	return nil
}

func (r *fakeFiles) DeleteWhere(context.Context, files.FileFilter) (int64, error) {
	return 0, errx.New("not supported")
}

type fakeParsed struct {
	mu      sync.Mutex
	rows    []files.ParsedContent
	err     error
	deleted int64
}

func (r *fakeParsed) Get(context.Context, files.ParsedContentFilter) (*files.ParsedContent, error) {
	return nil, errx.New("not supported")
}

func (r *fakeParsed) ListWithCount(context.Context, files.ParsedContentFilter) ([]files.ParsedContent, int, error) {
	return nil, 0, errx.New("not supported")
}

func (r *fakeParsed) Exists(context.Context, files.ParsedContentFilter) (bool, error) {
	return false, errx.New("not supported")
}

func (r *fakeParsed) Delete(context.Context, *files.ParsedContent) error {
	return errx.New("not supported")
}

func (r *fakeParsed) DeleteWhere(_ context.Context, f files.ParsedContentFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return 0, r.err
	}
	before := len(r.rows)
	r.rows = slices.DeleteFunc(r.rows, func(pc files.ParsedContent) bool {
		return pc.FileID == f.FileID && pc.UserID == f.UserID
	})
	n := int64(before - len(r.rows))
	r.deleted += n
	return n, nil
}

type fakeStore struct {
	files  *fakeFiles
	parsed *fakeParsed
}

func newFakeStore(rows ...files.File) *fakeStore {
	return &fakeStore{files: &fakeFiles{rows: rows}, parsed: &fakeParsed{}}
}

func (s *fakeStore) Files() repogen.Repo[files.File, files.FileFilter] { return s.files }

func (s *fakeStore) ParsedContents() repogen.Repo[files.ParsedContent, files.ParsedContentFilter] {
	return s.parsed
}

func (s *fakeStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx files.Store) error) error {
	return fn(ctx, s)
}

// fakeBlobs is an in-memory FileStore shared by every bucket view.
// Object readers fail once the context passed to Get is done.
type fakeBlobs struct {
	bucket  string
	objects map[string]map[string][]byte
	getErr  error
	delErr  error
	mu      *sync.Mutex
	lastCtx *context.Context
}

func newFakeBlobs(bucket string) *fakeBlobs {
	return &fakeBlobs{
		bucket:  bucket,
		objects: map[string]map[string][]byte{},
		mu:      &sync.Mutex{},
		lastCtx: new(context.Context),
	}
}

func (b *fakeBlobs) lastGetContext() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()

	return *b.lastCtx
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func (b *fakeBlobs) put(bucket, path string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.objects[bucket] == nil {
		b.objects[bucket] = map[string][]byte{}
	}
	b.objects[bucket][path] = data
}

func (b *fakeBlobs) has(bucket, path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.objects[bucket][path]
	return ok
}

func (b *fakeBlobs) Bucket() string { return b.bucket }

func (b *fakeBlobs) WithBucket(bucket string) filestore.FileStore {
	c := *b
	c.bucket = bucket
	return &c
}

func (b *fakeBlobs) Get(ctx context.Context, path string) (*filestore.File, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	*b.lastCtx = ctx

	data, ok := b.objects[b.bucket][path]
	if !ok {
		return nil, errx.New(
			"object not found",
			errx.WithCode(filestore.CodeObjectNotFound),
			errx.WithType(errx.T_NotFound),
		)
	}
	return &filestore.File{
		Content: io.NopCloser(ctxReader{ctx: ctx, r: bytes.NewReader(data)}),
		Info:    filestore.FileInfo{Path: path, Size: int64(len(data))},
	}, nil
}

func (b *fakeBlobs) Delete(_ context.Context, path string) error {
	if b.delErr != nil {
		return b.delErr
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.objects[b.bucket], path)
	return nil
}

func (b *fakeBlobs) PresignedGetURL(_ context.Context, path string, expiry time.Duration) (string, error) {
	return "https://blobs.local/" + b.bucket + "/" + path + "?expires=" + expiry.String(), nil
}

type fakeBuckets struct {
	buckets []string
	err     error
}

func (f fakeBuckets) Buckets(context.Context) ([]string, error) {
	return f.buckets, f.err
}
