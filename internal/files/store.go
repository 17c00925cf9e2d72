package files

import (
	"context"
	"strings"

	"github.com/uptrace/bun"

	"github.com/rise-and-shine/docview/repogen"
)

// Store gives access to the file metadata tables.
type Store interface {
	Files() repogen.Repo[File, FileFilter]
	ParsedContents() repogen.Repo[ParsedContent, ParsedContentFilter]

	// RunInTx runs fn in a single transaction. The Store passed to fn is bound to it.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type pgStore struct {
	idb    bun.IDB
	schema string
}

// NewPgStore returns a Store backed by PostgreSQL.
func NewPgStore(db bun.IDB, schema string) Store {
	return &pgStore{idb: db, schema: schema}
}

func (s *pgStore) Files() repogen.Repo[File, FileFilter] {
	return repogen.NewPgReadOnlyRepoBuilder[File, FileFilter](s.idb).
		WithSchemaName(s.schema).
		WithNotFoundCode(CodeFileNotFound).
		WithFilterFunc(fileFilter).
		BuildRW()
}

func (s *pgStore) ParsedContents() repogen.Repo[ParsedContent, ParsedContentFilter] {
	return repogen.NewPgReadOnlyRepoBuilder[ParsedContent, ParsedContentFilter](s.idb).
		WithSchemaName(s.schema).
		WithFilterFunc(parsedContentFilter).
		BuildRW()
}

func (s *pgStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.idb.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &pgStore{idb: tx, schema: s.schema})
	})
}

//nolint:gochecknoglobals // read-only replacer
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func fileFilter(q *bun.SelectQuery, f FileFilter) *bun.SelectQuery {
	q = q.Where("f.user_id = ?", f.UserID)

	if f.ID != nil {
		q = q.Where("f.id = ?", *f.ID)
	}
	if f.Search != "" {
		q = q.Where("f.filename ILIKE ?", "%"+likeEscaper.Replace(f.Search)+"%")
	}
	if f.Status != "" {
		q = q.Where("f.status = ?", strings.ToUpper(f.Status))
	}

	q = f.Sort.Apply(q)

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return q
}

func parsedContentFilter(q *bun.SelectQuery, f ParsedContentFilter) *bun.SelectQuery {
	return q.
		Where("pc.file_id = ?", f.FileID).
		Where("pc.user_id = ?", f.UserID)
}
