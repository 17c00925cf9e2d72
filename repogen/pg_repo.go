package repogen

import (
	"context"
	"fmt"

	"github.com/code19m/errx"
	"github.com/uptrace/bun"

	"github.com/rise-and-shine/docview/pg"
)

const codeIncorrectRowsAffection = "INCORRECT_ROWS_AFFECTION"

// PgRepo adds delete operations to PgReadOnlyRepo.
type PgRepo[E any, F any] struct {
	*PgReadOnlyRepo[E, F]
}

func (r *PgRepo[E, F]) Delete(ctx context.Context, entity *E) error {
	q := r.idb.NewDelete().Model(entity).WherePK()
	q = r.applyDeleteModelTableExpr(q)
	result, err := q.Exec(ctx)
	if err != nil {
		return errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	if rowsAffected == 0 {
		return errx.New(
			fmt.Sprintf("no %s found to delete", nameOf(entity)),
			errx.WithCode(codeIncorrectRowsAffection),
			errx.WithDetails(pg.GetPgErrorDetails(err, q)),
		)
	}

	return nil
}

// DeleteWhere deletes rows selected by the filter function's WHERE clause.
// Ordering and paging set by the filter function are ignored.
func (r *PgRepo[E, F]) DeleteWhere(ctx context.Context, filters F) (int64, error) {
	sel := r.idb.NewSelect().Model((*E)(nil)).Column("id")
	sel = r.applyModelTableExpr(sel)
	sel = r.filterFunc(sel, filters).Limit(0).Offset(0)

	q := r.idb.NewDelete().Model((*E)(nil)).Where("id IN (?)", sel)
	q = r.applyDeleteModelTableExpr(q)
	result, err := q.Exec(ctx)
	if err != nil {
		return 0, errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errx.Wrap(err, errx.WithDetails(pg.GetPgErrorDetails(err, q)))
	}

	return rowsAffected, nil
}

func (r *PgRepo[E, F]) applyDeleteModelTableExpr(q *bun.DeleteQuery) *bun.DeleteQuery {
	table := q.GetModel().(bun.TableModel).Table() //nolint:errcheck // table name is always available
	return q.ModelTableExpr("?.? AS ?", bun.Ident(r.schemaName), bun.Ident(table.Name), bun.Ident(table.Alias))
}
