// Package sorter provides utilities for parsing and working with sorting options.
// It supports parsing sorting strings (e.g., "filename:asc,upload_time:desc") into structured
// sorting options and applying them to bun select queries.
package sorter

import (
	"slices"
	"strings"

	"github.com/uptrace/bun"
)

type (
	SortOpts []Opt

	SortDirection string
)

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"

	// expectedPartsCount is the expected number of parts in a sort option (field:direction).
	expectedPartsCount = 2
)

// MakeFromStr parses a sorting string (e.g., "filename:asc,size:desc") into a slice of Opt.
// It filters out invalid or disallowed fields and directions, ensuring only valid options are returned.
// The allowedFields parameter specifies the list of fields that are permitted for sorting.
func MakeFromStr(sortString string, allowedFields ...string) SortOpts {
	if sortString == "" {
		return nil
	}

	var options []Opt
	for pair := range strings.SplitSeq(sortString, ",") {
		parts := strings.Split(pair, ":")
		if len(parts) != expectedPartsCount {
			continue
		}

		key := strings.TrimSpace(parts[0])
		if !slices.Contains(allowedFields, key) {
			continue
		}

		direction := strings.ToLower(strings.TrimSpace(parts[1]))
		if direction != string(Asc) && direction != string(Desc) {
			continue
		}

		options = append(options, Opt{
			F: key,
			D: SortDirection(direction),
		})
	}

	return options
}

// Make creates a slice of Opt from a variadic list of Opt.
func Make(sortOptions ...Opt) SortOpts {
	return sortOptions
}

// OrDefault returns s, or def when s is empty.
func (s SortOpts) OrDefault(def ...Opt) SortOpts {
	if len(s) == 0 {
		return def
	}
	return s
}

// Apply appends ORDER BY clauses for every option to q.
// Field names are quoted as identifiers.
func (s SortOpts) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	for _, o := range s {
		q = q.OrderExpr("? ?", bun.Ident(o.F), bun.Safe(o.D.sql()))
	}
	return q
}

// Opt represents a single sorting option, consisting of a field and a direction.
type Opt struct {
	F string        // F is the field to sort by.
	D SortDirection // D is the sorting direction (asc or desc).
}

// ToSQL converts an Opt into an SQL-compatible clause (e.g., "filename ASC").
func (o Opt) ToSQL() string {
	return o.F + " " + o.D.sql()
}

func (d SortDirection) sql() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}
