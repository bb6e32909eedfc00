package repository

import (
	"fmt"
	"strings"
)

type joinSet uint8

const (
	joinPerformance joinSet = 1 << iota
	joinSocial
	joinProduct
)

type joinClause struct {
	kind joinSet
	sql  string
	// fanOut marks one-to-many joins that can repeat the base row
	fanOut bool
}

type predicate struct {
	clause string
	args   []any
	needs  joinSet
}

// searchQuery compiles a conjunction of predicates into one SELECT, pulling
// in only the joins the predicates ask for.
type searchQuery struct {
	columns string
	from    string
	joins   []joinClause
	preds   []predicate
	groupBy string
	orderBy string
	limit   int
	offset  int
}

func newSearchQuery(columns, from string) *searchQuery {
	return &searchQuery{columns: columns, from: from}
}

func (q *searchQuery) join(kind joinSet, clause string, fanOut bool) *searchQuery {
	q.joins = append(q.joins, joinClause{kind: kind, sql: clause, fanOut: fanOut})
	return q
}

// where adds an AND-ed predicate; "?" marks each positional argument.
func (q *searchQuery) where(clause string, needs joinSet, args ...any) *searchQuery {
	q.preds = append(q.preds, predicate{clause: clause, args: args, needs: needs})
	return q
}

func (q *searchQuery) page(limit, offset int) *searchQuery {
	q.limit, q.offset = limit, offset
	return q
}

func (q *searchQuery) neededJoins() joinSet {
	var needed joinSet
	for _, p := range q.preds {
		needed |= p.needs
	}
	return needed
}

func (q *searchQuery) build() (string, []any) {
	var sb strings.Builder
	args := []any{}
	argPos := 1

	fmt.Fprintf(&sb, "SELECT %s FROM %s", q.columns, q.from)

	needed := q.neededJoins()
	fannedOut := false
	for _, j := range q.joins {
		if needed&j.kind == 0 {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(j.sql)
		fannedOut = fannedOut || j.fanOut
	}

	for i, p := range q.preds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(numberPlaceholders(p.clause, &argPos))
		args = append(args, p.args...)
	}

	if fannedOut && q.groupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(q.groupBy)
	}
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	if q.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT $%d", argPos)
		args = append(args, q.limit)
		argPos++
	}
	fmt.Fprintf(&sb, " OFFSET $%d", argPos)
	args = append(args, q.offset)

	return sb.String(), args
}

func numberPlaceholders(clause string, argPos *int) string {
	var sb strings.Builder
	for _, r := range clause {
		if r == '?' {
			fmt.Fprintf(&sb, "$%d", *argPos)
			*argPos++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// likePattern escapes LIKE wildcards and wraps the term for substring matching.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// updateQuery emits SET only for supplied columns.
type updateQuery struct {
	table string
	sets  []string
	args  []any
}

func newUpdate(table string) *updateQuery {
	return &updateQuery{table: table}
}

func (u *updateQuery) set(column string, value any) *updateQuery {
	u.args = append(u.args, value)
	u.sets = append(u.sets, fmt.Sprintf("%s=$%d", column, len(u.args)))
	return u
}

// touch sets column to the statement timestamp.
func (u *updateQuery) touch(column string) *updateQuery {
	u.sets = append(u.sets, column+"=NOW()")
	return u
}

func (u *updateQuery) empty() bool {
	return len(u.sets) == 0
}

func (u *updateQuery) build(id int, returning string) (string, []any) {
	args := append(append([]any{}, u.args...), id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id=$%d RETURNING %s",
		u.table, strings.Join(u.sets, ", "), len(args), returning,
	)
	return query, args
}
