package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

// statement accumulates SQL text and its bound arguments. Every bound value
// gets the next $n placeholder, which both lib/pq and modernc sqlite accept.
type statement struct {
	sql  strings.Builder
	args []any
}

func (s *statement) text(parts ...string) {
	for _, p := range parts {
		s.sql.WriteString(p)
	}
}

func (s *statement) bind(value any) {
	s.args = append(s.args, value)
	s.sql.WriteString("$")
	s.sql.WriteString(strconv.Itoa(len(s.args)))
}

func (s *statement) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			s.text(" WHERE ")
		} else {
			s.text(" AND ")
		}
		c.write(s)
	}
}

func (s *statement) result() (string, []any, error) {
	return s.sql.String(), s.args, nil
}

// Condition is one predicate of a WHERE clause; predicates are ANDed.
type Condition interface {
	write(s *statement)
}

type equals struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return equals{column: column, value: value}
}

func (c equals) write(s *statement) {
	s.text(c.column, " = ")
	s.bind(c.value)
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Join adds an inner join; clause is "<table> <alias> ON <predicate>".
func (b *SelectBuilder) Join(clause string) *SelectBuilder {
	return b.join("JOIN", clause)
}

func (b *SelectBuilder) LeftJoin(clause string) *SelectBuilder {
	return b.join("LEFT JOIN", clause)
}

func (b *SelectBuilder) join(kind, clause string) *SelectBuilder {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		b.joins = append(b.joins, "")
		return b
	}
	b.joins = append(b.joins, kind+" "+clause)
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, errors.New("select columns are required")
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("select table is required")
	}

	var s statement
	s.text("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	for _, j := range b.joins {
		if j == "" {
			return "", nil, errors.New("join clause is required")
		}
		s.text(" ", j)
	}
	s.where(b.where)
	if len(b.orderBy) > 0 {
		s.text(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.text(" LIMIT ", strconv.Itoa(b.limit))
	}

	return s.result()
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row; call it once per row for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix is appended verbatim, e.g. "RETURNING id".
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("insert table is required")
	case len(b.columns) == 0:
		return "", nil, errors.New("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, errors.New("insert values are required")
	}

	var s statement
	s.text("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for n, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, errors.New("insert row " + strconv.Itoa(n) + " has " + strconv.Itoa(len(row)) +
				" values, expected " + strconv.Itoa(len(b.columns)))
		}
		if n > 0 {
			s.text(", ")
		}
		s.text("(")
		for i, value := range row {
			if i > 0 {
				s.text(", ")
			}
			s.bind(value)
		}
		s.text(")")
	}
	if b.suffix != "" {
		s.text(" ", b.suffix)
	}

	return s.result()
}

type assignment struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL refuses to build an UPDATE without a WHERE clause.
func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("update table is required")
	case len(b.sets) == 0:
		return "", nil, errors.New("update sets are required")
	case len(b.where) == 0:
		return "", nil, errors.New("update without where clause is not allowed")
	}

	var s statement
	s.text("UPDATE ", b.table, " SET ")
	for i, a := range b.sets {
		if i > 0 {
			s.text(", ")
		}
		s.text(a.column, " = ")
		s.bind(a.value)
	}
	s.where(b.where)

	return s.result()
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL refuses to build a DELETE without a WHERE clause.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("delete table is required")
	case len(b.where) == 0:
		return "", nil, errors.New("delete without where clause is not allowed")
	}

	var s statement
	s.text("DELETE FROM ", b.table)
	s.where(b.where)

	return s.result()
}
