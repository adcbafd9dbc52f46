package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Statement is a SQL string with ? placeholders and its bound arguments.
type Statement struct {
	SQL  string
	Args []any
}

// NewStatement creates a Statement, collapsing surrounding whitespace in sql.
func NewStatement(sql string, args ...any) Statement {
	return Statement{
		SQL:  strings.Join(strings.Fields(sql), " "),
		Args: args,
	}
}

// Dialect identifies the placeholder style a store accepts.
type Dialect string

const (
	// DialectQuestion binds positional ? placeholders (MySQL, SQLite, the query service).
	DialectQuestion Dialect = "question"
	// DialectDollar binds numbered $n placeholders (PostgreSQL).
	DialectDollar Dialect = "dollar"
)

// ParseDialect validates a dialect name.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case DialectQuestion, DialectDollar:
		return d, nil
	}
	return "", fmt.Errorf("unknown dialect: %q", s)
}

// Rebind rewrites ? placeholders for the dialect. Question marks inside
// single-quoted literals and double-quoted identifiers are left untouched.
func (d Dialect) Rebind(sql string) string {
	if d != DialectDollar {
		return sql
	}

	var sb strings.Builder
	sb.Grow(len(sql) + 8)

	var quote byte
	param := 1

	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			sb.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			sb.WriteByte(c)
		case c == '?':
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(param))
			param++
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// Bind returns the statement SQL rebound for the dialect.
func (s Statement) Bind(d Dialect) string {
	return d.Rebind(s.SQL)
}
