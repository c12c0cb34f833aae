// Package sqlbuilder builds SQL statements through a chainable, dialect-aware
// API. A Builder accumulates a SELECT (or minimal UPDATE) statement clause by
// clause and materializes it with SQL. Two dialects ship with the package:
// MySQL, which is also the base implementation, and PostgreSQL, which reuses
// the MySQL builder and only changes the LIMIT clause syntax.
//
//	qb := sqlbuilder.NewMySQL()
//	query, err := qb.
//		Select("users", "name", "email").
//		Where("age", "18", ">").
//		Limit(10, 20).
//		SQL()
//	// SELECT name, email FROM users WHERE age > '18' LIMIT 10, 20;
//
// Values passed to Where are embedded verbatim inside single quotes; the
// package does no escaping or parameter binding.
package sqlbuilder

import "fmt"

// Dialect selects the SQL flavor a builder emits.
type Dialect int

const (
	DialectMySQL Dialect = iota
	DialectPostgreSQL
)

// Builder assembles a SQL statement step by step. Every construction method
// returns the builder itself so calls chain. A misordered call records a
// StateError instead of mutating the query; Err and SQL surface it.
//
// A Builder instance holds mutable state and must not be shared between
// goroutines without external synchronization.
type Builder interface {
	// Select starts a fresh SELECT statement, discarding any previous state.
	Select(table string, fields ...string) Builder
	// Update starts a fresh bare UPDATE statement, discarding any previous
	// state. It exists so WHERE clauses can target updates; there is no SET
	// support.
	Update(table string) Builder
	// Where appends a condition. The operator defaults to "=" when omitted.
	// Valid only after Select or Update.
	Where(field string, value string, operator ...string) Builder
	// Limit sets the row window. Valid only after Select.
	Limit(start int, offset int) Builder
	// SQL materializes the accumulated statement, terminated by ";". It reads
	// the state without mutating it, so repeated calls return the same string.
	SQL() (string, error)
	// Err returns the first recorded StateError, or nil.
	Err() error
	// WithLogger makes the builder report construction steps to l.
	WithLogger(l Logger) Builder
}

// New returns a builder for the given dialect.
func New(dialect Dialect) (Builder, error) {
	switch dialect {
	case DialectMySQL:
		return NewMySQL(), nil
	case DialectPostgreSQL:
		return NewPostgres(), nil
	default:
		return nil, fmt.Errorf("dialect should be either DialectMySQL or DialectPostgreSQL")
	}
}

type queryType int

const (
	queryTypeNone queryType = iota
	queryTypeSelect
	queryTypeUpdate
)

func (t queryType) String() string {
	switch t {
	case queryTypeSelect:
		return "select"
	case queryTypeUpdate:
		return "update"
	default:
		return "empty"
	}
}

// queryState is the statement under construction. Each builder owns exactly
// one; Select and Update replace it wholesale.
type queryState struct {
	base   string
	typ    queryType
	wheres []string
	limit  string
}
