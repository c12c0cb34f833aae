package sqlbuilder

import "fmt"

// PostgresQueryBuilder emits PostgreSQL flavored SQL. It composes the MySQL
// builder and forwards every call to it, only rewriting the LIMIT clause into
// the LIMIT n OFFSET m form PostgreSQL expects.
type PostgresQueryBuilder struct {
	base *MySQLQueryBuilder
}

var _ Builder = (*PostgresQueryBuilder)(nil)

func NewPostgres() *PostgresQueryBuilder {
	return &PostgresQueryBuilder{base: NewMySQL()}
}

func (p *PostgresQueryBuilder) WithLogger(l Logger) Builder {
	p.base.WithLogger(l)
	return p
}

func (p *PostgresQueryBuilder) Select(table string, fields ...string) Builder {
	p.base.Select(table, fields...)
	return p
}

func (p *PostgresQueryBuilder) Update(table string) Builder {
	p.base.Update(table)
	return p
}

func (p *PostgresQueryBuilder) Where(field string, value string, operator ...string) Builder {
	p.base.Where(field, value, operator...)
	return p
}

// Limit lets the base builder run its state check, then overwrites the clause
// it produced with PostgreSQL syntax.
func (p *PostgresQueryBuilder) Limit(start int, offset int) Builder {
	p.base.Limit(start, offset)
	if p.base.err == nil {
		p.base.state.limit = fmt.Sprintf("LIMIT %d OFFSET %d", start, offset)
	}
	return p
}

func (p *PostgresQueryBuilder) SQL() (string, error) {
	return p.base.SQL()
}

func (p *PostgresQueryBuilder) Err() error {
	return p.base.Err()
}
