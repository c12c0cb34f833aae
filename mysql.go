package sqlbuilder

import (
	"fmt"
	"strings"
)

// MySQLQueryBuilder emits MySQL flavored SQL. It is the base implementation:
// PostgresQueryBuilder delegates everything except Limit to it.
type MySQLQueryBuilder struct {
	state  queryState
	err    error
	logger Logger
}

var _ Builder = (*MySQLQueryBuilder)(nil)

func NewMySQL() *MySQLQueryBuilder {
	return &MySQLQueryBuilder{logger: nopLogger{}}
}

func (q *MySQLQueryBuilder) WithLogger(l Logger) Builder {
	if l != nil {
		q.logger = l
	}
	return q
}

func (q *MySQLQueryBuilder) Select(table string, fields ...string) Builder {
	q.state = queryState{
		typ:  queryTypeSelect,
		base: fmt.Sprintf("SELECT %s FROM %s", strings.Join(fields, ", "), table),
	}
	q.err = nil
	q.logger.Debugf("select: %s", q.state.base)
	return q
}

func (q *MySQLQueryBuilder) Update(table string) Builder {
	q.state = queryState{
		typ:  queryTypeUpdate,
		base: "UPDATE " + table,
	}
	q.err = nil
	q.logger.Debugf("update: %s", q.state.base)
	return q
}

func (q *MySQLQueryBuilder) Where(field string, value string, operator ...string) Builder {
	if q.state.typ != queryTypeSelect && q.state.typ != queryTypeUpdate {
		q.fail("WHERE")
		return q
	}
	op := "="
	if len(operator) > 0 {
		op = operator[0]
	}
	cond := fmt.Sprintf("%s %s '%s'", field, op, value)
	q.state.wheres = append(q.state.wheres, cond)
	q.logger.Debugf("where: %s", cond)
	return q
}

func (q *MySQLQueryBuilder) Limit(start int, offset int) Builder {
	if q.state.typ != queryTypeSelect {
		q.fail("LIMIT")
		return q
	}
	q.state.limit = fmt.Sprintf("LIMIT %d, %d", start, offset)
	q.logger.Debugf("limit: %s", q.state.limit)
	return q
}

func (q *MySQLQueryBuilder) SQL() (string, error) {
	if q.err != nil {
		return "", q.err
	}
	if q.state.typ == queryTypeNone {
		return "", &StateError{Op: "SQL", State: q.state.typ.String()}
	}
	sections := []string{q.state.base}
	if len(q.state.wheres) > 0 {
		sections = append(sections, "WHERE "+strings.Join(q.state.wheres, " AND "))
	}
	if q.state.limit != "" {
		sections = append(sections, q.state.limit)
	}
	query := strings.Join(sections, " ") + ";"
	q.logger.Debugf("built: %s", query)
	return query, nil
}

func (q *MySQLQueryBuilder) Err() error {
	return q.err
}

// fail records a contract violation. The first one wins; the violating step
// leaves the query state untouched.
func (q *MySQLQueryBuilder) fail(op string) {
	err := &StateError{Op: op, State: q.state.typ.String()}
	q.logger.Errorf("%s", err)
	if q.err == nil {
		q.err = err
	}
}
