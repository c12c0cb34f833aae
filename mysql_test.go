package sqlbuilder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMySQLQueryBuilder(t *testing.T) {

	t.Run("select with where and limit", func(t *testing.T) {
		sql, err := NewMySQL().
			Select("users", "name", "email").
			Where("age", "18", ">").
			Limit(10, 20).
			SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT name, email FROM users WHERE age > '18' LIMIT 10, 20;`, sql)
	})

	t.Run("where operator defaults to equality", func(t *testing.T) {
		sql, err := NewMySQL().
			Select("users", "id").
			Where("name", "asghar").
			SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users WHERE name = 'asghar';`, sql)
	})

	t.Run("where clauses keep insertion order", func(t *testing.T) {
		sql, err := NewMySQL().
			Select("users", "id").
			Where("age", "18", ">").
			Where("city", "tehran").
			Where("age", "99", "<").
			SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users WHERE age > '18' AND city = 'tehran' AND age < '99';`, sql)
	})

	t.Run("empty field list is kept verbatim", func(t *testing.T) {
		sql, err := NewMySQL().Select("t").SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT  FROM t;`, sql)
	})

	t.Run("sql is idempotent", func(t *testing.T) {
		q := NewMySQL().Select("users", "id").Where("id", "1").Limit(0, 10)
		first, err := q.SQL()
		assert.NoError(t, err)
		second, err := q.SQL()
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("where before select", func(t *testing.T) {
		q := NewMySQL().Where("id", "1")
		assert.Error(t, q.Err())
		_, err := q.SQL()
		var stateErr *StateError
		assert.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "WHERE", stateErr.Op)
		assert.Equal(t, "empty", stateErr.State)
	})

	t.Run("limit before select", func(t *testing.T) {
		_, err := NewMySQL().Limit(0, 10).SQL()
		var stateErr *StateError
		assert.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "LIMIT", stateErr.Op)
	})

	t.Run("where works on updates", func(t *testing.T) {
		sql, err := NewMySQL().Update("users").Where("id", "1").SQL()
		assert.NoError(t, err)
		assert.Equal(t, `UPDATE users WHERE id = '1';`, sql)
	})

	t.Run("limit rejects updates", func(t *testing.T) {
		_, err := NewMySQL().Update("users").Limit(0, 10).SQL()
		var stateErr *StateError
		assert.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "LIMIT", stateErr.Op)
		assert.Equal(t, "update", stateErr.State)
	})

	t.Run("failed step leaves prior state unchanged", func(t *testing.T) {
		q := NewMySQL()
		q.Update("users").Where("id", "1")
		q.Limit(0, 10)
		assert.Error(t, q.Err())
		assert.Equal(t, "", q.state.limit)
		assert.Equal(t, []string{`id = '1'`}, q.state.wheres)
	})

	t.Run("first violation wins", func(t *testing.T) {
		q := NewMySQL()
		q.Limit(0, 10)
		q.Where("id", "1")
		var stateErr *StateError
		assert.True(t, errors.As(q.Err(), &stateErr))
		assert.Equal(t, "LIMIT", stateErr.Op)
	})

	t.Run("fresh select resets earlier misuse", func(t *testing.T) {
		q := NewMySQL()
		q.Limit(1, 2)
		assert.Error(t, q.Err())
		sql, err := q.Select("users", "id").SQL()
		assert.NoError(t, err)
		assert.Equal(t, `SELECT id FROM users;`, sql)
	})

	t.Run("sql on an empty builder", func(t *testing.T) {
		_, err := NewMySQL().SQL()
		var stateErr *StateError
		assert.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "SQL", stateErr.Op)
	})
}
