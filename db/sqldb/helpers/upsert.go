package helpers

import (
	"database/sql"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager/v3"
)

// INSERT ... ON DUPLICATE KEY UPDATE (mysql) or
// INSERT ... ON CONFLICT (...) DO UPDATE (postgres).
func (h *sqlHelper) Upsert(
	logger lager.Logger,
	q Queryable,
	table string,
	keyAttributes,
	updateAttributes SQLAttributes,
) (sql.Result, error) {
	columns := make([]string, 0, len(keyAttributes)+len(updateAttributes))
	keyNames := make([]string, 0, len(keyAttributes))
	updateBindings := make([]string, 0, len(updateAttributes))
	bindingValues := make([]interface{}, 0, len(keyAttributes)+2*len(updateAttributes))

	for column, value := range keyAttributes {
		columns = append(columns, column)
		keyNames = append(keyNames, column)
		bindingValues = append(bindingValues, value)
	}

	nonKeyBindingValues := make([]interface{}, 0, len(updateAttributes))
	for column, value := range updateAttributes {
		columns = append(columns, column)
		updateBindings = append(updateBindings, fmt.Sprintf("%s = ?", column))
		bindingValues = append(bindingValues, value)
		nonKeyBindingValues = append(nonKeyBindingValues, value)
	}

	insertBindings := QuestionMarks(len(columns))

	var query string
	switch h.flavor {
	case Postgres:
		query = fmt.Sprintf(`
				INSERT INTO %s (%s) VALUES (%s)
				ON CONFLICT (%s) DO UPDATE SET %s
				`,
			table,
			strings.Join(columns, ", "),
			insertBindings,
			strings.Join(keyNames, ", "),
			strings.Join(updateBindings, ", "),
		)
		bindingValues = append(bindingValues, nonKeyBindingValues...)
	case MySQL:
		query = fmt.Sprintf(`
				INSERT INTO %s (%s) VALUES (%s)
				ON DUPLICATE KEY UPDATE %s
				`,
			table,
			strings.Join(columns, ", "),
			insertBindings,
			strings.Join(updateBindings, ", "),
		)
		bindingValues = append(bindingValues, nonKeyBindingValues...)
	default:
		panic("database flavor not implemented: " + h.flavor)
	}

	return q.Exec(h.Rebind(query), bindingValues...)
}
