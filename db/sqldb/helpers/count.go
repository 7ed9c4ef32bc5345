package helpers

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
)

// SELECT COUNT(*) FROM <table> WHERE ...
func (h *sqlHelper) Count(
	logger lager.Logger,
	q Queryable,
	table string,
	wheres string,
	whereBindings ...interface{},
) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s\n", table)

	if len(wheres) > 0 {
		query += "WHERE " + wheres
	}

	var count int64
	err := q.QueryRow(h.Rebind(query), whereBindings...).Scan(&count)
	if err != nil {
		logger.Error("failed-counting-rows", err, lager.Data{"table": table})
		return 0, h.ConvertSQLError(err)
	}

	return count, nil
}
