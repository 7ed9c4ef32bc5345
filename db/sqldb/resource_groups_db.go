package sqldb

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/models"
)

// Typed row counts for the tables owned by the migration lineage. Tests and
// operational tooling use these instead of duplicating raw count queries.

func (db *SQLDB) GlobalPropertyCount(logger lager.Logger) (int64, error) {
	return db.count(logger, GlobalPropertiesTable)
}

func (db *SQLDB) ResourceGroupCount(logger lager.Logger) (int64, error) {
	return db.count(logger, ResourceGroupsTable)
}

func (db *SQLDB) SelectorCount(logger lager.Logger) (int64, error) {
	return db.count(logger, SelectorsTable)
}

func (db *SQLDB) ExactMatchSourceSelectorCount(logger lager.Logger) (int64, error) {
	return db.count(logger, ExactMatchSourceSelectorsTable)
}

func (db *SQLDB) count(logger lager.Logger, table string) (int64, error) {
	logger = logger.Session("db-count", lager.Data{"table": table})
	logger.Debug("starting")
	defer logger.Debug("complete")

	return db.helper.Count(logger, db.db, table, "")
}

func (db *SQLDB) GlobalProperties(logger lager.Logger) ([]*models.GlobalProperty, error) {
	logger = logger.Session("db-global-properties")
	logger.Debug("starting")
	defer logger.Debug("complete")

	rows, err := db.helper.All(logger, db.db, GlobalPropertiesTable,
		helpers.ColumnList{"name", "value"}, helpers.NoLockRow, "",
	)
	if err != nil {
		logger.Error("failed-fetching-global-properties", err)
		return nil, db.helper.ConvertSQLError(err)
	}
	defer rows.Close()

	var properties []*models.GlobalProperty
	for rows.Next() {
		property := &models.GlobalProperty{}
		err = rows.Scan(&property.Name, &property.Value)
		if err != nil {
			logger.Error("failed-scanning-global-property", err)
			return nil, err
		}
		properties = append(properties, property)
	}

	if err = rows.Err(); err != nil {
		return nil, db.helper.ConvertSQLError(err)
	}

	return properties, nil
}

func (db *SQLDB) ResourceGroups(logger lager.Logger) ([]*models.ResourceGroup, error) {
	logger = logger.Session("db-resource-groups")
	logger.Debug("starting")
	defer logger.Debug("complete")

	rows, err := db.helper.All(logger, db.db, ResourceGroupsTable,
		helpers.ColumnList{
			"resource_group_id", "name", "soft_memory_limit", "max_queued",
			"soft_concurrency_limit", "hard_concurrency_limit", "scheduling_policy",
			"scheduling_weight", "jmx_export", "soft_cpu_limit", "hard_cpu_limit",
			"parent", "environment",
		}, helpers.NoLockRow, "",
	)
	if err != nil {
		logger.Error("failed-fetching-resource-groups", err)
		return nil, db.helper.ConvertSQLError(err)
	}
	defer rows.Close()

	var groups []*models.ResourceGroup
	for rows.Next() {
		group := &models.ResourceGroup{}
		err = rows.Scan(
			&group.ResourceGroupID, &group.Name, &group.SoftMemoryLimit,
			&group.MaxQueued, &group.SoftConcurrencyLimit, &group.HardConcurrencyLimit,
			&group.SchedulingPolicy, &group.SchedulingWeight, &group.JmxExport,
			&group.SoftCPULimit, &group.HardCPULimit, &group.Parent, &group.Environment,
		)
		if err != nil {
			logger.Error("failed-scanning-resource-group", err)
			return nil, err
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, db.helper.ConvertSQLError(err)
	}

	return groups, nil
}

func (db *SQLDB) Selectors(logger lager.Logger) ([]*models.Selector, error) {
	logger = logger.Session("db-selectors")
	logger.Debug("starting")
	defer logger.Debug("complete")

	rows, err := db.helper.All(logger, db.db, SelectorsTable,
		helpers.ColumnList{
			"resource_group_id", "priority", "user_regex", "source_regex",
			"query_type", "client_tags", "selector_resource_estimate",
		}, helpers.NoLockRow, "",
	)
	if err != nil {
		logger.Error("failed-fetching-selectors", err)
		return nil, db.helper.ConvertSQLError(err)
	}
	defer rows.Close()

	var selectors []*models.Selector
	for rows.Next() {
		selector := &models.Selector{}
		err = rows.Scan(
			&selector.ResourceGroupID, &selector.Priority, &selector.UserRegex,
			&selector.SourceRegex, &selector.QueryType, &selector.ClientTags,
			&selector.SelectorResourceEstimate,
		)
		if err != nil {
			logger.Error("failed-scanning-selector", err)
			return nil, err
		}
		selectors = append(selectors, selector)
	}

	if err = rows.Err(); err != nil {
		return nil, db.helper.ConvertSQLError(err)
	}

	return selectors, nil
}

func (db *SQLDB) ExactMatchSourceSelectors(logger lager.Logger) ([]*models.ExactMatchSourceSelector, error) {
	logger = logger.Session("db-exact-match-source-selectors")
	logger.Debug("starting")
	defer logger.Debug("complete")

	rows, err := db.helper.All(logger, db.db, ExactMatchSourceSelectorsTable,
		helpers.ColumnList{
			"environment", "source", "query_type", "update_time", "resource_group_id",
		}, helpers.NoLockRow, "",
	)
	if err != nil {
		logger.Error("failed-fetching-exact-match-source-selectors", err)
		return nil, db.helper.ConvertSQLError(err)
	}
	defer rows.Close()

	var selectors []*models.ExactMatchSourceSelector
	for rows.Next() {
		selector := &models.ExactMatchSourceSelector{}
		err = rows.Scan(
			&selector.Environment, &selector.Source, &selector.QueryType,
			&selector.UpdateTime, &selector.ResourceGroupID,
		)
		if err != nil {
			logger.Error("failed-scanning-exact-match-source-selector", err)
			return nil, err
		}
		selectors = append(selectors, selector)
	}

	if err = rows.Err(); err != nil {
		return nil, db.helper.ConvertSQLError(err)
	}

	return selectors, nil
}
