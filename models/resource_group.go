package models

import "database/sql"

// GlobalProperty is a row in resource_groups_global_properties. The name
// column is constrained to a fixed set of property keys by the schema.
type GlobalProperty struct {
	Name  string
	Value sql.NullString
}

// ResourceGroup is a row in resource_groups: one node in the hierarchical
// scheduling structure. Parent is a self-referential foreign key.
type ResourceGroup struct {
	ResourceGroupID      int64
	Name                 string
	SoftMemoryLimit      string
	MaxQueued            int64
	SoftConcurrencyLimit sql.NullInt64
	HardConcurrencyLimit int64
	SchedulingPolicy     sql.NullString
	SchedulingWeight     sql.NullInt64
	JmxExport            sql.NullBool
	SoftCPULimit         sql.NullString
	HardCPULimit         sql.NullString
	Parent               sql.NullInt64
	Environment          sql.NullString
}

// Selector is a row in selectors: a rule matching incoming queries to a
// resource group.
type Selector struct {
	ResourceGroupID          int64
	Priority                 int64
	UserRegex                sql.NullString
	SourceRegex              sql.NullString
	QueryType                sql.NullString
	ClientTags               sql.NullString
	SelectorResourceEstimate sql.NullString
}

// ExactMatchSourceSelector is a row in exact_match_source_selectors: a
// pre-resolved (environment, source, query type) to resource group mapping.
type ExactMatchSourceSelector struct {
	Environment     string
	Source          string
	QueryType       string
	UpdateTime      int64
	ResourceGroupID string
}
