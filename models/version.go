package models

// Version is the migration bookkeeping record. CurrentVersion is the version
// of the last migration that committed; TargetVersion is the version the
// schema is being moved toward. The two differ only while a run is in flight.
type Version struct {
	CurrentVersion int64 `json:"current_version"`
	TargetVersion  int64 `json:"target_version"`
}
