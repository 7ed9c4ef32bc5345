package test_helpers

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed fixtures/*.sql
var fixtureFS embed.FS

// LegacySchemaStatements loads a versioned legacy-schema fixture for the
// given flavor and splits it into individual DDL statements. Fixtures are
// data, not code: new legacy shapes are added as files, not harness logic.
func LegacySchemaStatements(fixture, flavor string) ([]string, error) {
	raw, err := fixtureFS.ReadFile(fmt.Sprintf("fixtures/%s.%s.sql", fixture, flavor))
	if err != nil {
		return nil, err
	}

	var statements []string
	for _, statement := range strings.Split(string(raw), ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}

	return statements, nil
}
