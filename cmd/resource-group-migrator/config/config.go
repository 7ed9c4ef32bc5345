package config

import (
	"encoding/json"
	"os"
	"time"

	"code.cloudfoundry.org/debugserver"
	"code.cloudfoundry.org/durationjson"
	"code.cloudfoundry.org/lager/v3/lagerflags"
)

type MigratorConfig struct {
	SessionName                   string                `json:"session_name,omitempty"`
	DatabaseDriver                string                `json:"database_driver,omitempty"`
	DatabaseConnectionString      string                `json:"database_connection_string"`
	SQLCACertFile                 string                `json:"sql_ca_cert_file,omitempty"`
	SQLEnableIdentityVerification bool                  `json:"sql_enable_identity_verification,omitempty"`
	MaxOpenDatabaseConnections    int                   `json:"max_open_database_connections,omitempty"`
	MaxIdleDatabaseConnections    int                   `json:"max_idle_database_connections,omitempty"`
	DatabaseConnectionTimeout     durationjson.Duration `json:"database_connection_timeout,omitempty"`
	DatabaseReadTimeout           durationjson.Duration `json:"database_read_timeout,omitempty"`
	DatabaseWriteTimeout          durationjson.Duration `json:"database_write_timeout,omitempty"`
	debugserver.DebugServerConfig
	lagerflags.LagerConfig
}

func DefaultConfig() MigratorConfig {
	return MigratorConfig{
		SessionName:                "resource-group-migrator",
		DatabaseDriver:             "mysql",
		MaxOpenDatabaseConnections: 10,
		MaxIdleDatabaseConnections: 10,
		DatabaseConnectionTimeout:  durationjson.Duration(10 * time.Second),
		DatabaseReadTimeout:        durationjson.Duration(30 * time.Second),
		DatabaseWriteTimeout:       durationjson.Duration(30 * time.Second),
		LagerConfig:                lagerflags.DefaultLagerConfig(),
	}
}

func NewMigratorConfig(configPath string) (MigratorConfig, error) {
	migratorConfig := DefaultConfig()
	configFile, err := os.Open(configPath)
	if err != nil {
		return MigratorConfig{}, err
	}
	defer configFile.Close()

	decoder := json.NewDecoder(configFile)

	err = decoder.Decode(&migratorConfig)
	if err != nil {
		return MigratorConfig{}, err
	}

	return migratorConfig, nil
}
