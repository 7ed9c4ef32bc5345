package main

import (
	"flag"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/debugserver"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/posulliv/presto/cmd/resource-group-migrator/config"
	"github.com/posulliv/presto/db/migrations"
	"github.com/posulliv/presto/db/sqldb"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/migration"
)

var configFilePath = flag.String(
	"config",
	"",
	"The path to the JSON configuration file.",
)

func main() {
	flag.Parse()

	cfg, err := config.NewMigratorConfig(*configFilePath)
	if err != nil {
		panic("invalid-config-file: " + err.Error())
	}

	logger, reconfigurableSink := lagerflags.NewFromConfig(cfg.SessionName, cfg.LagerConfig)

	sqlConn, err := helpers.Connect(logger, &helpers.DBParam{
		DriverName:                    cfg.DatabaseDriver,
		DatabaseConnectionString:      cfg.DatabaseConnectionString,
		SQLCACertFile:                 cfg.SQLCACertFile,
		SQLEnableIdentityVerification: cfg.SQLEnableIdentityVerification,
		ConnectionTimeout:             time.Duration(cfg.DatabaseConnectionTimeout),
		ReadTimeout:                   time.Duration(cfg.DatabaseReadTimeout),
		WriteTimeout:                  time.Duration(cfg.DatabaseWriteTimeout),
	})
	if err != nil {
		logger.Fatal("failed-to-open-sql", err)
	}
	defer sqlConn.Close()

	sqlConn.SetMaxOpenConns(cfg.MaxOpenDatabaseConnections)
	sqlConn.SetMaxIdleConns(cfg.MaxIdleDatabaseConnections)

	err = sqlConn.Ping()
	if err != nil {
		logger.Fatal("sql-failed-to-connect", err)
	}

	migratorClock := clock.NewClock()
	sqlDB := sqldb.NewSQLDB(sqlConn, migratorClock, cfg.DatabaseDriver)

	migrationsDone := make(chan struct{})

	migrationManager := migration.NewManager(
		logger,
		sqlDB,
		sqlConn,
		migrations.AllMigrations(),
		migrationsDone,
		migratorClock,
		cfg.DatabaseDriver,
	)

	members := grouper.Members{
		{Name: "migration-manager", Runner: migrationManager},
	}

	if dbgAddr := cfg.DebugServerConfig.DebugAddress; dbgAddr != "" {
		members = append(grouper.Members{
			{Name: "debug-server", Runner: debugserver.Runner(dbgAddr, reconfigurableSink)},
		}, members...)
	}

	group := grouper.NewOrdered(os.Interrupt, members)
	monitor := ifrit.Invoke(sigmon.New(group))

	logger.Info("started")

	// The manager idles once migrations finish; a migrator command should
	// exit instead.
	go func() {
		<-migrationsDone
		monitor.Signal(os.Interrupt)
	}()

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}
