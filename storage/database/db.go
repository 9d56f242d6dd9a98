package database

import (
	"embed"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/vicsion901-rgb/onlyteaching/core"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open connects to the configured engine and returns an explicitly owned
// handle; callers pass it into the repositories and close it on shutdown.
func Open(conf *core.Config) (*sqlx.DB, error) {
	switch conf.Database.Engine {
	case "postgres":
		sslMode := "require"
		if conf.Database.DisableTLS {
			sslMode = "disable"
		}
		q := make(url.Values)
		q.Set("sslmode", sslMode)
		q.Set("timezone", "utc")

		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(conf.Database.User, conf.Database.Password),
			Host:     conf.DatabaseAddress(),
			Path:     conf.Database.Name,
			RawQuery: q.Encode(),
		}
		return sqlx.Open("postgres", u.String())
	case "sqlite", "":
		dsn := conf.Database.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		return sqlx.Open("sqlite", dsn)
	default:
		return nil, errors.Errorf("unsupported database engine %q", conf.Database.Engine)
	}
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// Migrate applies the embedded migrations.
func Migrate(db *sqlx.DB, engine string) error {
	return MigrationCommand(db, engine, "up")
}

// MigrationCommand runs a single goose command against the embedded migrations.
func MigrationCommand(db *sqlx.DB, engine, command string) error {
	goose.SetBaseFS(migrationsFS)

	dialect := "sqlite3"
	if engine == "postgres" {
		dialect = "postgres"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "setting goose dialect")
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(db.DB, "migrations")
	case "down":
		err = goose.Down(db.DB, "migrations")
	case "status":
		err = goose.Status(db.DB, "migrations")
	default:
		return errors.Errorf("unknown migration command %q", command)
	}
	return errors.Wrap(err, "migrating database")
}
