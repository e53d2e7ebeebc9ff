package postgres

import (
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// New opens the optional Postgres pool from DATABASE_URL. The backend holds
// no business data, so a missing URL is not an error: callers get a nil pool
// and the status endpoint reports the database as not configured.
func New() (*sqlx.DB, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		logrus.Info("DATABASE_URL not set, running without database")
		return nil, nil
	}

	db, err := sqlx.Open("postgres", url)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Connectivity is probed per request by the status endpoint, not here:
	// an unreachable database must not keep the backend from starting.
	logrus.Info("Database pool configured")

	return db, nil
}
