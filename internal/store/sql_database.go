package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB is a database handle bound to one SQL dialect. Queries are built with
// the dialect's placeholder format and driver errors are classified with the
// dialect's [ErrorClassificator].
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the backend selected by the DSN scheme
// (see [config.DBDialect]).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch config.DBDialect(cfg.DSN) {
	case dialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case dialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	}

	return nil, fmt.Errorf("%w: unsupported dsn", ErrUnsupportedDialect)
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case dialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify wraps err with [ErrStoreTemporary] when the driver reports a
// condition worth retrying.
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreTemporary, err)
	}
	return err
}
