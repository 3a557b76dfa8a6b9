package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/dbsmedya/routecycle/internal/config"
	"github.com/dbsmedya/routecycle/internal/record"
	"github.com/dbsmedya/routecycle/internal/sqlutil"
)

// DB streams routing records out of a MySQL table for the scan command.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// NewDB creates a DB source from configuration. Connect must be called
// before streaming.
func NewDB(cfg *config.DatabaseConfig) *DB {
	return &DB{cfg: cfg}
}

// Connect establishes the connection with exponential backoff.
func (d *DB) Connect(ctx context.Context) error {
	var err error

	maxRetries := 3
	backoff := time.Second

	for i := 0; i < maxRetries; i++ {
		var conn *sql.DB
		conn, err = d.open()
		if err == nil {
			if pingErr := conn.PingContext(ctx); pingErr == nil {
				d.conn = conn
				return nil
			} else {
				conn.Close()
				err = pingErr
			}
		}

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff *= 2 // Exponential backoff
			}
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, err)
}

// open creates the database handle and configures the pool.
func (d *DB) open() (*sql.DB, error) {
	conn, err := sql.Open("mysql", BuildDSN(d.cfg))
	if err != nil {
		return nil, err
	}

	if d.cfg.MaxConnections > 0 {
		conn.SetMaxOpenConns(d.cfg.MaxConnections)
	}
	if d.cfg.MaxIdleConnections > 0 {
		conn.SetMaxIdleConns(d.cfg.MaxIdleConnections)
	}
	conn.SetConnMaxLifetime(10 * time.Minute)

	return conn, nil
}

// BuildDSN constructs a MySQL DSN from configuration.
func BuildDSN(cfg *config.DatabaseConfig) string {
	// Format: user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
	)

	if cfg.Database != "" {
		dsn += cfg.Database
	}

	params := "?parseTime=true"
	switch cfg.TLS {
	case "disable":
		params += "&tls=false"
	case "required":
		params += "&tls=true"
	case "preferred", "":
		params += "&tls=preferred"
	}

	return dsn + params
}

// Ping verifies the connection is alive.
func (d *DB) Ping(ctx context.Context) error {
	if d.conn == nil {
		return fmt.Errorf("not connected")
	}
	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close closes the connection.
func (d *DB) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

// SetConn replaces the underlying connection. Used by tests with sqlmock.
func (d *DB) SetConn(conn *sql.DB) {
	d.conn = conn
}

// Stream reads every routing record from the given table and passes it to fn.
// With sorted true, rows arrive ordered by (claim_id, status_code) so the
// streaming consumer's precondition holds. Streaming stops at the first fn
// error, which is returned as-is.
func (d *DB) Stream(ctx context.Context, table string, sorted bool, fn func(record.Edge) error) error {
	quoted, err := sqlutil.QuoteIdentifierSafe(table)
	if err != nil {
		return fmt.Errorf("invalid table name: %w", err)
	}

	query := fmt.Sprintf("SELECT source, destination, claim_id, status_code FROM %s", quoted)
	if sorted {
		query += " ORDER BY claim_id, status_code"
	}

	rows, err := d.conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec record.Edge
		if err := rows.Scan(&rec.From, &rec.To, &rec.Key.ClaimID, &rec.Key.StatusCode); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row iteration failed: %w", err)
	}
	return nil
}
