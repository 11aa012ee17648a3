package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // registers the mysql driver
)

// Session is a single administrative database session. Every statement
// executed through it runs on the same underlying connection.
type Session interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Close() error
}

// rootSession pins one *sql.Conn so the hardening statements cannot be
// spread across reconnecting pool connections.
type rootSession struct {
	db   *sql.DB
	conn *sql.Conn
}

func (s *rootSession) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.conn.ExecContext(ctx, query, args...)
}

func (s *rootSession) Close() error {
	if err := s.conn.Close(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// OpenRootSession dials the engine over its unix socket using the
// default passwordless root access that is valid only immediately
// after a fresh installation. On an already-hardened host this fails
// with an authentication error; re-running the provisioner is not
// supported.
func OpenRootSession(ctx context.Context, socket string) (Session, error) {
	db, err := sql.Open("mysql", fmt.Sprintf("root@unix(%s)/", socket))
	if err != nil {
		return nil, fmt.Errorf("failed to open database handle: %w", err)
	}
	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open administrative session on %s: %w", socket, err)
	}

	return &rootSession{db: db, conn: conn}, nil
}
