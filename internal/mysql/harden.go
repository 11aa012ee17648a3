package mysql

import (
	"context"
	"fmt"
)

// Harden issues the administrative hardening statements over the given
// session, in order, stopping on the first failure:
//
//  1. set the root password to the generated credential
//  2. delete anonymous accounts
//  3. drop the default test database
//  4. remove residual privilege rows referencing it
//  5. reload the privilege tables
//
// The password change must run in the session that still has
// passwordless access; it alters the authentication requirement for
// every subsequent connection, which is why all statements share one
// session instead of reconnecting between steps.
//
// The password is interpolated directly because the generated
// credential alphabet is alphanumeric only; MySQL does not accept
// placeholders in ALTER USER.
func Harden(ctx context.Context, session Session, rootPassword string) error {
	statements := []struct {
		desc  string
		query string
	}{
		{"set root password", fmt.Sprintf("ALTER USER 'root'@'localhost' IDENTIFIED BY '%s'", rootPassword)},
		{"remove anonymous accounts", "DELETE FROM mysql.user WHERE User = ''"},
		{"drop test database", "DROP DATABASE IF EXISTS test"},
		{"remove test database privileges", "DELETE FROM mysql.db WHERE Db = 'test' OR Db = 'test\\_%'"},
		{"reload privilege tables", "FLUSH PRIVILEGES"},
	}

	for _, st := range statements {
		if _, err := session.ExecContext(ctx, st.query); err != nil {
			return fmt.Errorf("failed to %s: %w", st.desc, err)
		}
	}

	return nil
}
