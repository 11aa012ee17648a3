// Package passgen generates random credentials for service accounts.
//
// Passwords are derived from a cryptographically secure random source and
// restricted to an alphabet that is safe to embed unescaped in shell
// command lines and SQL statements.
package passgen
