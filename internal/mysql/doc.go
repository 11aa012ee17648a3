// Package mysql hardens a freshly installed database engine.
//
// Immediately after installation the engine grants passwordless root
// access over its local unix socket. The hardener uses that window to
// set the root password, remove anonymous accounts and drop the sample
// database, all over one pinned session, because the password change
// itself revokes passwordless access for any later connection.
package mysql
