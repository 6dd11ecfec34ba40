// Package history persists executed queries and their results in a local
// SQLite database.
//
// The ledger records what was asked and what came back, not the primality
// cache itself: the cache is rebuilt on every process start. History is
// disabled by default and enabled via configuration or the --record flag.
package history
