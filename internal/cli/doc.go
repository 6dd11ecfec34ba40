// Package cli wires together the Cobra command tree for the primus binary.
//
// It defines the root command and all subcommands (check, next, previous,
// between, nth, factor, serve, history, config, version), binds flags,
// reads configuration, runs queries against the primality cache, and
// returns deterministic exit codes: 0 for a found result, 1 for an absent
// one, 2 for usage errors, 3 for runtime errors.
package cli
