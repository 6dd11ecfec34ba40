// Package prime implements primality testing, prime enumeration, and
// integer factorization by trial division over a precomputed primality
// cache.
//
// The cache is a fixed-size bit set, built once, marking which integers
// below its size are prime. Queries for arguments inside the cache range
// are a single bit lookup; queries beyond the range fall back to trial
// division, using the cache as the source of small prime divisors so that
// composite divisors below the threshold are never tried.
//
// A Cache is immutable after construction and safe for concurrent readers.
// Use [Default] for the shared process-wide instance, or [New] with the
// [Size] option for a custom cache size.
package prime
