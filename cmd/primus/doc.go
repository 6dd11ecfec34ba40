// Primus is a command-line toolkit for prime numbers: primality testing,
// neighboring-prime search, range enumeration, n-th prime lookup, and
// integer factorization.
//
// Queries below the cache threshold are answered from a precomputed bit
// set; larger arguments fall back to trial division that reuses the cache
// as its source of small prime divisors.
//
// Usage:
//
//	primus check 97                  # exit 0 if prime, 1 if not
//	primus next 10                   # smallest prime greater than 10
//	primus previous 10 --inclusive   # largest prime at or below 10
//	primus between 10 30             # all primes in [10, 30]
//	primus nth 5                     # the 5th prime
//	primus factor 360                # prime factorization with multiplicity
//	primus serve --addr :8080        # the same queries over HTTP
//
// See https://github.com/dshills/primus for full documentation.
package main
