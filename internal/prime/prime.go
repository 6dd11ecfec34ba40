package prime

// testPrime reports whether n is prime. Callers are responsible for input
// validation; this is the dispatch point shared by every query.
//
// The cache branch must run before the even fast path: 2 is the only even
// prime and is classified by its cache bit, so the fast path only ever
// sees even numbers at or above the cache size.
func (c *Cache) testPrime(n uint64) bool {
	if n < c.size {
		return c.bit(n)
	}
	if n%2 == 0 {
		return false
	}
	limit := isqrt(n)
	// Below the cache size only divisors the cache marks prime are tried;
	// dividing by an odd composite would repeat work its prime factors
	// already did.
	d := uint64(3)
	for ; d <= limit && d < c.size; d += 2 {
		if !c.bit(d) {
			continue
		}
		if n%d == 0 {
			return false
		}
	}
	// Past the cache size there is no primality information, so every odd
	// candidate is tried.
	for ; d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsPrime reports whether n is prime, returning n itself on success. The
// result is (0, false) for any n < 2 and for composites.
func (c *Cache) IsPrime(n uint64) (uint64, bool) {
	if n < 2 {
		return 0, false
	}
	if !c.testPrime(n) {
		return 0, false
	}
	return n, true
}

// NextPrime returns the smallest prime strictly greater than n. The search
// is unbounded: it walks odd candidates until one tests prime.
func (c *Cache) NextPrime(n uint64) uint64 {
	if n <= 1 {
		return 2
	}
	cand := n + 1
	if n%2 == 1 {
		cand = n + 2
	}
	for !c.testPrime(cand) {
		cand += 2
	}
	return cand
}

// NextPrimeOrEqual returns n if n is prime, otherwise the smallest prime
// greater than n. It always returns a value of at least 2.
func (c *Cache) NextPrimeOrEqual(n uint64) uint64 {
	if n < 2 {
		return 2
	}
	if c.testPrime(n) {
		return n
	}
	return c.NextPrime(n)
}

// PreviousPrime returns the largest prime strictly less than n. There is
// no prime below 2, so the result is (0, false) for n <= 2.
func (c *Cache) PreviousPrime(n uint64) (uint64, bool) {
	if n <= 2 {
		return 0, false
	}
	if n == 3 {
		return 2, true
	}
	cand := n - 1
	if n%2 == 1 {
		cand = n - 2
	}
	// Terminates: the walk reaches 3 before running out of odd candidates.
	for !c.testPrime(cand) {
		cand -= 2
	}
	return cand, true
}

// PreviousPrimeOrEqual returns n if n is prime, otherwise the largest
// prime less than n. The result is (0, false) for n < 2.
func (c *Cache) PreviousPrimeOrEqual(n uint64) (uint64, bool) {
	if n < 2 {
		return 0, false
	}
	if c.testPrime(n) {
		return n, true
	}
	return c.PreviousPrime(n)
}
