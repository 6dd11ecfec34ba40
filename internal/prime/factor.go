package prime

// Factors returns the prime factorization of n in ascending order with
// multiplicity; the product of the result equals n. A prime n factors as
// itself. The result is nil for n <= 1.
func (c *Cache) Factors(n uint64) []uint64 {
	if n <= 1 {
		return nil
	}
	var factors []uint64
	m := n
	d := uint64(2)
	maxD := isqrt(m)
	for {
		if d > maxD {
			// No divisor remains at or below sqrt(m), so m is prime.
			factors = append(factors, m)
			return factors
		}
		if m%d == 0 {
			factors = append(factors, d)
			m /= d
			maxD = isqrt(m)
			// Same d again: a prime divisor may repeat.
			continue
		}
		d = c.nextDivisor(d)
	}
}

// nextDivisor advances a trial divisor, skipping odd composites for as
// long as the cache covers the candidate. Beyond the cache size every odd
// candidate is returned.
func (c *Cache) nextDivisor(d uint64) uint64 {
	if d == 2 {
		return 3
	}
	for {
		d += 2
		if d >= c.size || c.bit(d) {
			return d
		}
	}
}
