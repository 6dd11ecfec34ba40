package prime

// Between returns all primes p with from <= p <= to in ascending order.
// The result is empty when from > to or when the interval contains no
// primes.
func (c *Cache) Between(from, to uint64) []uint64 {
	var primes []uint64
	if from > to {
		return primes
	}
	if from <= 2 && to >= 2 {
		primes = append(primes, 2)
		from = 3
	}
	if from%2 == 0 {
		from++
	}
	for n := from; n <= to; n += 2 {
		if c.testPrime(n) {
			primes = append(primes, n)
		}
		if to-n < 2 {
			break
		}
	}
	return primes
}

// Nth returns the n-th prime using one-based indexing: Nth(1) is 2,
// Nth(2) is 3. The result is (0, false) for n < 1. The search is
// unbounded, like NextPrime.
func (c *Cache) Nth(n uint64) (uint64, bool) {
	if n < 1 {
		return 0, false
	}
	if n == 1 {
		return 2, true
	}
	remaining := n
	for cand := uint64(3); ; cand += 2 {
		if !c.testPrime(cand) {
			continue
		}
		remaining--
		if remaining == 1 {
			return cand, true
		}
	}
}
