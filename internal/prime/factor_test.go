package prime

import "testing"

func TestFactors_Concrete(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{0, nil},
		{1, nil},
		{2, []uint64{2}},
		{3, []uint64{3}},
		{4, []uint64{2, 2}},
		{12, []uint64{2, 2, 3}},
		{97, []uint64{97}},
		{360, []uint64{2, 2, 2, 3, 3, 5}},
		{1024, []uint64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
		{524287, []uint64{524287}},
		{1048574, []uint64{2, 524287}}, // straddles the default cache size
	}

	c := Default()
	for _, tt := range tests {
		got := c.Factors(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("Factors(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Factors(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFactors_ProductAscendingPrime(t *testing.T) {
	c := smallCache(t)
	for n := uint64(2); n <= 5000; n++ {
		factors := c.Factors(n)
		if len(factors) == 0 {
			t.Fatalf("Factors(%d) returned no factors", n)
		}
		product := uint64(1)
		for i, f := range factors {
			if !oracleIsPrime(f) {
				t.Fatalf("Factors(%d) contains composite %d", n, f)
			}
			if i > 0 && f < factors[i-1] {
				t.Fatalf("Factors(%d) = %v, not ascending", n, factors)
			}
			product *= f
		}
		if product != n {
			t.Fatalf("Factors(%d) = %v, product %d", n, factors, product)
		}
	}
}

func TestFactors_PrimeInputReturnsItself(t *testing.T) {
	c := smallCache(t)
	for _, p := range []uint64{2, 3, 61, 67, 97, 524287, 524309} {
		factors := c.Factors(p)
		if len(factors) != 1 || factors[0] != p {
			t.Errorf("Factors(%d) = %v, want [%d]", p, factors, p)
		}
	}
}

func TestNextDivisor(t *testing.T) {
	c := smallCache(t)
	tests := []struct {
		d    uint64
		want uint64
	}{
		{2, 3},
		{3, 5},
		{5, 7},
		{7, 11},  // skips 9
		{13, 17}, // skips 15
		{61, 65}, // 63 is composite and cached; 65 is past the cache, returned untested
	}

	for _, tt := range tests {
		if got := c.nextDivisor(tt.d); got != tt.want {
			t.Errorf("nextDivisor(%d) = %d, want %d", tt.d, got, tt.want)
		}
	}
}
