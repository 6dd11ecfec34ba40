package prime

import "testing"

// oracleIsPrime is an independent trial-division check used to validate
// the cache and the query paths against a second opinion.
func oracleIsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestNew_SizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		size    uint64
		wantErr bool
	}{
		{"zero", 0, true},
		{"odd", 101, true},
		{"two", 2, true}, // 2 itself would fall outside the cache range
		{"smallest valid", 4, false},
		{"even", 4096, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Size(tt.size))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(Size(%d)) error = nil, want error", tt.size)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(Size(%d)) error = %v", tt.size, err)
			}
			if c.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", c.Size(), tt.size)
			}
		})
	}
}

// TestSmallestCache_ClassifiesTwoConsistently pins the minimum-size rule:
// with size 4 the cache still covers 2, so every operation agrees that 2
// is prime. A smaller even size would push 2 past the cache branch into
// the even fast path and break that agreement.
func TestSmallestCache_ClassifiesTwoConsistently(t *testing.T) {
	c, err := New(Size(4))
	if err != nil {
		t.Fatalf("New(Size(4)) error = %v", err)
	}

	got, ok := c.IsPrime(2)
	if !ok || got != 2 {
		t.Errorf("IsPrime(2) = (%d, %v), want (2, true)", got, ok)
	}
	if next := c.NextPrime(1); next != 2 {
		t.Errorf("NextPrime(1) = %d, want 2", next)
	}
	if between := c.Between(2, 2); len(between) != 1 || between[0] != 2 {
		t.Errorf("Between(2, 2) = %v, want [2]", between)
	}
	if factors := c.Factors(2); len(factors) != 1 || factors[0] != 2 {
		t.Errorf("Factors(2) = %v, want [2]", factors)
	}
}

func TestNew_DefaultSize(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.Size() != DefaultCacheSize {
		t.Errorf("Size() = %d, want %d", c.Size(), DefaultCacheSize)
	}
}

func TestCache_BitsMatchOracle(t *testing.T) {
	c, err := New(Size(4096))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for n := uint64(0); n < 4096; n++ {
		if got, want := c.bit(n), oracleIsPrime(n); got != want {
			t.Fatalf("bit(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("Default() returned distinct instances")
	}
	if a.Size() != DefaultCacheSize {
		t.Errorf("Default().Size() = %d, want %d", a.Size(), DefaultCacheSize)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{15, 3},
		{16, 4},
		{524287, 724},
		{524288, 724},
		{1 << 40, 1 << 20},
		{(1 << 40) - 1, (1 << 20) - 1},
	}

	for _, tt := range tests {
		if got := isqrt(tt.n); got != tt.want {
			t.Errorf("isqrt(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsqrt_Exhaustive(t *testing.T) {
	for n := uint64(0); n < 100000; n++ {
		r := isqrt(n)
		if r*r > n || (r+1)*(r+1) <= n {
			t.Fatalf("isqrt(%d) = %d out of bounds", n, r)
		}
	}
}
