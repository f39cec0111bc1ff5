package nivesh

import (
	"testing"

	"github.com/shopspring/decimal"
)

// newTestStore creates a store rooted in a temp directory, with the admin
// bootstrap seed configured.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(Config{BaseDir: t.TempDir(), AdminSeed: "changeme"})
}

// dec is a helper for tests to create a decimal from a float const.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// eq is a helper to compare decimals by value rather than representation.
func eq(a, b decimal.Decimal) bool { return a.Equal(b) }
