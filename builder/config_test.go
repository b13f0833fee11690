// Internal tests for builderConfig and BuilderOption resolution.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies ID scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbNumb("u")).idFn(12); got != "u12" {
		t.Errorf("WithSymbNumb: expected \"u12\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
}

// TestRNGOptions verifies RNG options and WithSeed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	exp := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(exp)); cfg.rng != exp {
		t.Errorf("WithRand: expected rng %v, got %v", exp, cfg.rng)
	}

	c1, c2 := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	a1, b1 := c1.rng.Int63(), c1.rng.Int63()
	a2, b2 := c2.rng.Int63(), c2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestOptionPanics verifies nil inputs fail fast at option construction.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
