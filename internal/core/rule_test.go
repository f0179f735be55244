package core

import "testing"

func TestRegisterIgnoresBadEntries(t *testing.T) {
	before := len(Rules())
	Register("", func() Rule { return newShiftRule() })
	Register("nil-factory", nil)
	if len(Rules()) != before {
		t.Fatalf("registry grew from %d to %d on bad entries", before, len(Rules()))
	}
}

func TestNewRuleLookup(t *testing.T) {
	Register("lookup-probe", func() Rule { return newFallRule() })

	r, ok := NewRule("lookup-probe")
	if !ok {
		t.Fatal("registered rule not found")
	}
	if r.Name() != "fall" {
		t.Fatalf("factory built %q", r.Name())
	}

	if _, ok := NewRule("never-registered"); ok {
		t.Fatal("unknown name should report ok=false")
	}
}
