package main

import "testing"

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	if err != nil || steps != 1 {
		t.Fatalf("expected default of 1 step, got %d (%v)", steps, err)
	}

	steps, err = parseSteps([]string{" 3 "})
	if err != nil || steps != 3 {
		t.Fatalf("expected 3 steps, got %d (%v)", steps, err)
	}

	for _, raw := range []string{"0", "-2", "many"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	version, err := parseVersion("1")
	if err != nil || version != 1 {
		t.Fatalf("unexpected version: %d (%v)", version, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}

	target, err := parseTarget("2")
	if err != nil || target != 2 {
		t.Fatalf("unexpected target: %d (%v)", target, err)
	}
	if _, err := parseTarget("-2"); err == nil {
		t.Fatalf("expected error for negative target")
	}
}
