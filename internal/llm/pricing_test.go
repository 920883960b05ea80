package llm

import "testing"

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gpt-4o-mini"); c == nil || c.InputPerMTok != 0.15 {
		t.Fatalf("unexpected cost %+v", c)
	}
	if c := LookupCost("google/gemini-2.5-flash"); c == nil || c.OutputPerMTok != 2.5 {
		t.Fatalf("vendor prefix not stripped: %+v", c)
	}
	if c := LookupCost("mock"); c != nil {
		t.Fatalf("expected nil for unpriced model, got %+v", c)
	}
}

func TestFormatCost(t *testing.T) {
	if got := FormatCost("gpt-4o-mini", 1_000_000, 1_000_000); got != "$0.7500" {
		t.Fatalf("FormatCost = %q", got)
	}
	if got := FormatCost("mock", 10, 10); got != "-" {
		t.Fatalf("FormatCost = %q", got)
	}
}
