package advisory

import (
	"encoding/json"
	"testing"
)

func TestExtractNumericFirstCandidateWins(t *testing.T) {
	payload := map[string]any{
		"available_water": 3000.0,
		"gw_balance":      5000.0,
	}
	got := extractNumeric(payload, balanceFieldCandidates)
	if got == nil || *got != 5000 {
		t.Fatalf("expected gw_balance (5000) to win over available_water, got %v", got)
	}
}

func TestExtractNumericSkipsNonNumericCandidates(t *testing.T) {
	payload := map[string]any{
		"balance":    "not a number",
		"gw_balance": json.Number("4500"),
	}
	got := extractNumeric(payload, balanceFieldCandidates)
	if got == nil || *got != 4500 {
		t.Fatalf("expected 4500 from gw_balance, got %v", got)
	}
}

func TestExtractNumericCoercesStrings(t *testing.T) {
	payload := map[string]any{"balance": "5000.5"}
	got := extractNumeric(payload, balanceFieldCandidates)
	if got == nil || *got != 5000.5 {
		t.Fatalf("expected 5000.5 from quoted string, got %v", got)
	}
}

func TestExtractNumericNoCandidatePresent(t *testing.T) {
	payload := map[string]any{"note": "no data", "depth_m": 42.0}
	if got := extractNumeric(payload, balanceFieldCandidates); got != nil {
		t.Fatalf("expected nil for payload without candidates, got %v", *got)
	}
}

func TestCandidateOrderIsStable(t *testing.T) {
	candidates := BalanceFieldCandidates()
	if len(candidates) == 0 || candidates[0] != "balance" {
		t.Fatalf("expected \"balance\" first, got %v", candidates)
	}
	// Mutating the returned slice must not affect the probe order.
	candidates[0] = "mutated"
	if balanceFieldCandidates[0] != "balance" {
		t.Fatal("candidate accessor must return a copy")
	}
}
