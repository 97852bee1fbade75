package advisory

import (
	"encoding/json"
	"strconv"
)

// balanceFieldCandidates is the ordered list of field names probed for the
// groundwater balance figure. Backend responses have carried the value under
// every one of these names at some point; the first present and numerically
// coercible field wins.
var balanceFieldCandidates = []string{
	"balance",
	"gw_balance",
	"available_water",
	"groundwater_balance",
	"total_balance",
	"water_balance",
	"net_balance",
	"water_required_litres",
	"available_litres",
	"total_water",
}

// BalanceFieldCandidates returns the probe order for the balance figure.
func BalanceFieldCandidates() []string {
	out := make([]string, len(balanceFieldCandidates))
	copy(out, balanceFieldCandidates)
	return out
}

// extractNumeric probes the payload for the first candidate field holding a
// numerically coercible value. It returns nil when none matches; absence is
// not an error.
func extractNumeric(data map[string]any, candidates []string) *float64 {
	for _, name := range candidates {
		raw, ok := data[name]
		if !ok {
			continue
		}
		if v, ok := coerceFloat(raw); ok {
			return &v
		}
	}
	return nil
}

// coerceFloat converts a decoded JSON value to a float64 where possible.
func coerceFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
