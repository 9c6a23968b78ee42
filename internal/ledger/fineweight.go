package ledger

import "github.com/shopspring/decimal"

// DeriveFineWeight computes a job's fine weight ("has") from its raw weight
// and fineness marker. It runs on the write path only; the result is persisted
// at full precision and rounded to three decimals at display time.
//
// Rules:
//   - raw weight absent, unparseable or exactly zero: undefined (ok=false);
//     aggregation treats undefined as zero, display suppresses it.
//   - silver marker: fine weight equals raw weight (silver is tracked 1:1 by
//     weight, not purity-adjusted).
//   - otherwise the marker is a purity fraction (e.g. 0.916): raw × purity;
//     unparseable markers yield undefined.
func DeriveFineWeight(rawWeight, marker string) (decimal.Decimal, bool) {
	raw, ok := ParseDecimalOK(rawWeight)
	if !ok || raw.IsZero() {
		return decimal.Zero, false
	}
	if IsSilverMarker(marker) {
		return raw, true
	}
	purity, ok := ParseDecimalOK(marker)
	if !ok {
		return decimal.Zero, false
	}
	return raw.Mul(purity), true
}
