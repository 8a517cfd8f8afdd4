package payledger

import "github.com/shopspring/decimal"

// reportPrecision is the number of fractional digits in the final report.
const reportPrecision = 4

// Truncate4 cuts d to 4 fractional digits, truncating toward zero. This is
// deliberately not round-half-up: 96.04095 becomes 96.0409.
func Truncate4(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(reportPrecision)
}

// FormatAmount renders d with exactly 4 fractional digits, truncated.
func FormatAmount(d decimal.Decimal) string {
	return Truncate4(d).StringFixed(reportPrecision)
}
