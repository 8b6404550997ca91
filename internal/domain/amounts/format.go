package amounts

import "github.com/shopspring/decimal"

// Format renders an amount in the platform display format: currency symbol,
// thousands separators, exactly two decimals ("RD$ 15,000.00"). Used only
// when composing system chat messages, never for detection.
func Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := false
	if fixed[0] == '-' {
		neg = true
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]

	var grouped []byte
	for i, d := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := "RD$ " + string(grouped) + fracPart
	if neg {
		out = "RD$ -" + string(grouped) + fracPart
	}
	return out
}
