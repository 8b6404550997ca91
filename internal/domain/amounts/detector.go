// Package amounts detects monetary offers in free-form chat text for the
// negotiation flow. It recognizes Dominican Peso mentions (RD$, $, "pesos",
// and a closed set of natural-language cost phrases) and validates them
// against the platform's negotiation limits.
package amounts

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Negotiation amount limits, inclusive. Anything outside is silently
// discarded: a phone number or an absurd quote in a chat message must not
// be mistaken for an offer.
var (
	MinAmount = decimal.NewFromInt(500)
	MaxAmount = decimal.NewFromInt(500000)
)

// DetectedAmount is the detector's ephemeral output; it is handed to the
// negotiation use case within one processing step and never persisted.
type DetectedAmount struct {
	Amount   decimal.Decimal
	RawMatch string
	Start    int
	End      int
}

// Ordered list of independent matchers. Each captures one numeric literal
// (group 1) with optional thousands separators and up to two decimals.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)RD\$\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)RD\$\s*([0-9]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)\$\s*([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)\$\s*([0-9]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)\s*pesos`),
	regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]{1,2})?)\s*pesos`),
	regexp.MustCompile(`(?i)el\s+costo\s+(?:es|seria|sería|será)\s+(?:de\s+)?(?:RD\$?\s*)?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)(?:serian|serían|seria|sería|son|cuesta|costaria|costaría|vale|valdria|valdría)\s+(?:RD\$?\s*)?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)(?:te\s+)?(?:cobro|cobraria|cobraría)\s+(?:RD\$?\s*)?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)(?:precio|monto|costo|total)(?:\s+(?:es|seria|sería|de))?\s*:?\s*(?:RD\$?\s*)?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`),
}

// truncated reports whether the captured literal at [start, end) is a
// partial match of a longer number, e.g. the "600" inside "600,000" seen by
// a pattern without thousands separators. Such candidates are discarded;
// the separator-aware pattern covers the full literal.
func truncated(message string, start, end int) bool {
	if start > 0 && isDigit(message[start-1]) {
		return true
	}
	if start > 1 && (message[start-1] == ',' || message[start-1] == '.') && isDigit(message[start-2]) {
		return true
	}
	if end < len(message) && isDigit(message[end]) {
		return true
	}
	if end+1 < len(message) && (message[end] == ',' || message[end] == '.') && isDigit(message[end+1]) {
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// IsValidNegotiationAmount reports whether a is inside [MinAmount, MaxAmount].
func IsValidNegotiationAmount(a decimal.Decimal) bool {
	return a.GreaterThanOrEqual(MinAmount) && a.LessThanOrEqual(MaxAmount)
}

// Detect returns the best candidate amount in message, or false when the
// message carries no valid amount. When a message mentions several valid
// figures the highest one wins: drivers routinely quote a low reference
// price before stating their real figure.
func Detect(message string) (DetectedAmount, bool) {
	var best DetectedAmount
	found := false

	for _, pattern := range amountPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(message, -1) {
			if truncated(message, m[2], m[3]) {
				continue
			}
			amount, ok := parseAmount(message[m[2]:m[3]])
			if !ok || !IsValidNegotiationAmount(amount) {
				continue
			}
			if !found || amount.GreaterThan(best.Amount) {
				best = DetectedAmount{
					Amount:   amount,
					RawMatch: message[m[0]:m[1]],
					Start:    m[0],
					End:      m[1],
				}
				found = true
			}
		}
	}

	return best, found
}

// IsAmountMessage reports whether message contains at least one valid offer.
func IsAmountMessage(message string) bool {
	_, ok := Detect(message)
	return ok
}

// DetectAll returns every distinct valid amount in message, highest first.
// Duplicate numeric values are reported once even when the same figure
// appears under different phrasings.
func DetectAll(message string) []DetectedAmount {
	var detected []DetectedAmount
	seen := map[string]struct{}{}

	for _, pattern := range amountPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(message, -1) {
			if truncated(message, m[2], m[3]) {
				continue
			}
			amount, ok := parseAmount(message[m[2]:m[3]])
			if !ok || !IsValidNegotiationAmount(amount) {
				continue
			}
			key := amount.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			detected = append(detected, DetectedAmount{
				Amount:   amount,
				RawMatch: message[m[0]:m[1]],
				Start:    m[0],
				End:      m[1],
			})
		}
	}

	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Amount.GreaterThan(detected[j].Amount)
	})
	return detected
}
