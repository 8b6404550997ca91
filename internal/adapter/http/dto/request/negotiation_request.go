package request

import "github.com/shopspring/decimal"

// ProposeAmountRequest carries a driver's (first or updated) quotation.
// ExpectedVersion is the negotiation version the caller last observed; a
// freshly opened negotiation is at version 0.
type ProposeAmountRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	ExpectedVersion int64           `json:"expected_version"`
}

// NegotiationActionRequest covers confirm/accept/reject/cancel, which only
// need the observed version.
type NegotiationActionRequest struct {
	ExpectedVersion int64 `json:"expected_version"`
}
