package response

import (
	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/quote"
	"sncleaning-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	IsBookable          bool        `json:"isBookable"`
	IsOvertime          bool        `json:"isOvertime"`
	FinalPrice          string      `json:"finalPrice"`
	AppliedRuleIDs      []uuid.UUID `json:"appliedRuleIds"`
	RejectionReason     string      `json:"rejectionReason,omitempty"`
	EffectiveHourlyRate string      `json:"effectiveHourlyRate"`
	BasePrice           string      `json:"basePrice"`
	RateOverrideApplied bool        `json:"rateOverrideApplied"`
}

func FromQuote(q *quote.Quote) (*QuoteResponse, error) {
	res := &QuoteResponse{}
	if err := copier.CopyWithOption(res, q, amountOption); err != nil {
		return nil, errs.Wrap(err, "map quote response")
	}
	if res.AppliedRuleIDs == nil {
		res.AppliedRuleIDs = []uuid.UUID{}
	}
	return res, nil
}

type RateResponse struct {
	CustomerID         uuid.UUID  `json:"customerId"`
	EffectiveRate      string     `json:"effectiveRate"`
	OverrideApplied    bool       `json:"overrideApplied"`
	OverrideID         *uuid.UUID `json:"overrideId,omitempty"`
	OverrideAdjustment string     `json:"overrideAdjustment"`
}

func FromResolution(customerID uuid.UUID, r *override.Resolution) *RateResponse {
	return &RateResponse{
		CustomerID:         customerID,
		EffectiveRate:      r.Rate.StringFixed(2),
		OverrideApplied:    r.Applied,
		OverrideID:         r.OverrideID,
		OverrideAdjustment: r.Delta.StringFixed(2),
	}
}
