package request

import (
	"strings"

	"sncleaning-pricing/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OverrideRequest struct {
	CustomerID   uuid.UUID        `json:"customerId" binding:"required"`
	ServiceType  string           `json:"serviceType" binding:"required,max=100"`
	CleaningType *string          `json:"cleaningType,omitempty"`
	OverrideRate *decimal.Decimal `json:"overrideRate" binding:"required"`
}

func (r *OverrideRequest) ToInput() commands.OverrideInput {
	return commands.OverrideInput{
		CustomerID:   r.CustomerID,
		ServiceType:  r.ServiceType,
		CleaningType: r.CleaningType,
		OverrideRate: *r.OverrideRate,
	}
}

type ListOverridesQuery struct {
	CustomerID string `form:"customerId"`
}

func (q *ListOverridesQuery) Customer() (*uuid.UUID, error) {
	raw := strings.TrimSpace(q.CustomerID)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
