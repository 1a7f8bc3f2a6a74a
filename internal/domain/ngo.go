package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NGO is a member organization receiving donations and hosting events.
type NGO struct {
	ID     int64
	Name   string
	City   string
	Budget decimal.Decimal
}

// NGOWithScore is an NGO row annotated with the score computed by the
// CalculateNgoEfficiency database function. The formula is opaque to the
// application; only the result shape is contracted.
type NGOWithScore struct {
	NGO
	EfficiencyScore decimal.Decimal
}

// Redistribution is one fund transfer record produced by the
// RedistributeExcessDonations routine, read-only from this side.
type Redistribution struct {
	FromNgo string
	ToNgo   string
	Amount  decimal.Decimal
	Date    time.Time
}
