package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	FullName     string
	Position     *string
	Compensation Compensation
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompensationKind distinguishes the two pay models: CLT employees receive
// a fixed monthly base, diaristas are paid per day actually worked.
type CompensationKind string

const (
	CompensationSalaried  CompensationKind = "salaried"
	CompensationDailyRate CompensationKind = "daily_rate"
)

var CompensationKindValues = []string{
	string(CompensationSalaried),
	string(CompensationDailyRate),
}

type Compensation struct {
	Kind        CompensationKind
	BaseAmount  decimal.Decimal // monthly base, salaried only
	DailyAmount decimal.Decimal // per worked day, daily_rate only
}
