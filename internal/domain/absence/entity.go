package absence

import (
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// Absence is an approved excuse (abono) that satisfies a required workday
// without punches. At most one absence exists per (employee, date).
type Absence struct {
	ID            string
	CompanyID     string
	EmployeeID    string
	Date          calendar.Date
	AbsenceTypeID string
	CreditedHours float64
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
