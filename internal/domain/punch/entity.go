package punch

import (
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/pkg/calendar"
)

// Type identifies which of the four daily clock events a punch is.
type Type string

const (
	TypeEntry      Type = "entry"
	TypeBreakStart Type = "break_start"
	TypeBreakEnd   Type = "break_end"
	TypeExit       Type = "exit"
)

var TypeValues = []string{
	string(TypeEntry),
	string(TypeBreakStart),
	string(TypeBreakEnd),
	string(TypeExit),
}

// Punch is a single clock event (ponto). At most one punch exists per
// (employee, date, type); manual edits are upserts on that key.
type Punch struct {
	ID             string
	CompanyID      string
	EmployeeID     string
	Date           calendar.Date
	Type           Type
	PunchedAt      time.Time
	ManuallyEdited bool
	EditedBy       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FieldLabel returns the human-readable field name used in audit notes.
func (t Type) FieldLabel() string {
	switch t {
	case TypeEntry:
		return "entrada"
	case TypeBreakStart:
		return "início do intervalo"
	case TypeBreakEnd:
		return "fim do intervalo"
	case TypeExit:
		return "saída"
	}
	return string(t)
}
