package engine

import (
	"time"

	"github.com/Dhiekson/ToolTrack/models"
)

// Display states derived at read time; never stored.
const (
	StatusInUse    = "In use"
	StatusOverdue  = "Overdue"
	StatusReturned = "Returned"
)

// DisplayStatus derives the user-facing state of a loan at time now. Any
// active loan past its expected return date is overdue, employee and
// third-party loans alike. Pure: same loan and same now, same answer.
func DisplayStatus(l *models.Loan, now time.Time) string {
	if l.Status == models.LoanReturned {
		return StatusReturned
	}
	if l.ExpectedReturnDate != nil && l.ExpectedReturnDate.Before(now) {
		return StatusOverdue
	}
	return StatusInUse
}

// LoanRow is a loan together with its derived display state, the shape
// listing and report views consume.
type LoanRow struct {
	models.Loan
	DisplayStatus string `json:"displayStatus"`
}
