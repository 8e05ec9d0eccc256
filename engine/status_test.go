package engine_test

import (
	"testing"
	"time"

	"github.com/Dhiekson/ToolTrack/engine"
	"github.com/Dhiekson/ToolTrack/models"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	testCases := []struct {
		name string
		loan models.Loan
		want string
	}{
		{
			"active before due date",
			models.Loan{Status: models.LoanActive, ExpectedReturnDate: &future},
			engine.StatusInUse,
		},
		{
			"active past due date",
			models.Loan{Status: models.LoanActive, ExpectedReturnDate: &past},
			engine.StatusOverdue,
		},
		{
			// Overdue applies to employee loans too, not only third parties.
			"employee loan past due date",
			models.Loan{Status: models.LoanActive, IsThirdParty: false, ExpectedReturnDate: &past},
			engine.StatusOverdue,
		},
		{
			"active without due date",
			models.Loan{Status: models.LoanActive},
			engine.StatusInUse,
		},
		{
			"returned ignores due date",
			models.Loan{Status: models.LoanReturned, ExpectedReturnDate: &past, ReturnDate: &now},
			engine.StatusReturned,
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.DisplayStatus(&tt.loan, now))
			// Pure: same inputs, same answer.
			assert.Equal(t, tt.want, engine.DisplayStatus(&tt.loan, now))
		})
	}
}

func TestDisplayStatusFlipsWithClock(t *testing.T) {
	due := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	active := models.Loan{Status: models.LoanActive, ExpectedReturnDate: &due}
	returned := models.Loan{Status: models.LoanReturned, ExpectedReturnDate: &due}

	before := due.Add(-time.Minute)
	after := due.Add(time.Minute)

	assert.Equal(t, engine.StatusInUse, engine.DisplayStatus(&active, before))
	assert.Equal(t, engine.StatusOverdue, engine.DisplayStatus(&active, after))

	// Crossing the due date never affects a returned loan.
	assert.Equal(t, engine.StatusReturned, engine.DisplayStatus(&returned, before))
	assert.Equal(t, engine.StatusReturned, engine.DisplayStatus(&returned, after))
}
