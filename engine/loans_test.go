package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Dhiekson/ToolTrack/engine"
	"github.com/Dhiekson/ToolTrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowAndReturnFlow(t *testing.T) {
	ctx := context.Background()
	e, repo, _ := newEngine(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	tool := mustTool(t, e, "Electric Drill", 3)
	emp := mustEmployee(t, e, "Ana Souza", "Mechanic")

	first, err := e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, EmployeeID: emp.ID})
	require.NoError(t, err)
	second, err := e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, EmployeeID: emp.ID})
	require.NoError(t, err)

	stored, err := repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Available)
	checkAvailability(t, repo, tool.ID)

	returned, err := e.Return(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)

	stored, err = repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Available)
	checkAvailability(t, repo, tool.ID)

	still, err := repo.GetLoan(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanActive, still.Status)
}

func TestBorrowUnavailable(t *testing.T) {
	ctx := context.Background()
	e, repo, _ := newEngine(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	tool := mustTool(t, e, "OBD Scanner", 1)
	emp := mustEmployee(t, e, "Ana Souza", "Mechanic")
	_, err := e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, EmployeeID: emp.ID})
	require.NoError(t, err)

	_, err = e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, EmployeeID: emp.ID})
	var unavailable *engine.UnavailableError
	require.ErrorAs(t, err, &unavailable)

	// No state change: still exactly one loan, availability untouched.
	loans, err := repo.ListLoans(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 1)
	checkAvailability(t, repo, tool.ID)
}

func TestBorrowUnknownTool(t *testing.T) {
	e, _, _ := newEngine(time.Now())
	_, err := e.Borrow(context.Background(), engine.BorrowInput{ToolID: "missing", EmployeeID: "any"})
	var nf *engine.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestBorrowRequiresExactlyOneBorrower(t *testing.T) {
	e, _, _ := newEngine(time.Now())
	ctx := context.Background()

	var ve *engine.ValidationError
	_, err := e.Borrow(ctx, engine.BorrowInput{ToolID: "t1"})
	assert.ErrorAs(t, err, &ve)
	_, err = e.Borrow(ctx, engine.BorrowInput{ToolID: "t1", EmployeeID: "e1", ThirdPartyID: "p1"})
	assert.ErrorAs(t, err, &ve)
}

func TestEmployeeDueDatePolicy(t *testing.T) {
	testCases := []struct {
		name     string
		borrowed time.Time
		wantDue  time.Time
	}{
		{
			"morning, due same day",
			time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		},
		{
			"evening, due next day",
			time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC),
		},
		{
			"at the cut-off, due next day",
			time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 2, 18, 0, 0, 0, time.UTC),
		},
		{
			"just before the cut-off, due same day",
			time.Date(2024, 5, 1, 17, 59, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			e, _, _ := newEngine(tt.borrowed)
			tool := mustTool(t, e, "Electric Drill", 1)
			emp := mustEmployee(t, e, "Ana Souza", "Mechanic")

			loan, err := e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, EmployeeID: emp.ID})
			require.NoError(t, err)
			require.NotNil(t, loan.ExpectedReturnDate)
			assert.True(t, loan.ExpectedReturnDate.Equal(tt.wantDue),
				"due %v, want %v", loan.ExpectedReturnDate, tt.wantDue)
			assert.False(t, loan.IsThirdParty)
			assert.Equal(t, emp.Name, loan.Borrower)
			assert.Equal(t, emp.Role, loan.Role)
		})
	}
}

func TestThirdPartyLoanValidation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("missing due date", func(t *testing.T) {
		e, repo, _ := newEngine(now)
		tool := mustTool(t, e, "Ladder", 1)
		tp := mustThirdParty(t, e, "ABC Construction", "Pedro Santos")

		_, err := e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, ThirdPartyID: tp.ID})
		var ve *engine.ValidationError
		require.ErrorAs(t, err, &ve)
		checkAvailability(t, repo, tool.ID)
	})

	t.Run("due date before borrow date", func(t *testing.T) {
		e, repo, _ := newEngine(now)
		tool := mustTool(t, e, "Ladder", 1)
		tp := mustThirdParty(t, e, "ABC Construction", "Pedro Santos")

		due := now.AddDate(0, 0, -1)
		_, err := e.Borrow(ctx, engine.BorrowInput{
			ToolID: tool.ID, ThirdPartyID: tp.ID, ExpectedReturnDate: &due,
		})
		var ve *engine.ValidationError
		require.ErrorAs(t, err, &ve)

		// No loan and no availability change leaked out.
		loans, err := repo.ListLoans(ctx)
		require.NoError(t, err)
		assert.Empty(t, loans)
		stored, err := repo.GetTool(ctx, tool.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Available)
	})

	t.Run("company name longer than an employee name", func(t *testing.T) {
		e, repo, _ := newEngine(now)
		tool := mustTool(t, e, "Ladder", 1)
		company := strings.Repeat("C", 100)
		tp := mustThirdParty(t, e, company, "Pedro Santos")

		due := now.AddDate(0, 0, 10)
		loan, err := e.Borrow(ctx, engine.BorrowInput{
			ToolID: tool.ID, ThirdPartyID: tp.ID, ExpectedReturnDate: &due,
		})
		require.NoError(t, err)
		assert.Equal(t, company, loan.Borrower)

		stored, err := repo.GetLoan(ctx, loan.ID)
		require.NoError(t, err)
		assert.Equal(t, company, stored.Borrower)
	})

	t.Run("valid", func(t *testing.T) {
		e, _, _ := newEngine(now)
		tool := mustTool(t, e, "Ladder", 1)
		tp := mustThirdParty(t, e, "ABC Construction", "Pedro Santos")

		due := now.AddDate(0, 0, 10)
		loan, err := e.Borrow(ctx, engine.BorrowInput{
			ToolID: tool.ID, ThirdPartyID: tp.ID, ExpectedReturnDate: &due,
		})
		require.NoError(t, err)
		assert.True(t, loan.IsThirdParty)
		assert.Equal(t, "ABC Construction", loan.Borrower)
		assert.Empty(t, loan.Role)
		require.NotNil(t, loan.ExpectedReturnDate)
		assert.True(t, loan.ExpectedReturnDate.Equal(due))
	})
}

func TestReturnTwiceIsConflict(t *testing.T) {
	ctx := context.Background()
	e, repo, _ := newEngine(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	tool := mustTool(t, e, "Electric Drill", 2)
	emp := mustEmployee(t, e, "Ana Souza", "Mechanic")
	loan, err := e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, EmployeeID: emp.ID})
	require.NoError(t, err)

	_, err = e.Return(ctx, loan.ID)
	require.NoError(t, err)
	stored, err := repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Available)

	_, err = e.Return(ctx, loan.ID)
	var conflict *engine.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "already returned", err.Error())

	// Availability not bumped a second time.
	stored, err = repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Available)
}

func TestReturnCapsAvailabilityAtQuantity(t *testing.T) {
	ctx := context.Background()
	e, repo, _ := newEngine(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	tool := mustTool(t, e, "Electric Drill", 2)
	emp := mustEmployee(t, e, "Ana Souza", "Mechanic")
	loan, err := e.Borrow(ctx, engine.BorrowInput{ToolID: tool.ID, EmployeeID: emp.ID})
	require.NoError(t, err)

	// Shrink the stock while the loan is out, then return.
	one := 1
	_, err = e.UpdateTool(ctx, tool.ID, engine.UpdateToolInput{Quantity: &one})
	require.NoError(t, err)

	_, err = e.Return(ctx, loan.ID)
	require.NoError(t, err)

	stored, err := repo.GetTool(ctx, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)
	assert.Equal(t, 1, stored.Available)
}

func TestReturnUnknownLoan(t *testing.T) {
	e, _, _ := newEngine(time.Now())
	_, err := e.Return(context.Background(), "missing")
	var nf *engine.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestListLoansFilters(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e, _, clock := newEngine(now)
	drill := mustTool(t, e, "Electric Drill", 2)
	scanner := mustTool(t, e, "OBD Scanner", 2)
	emp := mustEmployee(t, e, "Ana Souza", "Mechanic")

	first, err := e.Borrow(ctx, engine.BorrowInput{ToolID: drill.ID, EmployeeID: emp.ID})
	require.NoError(t, err)
	clock.t = clock.t.Add(time.Hour)
	_, err = e.Borrow(ctx, engine.BorrowInput{ToolID: scanner.ID, EmployeeID: emp.ID})
	require.NoError(t, err)
	_, err = e.Return(ctx, first.ID)
	require.NoError(t, err)

	all, err := e.ListLoans(ctx, engine.LoanFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, scanner.ID, all[0].ToolID)

	active, err := e.ListLoans(ctx, engine.LoanFilter{Status: models.LoanActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, scanner.ID, active[0].ToolID)

	byName, err := e.ListLoans(ctx, engine.LoanFilter{Query: "drill"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, drill.ID, byName[0].ToolID)

	byBorrower, err := e.ListLoans(ctx, engine.LoanFilter{Query: "ana"})
	require.NoError(t, err)
	assert.Len(t, byBorrower, 2)
}
