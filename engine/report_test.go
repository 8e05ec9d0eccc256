package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/Dhiekson/ToolTrack/engine"
	"github.com/Dhiekson/ToolTrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e, _, clock := newEngine(now)

	drill := mustTool(t, e, "Electric Drill", 3)
	mustTool(t, e, "Screwdriver", 10)
	emp := mustEmployee(t, e, "Ana Souza", "Mechanic")
	tp := mustThirdParty(t, e, "ABC Construction", "Pedro Santos")

	_, err := e.Borrow(ctx, engine.BorrowInput{ToolID: drill.ID, EmployeeID: emp.ID})
	require.NoError(t, err)
	due := now.Add(time.Hour)
	_, err = e.Borrow(ctx, engine.BorrowInput{ToolID: drill.ID, ThirdPartyID: tp.ID, ExpectedReturnDate: &due})
	require.NoError(t, err)

	s, err := e.DashboardSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, s.TotalUnits)
	assert.Equal(t, 11, s.AvailableUnits)
	assert.Equal(t, 2, s.ActiveLoans)
	assert.Equal(t, 0, s.OverdueLoans)
	assert.Len(t, s.RecentLoans, 2)

	// Move past the third-party due date; the employee due (18:00) is
	// still ahead.
	clock.t = now.Add(2 * time.Hour)
	s, err = e.DashboardSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.OverdueLoans)
	assert.Equal(t, 2, s.ActiveLoans)
}

func TestLoanReportFilters(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e, _, clock := newEngine(now)
	drill := mustTool(t, e, "Electric Drill", 3)
	emp := mustEmployee(t, e, "Ana Souza", "Mechanic")

	first, err := e.Borrow(ctx, engine.BorrowInput{ToolID: drill.ID, EmployeeID: emp.ID})
	require.NoError(t, err)
	clock.t = now.AddDate(0, 0, 3)
	_, err = e.Borrow(ctx, engine.BorrowInput{ToolID: drill.ID, EmployeeID: emp.ID})
	require.NoError(t, err)
	_, err = e.Return(ctx, first.ID)
	require.NoError(t, err)

	returned, err := e.LoanReport(ctx, engine.ReportFilter{Status: models.LoanReturned})
	require.NoError(t, err)
	require.Len(t, returned, 1)
	assert.Equal(t, engine.StatusReturned, returned[0].DisplayStatus)

	from := now.AddDate(0, 0, 1)
	inRange, err := e.LoanReport(ctx, engine.ReportFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, models.LoanActive, inRange[0].Status)

	to := now.AddDate(0, 0, 1)
	early, err := e.LoanReport(ctx, engine.ReportFilter{To: &to})
	require.NoError(t, err)
	require.Len(t, early, 1)
	assert.Equal(t, first.ID, early[0].ID)
}
