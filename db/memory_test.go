package db

import (
	"context"
	"errors"
	"testing"

	"github.com/Dhiekson/ToolTrack/engine"
	"github.com/Dhiekson/ToolTrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	tool := &models.Tool{ID: "t1", Name: "Drill", Category: models.CategoryElectric, Quantity: 2, Available: 2}
	require.NoError(t, repo.SaveTool(ctx, tool))

	got, err := repo.GetTool(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Drill", got.Name)

	// Mutating the returned record must not leak into the store.
	got.Available = 0
	again, err := repo.GetTool(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Available)

	missing, err := repo.GetTool(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryRepoTransactRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.SaveTool(ctx, &models.Tool{ID: "t1", Name: "Drill", Quantity: 2, Available: 2}))

	boom := errors.New("boom")
	err := repo.Transact(ctx, func(r engine.Repository) error {
		tool, err := r.GetTool(ctx, "t1")
		require.NoError(t, err)
		tool.Available = 0
		require.NoError(t, r.SaveTool(ctx, tool))
		require.NoError(t, r.SaveLoan(ctx, &models.Loan{ID: "l1", ToolID: "t1", Status: models.LoanActive}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	tool, err := repo.GetTool(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, tool.Available)
	loan, err := repo.GetLoan(ctx, "l1")
	require.NoError(t, err)
	assert.Nil(t, loan)
}

func TestMemoryRepoActiveLoanCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	emp := "e1"

	require.NoError(t, repo.SaveLoan(ctx, &models.Loan{ID: "l1", ToolID: "t1", EmployeeID: &emp, Status: models.LoanActive}))
	require.NoError(t, repo.SaveLoan(ctx, &models.Loan{ID: "l2", ToolID: "t1", Status: models.LoanReturned}))
	require.NoError(t, repo.SaveLoan(ctx, &models.Loan{ID: "l3", ToolID: "t2", Status: models.LoanActive}))

	byTool, err := repo.CountActiveLoansByTool(ctx, "t1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, byTool)

	byEmp, err := repo.CountActiveLoansByEmployee(ctx, emp)
	require.NoError(t, err)
	assert.EqualValues(t, 1, byEmp)

	require.NoError(t, repo.DeleteLoansByTool(ctx, "t1"))
	loans, err := repo.ListLoans(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 1)
}
