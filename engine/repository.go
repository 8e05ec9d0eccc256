package engine

import (
	"context"

	"github.com/Dhiekson/ToolTrack/models"
)

// Repository is the storage boundary of the engine. Implementations are
// passive stores: every lookup returns (nil, nil) when the record does not
// exist, and every Save* is an upsert keyed by id. All business rules live
// in the engine.
type Repository interface {
	// Transact runs fn against a repository view that applies all writes
	// atomically, or not at all if fn returns an error. Implementations
	// must prevent two concurrent transactions from both observing and
	// committing the same tool's availability.
	Transact(ctx context.Context, fn func(Repository) error) error

	GetTool(ctx context.Context, id string) (*models.Tool, error)
	ListTools(ctx context.Context) ([]models.Tool, error)
	SaveTool(ctx context.Context, t *models.Tool) error
	DeleteTool(ctx context.Context, id string) error

	GetLoan(ctx context.Context, id string) (*models.Loan, error)
	ListLoans(ctx context.Context) ([]models.Loan, error)
	SaveLoan(ctx context.Context, l *models.Loan) error
	CountActiveLoansByTool(ctx context.Context, toolID string) (int64, error)
	CountActiveLoansByEmployee(ctx context.Context, employeeID string) (int64, error)
	DeleteLoansByTool(ctx context.Context, toolID string) error

	GetEmployee(ctx context.Context, id string) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	SaveEmployee(ctx context.Context, e *models.Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	GetThirdParty(ctx context.Context, id string) (*models.ThirdParty, error)
	ListThirdParties(ctx context.Context) ([]models.ThirdParty, error)
	SaveThirdParty(ctx context.Context, tp *models.ThirdParty) error
	DeleteThirdParty(ctx context.Context, id string) error
}
