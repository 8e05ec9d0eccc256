package db

import (
	"context"
	"errors"

	"github.com/Dhiekson/ToolTrack/engine"
	"github.com/Dhiekson/ToolTrack/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo is the Postgres-backed engine.Repository. Inside a Transact the
// tool row is read with SELECT ... FOR UPDATE, so two concurrent borrows
// serialize on the availability counter instead of both committing it.
type Repo struct {
	db   *gorm.DB
	inTx bool
}

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

var _ engine.Repository = (*Repo)(nil)

func (r *Repo) Transact(ctx context.Context, fn func(engine.Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repo{db: tx, inTx: true})
	})
}

// first loads one record, mapping gorm's not-found to (nil, nil) per the
// repository contract.
func first[T any](r *Repo, ctx context.Context, lock bool, query string, args ...any) (*T, error) {
	var v T
	q := r.db.WithContext(ctx)
	if lock && r.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&v, append([]any{query}, args...)...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// Tools

func (r *Repo) GetTool(ctx context.Context, id string) (*models.Tool, error) {
	return first[models.Tool](r, ctx, true, "id = ?", id)
}

func (r *Repo) ListTools(ctx context.Context) ([]models.Tool, error) {
	var tools []models.Tool
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tools).Error
	return tools, err
}

// upsert: ids are assigned by the engine, so a plain Save would issue an
// UPDATE for brand-new records.
func upsert[T any](r *Repo, ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(v).Error
}

func (r *Repo) SaveTool(ctx context.Context, t *models.Tool) error {
	return upsert(r, ctx, t)
}

func (r *Repo) DeleteTool(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Tool{}, "id = ?", id).Error
}

// Loans

func (r *Repo) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	return first[models.Loan](r, ctx, true, "id = ?", id)
}

func (r *Repo) ListLoans(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	err := r.db.WithContext(ctx).Order("borrow_date DESC").Find(&loans).Error
	return loans, err
}

func (r *Repo) SaveLoan(ctx context.Context, l *models.Loan) error {
	return upsert(r, ctx, l)
}

func (r *Repo) CountActiveLoansByTool(ctx context.Context, toolID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Loan{}).
		Where("tool_id = ? AND return_date IS NULL", toolID).
		Count(&n).Error
	return n, err
}

func (r *Repo) CountActiveLoansByEmployee(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Loan{}).
		Where("employee_id = ? AND return_date IS NULL", employeeID).
		Count(&n).Error
	return n, err
}

func (r *Repo) DeleteLoansByTool(ctx context.Context, toolID string) error {
	return r.db.WithContext(ctx).Where("tool_id = ?", toolID).Delete(&models.Loan{}).Error
}

// Employees

func (r *Repo) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	return first[models.Employee](r, ctx, false, "id = ?", id)
}

func (r *Repo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var emps []models.Employee
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&emps).Error
	return emps, err
}

func (r *Repo) SaveEmployee(ctx context.Context, e *models.Employee) error {
	return upsert(r, ctx, e)
}

func (r *Repo) DeleteEmployee(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id).Error
}

// Third parties

func (r *Repo) GetThirdParty(ctx context.Context, id string) (*models.ThirdParty, error) {
	return first[models.ThirdParty](r, ctx, false, "id = ?", id)
}

func (r *Repo) ListThirdParties(ctx context.Context) ([]models.ThirdParty, error) {
	var tps []models.ThirdParty
	err := r.db.WithContext(ctx).Order("company_name, employee_name").Find(&tps).Error
	return tps, err
}

func (r *Repo) SaveThirdParty(ctx context.Context, tp *models.ThirdParty) error {
	return upsert(r, ctx, tp)
}

func (r *Repo) DeleteThirdParty(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ThirdParty{}, "id = ?", id).Error
}
