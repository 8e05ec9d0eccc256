package db

import (
	"context"
	"sync"

	"github.com/Dhiekson/ToolTrack/engine"
	"github.com/Dhiekson/ToolTrack/models"
)

// MemoryRepo is an in-memory engine.Repository for tests and for running
// the server without Postgres. A single mutex makes each Transact an
// indivisible unit; writes inside a failed transaction are rolled back by
// restoring a snapshot of the maps.
type MemoryRepo struct {
	mu sync.Mutex
	s  memState
}

type memState struct {
	tools        map[string]models.Tool
	loans        map[string]models.Loan
	employees    map[string]models.Employee
	thirdParties map[string]models.ThirdParty
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{s: memState{
		tools:        map[string]models.Tool{},
		loans:        map[string]models.Loan{},
		employees:    map[string]models.Employee{},
		thirdParties: map[string]models.ThirdParty{},
	}}
}

var (
	_ engine.Repository = (*MemoryRepo)(nil)
	_ engine.Repository = (*memTx)(nil)
)

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s memState) snapshot() memState {
	return memState{
		tools:        copyMap(s.tools),
		loans:        copyMap(s.loans),
		employees:    copyMap(s.employees),
		thirdParties: copyMap(s.thirdParties),
	}
}

func (m *MemoryRepo) Transact(ctx context.Context, fn func(engine.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.s.snapshot()
	if err := fn(&memTx{s: &m.s}); err != nil {
		m.s = snap
		return err
	}
	return nil
}

// memTx is the view handed to a Transact callback. The caller already
// holds the repo mutex, so it touches state directly; nested Transact
// calls just run inline.
type memTx struct{ s *memState }

func (t *memTx) Transact(ctx context.Context, fn func(engine.Repository) error) error {
	return fn(t)
}

func getRec[V any](m map[string]V, id string) (*V, error) {
	if v, ok := m[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func listRecs[V any](m map[string]V) ([]V, error) {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out, nil
}

func (t *memTx) GetTool(ctx context.Context, id string) (*models.Tool, error) {
	return getRec(t.s.tools, id)
}
func (t *memTx) ListTools(ctx context.Context) ([]models.Tool, error) {
	return listRecs(t.s.tools)
}
func (t *memTx) SaveTool(ctx context.Context, tool *models.Tool) error {
	t.s.tools[tool.ID] = *tool
	return nil
}
func (t *memTx) DeleteTool(ctx context.Context, id string) error {
	delete(t.s.tools, id)
	return nil
}

func (t *memTx) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	return getRec(t.s.loans, id)
}
func (t *memTx) ListLoans(ctx context.Context) ([]models.Loan, error) {
	return listRecs(t.s.loans)
}
func (t *memTx) SaveLoan(ctx context.Context, l *models.Loan) error {
	t.s.loans[l.ID] = *l
	return nil
}

func (t *memTx) CountActiveLoansByTool(ctx context.Context, toolID string) (int64, error) {
	var n int64
	for _, l := range t.s.loans {
		if l.ToolID == toolID && l.Status == models.LoanActive {
			n++
		}
	}
	return n, nil
}

func (t *memTx) CountActiveLoansByEmployee(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	for _, l := range t.s.loans {
		if l.EmployeeID != nil && *l.EmployeeID == employeeID && l.Status == models.LoanActive {
			n++
		}
	}
	return n, nil
}

func (t *memTx) DeleteLoansByTool(ctx context.Context, toolID string) error {
	for id, l := range t.s.loans {
		if l.ToolID == toolID {
			delete(t.s.loans, id)
		}
	}
	return nil
}

func (t *memTx) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	return getRec(t.s.employees, id)
}
func (t *memTx) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return listRecs(t.s.employees)
}
func (t *memTx) SaveEmployee(ctx context.Context, e *models.Employee) error {
	t.s.employees[e.ID] = *e
	return nil
}
func (t *memTx) DeleteEmployee(ctx context.Context, id string) error {
	delete(t.s.employees, id)
	return nil
}

func (t *memTx) GetThirdParty(ctx context.Context, id string) (*models.ThirdParty, error) {
	return getRec(t.s.thirdParties, id)
}
func (t *memTx) ListThirdParties(ctx context.Context) ([]models.ThirdParty, error) {
	return listRecs(t.s.thirdParties)
}
func (t *memTx) SaveThirdParty(ctx context.Context, tp *models.ThirdParty) error {
	t.s.thirdParties[tp.ID] = *tp
	return nil
}
func (t *memTx) DeleteThirdParty(ctx context.Context, id string) error {
	delete(t.s.thirdParties, id)
	return nil
}

// Locked single-call wrappers.

func (m *MemoryRepo) GetTool(ctx context.Context, id string) (*models.Tool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return getRec(m.s.tools, id)
}

func (m *MemoryRepo) ListTools(ctx context.Context) ([]models.Tool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listRecs(m.s.tools)
}

func (m *MemoryRepo) SaveTool(ctx context.Context, t *models.Tool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).SaveTool(ctx, t)
}

func (m *MemoryRepo) DeleteTool(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).DeleteTool(ctx, id)
}

func (m *MemoryRepo) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return getRec(m.s.loans, id)
}

func (m *MemoryRepo) ListLoans(ctx context.Context) ([]models.Loan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listRecs(m.s.loans)
}

func (m *MemoryRepo) SaveLoan(ctx context.Context, l *models.Loan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).SaveLoan(ctx, l)
}

func (m *MemoryRepo) CountActiveLoansByTool(ctx context.Context, toolID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).CountActiveLoansByTool(ctx, toolID)
}

func (m *MemoryRepo) CountActiveLoansByEmployee(ctx context.Context, employeeID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).CountActiveLoansByEmployee(ctx, employeeID)
}

func (m *MemoryRepo) DeleteLoansByTool(ctx context.Context, toolID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).DeleteLoansByTool(ctx, toolID)
}

func (m *MemoryRepo) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return getRec(m.s.employees, id)
}

func (m *MemoryRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listRecs(m.s.employees)
}

func (m *MemoryRepo) SaveEmployee(ctx context.Context, e *models.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).SaveEmployee(ctx, e)
}

func (m *MemoryRepo) DeleteEmployee(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).DeleteEmployee(ctx, id)
}

func (m *MemoryRepo) GetThirdParty(ctx context.Context, id string) (*models.ThirdParty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return getRec(m.s.thirdParties, id)
}

func (m *MemoryRepo) ListThirdParties(ctx context.Context) ([]models.ThirdParty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return listRecs(m.s.thirdParties)
}

func (m *MemoryRepo) SaveThirdParty(ctx context.Context, tp *models.ThirdParty) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).SaveThirdParty(ctx, tp)
}

func (m *MemoryRepo) DeleteThirdParty(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (&memTx{s: &m.s}).DeleteThirdParty(ctx, id)
}
