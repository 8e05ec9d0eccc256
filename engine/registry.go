package engine

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Dhiekson/ToolTrack/models"

	"github.com/google/uuid"
)

type EmployeeInput struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (e *Engine) AddEmployee(ctx context.Context, in EmployeeInput) (*models.Employee, error) {
	if err := validateName("name", in.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Role) == "" {
		return nil, &ValidationError{Field: "role", Reason: "is required"}
	}
	emp := &models.Employee{
		ID:   uuid.NewString(),
		Name: strings.TrimSpace(in.Name),
		Role: strings.TrimSpace(in.Role),
	}
	if err := e.repo.SaveEmployee(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (e *Engine) UpdateEmployee(ctx context.Context, id string, in EmployeeInput) (*models.Employee, error) {
	if err := validateName("name", in.Name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Role) == "" {
		return nil, &ValidationError{Field: "role", Reason: "is required"}
	}
	var out *models.Employee
	err := e.repo.Transact(ctx, func(r Repository) error {
		emp, err := r.GetEmployee(ctx, id)
		if err != nil {
			return err
		}
		if emp == nil {
			return &NotFoundError{Entity: "employee", ID: id}
		}
		emp.Name = strings.TrimSpace(in.Name)
		emp.Role = strings.TrimSpace(in.Role)
		if err := r.SaveEmployee(ctx, emp); err != nil {
			return err
		}
		out = emp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEmployee is blocked while the employee holds an active loan.
func (e *Engine) DeleteEmployee(ctx context.Context, id string) error {
	return e.repo.Transact(ctx, func(r Repository) error {
		emp, err := r.GetEmployee(ctx, id)
		if err != nil {
			return err
		}
		if emp == nil {
			return &NotFoundError{Entity: "employee", ID: id}
		}
		n, err := r.CountActiveLoansByEmployee(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return &ConflictError{Reason: "active loans exist"}
		}
		return r.DeleteEmployee(ctx, id)
	})
}

func (e *Engine) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	emps, err := e.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(emps, func(i, j int) bool { return emps[i].Name < emps[j].Name })
	return emps, nil
}

type ThirdPartyInput struct {
	CompanyName  string `json:"companyName"`
	EmployeeName string `json:"employeeName"`
	Role         string `json:"role"`
}

func validateThirdParty(in ThirdPartyInput) error {
	if strings.TrimSpace(in.CompanyName) == "" {
		return &ValidationError{Field: "companyName", Reason: "is required"}
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.CompanyName)) > 100 {
		return &ValidationError{Field: "companyName", Reason: "must be at most 100 characters"}
	}
	return validateName("employeeName", in.EmployeeName)
}

func (e *Engine) AddThirdParty(ctx context.Context, in ThirdPartyInput) (*models.ThirdParty, error) {
	if err := validateThirdParty(in); err != nil {
		return nil, err
	}
	tp := &models.ThirdParty{
		ID:           uuid.NewString(),
		CompanyName:  strings.TrimSpace(in.CompanyName),
		EmployeeName: strings.TrimSpace(in.EmployeeName),
		Role:         strings.TrimSpace(in.Role),
	}
	if err := e.repo.SaveThirdParty(ctx, tp); err != nil {
		return nil, err
	}
	return tp, nil
}

func (e *Engine) UpdateThirdParty(ctx context.Context, id string, in ThirdPartyInput) (*models.ThirdParty, error) {
	if err := validateThirdParty(in); err != nil {
		return nil, err
	}
	var out *models.ThirdParty
	err := e.repo.Transact(ctx, func(r Repository) error {
		tp, err := r.GetThirdParty(ctx, id)
		if err != nil {
			return err
		}
		if tp == nil {
			return &NotFoundError{Entity: "third party", ID: id}
		}
		tp.CompanyName = strings.TrimSpace(in.CompanyName)
		tp.EmployeeName = strings.TrimSpace(in.EmployeeName)
		tp.Role = strings.TrimSpace(in.Role)
		if err := r.SaveThirdParty(ctx, tp); err != nil {
			return err
		}
		out = tp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteThirdParty does not consult loans: historical loans keep their
// borrower snapshot, and referential integrity for third parties is an
// accepted gap of the current data model.
func (e *Engine) DeleteThirdParty(ctx context.Context, id string) error {
	tp, err := e.repo.GetThirdParty(ctx, id)
	if err != nil {
		return err
	}
	if tp == nil {
		return &NotFoundError{Entity: "third party", ID: id}
	}
	return e.repo.DeleteThirdParty(ctx, id)
}

func (e *Engine) ListThirdParties(ctx context.Context) ([]models.ThirdParty, error) {
	tps, err := e.repo.ListThirdParties(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(tps, func(i, j int) bool {
		if tps[i].CompanyName != tps[j].CompanyName {
			return tps[i].CompanyName < tps[j].CompanyName
		}
		return tps[i].EmployeeName < tps[j].EmployeeName
	})
	return tps, nil
}
