package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Dhiekson/ToolTrack/models"

	"github.com/google/uuid"
)

// Internal staff return tools the same working day; the cut-off hour is
// when the tool room closes.
const returnHour = 18

// BorrowInput identifies the tool and exactly one borrower. BorrowDate may
// be zero, meaning "now". ExpectedReturnDate is only read for third-party
// loans; employee due dates are policy-derived.
type BorrowInput struct {
	ToolID             string     `json:"toolId"`
	EmployeeID         string     `json:"employeeId,omitempty"`
	ThirdPartyID       string     `json:"thirdPartyId,omitempty"`
	BorrowDate         time.Time  `json:"borrowDate,omitempty"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate,omitempty"`
}

// employeeDueDate encodes the same-day-return policy: 18:00 on the borrow
// day, or 18:00 the next day when borrowed after closing.
func employeeDueDate(borrowedAt time.Time) time.Time {
	due := time.Date(borrowedAt.Year(), borrowedAt.Month(), borrowedAt.Day(),
		returnHour, 0, 0, 0, borrowedAt.Location())
	if borrowedAt.Hour() >= returnHour {
		due = due.AddDate(0, 0, 1)
	}
	return due
}

// Borrow creates an active loan and commits one unit of the tool, as a
// single atomic step. Availability and the new loan can never diverge.
func (e *Engine) Borrow(ctx context.Context, in BorrowInput) (*models.Loan, error) {
	if (in.EmployeeID == "") == (in.ThirdPartyID == "") {
		return nil, &ValidationError{Field: "borrower", Reason: "exactly one of employeeId or thirdPartyId is required"}
	}

	var out *models.Loan
	err := e.repo.Transact(ctx, func(r Repository) error {
		t, err := r.GetTool(ctx, in.ToolID)
		if err != nil {
			return err
		}
		if t == nil {
			return &NotFoundError{Entity: "tool", ID: in.ToolID}
		}
		if t.Available <= 0 {
			return &UnavailableError{ToolID: t.ID}
		}

		borrowedAt := in.BorrowDate
		if borrowedAt.IsZero() {
			borrowedAt = e.clock.Now()
		}

		l := &models.Loan{
			ID:         uuid.NewString(),
			ToolID:     t.ID,
			ToolName:   t.Name,
			BorrowDate: borrowedAt,
			Status:     models.LoanActive,
		}

		if in.EmployeeID != "" {
			emp, err := r.GetEmployee(ctx, in.EmployeeID)
			if err != nil {
				return err
			}
			if emp == nil {
				return &NotFoundError{Entity: "employee", ID: in.EmployeeID}
			}
			due := employeeDueDate(borrowedAt)
			l.Borrower = emp.Name
			l.Role = emp.Role
			l.EmployeeID = &emp.ID
			l.ExpectedReturnDate = &due
		} else {
			tp, err := r.GetThirdParty(ctx, in.ThirdPartyID)
			if err != nil {
				return err
			}
			if tp == nil {
				return &NotFoundError{Entity: "third party", ID: in.ThirdPartyID}
			}
			if in.ExpectedReturnDate == nil {
				return &ValidationError{Field: "expectedReturnDate", Reason: "required for third-party loans"}
			}
			if in.ExpectedReturnDate.Before(borrowedAt) {
				return &ValidationError{Field: "expectedReturnDate", Reason: "must not be before the borrow date"}
			}
			due := *in.ExpectedReturnDate
			l.Borrower = tp.CompanyName
			l.IsThirdParty = true
			l.ThirdPartyID = &tp.ID
			l.ExpectedReturnDate = &due
		}

		t.Available--
		if err := r.SaveTool(ctx, t); err != nil {
			return err
		}
		if err := r.SaveLoan(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Return closes an active loan and releases its unit back to the tool.
// Returning twice is a conflict, not a no-op, so callers learn their view
// was stale.
func (e *Engine) Return(ctx context.Context, loanID string) (*models.Loan, error) {
	var out *models.Loan
	err := e.repo.Transact(ctx, func(r Repository) error {
		l, err := r.GetLoan(ctx, loanID)
		if err != nil {
			return err
		}
		if l == nil {
			return &NotFoundError{Entity: "loan", ID: loanID}
		}
		if l.Status != models.LoanActive {
			return &ConflictError{Reason: "already returned"}
		}

		t, err := r.GetTool(ctx, l.ToolID)
		if err != nil {
			return err
		}
		if t == nil {
			return &NotFoundError{Entity: "tool", ID: l.ToolID}
		}

		now := e.clock.Now()
		l.ReturnDate = &now
		l.Status = models.LoanReturned

		// Clamp: availability must never exceed total owned, even if the
		// quantity was edited down while the loan was out.
		t.Available++
		if t.Available > t.Quantity {
			t.Available = t.Quantity
		}

		if err := r.SaveLoan(ctx, l); err != nil {
			return err
		}
		if err := r.SaveTool(ctx, t); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	l, err := e.repo.GetLoan(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, &NotFoundError{Entity: "loan", ID: id}
	}
	return l, nil
}

type LoanFilter struct {
	Query  string // matches tool name or borrower
	Status string // "", "active" or "returned"
}

// ListLoans returns loans newest first, with the display state derived at
// read time against the engine clock.
func (e *Engine) ListLoans(ctx context.Context, f LoanFilter) ([]LoanRow, error) {
	loans, err := e.repo.ListLoans(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	now := e.clock.Now()

	rows := make([]LoanRow, 0, len(loans))
	for _, l := range loans {
		if q != "" &&
			!strings.Contains(strings.ToLower(l.ToolName), q) &&
			!strings.Contains(strings.ToLower(l.Borrower), q) {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		rows = append(rows, LoanRow{Loan: l, DisplayStatus: DisplayStatus(&l, now)})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].BorrowDate.After(rows[j].BorrowDate)
	})
	return rows, nil
}
