// Package engine owns the loan/inventory lifecycle: tool registration,
// borrow and return with availability bookkeeping, due-date policy, and
// derived loan status. It is the sole mutator of Tool.Available and
// Loan.Status; storage and HTTP stay outside.
package engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Dhiekson/ToolTrack/models"

	"github.com/google/uuid"
)

type Engine struct {
	repo  Repository
	clock Clock
}

func New(repo Repository, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{repo: repo, clock: clock}
}

// Field constraints, matching the registration forms.
const (
	nameMinLen  = 3
	nameMaxLen  = 50
	quantityMin = 1
	quantityMax = 1000
)

func validCategory(c string) bool {
	switch c {
	case models.CategoryElectric, models.CategoryManual, models.CategoryDiagnostic:
		return true
	}
	return false
}

func validateName(field, v string) error {
	// Character counts, not bytes: names are routinely accented.
	n := utf8.RuneCountInString(strings.TrimSpace(v))
	if n < nameMinLen {
		return &ValidationError{Field: field, Reason: "must be at least 3 characters"}
	}
	if n > nameMaxLen {
		return &ValidationError{Field: field, Reason: "must be at most 50 characters"}
	}
	return nil
}

type RegisterToolInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

func (e *Engine) RegisterTool(ctx context.Context, in RegisterToolInput) (*models.Tool, error) {
	if err := validateName("name", in.Name); err != nil {
		return nil, err
	}
	if !validCategory(in.Category) {
		return nil, &ValidationError{Field: "category", Reason: "must be Electric, Manual or Diagnostic"}
	}
	if in.Quantity < quantityMin || in.Quantity > quantityMax {
		return nil, &ValidationError{Field: "quantity", Reason: "must be between 1 and 1000"}
	}

	t := &models.Tool{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Category:  in.Category,
		Quantity:  in.Quantity,
		Available: in.Quantity,
	}
	if err := e.repo.SaveTool(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateToolInput carries optional field changes; nil means "keep".
type UpdateToolInput struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
}

func (e *Engine) UpdateTool(ctx context.Context, id string, in UpdateToolInput) (*models.Tool, error) {
	var out *models.Tool
	err := e.repo.Transact(ctx, func(r Repository) error {
		t, err := r.GetTool(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return &NotFoundError{Entity: "tool", ID: id}
		}
		if in.Name != nil {
			if err := validateName("name", *in.Name); err != nil {
				return err
			}
			t.Name = strings.TrimSpace(*in.Name)
		}
		if in.Category != nil {
			if !validCategory(*in.Category) {
				return &ValidationError{Field: "category", Reason: "must be Electric, Manual or Diagnostic"}
			}
			t.Category = *in.Category
		}
		if in.Quantity != nil {
			if *in.Quantity < quantityMin || *in.Quantity > quantityMax {
				return &ValidationError{Field: "quantity", Reason: "must be between 1 and 1000"}
			}
			// Availability moves by the same delta, clamped so it never
			// goes negative and never exceeds the new total.
			delta := *in.Quantity - t.Quantity
			t.Quantity = *in.Quantity
			t.Available += delta
			if t.Available < 0 {
				t.Available = 0
			}
			if t.Available > t.Quantity {
				t.Available = t.Quantity
			}
		}
		if err := r.SaveTool(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTool removes a tool and its loan history. Blocked while any active
// loan references the tool.
func (e *Engine) DeleteTool(ctx context.Context, id string) error {
	return e.repo.Transact(ctx, func(r Repository) error {
		t, err := r.GetTool(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return &NotFoundError{Entity: "tool", ID: id}
		}
		n, err := r.CountActiveLoansByTool(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return &ConflictError{Reason: "active loans exist"}
		}
		if err := r.DeleteLoansByTool(ctx, id); err != nil {
			return err
		}
		return r.DeleteTool(ctx, id)
	})
}

func (e *Engine) GetTool(ctx context.Context, id string) (*models.Tool, error) {
	t, err := e.repo.GetTool(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &NotFoundError{Entity: "tool", ID: id}
	}
	return t, nil
}

type ToolFilter struct {
	Query    string
	Category string
}

func (e *Engine) ListTools(ctx context.Context, f ToolFilter) ([]models.Tool, error) {
	tools, err := e.repo.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Tool, 0, len(tools))
	for _, t := range tools {
		if q != "" && !strings.Contains(strings.ToLower(t.Name), q) {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
