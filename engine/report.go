package engine

import (
	"context"
	"sort"
	"time"

	"github.com/Dhiekson/ToolTrack/models"
)

// Summary is the dashboard view: stock totals, loan counts, and the five
// most recent loans.
type Summary struct {
	TotalUnits     int       `json:"totalUnits"`
	AvailableUnits int       `json:"availableUnits"`
	ActiveLoans    int       `json:"activeLoans"`
	OverdueLoans   int       `json:"overdueLoans"`
	RecentLoans    []LoanRow `json:"recentLoans"`
}

const recentLoanCount = 5

func (e *Engine) DashboardSummary(ctx context.Context) (*Summary, error) {
	tools, err := e.repo.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := e.repo.ListLoans(ctx)
	if err != nil {
		return nil, err
	}

	s := &Summary{RecentLoans: []LoanRow{}}
	for _, t := range tools {
		s.TotalUnits += t.Quantity
		s.AvailableUnits += t.Available
	}

	now := e.clock.Now()
	rows := make([]LoanRow, 0, len(loans))
	for _, l := range loans {
		st := DisplayStatus(&l, now)
		if l.Status == models.LoanActive {
			s.ActiveLoans++
		}
		if st == StatusOverdue {
			s.OverdueLoans++
		}
		rows = append(rows, LoanRow{Loan: l, DisplayStatus: st})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].BorrowDate.After(rows[j].BorrowDate)
	})
	if len(rows) > recentLoanCount {
		rows = rows[:recentLoanCount]
	}
	s.RecentLoans = rows
	return s, nil
}

// ReportFilter narrows the loan report by stored status and borrow-date
// range. Nil bounds are open-ended.
type ReportFilter struct {
	Status string // "", "active" or "returned"
	From   *time.Time
	To     *time.Time
}

// LoanReport returns the rows a print or PDF formatter consumes: filtered
// loans, newest first, each with its derived display state.
func (e *Engine) LoanReport(ctx context.Context, f ReportFilter) ([]LoanRow, error) {
	loans, err := e.repo.ListLoans(ctx)
	if err != nil {
		return nil, err
	}
	now := e.clock.Now()

	rows := make([]LoanRow, 0, len(loans))
	for _, l := range loans {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.From != nil && l.BorrowDate.Before(*f.From) {
			continue
		}
		if f.To != nil && l.BorrowDate.After(*f.To) {
			continue
		}
		rows = append(rows, LoanRow{Loan: l, DisplayStatus: DisplayStatus(&l, now)})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].BorrowDate.After(rows[j].BorrowDate)
	})
	return rows, nil
}
