// models/tool_loan.go
package models

import "time"

const ToolTable = "tt_tools"
const LoanTable = "tt_loans"

// Tool categories, fixed enumeration.
const (
	CategoryElectric   = "Electric"
	CategoryManual     = "Manual"
	CategoryDiagnostic = "Diagnostic"
)

type Tool struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Category string `gorm:"size:20;not null" json:"category"`
	// Quantity is total units owned; Available is units not out on an
	// active loan. 0 <= Available <= Quantity at all times.
	Quantity  int       `gorm:"not null" json:"quantity"`
	Available int       `gorm:"not null" json:"available"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Loan statuses.
const (
	LoanActive   = "active"
	LoanReturned = "returned"
)

type Loan struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	ToolID string `gorm:"type:uuid;index;not null" json:"toolId"`
	// ToolName is a snapshot taken at borrow time so reports survive
	// tool renames and deletions of registry records.
	ToolName string `gorm:"size:50;not null" json:"toolName"`
	// Sized for the longer of the two sources: employee names are
	// capped at 50, company names at 100.
	Borrower string `gorm:"size:100;not null" json:"borrower"`
	Role         string `gorm:"size:50" json:"role"`
	IsThirdParty bool   `gorm:"not null;default:false" json:"isThirdParty"`

	BorrowDate         time.Time  `gorm:"index;not null" json:"borrowDate"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate,omitempty"`
	ReturnDate         *time.Time `gorm:"index" json:"returnDate,omitempty"`

	Status string `gorm:"size:20;not null;default:'active'" json:"status"`

	EmployeeID   *string `gorm:"type:uuid;index" json:"employeeId,omitempty"`
	ThirdPartyID *string `gorm:"type:uuid;index" json:"thirdPartyId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tool) TableName() string { return ToolTable }
func (Loan) TableName() string { return LoanTable }
