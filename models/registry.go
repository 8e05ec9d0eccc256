// models/registry.go
package models

import "time"

const EmployeeTable = "tt_employees"
const ThirdPartyTable = "tt_third_parties"

type Employee struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Role      string    `gorm:"size:50;not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ThirdParty is an external borrower: one named person at a company.
type ThirdParty struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName  string    `gorm:"size:100;not null;uniqueIndex:idx_tt_third_party_identity" json:"companyName"`
	EmployeeName string    `gorm:"size:50;not null;uniqueIndex:idx_tt_third_party_identity" json:"employeeName"`
	Role         string    `gorm:"size:50" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Employee) TableName() string   { return EmployeeTable }
func (ThirdParty) TableName() string { return ThirdPartyTable }
