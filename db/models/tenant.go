package models

import (
	"time"

	"property-management-backend/utils"

	"github.com/shopspring/decimal"
)

type CreditCheckStatus string

const (
	CreditCheckPending CreditCheckStatus = "Pending"
	CreditCheckPassed  CreditCheckStatus = "Passed"
	CreditCheckFailed  CreditCheckStatus = "Failed"
)

// Tenant is a person renting (or applying to rent) an apartment. A tenant's
// current location is never stored directly; it is derived through their
// active lease.
type Tenant struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string         `gorm:"not null" json:"first_name"`
	LastName    string         `gorm:"not null" json:"last_name"`
	DateOfBirth utils.DateOnly `gorm:"type:date" json:"date_of_birth"`

	NINumber string `gorm:"column:ni_number;unique;not null" json:"ni_number"`
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `json:"phone"`

	Occupation        string            `json:"occupation"`
	AnnualSalary      decimal.Decimal   `gorm:"type:decimal(12,2)" json:"annual_salary"`
	HasPets           bool              `gorm:"default:false" json:"has_pets"`
	RightToRent       bool              `gorm:"default:false" json:"right_to_rent"`
	CreditCheckStatus CreditCheckStatus `gorm:"type:varchar(20);default:'Pending'" json:"credit_check_status"`

	Leases              []LeaseAgreement     `gorm:"foreignKey:TenantID" json:"leases,omitempty"`
	Invoices            []Invoice            `gorm:"foreignKey:TenantID" json:"invoices,omitempty"`
	Complaints          []Complaint          `gorm:"foreignKey:TenantID" json:"complaints,omitempty"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:TenantID" json:"maintenance_requests,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DisplayName is the "Last, First" form the reporting endpoints use.
func (t *Tenant) DisplayName() string {
	return t.LastName + ", " + t.FirstName
}
