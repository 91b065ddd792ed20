package models

import "time"

type Role string

const (
	AdministratorRole Role = "administrator"
	ManagerRole       Role = "manager"
	FinanceRole       Role = "finance"
	FrontDeskRole     Role = "front_desk"
	MaintenanceRole   Role = "maintenance"
	ViewerRole        Role = "viewer"
)

// User represents staff accounts with role-based access, distinct from
// tenants. A nil LocationID means the account is not scoped to one location.
type User struct {
	ID         uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	LocationID *uint `gorm:"index" json:"location_id"`

	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never in JSON
	Role     Role   `gorm:"type:varchar(30);not null" json:"role"`

	Active      bool       `gorm:"default:true" json:"active"`
	LastLoginAt *time.Time `json:"last_login_at"`

	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
