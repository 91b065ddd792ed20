package permissions

import (
	"property-management-backend/db/models"
)

// Action is a CRUD-style operation on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names match the API route groups.
const (
	ResourceLocations   = "locations"
	ResourceApartments  = "apartments"
	ResourceTenants     = "tenants"
	ResourceLeases      = "leases"
	ResourceInvoices    = "invoices"
	ResourcePayments    = "payments"
	ResourceComplaints  = "complaints"
	ResourceMaintenance = "maintenance-requests"
	ResourceUsers       = "users"
	ResourceReports     = "reports"
	ResourceSearch      = "search"
)

var crud = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
var readOnly = []Action{ActionRead}
var readWrite = []Action{ActionCreate, ActionRead, ActionUpdate}

// roleTable is the single source of truth for what each role may do.
// Enforcement happens once, in middleware.RequirePermission.
var roleTable = map[models.Role]map[string][]Action{
	models.AdministratorRole: {
		ResourceLocations:   crud,
		ResourceApartments:  crud,
		ResourceTenants:     crud,
		ResourceLeases:      crud,
		ResourceInvoices:    crud,
		ResourcePayments:    crud,
		ResourceComplaints:  crud,
		ResourceMaintenance: crud,
		ResourceUsers:       crud,
		ResourceReports:     readOnly,
		ResourceSearch:      readOnly,
	},
	models.ManagerRole: {
		ResourceLocations:   readOnly,
		ResourceApartments:  crud,
		ResourceTenants:     crud,
		ResourceLeases:      crud,
		ResourceInvoices:    readWrite,
		ResourcePayments:    readOnly,
		ResourceComplaints:  crud,
		ResourceMaintenance: crud,
		ResourceReports:     readOnly,
		ResourceSearch:      readOnly,
	},
	models.FinanceRole: {
		ResourceTenants:    readOnly,
		ResourceLeases:     readOnly,
		ResourceInvoices:   crud,
		ResourcePayments:   crud,
		ResourceReports:    readOnly,
		ResourceSearch:     readOnly,
		ResourceApartments: readOnly,
		ResourceLocations:  readOnly,
	},
	models.FrontDeskRole: {
		ResourceTenants:     readWrite,
		ResourceLeases:      readOnly,
		ResourceApartments:  readOnly,
		ResourceComplaints:  readWrite,
		ResourceMaintenance: readWrite,
		ResourceSearch:      readOnly,
	},
	models.MaintenanceRole: {
		ResourceApartments:  readOnly,
		ResourceMaintenance: readWrite,
	},
	models.ViewerRole: {
		ResourceLocations:   readOnly,
		ResourceApartments:  readOnly,
		ResourceTenants:     readOnly,
		ResourceLeases:      readOnly,
		ResourceInvoices:    readOnly,
		ResourceComplaints:  readOnly,
		ResourceMaintenance: readOnly,
		ResourceReports:     readOnly,
		ResourceSearch:      readOnly,
	},
}

// roleLevels give a coarse "at least this privileged" ordering.
var roleLevels = map[models.Role]int{
	models.AdministratorRole: 100,
	models.ManagerRole:       80,
	models.FinanceRole:       60,
	models.FrontDeskRole:     40,
	models.MaintenanceRole:   30,
	models.ViewerRole:        10,
}

// locationScoped roles may only touch data in their assigned location.
var locationScoped = map[models.Role]bool{
	models.FrontDeskRole:   true,
	models.MaintenanceRole: true,
}

// HasPermission reports whether the role may perform action on resource.
func HasPermission(role models.Role, resource string, action Action) bool {
	actions, ok := roleTable[role][resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// AllowedActions returns the actions the role may perform on resource.
func AllowedActions(role models.Role, resource string) []Action {
	return roleTable[role][resource]
}

// RoleLevel returns the numeric privilege level for the role, 0 if unknown.
func RoleLevel(role models.Role) int {
	return roleLevels[role]
}

// AtLeast reports whether role carries at least the privilege of minimum.
func AtLeast(role, minimum models.Role) bool {
	return RoleLevel(role) >= RoleLevel(minimum)
}

// IsLocationScoped reports whether the role is confined to its own location.
func IsLocationScoped(role models.Role) bool {
	return locationScoped[role]
}

// CheckLocationAccess reports whether a user may access data for the given
// location. Unscoped roles may access everything; scoped roles only their
// assigned location (a scoped user with no location sees nothing).
func CheckLocationAccess(user *models.User, locationID uint) bool {
	if !IsLocationScoped(user.Role) {
		return true
	}
	return user.LocationID != nil && *user.LocationID == locationID
}
