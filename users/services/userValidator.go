package services

import (
	"regexp"
	"strings"

	"property-management-backend/db/models"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// ValidateUser checks a user create request, returning a field -> message map.
func ValidateUser(user *models.User) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(user.Username) == "" {
		fields["username"] = "Username is required"
	}
	if strings.TrimSpace(user.Email) == "" {
		fields["email"] = "Email is required"
	} else if !emailRegex.MatchString(strings.ToLower(strings.TrimSpace(user.Email))) {
		fields["email"] = "Invalid email format"
	}
	if user.Password == "" {
		fields["password"] = "Password is required"
	} else if msg := ValidatePassword(user.Password); msg != "" {
		fields["password"] = msg
	}

	switch user.Role {
	case models.AdministratorRole, models.ManagerRole, models.FinanceRole,
		models.FrontDeskRole, models.MaintenanceRole, models.ViewerRole:
	default:
		fields["role"] = "Invalid role"
	}

	return fields
}

// ValidatePassword enforces the password policy, returning "" when acceptable.
func ValidatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}

	var uppercase = regexp.MustCompile(`[A-Z]`)
	if !uppercase.MatchString(password) {
		return "Password must contain at least one uppercase letter"
	}

	var lowercase = regexp.MustCompile(`[a-z]`)
	if !lowercase.MatchString(password) {
		return "Password must contain at least one lowercase letter"
	}

	var digit = regexp.MustCompile(`[0-9]`)
	if !digit.MatchString(password) {
		return "Password must contain at least one digit"
	}

	return ""
}
