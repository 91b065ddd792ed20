package services

import (
	"regexp"
	"strings"

	"property-management-backend/db/models"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// National insurance numbers: two letters, six digits, one letter.
var niNumberRegex = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{6}[A-Za-z]$`)

// ValidateTenant returns a field -> message map of everything wrong with a
// tenant create request. An empty map means the tenant is acceptable.
func ValidateTenant(tenant *models.Tenant) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(tenant.FirstName) == "" {
		fields["first_name"] = "First name is required"
	}
	if strings.TrimSpace(tenant.LastName) == "" {
		fields["last_name"] = "Last name is required"
	}
	if tenant.DateOfBirth.IsZero() {
		fields["date_of_birth"] = "Date of birth is required"
	}

	email := strings.TrimSpace(strings.ToLower(tenant.Email))
	if email == "" {
		fields["email"] = "Email is required"
	} else if !emailRegex.MatchString(email) {
		fields["email"] = "Invalid email format"
	}

	ni := strings.TrimSpace(tenant.NINumber)
	if ni == "" {
		fields["ni_number"] = "NI number is required"
	} else if !niNumberRegex.MatchString(ni) {
		fields["ni_number"] = "Invalid NI number format"
	}

	if tenant.AnnualSalary.IsNegative() {
		fields["annual_salary"] = "Annual salary cannot be negative"
	}

	switch tenant.CreditCheckStatus {
	case "", models.CreditCheckPending, models.CreditCheckPassed, models.CreditCheckFailed:
	default:
		fields["credit_check_status"] = "Credit check status must be Pending, Passed or Failed"
	}

	return fields
}
