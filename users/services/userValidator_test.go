package services_test

import (
	"testing"

	"property-management-backend/db/models"
	"property-management-backend/users/services"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	valid := &models.User{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "Sup3rSecret",
		Role:     models.ManagerRole,
	}
	assert.Empty(t, services.ValidateUser(valid))

	fields := services.ValidateUser(&models.User{Role: models.Role("wizard")})
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")

	badEmail := *valid
	badEmail.Email = "not-an-email"
	assert.Contains(t, services.ValidateUser(&badEmail), "email")
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, services.ValidatePassword("Sup3rSecret"))
	assert.NotEmpty(t, services.ValidatePassword("short1A"))
	assert.NotEmpty(t, services.ValidatePassword("alllowercase1"))
	assert.NotEmpty(t, services.ValidatePassword("ALLUPPERCASE1"))
	assert.NotEmpty(t, services.ValidatePassword("NoDigitsHere"))
}
