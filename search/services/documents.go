package services

import (
	"fmt"

	"property-management-backend/db/models"
)

// TenantDocID returns the index key for a tenant.
func TenantDocID(id uint) string {
	return fmt.Sprintf("tenant:%d", id)
}

// ApartmentDocID returns the index key for an apartment.
func ApartmentDocID(id uint) string {
	return fmt.Sprintf("apartment:%d", id)
}

// TenantDocument flattens a tenant into the searchable fields.
func TenantDocument(t *models.Tenant) map[string]interface{} {
	return map[string]interface{}{
		"type":       "tenant",
		"first_name": t.FirstName,
		"last_name":  t.LastName,
		"email":      t.Email,
		"ni_number":  t.NINumber,
		"phone":      t.Phone,
		"occupation": t.Occupation,
	}
}

// ApartmentDocument flattens an apartment into the searchable fields.
func ApartmentDocument(a *models.Apartment) map[string]interface{} {
	doc := map[string]interface{}{
		"type":    "apartment",
		"address": a.Address,
	}
	if a.Location != nil {
		doc["city"] = a.Location.City
	}
	return doc
}
