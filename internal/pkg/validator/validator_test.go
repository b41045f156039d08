package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"honorsinventory/internal/domain"
)

func TestValidateCreateRequest(t *testing.T) {
	assert.Nil(t, Validate(domain.CreateEquipmentRequest{Model: "Dell XPS 15", EquipmentType: "Laptop"}))

	bad := int64(0)
	errs := Validate(domain.CreateEquipmentRequest{
		Model:         strings.Repeat("x", 101),
		EquipmentType: "",
		LocationID:    &bad,
	})
	assert.Equal(t, "must be at most 100 characters", errs["model"])
	assert.Equal(t, "is required", errs["equipmentType"])
	assert.Equal(t, "must be greater than 0", errs["locationId"])
}

func TestValidateTransferRequiresLocation(t *testing.T) {
	errs := Validate(domain.TransferEquipmentRequest{})
	assert.Equal(t, "is required", errs["newLocationId"])
}
