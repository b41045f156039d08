package domain

type CreateEquipmentRequest struct {
	Model         string `json:"model" validate:"required,max=100"`
	EquipmentType string `json:"equipmentType" validate:"required,max=50"`
	LocationID    *int64 `json:"locationId,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEquipmentRequest struct {
	Model         string `json:"model" validate:"required,max=100"`
	EquipmentType string `json:"equipmentType" validate:"required,max=50"`
}

type TransferEquipmentRequest struct {
	NewLocationID *int64 `json:"newLocationId" validate:"required,gt=0"`
}
