package domain

import "time"

type EventType string

const (
	EventEquipmentCreated     EventType = "equipment.created"
	EventEquipmentUpdated     EventType = "equipment.updated"
	EventEquipmentTransferred EventType = "equipment.transferred"
	EventEquipmentDeleted     EventType = "equipment.deleted"
)

// Event is pushed over the change feed after a committed mutation. Equipment is
// nil for deletions.
type Event struct {
	Type        EventType      `json:"type"`
	EquipmentID int64          `json:"equipmentId"`
	Equipment   *EquipmentView `json:"equipment,omitempty"`
	At          time.Time      `json:"at"`
}
