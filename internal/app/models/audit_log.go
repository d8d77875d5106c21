package models

import "time"

type AuditLog struct {
	ID         string    `json:"id" bson:"_id"`
	EntityType string    `json:"entity_type" bson:"entity_type"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	FromStatus string    `json:"from_status" bson:"from_status"`
	ToStatus   string    `json:"to_status" bson:"to_status"`
	ActorID    string    `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Reason     string    `json:"reason,omitempty" bson:"reason,omitempty"`
	RequestID  string    `json:"request_id,omitempty" bson:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}

// StatusEvent is published to the broker after every committed transition.
type StatusEvent struct {
	Event      string    `json:"event"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
