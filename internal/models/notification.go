package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// NotificationAction is a suggested follow-up rendered as a button by the
// frontend.
type NotificationAction struct {
	Label   string `bson:"label" json:"label"`
	Action  string `bson:"action" json:"action"`
	Variant string `bson:"variant,omitempty" json:"variant,omitempty"`
}

type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	NotifID     string             `bson:"notif_id" json:"id"` // uuid v4
	RecipientID string             `bson:"recipient_id" json:"recipient_id"`

	Type     string `bson:"type" json:"type"` // application|interview|system|reminder|alert
	Title    string `bson:"title" json:"title"`
	Message  string `bson:"message" json:"message"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`

	Priority  NotificationPriority `bson:"priority" json:"priority"`
	RelatedID string               `bson:"related_id,omitempty" json:"related_id,omitempty"`

	Actions []NotificationAction `bson:"actions,omitempty" json:"actions,omitempty"`

	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
