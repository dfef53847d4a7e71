package models

import "time"

// NotificationStatus is the delivery state of a damage notification.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// DamageNotification is an email owed to a customer about an inspection damage.
// Recipient and message data are captured when queued so the dispatcher needs no joins.
type DamageNotification struct {
	Base
	TenantScoped
	DamageID        string             `gorm:"type:uuid;not null;index" json:"damage_id"`
	RecipientEmail  string             `gorm:"not null" json:"recipient_email"`
	RecipientName   string             `json:"recipient_name"`
	VehiclePlate    string             `json:"vehicle_plate"`
	VehicleModel    string             `json:"vehicle_model"`
	Description     string             `json:"description"`
	EstimatedAmount int64              `json:"estimated_amount"`
	InspectionDate  time.Time          `json:"inspection_date"`
	Status          NotificationStatus `gorm:"not null;index" json:"status"`
	Attempts        int                `gorm:"default:0" json:"attempts"`
	LastError       string             `json:"last_error,omitempty"`
	SentAt          *time.Time         `json:"sent_at,omitempty"`
}
