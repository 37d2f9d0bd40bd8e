package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/decomizer/storefront/constant"
)

// NewUserMetadata is attached to new_user notifications.
type NewUserMetadata struct {
	UserID      uint64 `json:"userId"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// NotificationMetadata holds the kind specific payload of a notification.
// Exactly one field is set, matching the notification type.
type NotificationMetadata struct {
	NewUser *NewUserMetadata
}

func (m NotificationMetadata) MarshalJSON() ([]byte, error) {
	if m.NewUser != nil {
		return json.Marshal(m.NewUser)
	}
	return []byte("{}"), nil
}

// Value implements driver.Valuer, the column stores the JSON document.
func (m NotificationMetadata) Value() (driver.Value, error) {
	b, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// AdminNotificationEntity represents the admin_notifications table entity
type AdminNotificationEntity struct {
	ID        uint64                    `db:"id" json:"id"`
	Type      constant.NotificationType `db:"type" json:"type"`
	Title     string                    `db:"title" json:"title"`
	Message   string                    `db:"message" json:"message"`
	IsRead    bool                      `db:"is_read" json:"isRead"`
	Metadata  NotificationMetadata      `db:"-" json:"metadata"`
	RawMeta   []byte                    `db:"metadata" json:"-"`
	CreatedAt time.Time                 `db:"created_at" json:"createdAt"`
}

// DecodeMetadata fills Metadata from the raw column according to Type.
func (n *AdminNotificationEntity) DecodeMetadata() error {
	if len(n.RawMeta) == 0 {
		return nil
	}
	switch n.Type {
	case constant.NotificationNewUser:
		var meta NewUserMetadata
		if err := json.Unmarshal(n.RawMeta, &meta); err != nil {
			return fmt.Errorf("decode %s metadata: %w", n.Type, err)
		}
		n.Metadata.NewUser = &meta
	}
	return nil
}

// NewUserNotification builds the notification emitted after a registration.
func NewUserNotification(user *UserEntity) *AdminNotificationEntity {
	return &AdminNotificationEntity{
		Type:    constant.NotificationNewUser,
		Title:   "New User Registration",
		Message: fmt.Sprintf("%s has registered with email %s", user.Name, user.Email),
		Metadata: NotificationMetadata{NewUser: &NewUserMetadata{
			UserID:      user.ID,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		}},
	}
}

type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
}
