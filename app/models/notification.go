package models

import (
	"time"

	"gorm.io/gorm"
)

const NotificationTypeSystem = "system"

// Notification is an in-app message. UserID 0 marks an operator broadcast.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index" json:"user_id"`
	Title     string         `gorm:"type:varchar(255)" json:"title"`
	Type      string         `gorm:"type:varchar(50);default:'system'" json:"type"`
	Content   string         `gorm:"type:text" json:"content"`
	IsRead    bool           `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarkAsRead marks a notification as read
func (n *Notification) MarkAsRead(db *gorm.DB) error {
	n.IsRead = true
	return db.Model(n).Update("is_read", true).Error
}

// CreateNotification stores a new notification for a user
func CreateNotification(db *gorm.DB, userID uint, title string, content string) error {
	notification := Notification{
		UserID:  userID,
		Title:   title,
		Type:    NotificationTypeSystem,
		Content: content,
		IsRead:  false,
	}

	return db.Create(&notification).Error
}
