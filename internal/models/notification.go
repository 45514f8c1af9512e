package models

// NotificationType 定義通知類型
type NotificationType string

const (
	NotificationDebate      NotificationType = "debate"
	NotificationAchievement NotificationType = "achievement"
	NotificationSystem      NotificationType = "system"
)

// Notification 表示一則站內通知
type Notification struct {
	ID      int              `gorm:"primaryKey" json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Content string           `json:"content"`
	Time    string           `json:"time"`
	Read    bool             `json:"read"`
}
