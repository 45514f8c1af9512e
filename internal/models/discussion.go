package models

import (
	"gorm.io/datatypes"
)

// DiscussionMessage 是主題討論室的一則論點
type DiscussionMessage struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	User      string `json:"user"`
	Role      string `json:"role"` // Pro, Con
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"` // argument, rebuttal
}

// Panelist 是主題討論室的與談人
type Panelist struct {
	ID     int                         `gorm:"primaryKey" json:"-"`
	Name   string                      `json:"name"`
	Role   string                      `json:"role"`
	Status string                      `json:"status"`
	Rating float64                     `json:"rating"`
	Badges datatypes.JSONSlice[string] `json:"badges"`
	Avatar string                      `json:"avatar"`
}

// Resource 是討論室分享的參考資料
type Resource struct {
	ID          int    `gorm:"primaryKey" json:"-"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
	Added       string `json:"added"`
}

// Discussion 聚合主題討論室所需的資料
type Discussion struct {
	Topic     string              `json:"topic"`
	Messages  []DiscussionMessage `json:"messages"`
	Panelists []Panelist          `json:"participants"`
	Resources []Resource          `json:"resources"`
}
