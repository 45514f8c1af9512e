package models

import (
	"gorm.io/datatypes"
)

// Room 表示一個可加入的辯論房間
type Room struct {
	ID           int                           `gorm:"primaryKey" json:"id"`
	Name         string                        `json:"name"`
	Topic        string                        `json:"topic"`
	Format       string                        `json:"format"`
	Difficulty   string                        `json:"difficulty"`
	Capacity     int                           `json:"capacity"`
	Participants datatypes.JSONSlice[RoomSeat] `json:"participants"`
	StartTime    string                        `json:"startTime"`
	Status       string                        `json:"status"`
}

// RoomSeat 是房間內已就座的參與者
type RoomSeat struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Avatar string  `json:"avatar"`
}

// RoomKind 區分 AI 辯論室與多隊辯論室
type RoomKind string

const (
	RoomKindAI    RoomKind = "ai"
	RoomKindGroup RoomKind = "group"
)

// RoomParticipant 是辯論室中的發言者
type RoomParticipant struct {
	ID       int      `gorm:"primaryKey" json:"id"`
	Kind     RoomKind `gorm:"index" json:"-"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Score    *int     `json:"score"` // 主持人沒有分數
	Speaking bool     `json:"speaking"`
	Team     int      `json:"team,omitempty"`
}

// ChatMessage 是辯論室聊天訊息
type ChatMessage struct {
	ID      int      `gorm:"primaryKey" json:"id"`
	Kind    RoomKind `gorm:"index" json:"-"`
	User    string   `json:"user"`
	Message string   `json:"message"`
	Time    string   `json:"time"`
}
