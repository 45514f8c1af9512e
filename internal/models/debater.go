package models

import (
	"gorm.io/datatypes"
)

// Debater 表示排行榜上的辯手
type Debater struct {
	ID                 int                         `gorm:"primaryKey" json:"id"`
	Name               string                      `gorm:"not null" json:"name"`
	Title              string                      `json:"title"`
	Avatar             string                      `json:"avatar"` // 頭像縮寫，例如 "EC"
	Category           string                      `json:"category"`
	WinRate            int                         `json:"winRate"`
	TotalDebates       int                         `json:"totalDebates"`
	AverageScore       float64                     `json:"averageScore"`
	Badges             datatypes.JSONSlice[string] `json:"badges"`
	RecentAchievements datatypes.JSONSlice[string] `json:"recentAchievements"`
	Specializations    datatypes.JSONSlice[string] `json:"specializations"`
	Ranking            int                         `json:"ranking"`
	Change             string                      `json:"change"` // up, down, same
	Stats              DebaterStats                `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
}

// DebaterStats 是辯手的月度統計
type DebaterStats struct {
	MonthlyWins     int    `json:"monthlyWins"`
	MonthlyDebates  int    `json:"monthlyDebates"`
	AverageTime     string `json:"averageTime"`
	PreferredFormat string `json:"preferredFormat"`
}

// Opponent 是配對搜尋回傳的候選對手
type Opponent struct {
	ID       int     `gorm:"primaryKey" json:"-"`
	Name     string  `json:"name"`
	Initials string  `json:"initials"`
	Rating   float64 `json:"rating"`
	Wins     int     `json:"wins"`
	Debates  int     `json:"debates"`
}
