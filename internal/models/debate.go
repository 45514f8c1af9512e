package models

// DebateStatus 定義辯論狀態的類型
type DebateStatus string

const (
	DebateUpcoming  DebateStatus = "upcoming"
	DebateOngoing   DebateStatus = "ongoing"
	DebateCompleted DebateStatus = "completed"
)

// Debate 表示「我的辯論」頁面的一筆紀錄
type Debate struct {
	ID       int          `gorm:"primaryKey" json:"id"`
	Topic    string       `json:"topic"`
	Date     string       `json:"date"` // YYYY-MM-DD
	Time     string       `json:"time"`
	Opponent string       `json:"opponent"`
	Format   string       `json:"format"`
	Status   DebateStatus `json:"status"`
	Score    *float64     `json:"score"` // 尚未結束的辯論沒有分數
	Image    string       `json:"image"`
}

// UpcomingDebate 是儀表板上可參加的辯論
type UpcomingDebate struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Opponent   string `json:"opponent"`
	Topic      string `json:"topic"`
	Format     string `json:"format"`
	Difficulty string `json:"difficulty"`
	Image      string `json:"image"`
}

// Topic 是推薦的辯題
type Topic struct {
	ID             int    `gorm:"primaryKey" json:"-"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	Popularity     string `json:"popularity"`
	ActiveDebaters int    `json:"activeDebaters"`
	LastDebate     string `json:"lastDebate"`
	Description    string `json:"description"`
	NextDebate     string `json:"nextDebate"`
}

// ScheduledDebate 是行程頁面上的辯論
type ScheduledDebate struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `json:"title"`
	Opponent string `json:"opponent"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Format   string `json:"format"`
	Status   string `json:"status"` // confirmed, pending, conflict
	Image    string `json:"image"`
}
