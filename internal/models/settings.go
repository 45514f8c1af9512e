package models

// Settings 聚合設定頁面的所有偏好物件
type Settings struct {
	Profile       Profile               `json:"profile"`
	Notifications NotificationSettings  `json:"notifications"`
	Privacy       PrivacySettings       `json:"privacy"`
	Debate        DebatePreferences     `json:"debate"`
	Accessibility AccessibilitySettings `json:"accessibility"`
}

type Profile struct {
	Name     string `json:"name" mapstructure:"name" validate:"required" label:"Name"`
	Email    string `json:"email" mapstructure:"email" validate:"required,email" label:"Email"`
	Title    string `json:"title" mapstructure:"title"`
	Bio      string `json:"bio" mapstructure:"bio"`
	Location string `json:"location" mapstructure:"location"`
	Timezone string `json:"timezone" mapstructure:"timezone"`
	Language string `json:"language" mapstructure:"language"`
}

type NotificationSettings struct {
	EmailDebateInvites bool `json:"emailDebateInvites" mapstructure:"emailDebateInvites"`
	EmailResults       bool `json:"emailResults" mapstructure:"emailResults"`
	EmailNewTopics     bool `json:"emailNewTopics" mapstructure:"emailNewTopics"`
	InAppDebateInvites bool `json:"inAppDebateInvites" mapstructure:"inAppDebateInvites"`
	InAppResults       bool `json:"inAppResults" mapstructure:"inAppResults"`
	InAppNewTopics     bool `json:"inAppNewTopics" mapstructure:"inAppNewTopics"`
	DebateReminders    bool `json:"debateReminders" mapstructure:"debateReminders"`
	Newsletter         bool `json:"newsletter" mapstructure:"newsletter"`
}

type PrivacySettings struct {
	ProfileVisibility       string `json:"profileVisibility" mapstructure:"profileVisibility"`
	DebateHistoryVisibility string `json:"debateHistoryVisibility" mapstructure:"debateHistoryVisibility"`
	ShowRating              bool   `json:"showRating" mapstructure:"showRating"`
	AllowMessages           bool   `json:"allowMessages" mapstructure:"allowMessages"`
	Searchable              bool   `json:"searchable" mapstructure:"searchable"`
}

type DebatePreferences struct {
	DefaultFormat   string   `json:"defaultFormat" mapstructure:"defaultFormat"`
	DifficultyLevel string   `json:"difficultyLevel" mapstructure:"difficultyLevel"`
	PreferredTopics []string `json:"preferredTopics" mapstructure:"preferredTopics"`
	AutoMatchmaking bool     `json:"autoMatchmaking" mapstructure:"autoMatchmaking"`
	PreparationTime string   `json:"preparationTime" mapstructure:"preparationTime"`
}

type AccessibilitySettings struct {
	FontSize      string `json:"fontSize" mapstructure:"fontSize"`
	Contrast      string `json:"contrast" mapstructure:"contrast"`
	ReducedMotion bool   `json:"reducedMotion" mapstructure:"reducedMotion"`
	ScreenReader  bool   `json:"screenReader" mapstructure:"screenReader"`
}

// Availability 是行程頁面的可用時段偏好
type Availability struct {
	Weekdays      map[string][]string `json:"weekdays"`
	Timezone      string              `json:"timezone"`
	Notifications bool                `json:"notifications"`
	AutoSync      bool                `json:"autoSync"`
}

// LoginRecord 是安全性設定中的登入紀錄
type LoginRecord struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Device   string `json:"device"`
	Location string `json:"location"`
	LastSeen string `json:"lastSeen"`
	Current  bool   `json:"current"`
}

// Clone 回傳不共用切片與 map 的複本
func (s Settings) Clone() Settings {
	out := s
	out.Debate.PreferredTopics = append([]string(nil), s.Debate.PreferredTopics...)
	return out
}

// Clone 回傳不共用 map 的複本
func (a Availability) Clone() Availability {
	out := a
	out.Weekdays = make(map[string][]string, len(a.Weekdays))
	for day, periods := range a.Weekdays {
		out.Weekdays[day] = append([]string(nil), periods...)
	}
	return out
}
