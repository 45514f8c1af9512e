package models

// Stats 聚合各頁面的靜態統計卡片
type Stats struct {
	Performance  PerformanceStats `json:"performance"`
	Debates      DebateStats      `json:"debates"`
	Availability []StatCard       `json:"availability"`
}

// PerformanceStats 是儀表板的表現摘要
type PerformanceStats struct {
	TotalDebates int     `json:"totalDebates"`
	Wins         int     `json:"wins"`
	WinRate      string  `json:"winRate"`
	AverageScore float64 `json:"averageScore"`
	Streak       int     `json:"streak"`
	Ranking      string  `json:"ranking"`
}

// DebateStats 是「我的辯論」頁面的摘要
type DebateStats struct {
	Total    int     `json:"total"`
	Won      int     `json:"won"`
	Ongoing  int     `json:"ongoing"`
	Upcoming int     `json:"upcoming"`
	AvgScore float64 `json:"avgScore"`
	WinRate  string  `json:"winRate"`
}

type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Color string `json:"color"`
}

// Plan 是首頁的付費方案
type Plan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular,omitempty"`
}
