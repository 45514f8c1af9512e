package chart

// 時間範圍選項，對應儀表板的下拉選單
const (
	RangeThreeMonths = "Last 3 Months"
	RangeSixMonths   = "Last 6 Months"
	RangeYear        = "Last Year"
)

var (
	yearMonths  = []string{"Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	yearWins    = []float64{5, 6, 8, 9, 10, 11, 12, 15, 18, 22, 25, 30}
	yearDebates = []float64{8, 9, 11, 12, 14, 15, 15, 20, 25, 30, 35, 40}
	halfYear    = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	weekdays    = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

// DashboardPerformance 是儀表板的勝場與場次趨勢，依時間範圍截取月份
func DashboardPerformance(rangeLabel string) Option {
	n := 6
	switch rangeLabel {
	case RangeThreeMonths:
		n = 3
	case RangeYear:
		n = 12
	}
	return Option{
		Color:   []string{"#7C3AED", "#4F46E5"},
		Tooltip: &Tooltip{Trigger: "axis"},
		Legend:  &Legend{Data: []string{"Wins", "Total Debates"}, Top: 0},
		Grid:    &Grid{Top: 30, Left: "3%", Right: "4%", Bottom: "3%", ContainLabel: true},
		XAxis:   []Axis{{Type: "category", BoundaryGap: ptr(false), Data: tail(yearMonths, n)}},
		YAxis:   []Axis{value()},
		Series: []Series{
			area(line("Wins", tail(yearWins, n))),
			area(line("Total Debates", tail(yearDebates, n))),
		},
	}
}

// TournamentBracket 是錦標賽頁面的淘汰賽樹
func TournamentBracket() Option {
	return Option{
		Series: []Series{{
			Type: "tree",
			Data: []TreeNode{{
				Name: "Finals",
				Children: []TreeNode{
					{Name: "Semi-Final 1", Children: []TreeNode{{Name: "Quarter-Final 1"}, {Name: "Quarter-Final 2"}}},
					{Name: "Semi-Final 2", Children: []TreeNode{{Name: "Quarter-Final 3"}, {Name: "Quarter-Final 4"}}},
				},
			}},
			Layout:      "orthogonal",
			Orient:      "LR",
			ItemStyle:   &Style{Color: "#7C3AED"},
			LineStyle:   &Style{Color: "#E5E7EB"},
			SeriesLabel: &Label{Position: "left", Color: "#1F2937"},
		}},
	}
}

// RankingPerformance 是排行榜的勝率與平均分數（雙 Y 軸）
func RankingPerformance() Option {
	avg := area(line("Average Score", []float64{8.5, 8.7, 9.0, 9.2, 9.1, 9.4}))
	avg.YAxisIndex = 1
	return Option{
		Tooltip: &Tooltip{Trigger: "axis"},
		Legend:  &Legend{Data: []string{"Win Rate", "Average Score"}, Top: 0},
		Grid:    defaultGrid,
		XAxis:   []Axis{{Type: "category", BoundaryGap: ptr(false), Data: halfYear}},
		YAxis: []Axis{
			{Type: "value", Name: "Win Rate (%)", Min: ptr(70.0), Max: ptr(100.0)},
			{Type: "value", Name: "Score", Min: ptr(7.0), Max: ptr(10.0)},
		},
		Series: []Series{
			area(line("Win Rate", []float64{88, 85, 90, 92, 89, 93})),
			avg,
		},
	}
}

// DebateScores 是「我的辯論」頁面的分數趨勢
func DebateScores() Option {
	score := line("Debate Score", []float64{7.5, 8.2, 8.7, 8.4, 9.1, 8.8})
	score.Color = "#7C3AED"
	avg := line("Average Performance", []float64{7.8, 7.9, 8.1, 8.3, 8.5, 8.7})
	avg.Color = "#4F46E5"
	return Option{
		Tooltip: &Tooltip{Trigger: "axis"},
		Legend:  &Legend{Data: []string{"Debate Score", "Average Performance"}, Top: 0},
		Grid:    defaultGrid,
		XAxis:   []Axis{category(halfYear...)},
		YAxis:   []Axis{{Type: "value", Max: ptr(10.0)}},
		Series:  []Series{score, avg},
	}
}

// Availability 是行程頁面每週可用時數
func Availability() Option {
	return Option{
		Tooltip: &Tooltip{Trigger: "axis", AxisPointer: &AxisPointer{Type: "shadow"}},
		Grid:    defaultGrid,
		XAxis:   []Axis{category(weekdays...)},
		YAxis:   []Axis{{Type: "value", Name: "Hours"}},
		Series: []Series{{
			Name:      "Available Hours",
			Type:      "bar",
			Data:      []float64{4, 2, 6, 2, 4, 2, 2},
			ItemStyle: &Style{Color: "#8B5CF6"},
		}},
	}
}

var teamColors = map[string]string{
	"Team Alpha": "#8B5CF6",
	"Team Beta":  "#EC4899",
	"Team Gamma": "#10B981",
	"Team Delta": "#F59E0B",
}

// TeamScores 是多隊辯論室各階段的隊伍分數
func TeamScores() Option {
	teams := []struct {
		name string
		data []float64
	}{
		{"Team Alpha", []float64{75, 82, 85, 88}},
		{"Team Beta", []float64{70, 78, 82, 85}},
		{"Team Gamma", []float64{72, 80, 84, 87}},
		{"Team Delta", []float64{68, 76, 83, 86}},
	}
	opt := Option{
		Tooltip: &Tooltip{Trigger: "axis"},
		Legend:  &Legend{Top: "0%"},
		Grid:    &Grid{Top: "15%", Left: "3%", Right: "4%", Bottom: "3%", ContainLabel: true},
		XAxis:   []Axis{category("Opening", "Arguments", "Rebuttal", "Closing")},
		YAxis:   []Axis{{Type: "value", Max: ptr(100.0)}},
	}
	for _, team := range teams {
		s := line(team.name, team.data)
		s.LineStyle = &Style{Color: teamColors[team.name]}
		s.ItemStyle = &Style{Color: teamColors[team.name]}
		opt.Legend.Data = append(opt.Legend.Data, team.name)
		opt.Series = append(opt.Series, s)
	}
	return opt
}

// SpeakerScores 是 AI 辯論室正反方各階段分數
func SpeakerScores() Option {
	return Option{
		Tooltip: &Tooltip{Trigger: "axis"},
		Grid:    &Grid{Top: "10%", Left: "3%", Right: "4%", Bottom: "3%", ContainLabel: true},
		XAxis:   []Axis{category("Opening", "Arguments", "Rebuttal", "Closing")},
		YAxis:   []Axis{{Type: "value", Max: ptr(100.0)}},
		Series: []Series{
			line("Proposition", []float64{75, 82, 85, 88}),
			line("Opposition", []float64{70, 78, 82, 85}),
		},
	}
}

// Voting 是主題討論室的評分長條圖
func Voting() Option {
	return Option{
		Color:   []string{"#7C3AED", "#4F46E5"},
		Tooltip: &Tooltip{Trigger: "axis"},
		Grid:    &Grid{Top: 10, Right: 10, Bottom: 20, Left: 30, ContainLabel: true},
		XAxis:   []Axis{category("Argument Quality", "Evidence Use", "Rebuttal", "Overall")},
		YAxis:   []Axis{{Type: "value", Max: ptr(10.0)}},
		Series: []Series{
			{Name: "Pro", Type: "bar", Data: []float64{8.5, 9.0, 8.7, 8.7}},
			{Name: "Con", Type: "bar", Data: []float64{8.3, 8.8, 8.9, 8.6}},
		},
	}
}

// CommunityGrowth 是註冊成功頁的社群成長曲線
func CommunityGrowth() Option {
	return Option{
		Color:   []string{"#7C3AED"},
		Tooltip: &Tooltip{Trigger: "axis"},
		Grid:    defaultGrid,
		XAxis:   []Axis{category(weekdays...)},
		YAxis:   []Axis{value()},
		Series:  []Series{area(Series{Type: "line", Data: []float64{15, 25, 30, 45, 35, 40, 50}, Smooth: true})},
	}
}
