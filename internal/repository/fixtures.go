package repository

import (
	"github.com/shopspring/decimal"

	"d23_web/internal/models"
)

const imageHost = "https://public.readdy.ai/ai/img_res/"

// Fixtures 是啟動時載入的 mock 資料表
type Fixtures struct {
	Debaters        []models.Debater
	Debates         []models.Debate
	UpcomingDebates []models.UpcomingDebate
	Topics          []models.Topic
	Rooms           []models.Room
	Tournaments     []models.Tournament
	Notifications   []models.Notification
	Scheduled       []models.ScheduledDebate
	Discussion      models.Discussion
	Participants    []models.RoomParticipant
	ChatMessages    []models.ChatMessage
	Opponents       []models.Opponent
	LoginHistory    []models.LoginRecord
	Settings        models.Settings
	Availability    models.Availability
	Stats           models.Stats
	Plans           []models.Plan
}

func score(v float64) *float64 { return &v }
func points(v int) *int        { return &v }

// DefaultFixtures 回傳全新的 mock 資料複本
func DefaultFixtures() *Fixtures {
	return &Fixtures{
		Debaters:        debaters(),
		Debates:         debates(),
		UpcomingDebates: upcomingDebates(),
		Topics:          topics(),
		Rooms:           rooms(),
		Tournaments:     tournaments(),
		Notifications:   notifications(),
		Scheduled:       scheduled(),
		Discussion:      discussion(),
		Participants:    participants(),
		ChatMessages:    chatMessages(),
		Opponents:       opponents(),
		LoginHistory:    loginHistory(),
		Settings:        settings(),
		Availability:    availability(),
		Stats:           stats(),
		Plans:           plans(),
	}
}

func debaters() []models.Debater {
	return []models.Debater{
		{
			ID: 1, Name: "Elizabeth Chen", Title: "Grandmaster Debater", Avatar: "EC", Category: "technology",
			WinRate: 92, TotalDebates: 248, AverageScore: 9.4,
			Badges:             []string{"Tournament Champion", "Winning Streak", "Top Contributor"},
			RecentAchievements: []string{"Won International Debate Finals", "10 Debate Winning Streak"},
			Specializations:    []string{"Technology Ethics", "Environmental Policy"},
			Ranking:            1, Change: "up",
			Stats: models.DebaterStats{MonthlyWins: 28, MonthlyDebates: 30, AverageTime: "18 minutes", PreferredFormat: "Oxford Style"},
		},
		{
			ID: 2, Name: "Marcus Thompson", Title: "Elite Debater", Avatar: "MT", Category: "economics",
			WinRate: 88, TotalDebates: 186, AverageScore: 9.1,
			Badges:             []string{"Rising Star", "Analytical Expert"},
			RecentAchievements: []string{"Best Newcomer 2025", "15 Perfect Scores"},
			Specializations:    []string{"Economic Policy", "Social Justice"},
			Ranking:            2, Change: "same",
			Stats: models.DebaterStats{MonthlyWins: 25, MonthlyDebates: 28, AverageTime: "22 minutes", PreferredFormat: "Parliamentary"},
		},
		{
			ID: 3, Name: "Dr. Sarah Williams", Title: "Distinguished Scholar", Avatar: "SW", Category: "society",
			WinRate: 86, TotalDebates: 312, AverageScore: 8.9,
			Badges:             []string{"Academic Excellence", "Mentor"},
			RecentAchievements: []string{"Published Debate Strategy Book", "Mentored 50+ Debaters"},
			Specializations:    []string{"Healthcare Policy", "Education Reform"},
			Ranking:            3, Change: "up",
			Stats: models.DebaterStats{MonthlyWins: 22, MonthlyDebates: 26, AverageTime: "20 minutes", PreferredFormat: "Cross-Examination"},
		},
		{
			ID: 4, Name: "Alex Kovalev", Title: "Professional Debater", Avatar: "AK", Category: "politics",
			WinRate: 84, TotalDebates: 175, AverageScore: 8.7,
			Badges:             []string{"Elite Status", "Critical Thinker"},
			RecentAchievements: []string{"Regional Championship Finalist", "5 Consecutive Wins"},
			Specializations:    []string{"International Relations", "Political Science"},
			Ranking:            4, Change: "up",
			Stats: models.DebaterStats{MonthlyWins: 20, MonthlyDebates: 24, AverageTime: "19 minutes", PreferredFormat: "Lincoln-Douglas"},
		},
	}
}

func debates() []models.Debate {
	return []models.Debate{
		{ID: 1, Topic: "The Impact of Artificial Intelligence on Future Employment", Date: "2025-03-25", Time: "15:30",
			Opponent: "Dr. Sarah Chen", Format: "Oxford Style", Status: models.DebateUpcoming,
			Image: imageHost + "4e50b7a3de96c090dc479bed2fe662e3.jpg"},
		{ID: 2, Topic: "Global Climate Change Mitigation Strategies", Date: "2025-03-24", Time: "14:00",
			Opponent: "Prof. Michael Rodriguez", Format: "Cross-Examination", Status: models.DebateOngoing,
			Image: imageHost + "ab54d2c0e5e806abd6b59097f4269ad3.jpg"},
		{ID: 3, Topic: "Digital Privacy in the Age of Big Data", Date: "2025-03-23", Time: "16:00",
			Opponent: "Elizabeth Thompson", Format: "Parliamentary", Status: models.DebateCompleted, Score: score(9.2),
			Image: imageHost + "44a46c395fd352efb2449fc238045339.jpg"},
	}
}

func upcomingDebates() []models.UpcomingDebate {
	return []models.UpcomingDebate{
		{ID: 1, Name: "AI Ethics in Healthcare", Date: "March 26, 2025", Opponent: "Dr. Sarah Chen",
			Topic: "The Role of AI in Medical Diagnosis", Format: "Oxford Style", Difficulty: "Professional",
			Image: imageHost + "0099a9593e2351c5a2897cfc18cd3cef.jpg"},
		{ID: 2, Name: "Climate Policy Impact", Date: "March 28, 2025", Opponent: "Prof. James Wilson",
			Topic: "Carbon Pricing Mechanisms", Format: "Cross-Examination", Difficulty: "Advanced",
			Image: imageHost + "90c527dcc78815a083bfbfd15d69d845.jpg"},
	}
}

func topics() []models.Topic {
	return []models.Topic{
		{ID: 1, Title: "Artificial Intelligence Ethics", Category: "Technology", Difficulty: "Advanced", Popularity: "98%",
			ActiveDebaters: 234, LastDebate: "2 hours ago",
			Description: "Explore the ethical implications of AI development and deployment in society",
			NextDebate:  "March 27, 2025 15:00"},
		{ID: 2, Title: "Global Climate Policy", Category: "Environment", Difficulty: "Expert", Popularity: "95%",
			ActiveDebaters: 189, LastDebate: "30 minutes ago",
			Description: "Discuss international climate agreements and their effectiveness",
			NextDebate:  "March 28, 2025 16:30"},
		{ID: 3, Title: "Digital Privacy Rights", Category: "Society", Difficulty: "Advanced", Popularity: "92%",
			ActiveDebaters: 156, LastDebate: "1 hour ago",
			Description: "Analyze the balance between privacy and security in the digital age",
			NextDebate:  "March 29, 2025 14:00"},
	}
}

func rooms() []models.Room {
	return []models.Room{
		{ID: 1, Name: "Global Tech Ethics Forum", Topic: "AI Regulation in Healthcare", Format: "Oxford Style",
			Difficulty: "Advanced", Capacity: 8, StartTime: "15:30", Status: "active",
			Participants: []models.RoomSeat{
				{Name: "Isabella Chen", Rating: 4.9, Avatar: "IC"},
				{Name: "Marcus Thompson", Rating: 4.7, Avatar: "MT"},
				{Name: "Sophia Rodriguez", Rating: 4.8, Avatar: "SR"},
			}},
		{ID: 2, Name: "Climate Policy Roundtable", Topic: "Carbon Tax Implementation", Format: "Parliamentary",
			Difficulty: "Expert", Capacity: 6, StartTime: "16:00", Status: "active",
			Participants: []models.RoomSeat{
				{Name: "David Wilson", Rating: 4.9, Avatar: "DW"},
				{Name: "Elena Martinez", Rating: 4.8, Avatar: "EM"},
			}},
		{ID: 3, Name: "Education Innovation Hub", Topic: "Digital Learning Methods", Format: "Cross-Examination",
			Difficulty: "Intermediate", Capacity: 4, StartTime: "16:30", Status: "active",
			Participants: []models.RoomSeat{
				{Name: "James Anderson", Rating: 4.6, Avatar: "JA"},
				{Name: "Laura Kim", Rating: 4.7, Avatar: "LK"},
				{Name: "Michael Brown", Rating: 4.5, Avatar: "MB"},
			}},
	}
}

func tournaments() []models.Tournament {
	inProgress := []models.Round{
		{Round: "Round 1", Completed: true},
		{Round: "Round 2"},
		{Round: "Finals"},
	}
	return []models.Tournament{
		{ID: 1, Kind: models.TournamentActive, Position: 1, Name: "Global Debate Masters 2025",
			Banner: imageHost + "d8d7979695e669b91e18cad82c2dae9c.jpg", Format: "Single Elimination",
			PrizePool: decimal.NewFromInt(10000), CurrentParticipants: 28, MaxParticipants: 32,
			Deadline: "2025-04-15", SkillLevel: "Professional", Status: "Registration Open", Rounds: models.DefaultRounds()},
		{ID: 2, Kind: models.TournamentActive, Position: 2, Name: "Tech Policy Debate Series",
			Banner: imageHost + "a37cc432d5f41d016eb493be6cde8868.jpg", Format: "Double Elimination",
			PrizePool: decimal.NewFromInt(5000), CurrentParticipants: 14, MaxParticipants: 16,
			Deadline: "2025-04-10", SkillLevel: "Advanced", Status: "In Progress", Rounds: inProgress},
		{ID: 3, Kind: models.TournamentUpcoming, Position: 1, Name: "International Youth Debate Championship",
			Banner: imageHost + "eaa114672d1a86f256290ff72ae97004.jpg", Format: "Swiss System",
			PrizePool: decimal.NewFromInt(7500), CurrentParticipants: 42, MaxParticipants: 64,
			Deadline: "2025-05-01", SkillLevel: "Intermediate", Status: "Early Bird Open", EarlyBirdDiscount: "20% off"},
		{ID: 4, Kind: models.TournamentUpcoming, Position: 2, Name: "Environmental Policy Debate Forum",
			Banner: imageHost + "ec46709e63411f1486fc20b41494e1d9.jpg", Format: "Round Robin",
			PrizePool: decimal.NewFromInt(6000), CurrentParticipants: 12, MaxParticipants: 16,
			Deadline: "2025-05-15", SkillLevel: "Advanced", Status: "Registration Open", SpecialFeature: "Carbon Neutral Event"},
	}
}

func notifications() []models.Notification {
	return []models.Notification{
		{ID: 1, Type: models.NotificationDebate, Title: "New Debate Challenge",
			Content: "Dr. Sarah Chen has challenged you to a debate on AI Ethics in Healthcare", Time: "2 minutes ago"},
		{ID: 2, Type: models.NotificationAchievement, Title: "Achievement Unlocked",
			Content: "Congratulations! You've won 5 debates in a row", Time: "1 hour ago"},
		{ID: 3, Type: models.NotificationDebate, Title: "Debate Room Update",
			Content: `The topic for "Global Tech Ethics Forum" has been updated`, Time: "2 hours ago", Read: true},
		{ID: 4, Type: models.NotificationSystem, Title: "System Update",
			Content: "New debate formats are now available for selection", Time: "1 day ago", Read: true},
	}
}

func scheduled() []models.ScheduledDebate {
	return []models.ScheduledDebate{
		{ID: 1, Title: "AI Ethics in Healthcare", Opponent: "Dr. Sarah Chen", Date: "2025-03-26", Time: "15:00",
			Format: "Oxford Style", Status: "confirmed", Image: imageHost + "79c41b5fcdc8c4069d3ab2b8d3d743f0.jpg"},
		{ID: 2, Title: "Global Climate Policy", Opponent: "Prof. James Wilson", Date: "2025-03-28", Time: "14:30",
			Format: "Cross-Examination", Status: "pending", Image: imageHost + "ecf6ce3760c2dc445c9e365edfc6e06e.jpg"},
		{ID: 3, Title: "Digital Privacy Rights", Opponent: "Elizabeth Martinez", Date: "2025-03-30", Time: "16:00",
			Format: "Parliamentary", Status: "conflict", Image: imageHost + "07cac258d8b1931d2d022b00a3636bb8.jpg"},
	}
}

func discussion() models.Discussion {
	return models.Discussion{
		Topic: "AI Ethics in Healthcare: Implementation & Oversight",
		Messages: []models.DiscussionMessage{
			{ID: 1, User: "Dr. Sarah Chen", Role: "Pro", Timestamp: "14:30", Type: "argument",
				Content: "AI in healthcare has shown remarkable potential for improving diagnostic accuracy. Studies indicate a 95% accuracy rate in early disease detection."},
			{ID: 2, User: "Prof. James Wilson", Role: "Con", Timestamp: "14:32", Type: "rebuttal",
				Content: "While accuracy is important, we must consider the ethical implications of AI making critical healthcare decisions. Human oversight remains crucial."},
			{ID: 3, User: "Dr. Sarah Chen", Role: "Pro", Timestamp: "14:35", Type: "argument",
				Content: "Human oversight is indeed maintained in all AI healthcare implementations. AI serves as a support tool, not a replacement for medical professionals."},
		},
		Panelists: []models.Panelist{
			{ID: 1, Name: "Dr. Sarah Chen", Role: "Pro", Status: "Speaking", Rating: 4.9,
				Badges: []string{"Healthcare Expert", "AI Specialist"}, Avatar: "SC"},
			{ID: 2, Name: "Prof. James Wilson", Role: "Con", Status: "Next", Rating: 4.8,
				Badges: []string{"Ethics Committee", "Research Lead"}, Avatar: "JW"},
			{ID: 3, Name: "Dr. Emily Thompson", Role: "Moderator", Status: "Active", Rating: 4.9,
				Badges: []string{"Senior Moderator"}, Avatar: "ET"},
		},
		Resources: []models.Resource{
			{ID: 1, Title: "AI in Healthcare: 2025 Report", Type: "PDF", Source: "WHO Digital Health Division", Added: "2 hours ago"},
			{ID: 2, Title: "Medical AI Ethics Guidelines", Type: "Document", Source: "International Medical Board", Added: "1 hour ago"},
			{ID: 3, Title: "Healthcare AI Implementation Studies", Type: "Research", Source: "Global Health Tech Journal", Added: "30 minutes ago"},
		},
	}
}

func participants() []models.RoomParticipant {
	return []models.RoomParticipant{
		{ID: 1, Kind: models.RoomKindAI, Name: "Sarah Mitchell", Role: "Proposition", Score: points(85), Speaking: true},
		{ID: 2, Kind: models.RoomKindAI, Name: "Michael Anderson", Role: "Opposition", Score: points(82)},
		{ID: 3, Kind: models.RoomKindAI, Name: "Emily Richardson", Role: "Proposition", Score: points(78)},
		{ID: 4, Kind: models.RoomKindAI, Name: "James Thompson", Role: "Opposition", Score: points(80)},
		{ID: 5, Kind: models.RoomKindAI, Name: "Dr. Rachel Bennett", Role: "Moderator"},

		{ID: 11, Kind: models.RoomKindGroup, Name: "Sarah Mitchell", Role: "Team Alpha", Score: points(85), Speaking: true, Team: 1},
		{ID: 12, Kind: models.RoomKindGroup, Name: "Michael Anderson", Role: "Team Beta", Score: points(82), Team: 2},
		{ID: 13, Kind: models.RoomKindGroup, Name: "Emily Richardson", Role: "Team Alpha", Score: points(78), Team: 1},
		{ID: 14, Kind: models.RoomKindGroup, Name: "James Thompson", Role: "Team Beta", Score: points(80), Team: 2},
		{ID: 15, Kind: models.RoomKindGroup, Name: "Dr. Rachel Bennett", Role: "Moderator"},
		{ID: 16, Kind: models.RoomKindGroup, Name: "David Chen", Role: "Team Gamma", Score: points(88), Team: 3},
		{ID: 17, Kind: models.RoomKindGroup, Name: "Sophie Williams", Role: "Team Gamma", Score: points(84), Team: 3},
		{ID: 18, Kind: models.RoomKindGroup, Name: "Alex Rodriguez", Role: "Team Delta", Score: points(86), Team: 4},
		{ID: 19, Kind: models.RoomKindGroup, Name: "Isabella Martinez", Role: "Team Delta", Score: points(83), Team: 4},
	}
}

func chatMessages() []models.ChatMessage {
	var out []models.ChatMessage
	for i, kind := range []models.RoomKind{models.RoomKindAI, models.RoomKindGroup} {
		base := i * 10
		out = append(out,
			models.ChatMessage{ID: base + 1, Kind: kind, User: "Emily Richardson", Message: "Excellent point about renewable energy sources", Time: "14:32"},
			models.ChatMessage{ID: base + 2, Kind: kind, User: "James Thompson", Message: "Would like to address the economic impact", Time: "14:33"},
			models.ChatMessage{ID: base + 3, Kind: kind, User: "Michael Anderson", Message: "Looking forward to the cross-examination", Time: "14:34"},
		)
	}
	return out
}

func opponents() []models.Opponent {
	return []models.Opponent{
		{ID: 1, Name: "Emily Thompson", Initials: "ET", Rating: 4.8, Wins: 127, Debates: 150},
		{ID: 2, Name: "Michael Rodriguez", Initials: "MR", Rating: 4.7, Wins: 98, Debates: 120},
		{ID: 3, Name: "Sarah Williams", Initials: "SW", Rating: 4.9, Wins: 145, Debates: 165},
	}
}

func loginHistory() []models.LoginRecord {
	return []models.LoginRecord{
		{ID: 1, Device: "MacBook Pro · Chrome", Location: "San Francisco, United States", LastSeen: "Active now", Current: true},
		{ID: 2, Device: "iPhone 15 · Safari", Location: "New York, United States", LastSeen: "2 days ago"},
	}
}

func settings() models.Settings {
	return models.Settings{
		Profile: models.Profile{
			Name:     "Alex Kovalev",
			Email:    "alex.kovalev@example.com",
			Title:    "Professional Debater",
			Bio:      "Experienced debater specializing in technology ethics and environmental policy. Multiple tournament winner with a passion for structured argumentation.",
			Location: "San Francisco, CA",
			Timezone: "America/Los_Angeles",
			Language: "English",
		},
		Notifications: models.NotificationSettings{
			EmailDebateInvites: true,
			EmailResults:       true,
			InAppDebateInvites: true,
			InAppResults:       true,
			InAppNewTopics:     true,
			DebateReminders:    true,
		},
		Privacy: models.PrivacySettings{
			ProfileVisibility:       "public",
			DebateHistoryVisibility: "connections",
			ShowRating:              true,
			AllowMessages:           true,
			Searchable:              true,
		},
		Debate: models.DebatePreferences{
			DefaultFormat:   "Oxford Style",
			DifficultyLevel: "Advanced",
			PreferredTopics: []string{"Technology Ethics", "Environmental Policy", "Global Economics"},
			AutoMatchmaking: true,
			PreparationTime: "30 minutes",
		},
		Accessibility: models.AccessibilitySettings{
			FontSize: "medium",
			Contrast: "normal",
		},
	}
}

func availability() models.Availability {
	return models.Availability{
		Weekdays: map[string][]string{
			"monday":    {"morning", "evening"},
			"tuesday":   {"afternoon"},
			"wednesday": {"morning", "afternoon", "evening"},
			"thursday":  {"afternoon"},
			"friday":    {"morning", "evening"},
			"saturday":  {"afternoon"},
			"sunday":    {"morning"},
		},
		Timezone:      "UTC-5",
		Notifications: true,
	}
}

func stats() models.Stats {
	return models.Stats{
		Performance: models.PerformanceStats{TotalDebates: 40, Wins: 30, WinRate: "75%", AverageScore: 8.5, Streak: 5, Ranking: "#123"},
		Debates:     models.DebateStats{Total: 47, Won: 32, Ongoing: 3, Upcoming: 5, AvgScore: 8.7, WinRate: "68%"},
		Availability: []models.StatCard{
			{Title: "Scheduled Debates", Value: "12", Color: "purple"},
			{Title: "Available Hours", Value: "24", Color: "blue"},
			{Title: "Pending Requests", Value: "5", Color: "orange"},
			{Title: "Schedule Conflicts", Value: "2", Color: "red"},
		},
	}
}

func plans() []models.Plan {
	return []models.Plan{
		{Name: "Free", Price: "$0", Period: "Forever",
			Features: []string{"Basic AI practice sessions", "Community access", "Limited debates per month", "24/7 Support"}},
		{Name: "Pro", Price: "$19.99", Period: "per month", Popular: true,
			Features: []string{"Unlimited AI practice", "Advanced analytics", "Priority support", "Tournament access", "Custom training"}},
		{Name: "Enterprise", Price: "Custom", Period: "Tailored solution",
			Features: []string{"Enterprise solutions", "Custom AI training", "Dedicated support", "API access", "White-label options"}},
	}
}
