package repository

import (
	"context"
	"errors"
	"fmt"

	"d23_web/internal/models"
	"d23_web/internal/storage"
)

var ErrNotFound = errors.New("record not found")

// DriverMemory 不開資料庫，直接使用記憶體中的 fixtures
const DriverMemory = "memory"

// Provider 提供頁面需要的 mock 資料。
// 回傳值一律是複本，頁面可以自由修改而不影響其他工作階段。
type Provider interface {
	ListDebates(ctx context.Context) ([]models.Debate, error)
	ListUpcomingDebates(ctx context.Context) ([]models.UpcomingDebate, error)
	ListRecommendedTopics(ctx context.Context) ([]models.Topic, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	ListTournaments(ctx context.Context, kind models.TournamentKind) ([]models.Tournament, error)
	ListDebaters(ctx context.Context) ([]models.Debater, error)
	GetDebater(ctx context.Context, id int) (*models.Debater, error)
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	ListScheduledDebates(ctx context.Context) ([]models.ScheduledDebate, error)
	GetDiscussion(ctx context.Context) (*models.Discussion, error)
	ListRoomParticipants(ctx context.Context, kind models.RoomKind) ([]models.RoomParticipant, error)
	ListChatMessages(ctx context.Context, kind models.RoomKind) ([]models.ChatMessage, error)
	ListMatchCandidates(ctx context.Context) ([]models.Opponent, error)
	ListLoginHistory(ctx context.Context) ([]models.LoginRecord, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	Settings(ctx context.Context) (models.Settings, error)
	Availability(ctx context.Context) (models.Availability, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// NewProvider 依設定建立資料來源，並載入 fixtures。
// 回傳的 close 函式負責釋放資料庫連線。
func NewProvider(ctx context.Context, driver, dsn string) (Provider, func() error, error) {
	fixtures := DefaultFixtures()
	if driver == DriverMemory {
		return NewMemoryProvider(fixtures), func() error { return nil }, nil
	}

	db, err := storage.Open(driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	p := NewGormProvider(db)
	if err := p.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	if err := p.Seed(ctx, fixtures); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}
	return p, db.Close, nil
}
