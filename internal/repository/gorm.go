package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"d23_web/internal/models"
	"d23_web/internal/storage"
)

// profileDocument 保存只有一筆的文件型資料
type profileDocument struct {
	ID              int `gorm:"primaryKey"`
	Settings        datatypes.JSONType[models.Settings]
	Availability    datatypes.JSONType[models.Availability]
	Stats           datatypes.JSONType[models.Stats]
	Plans           datatypes.JSONSlice[models.Plan]
	DiscussionTopic string
}

const profileDocumentID = 1

// GormProvider 以 gorm 資料表提供 mock 資料
type GormProvider struct {
	db *storage.Database

	debaters     baseRepository[models.Debater]
	debates      baseRepository[models.Debate]
	upcoming     baseRepository[models.UpcomingDebate]
	topics       baseRepository[models.Topic]
	rooms        baseRepository[models.Room]
	tournaments  baseRepository[models.Tournament]
	notices      baseRepository[models.Notification]
	scheduled    baseRepository[models.ScheduledDebate]
	messages     baseRepository[models.DiscussionMessage]
	panelists    baseRepository[models.Panelist]
	resources    baseRepository[models.Resource]
	participants baseRepository[models.RoomParticipant]
	chats        baseRepository[models.ChatMessage]
	opponents    baseRepository[models.Opponent]
	logins       baseRepository[models.LoginRecord]
	documents    baseRepository[profileDocument]
}

func NewGormProvider(db *storage.Database) *GormProvider {
	return &GormProvider{
		db:           db,
		debaters:     newBaseRepository[models.Debater](db),
		debates:      newBaseRepository[models.Debate](db),
		upcoming:     newBaseRepository[models.UpcomingDebate](db),
		topics:       newBaseRepository[models.Topic](db),
		rooms:        newBaseRepository[models.Room](db),
		tournaments:  newBaseRepository[models.Tournament](db),
		notices:      newBaseRepository[models.Notification](db),
		scheduled:    newBaseRepository[models.ScheduledDebate](db),
		messages:     newBaseRepository[models.DiscussionMessage](db),
		panelists:    newBaseRepository[models.Panelist](db),
		resources:    newBaseRepository[models.Resource](db),
		participants: newBaseRepository[models.RoomParticipant](db),
		chats:        newBaseRepository[models.ChatMessage](db),
		opponents:    newBaseRepository[models.Opponent](db),
		logins:       newBaseRepository[models.LoginRecord](db),
		documents:    newBaseRepository[profileDocument](db),
	}
}

// Migrate 建立所有資料表
func (p *GormProvider) Migrate() error {
	return p.db.AutoMigrate(
		&models.Debater{},
		&models.Debate{},
		&models.UpcomingDebate{},
		&models.Topic{},
		&models.Room{},
		&models.Tournament{},
		&models.Notification{},
		&models.ScheduledDebate{},
		&models.DiscussionMessage{},
		&models.Panelist{},
		&models.Resource{},
		&models.RoomParticipant{},
		&models.ChatMessage{},
		&models.Opponent{},
		&models.LoginRecord{},
		&profileDocument{},
	)
}

// Seed 以 fixtures 覆蓋所有資料表的內容，全部在同一個交易內完成
func (p *GormProvider) Seed(ctx context.Context, f *Fixtures) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return p.seed(ctx, tx, f)
	})
}

func (p *GormProvider) seed(ctx context.Context, tx *gorm.DB, f *Fixtures) error {
	steps := []struct {
		table string
		run   func() error
	}{
		{"debaters", func() error { return p.debaters.withTx(tx).Replace(ctx, f.Debaters) }},
		{"debates", func() error { return p.debates.withTx(tx).Replace(ctx, f.Debates) }},
		{"upcoming_debates", func() error { return p.upcoming.withTx(tx).Replace(ctx, f.UpcomingDebates) }},
		{"topics", func() error { return p.topics.withTx(tx).Replace(ctx, f.Topics) }},
		{"rooms", func() error { return p.rooms.withTx(tx).Replace(ctx, f.Rooms) }},
		{"tournaments", func() error { return p.tournaments.withTx(tx).Replace(ctx, f.Tournaments) }},
		{"notifications", func() error { return p.notices.withTx(tx).Replace(ctx, f.Notifications) }},
		{"scheduled_debates", func() error { return p.scheduled.withTx(tx).Replace(ctx, f.Scheduled) }},
		{"discussion_messages", func() error { return p.messages.withTx(tx).Replace(ctx, f.Discussion.Messages) }},
		{"panelists", func() error { return p.panelists.withTx(tx).Replace(ctx, f.Discussion.Panelists) }},
		{"resources", func() error { return p.resources.withTx(tx).Replace(ctx, f.Discussion.Resources) }},
		{"room_participants", func() error { return p.participants.withTx(tx).Replace(ctx, f.Participants) }},
		{"chat_messages", func() error { return p.chats.withTx(tx).Replace(ctx, f.ChatMessages) }},
		{"opponents", func() error { return p.opponents.withTx(tx).Replace(ctx, f.Opponents) }},
		{"login_records", func() error { return p.logins.withTx(tx).Replace(ctx, f.LoginHistory) }},
		{"profile_documents", func() error {
			return p.documents.withTx(tx).Replace(ctx, []profileDocument{{
				ID:              profileDocumentID,
				Settings:        datatypes.NewJSONType(f.Settings),
				Availability:    datatypes.NewJSONType(f.Availability),
				Stats:           datatypes.NewJSONType(f.Stats),
				Plans:           datatypes.NewJSONSlice(f.Plans),
				DiscussionTopic: f.Discussion.Topic,
			}})
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
	}
	return nil
}

func (p *GormProvider) ListDebates(ctx context.Context) ([]models.Debate, error) {
	return p.debates.FindAll(ctx, "id")
}

func (p *GormProvider) ListUpcomingDebates(ctx context.Context) ([]models.UpcomingDebate, error) {
	return p.upcoming.FindAll(ctx, "id")
}

func (p *GormProvider) ListRecommendedTopics(ctx context.Context) ([]models.Topic, error) {
	return p.topics.FindAll(ctx, "id")
}

func (p *GormProvider) ListRooms(ctx context.Context) ([]models.Room, error) {
	return p.rooms.FindAll(ctx, "id")
}

func (p *GormProvider) ListTournaments(ctx context.Context, kind models.TournamentKind) ([]models.Tournament, error) {
	return p.tournaments.FindAll(ctx, "position", "kind = ?", kind)
}

func (p *GormProvider) ListDebaters(ctx context.Context) ([]models.Debater, error) {
	return p.debaters.FindAll(ctx, "ranking")
}

func (p *GormProvider) GetDebater(ctx context.Context, id int) (*models.Debater, error) {
	d, err := p.debaters.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("debater %d: %w", id, err)
	}
	return d, nil
}

func (p *GormProvider) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return p.notices.FindAll(ctx, "id")
}

func (p *GormProvider) ListScheduledDebates(ctx context.Context) ([]models.ScheduledDebate, error) {
	return p.scheduled.FindAll(ctx, "id")
}

func (p *GormProvider) GetDiscussion(ctx context.Context) (*models.Discussion, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return nil, err
	}
	d := &models.Discussion{Topic: doc.DiscussionTopic}
	if d.Messages, err = p.messages.FindAll(ctx, "id"); err != nil {
		return nil, err
	}
	if d.Panelists, err = p.panelists.FindAll(ctx, "id"); err != nil {
		return nil, err
	}
	if d.Resources, err = p.resources.FindAll(ctx, "id"); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *GormProvider) ListRoomParticipants(ctx context.Context, kind models.RoomKind) ([]models.RoomParticipant, error) {
	return p.participants.FindAll(ctx, "id", "kind = ?", kind)
}

func (p *GormProvider) ListChatMessages(ctx context.Context, kind models.RoomKind) ([]models.ChatMessage, error) {
	return p.chats.FindAll(ctx, "id", "kind = ?", kind)
}

func (p *GormProvider) ListMatchCandidates(ctx context.Context) ([]models.Opponent, error) {
	return p.opponents.FindAll(ctx, "id")
}

func (p *GormProvider) ListLoginHistory(ctx context.Context) ([]models.LoginRecord, error) {
	return p.logins.FindAll(ctx, "id")
}

func (p *GormProvider) ListPlans(ctx context.Context) ([]models.Plan, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return nil, err
	}
	return []models.Plan(doc.Plans), nil
}

func (p *GormProvider) Settings(ctx context.Context) (models.Settings, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return doc.Settings.Data(), nil
}

func (p *GormProvider) Availability(ctx context.Context) (models.Availability, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return models.Availability{}, err
	}
	return doc.Availability.Data(), nil
}

func (p *GormProvider) Stats(ctx context.Context) (models.Stats, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	return doc.Stats.Data(), nil
}

func (p *GormProvider) document(ctx context.Context) (*profileDocument, error) {
	doc, err := p.documents.FindByID(ctx, profileDocumentID)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("profile document not seeded: %w", err)
	}
	return doc, err
}

var (
	_ Provider = (*GormProvider)(nil)
	_ Provider = (*MemoryProvider)(nil)
)
