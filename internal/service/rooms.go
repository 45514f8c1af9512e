package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"d23_web/internal/chart"
	"d23_web/internal/models"
	"d23_web/internal/viewstate"
)

// Reactions 是辯論室的反應計數，點擊時在本地直接加一
type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
	Stars    int `json:"stars"`
}

// roomPage 同時服務 AI 辯論室與多隊辯論室，差別只在資料種類與圖表
type roomPage struct {
	*basePage

	kind      models.RoomKind
	tab       *viewstate.Selector
	mountedAt time.Time

	participants []models.RoomParticipant
	chats        []models.ChatMessage
	speaker      string
	reactions    Reactions

	muted    bool
	videoOn  bool
	controls bool
}

func newAIRoomPage(ctx context.Context, e *env) (Page, error) {
	return newRoomPage(ctx, e, PageAIDebateRoom, models.RoomKindAI)
}

func newGroupRoomPage(ctx context.Context, e *env) (Page, error) {
	return newRoomPage(ctx, e, PageGroupDebateRoom, models.RoomKindGroup)
}

func newRoomPage(ctx context.Context, e *env, name string, kind models.RoomKind) (Page, error) {
	p := &roomPage{
		basePage:  newBasePage(name, e),
		kind:      kind,
		mountedAt: e.now(),
		speaker:   "Sarah Mitchell",
		reactions: Reactions{Likes: 24, Dislikes: 3, Stars: 12},
		videoOn:   true,
		controls:  true,
	}
	p.tab = p.selector("tab", "chat", "arguments", "notes", "rules")

	var err error
	if p.participants, err = e.provider.ListRoomParticipants(ctx, kind); err != nil {
		return nil, err
	}
	if p.chats, err = e.provider.ListChatMessages(ctx, kind); err != nil {
		return nil, err
	}
	for _, rp := range p.participants {
		if rp.Speaking {
			p.speaker = rp.Name
			break
		}
	}

	p.handle("toggleMute", func(context.Context, json.RawMessage) error {
		p.muted = !p.muted
		return nil
	})
	p.handle("toggleVideo", func(context.Context, json.RawMessage) error {
		p.videoOn = !p.videoOn
		return nil
	})
	p.handle("toggleControls", func(context.Context, json.RawMessage) error {
		p.controls = !p.controls
		return nil
	})
	p.handle("react", p.react)
	return p, nil
}

type roomData struct {
	Kind           models.RoomKind          `json:"kind"`
	Participants   []models.RoomParticipant `json:"participants"`
	Chat           []models.ChatMessage     `json:"chat"`
	CurrentSpeaker string                   `json:"currentSpeaker"`
	TimeRemaining  int                      `json:"timeRemaining"`
	Clock          string                   `json:"clock"`
	Reactions      Reactions                `json:"reactions"`
	Muted          bool                     `json:"muted"`
	VideoOn        bool                     `json:"videoOn"`
	ShowControls   bool                     `json:"showControls"`
	Chart          chart.Option             `json:"chart"`
}

func (p *roomPage) View(ctx context.Context) (*View, error) {
	remaining := countdown(p.mountedAt, p.env.now(), speakingTime)
	scores := chart.SpeakerScores()
	if p.kind == models.RoomKindGroup {
		scores = chart.TeamScores()
	}
	return p.view(roomData{
		Kind:           p.kind,
		Participants:   p.participants,
		Chat:           p.chats,
		CurrentSpeaker: p.speaker,
		TimeRemaining:  remaining,
		Clock:          clock(remaining),
		Reactions:      p.reactions,
		Muted:          p.muted,
		VideoOn:        p.videoOn,
		ShowControls:   p.controls,
		Chart:          scores,
	}), nil
}

func (p *roomPage) react(ctx context.Context, body json.RawMessage) error {
	in, err := bind[struct {
		Type string `json:"type" label:"Reaction" validate:"required,oneof=likes dislikes stars"`
	}](body)
	if err != nil {
		return err
	}
	switch in.Type {
	case "likes":
		p.reactions.Likes++
	case "dislikes":
		p.reactions.Dislikes++
	case "stars":
		p.reactions.Stars++
	default:
		return fmt.Errorf("%w: reaction %q", ErrInvalidPayload, in.Type)
	}
	return nil
}
