package service

import (
	"log/slog"

	"d23_web/internal/repository"
	"d23_web/pkg/config"
)

type Services struct {
	Sessions *Sessions
	Hub      *Hub
	Pages    *Pages
}

func NewServices(provider repository.Provider, cfg *config.Config, log *slog.Logger) *Services {
	hub := NewHub(log)
	pages := NewPages(provider, cfg.Sim, log)
	return &Services{
		Sessions: NewSessions(pages, hub, cfg.Session.TTL, log),
		Hub:      hub,
		Pages:    pages,
	}
}
