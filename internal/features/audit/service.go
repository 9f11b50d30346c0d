// Package audit — service.go serializes operation inputs into the log.
package audit

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"
)

// Service records operation intent into the append-only log.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Record appends one entry with the operation's inputs as JSON.
// An audit failure after the domain mutation succeeded is NOT compensated:
// the mutation stands and the gap is logged. Callers treat the returned
// error as a warning, not a rollback trigger.
func (s *Service) Record(ctx context.Context, action string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).WithField("action", action).Warn("audit payload not serializable")
		data = []byte("{}")
	}
	return s.repo.Append(ctx, action, data)
}

// Tail returns the latest entries for the /undo surface.
func (s *Service) Tail(ctx context.Context, limit int) ([]*Entry, error) {
	return s.repo.Tail(ctx, limit)
}
