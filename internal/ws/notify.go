package ws

import (
	"encoding/json"
	"time"

	"talent-match/internal/usecase"

	"github.com/google/uuid"
)

type matchAlertEvent struct {
	Type        string   `json:"type"`
	JobID       string   `json:"job_id"`
	JobTitle    string   `json:"job_title"`
	CandidateID string   `json:"candidate_id"`
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons"`
	Timestamp   string   `json:"timestamp"`
}

// Notifier adapts the hub to the application usecase's alert interface.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyMatchAlert(userID uuid.UUID, alert usecase.MatchAlert) {
	if n == nil || n.hub == nil {
		return
	}

	evt := matchAlertEvent{
		Type:        "match_alert",
		JobID:       alert.JobID.String(),
		JobTitle:    alert.JobTitle,
		CandidateID: alert.CandidateID.String(),
		Score:       alert.Score,
		Reasons:     alert.Reasons,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.SendToUser(userID, b)
}
