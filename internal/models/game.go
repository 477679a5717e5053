package models

import "time"

type Game struct {
	Code            string       `gorm:"primaryKey;size:6" json:"code"`
	HostID          string       `gorm:"size:64;not null;index" json:"host_id"`
	Questions       QuestionList `gorm:"type:jsonb;not null" json:"questions"`
	TimePerQuestion int          `gorm:"not null;default:30" json:"time_per_question"`
	Status          string       `gorm:"size:20;not null;default:'waiting'" json:"status"`
	CurrentQuestion int          `gorm:"not null;default:0" json:"current_question"`
	Players         PlayerList   `gorm:"type:jsonb" json:"players"`
	StartedAt       *time.Time   `json:"started_at,omitempty"`
	EndedAt         *time.Time   `json:"ended_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

const (
	GameStatusWaiting    = "waiting"
	GameStatusInProgress = "in-progress"
	GameStatusCompleted  = "completed"
)

// Player returns the roster entry for userID, or nil.
func (g *Game) Player(userID string) *Player {
	for i := range g.Players {
		if g.Players[i].UserID == userID {
			return &g.Players[i]
		}
	}
	return nil
}

// AllAnswered reports whether every joined player has an answer recorded
// for the given question index.
func (g *Game) AllAnswered(questionIndex int) bool {
	for i := range g.Players {
		if !g.Players[i].HasAnswered(questionIndex) {
			return false
		}
	}
	return len(g.Players) > 0
}

// Clone returns a deep copy so callers can never alias stored state.
func (g *Game) Clone() *Game {
	out := *g
	out.Questions = make(QuestionList, len(g.Questions))
	for i, q := range g.Questions {
		q.Options = append([]string(nil), q.Options...)
		out.Questions[i] = q
	}
	out.Players = make(PlayerList, len(g.Players))
	for i, p := range g.Players {
		p.Answers = append([]Answer(nil), p.Answers...)
		out.Players[i] = p
	}
	if g.StartedAt != nil {
		t := *g.StartedAt
		out.StartedAt = &t
	}
	if g.EndedAt != nil {
		t := *g.EndedAt
		out.EndedAt = &t
	}
	return &out
}
