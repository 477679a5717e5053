package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Player struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Answers  []Answer  `json:"answers"`
	JoinedAt time.Time `json:"joined_at"`
}

type Answer struct {
	QuestionIndex int       `json:"question_index"`
	Answer        int       `json:"answer"`
	IsCorrect     bool      `json:"is_correct"`
	Points        int       `json:"points"`
	AnsweredAt    time.Time `json:"answered_at"`
}

// HasAnswered reports whether the player already has an answer for the
// given question index.
func (p *Player) HasAnswered(questionIndex int) bool {
	for _, a := range p.Answers {
		if a.QuestionIndex == questionIndex {
			return true
		}
	}
	return false
}

// PlayerList stores the roster as a single jsonb column.
type PlayerList []Player

func (l PlayerList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *PlayerList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for PlayerList", src)
}
