package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Points        int      `json:"points"`
}

// QuestionList stores the full question set as a single jsonb column.
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *QuestionList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for QuestionList", src)
}
