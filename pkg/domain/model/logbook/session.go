package logbook

import (
	"github.com/PaulNichols/coachlog/pkg/domain/types"
)

// Session is one recorded coaching conversation. ID and CreatedAt are
// set once at creation and never change afterwards.
type Session struct {
	ID          types.SessionID `json:"id"`
	Date        string          `json:"date"`
	Coach       string          `json:"coach"`
	Coachee     string          `json:"coachee"`
	SessionType string          `json:"sessionType"`
	FocusArea   string          `json:"focusArea"`
	Status      string          `json:"status"`
	Duration    *float64        `json:"duration"`
	FollowUp    string          `json:"followUp"`
	Highlights  string          `json:"highlights"`
	Actions     string          `json:"actions"`
	CreatedAt   string          `json:"createdAt"`
}

// FieldValue returns the session field that a reference category
// governs. An unknown category yields an empty string.
func (x *Session) FieldValue(category types.ReferenceCategory) string {
	switch category {
	case types.CategoryCoaches:
		return x.Coach
	case types.CategoryCoachees:
		return x.Coachee
	case types.CategorySessionTypes:
		return x.SessionType
	case types.CategoryFocusAreas:
		return x.FocusArea
	case types.CategoryStatuses:
		return x.Status
	}
	return ""
}

func (x *Session) Clone() *Session {
	if x == nil {
		return nil
	}
	copied := *x
	if x.Duration != nil {
		d := *x.Duration
		copied.Duration = &d
	}
	return &copied
}
