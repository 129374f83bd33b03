package logbook

import (
	"github.com/PaulNichols/coachlog/pkg/domain/types"
)

// Document is the aggregate root of the logbook: the controlled
// vocabularies plus every recorded session. All five reference category
// keys are always present, even when empty.
type Document struct {
	ReferenceData map[types.ReferenceCategory][]string `json:"referenceData"`
	Sessions      []*Session                           `json:"sessions"`
}

// DefaultDocument returns the seed state for a fresh installation. The
// first entry of each list acts as the default choice in the client.
func DefaultDocument() *Document {
	return &Document{
		ReferenceData: map[types.ReferenceCategory][]string{
			types.CategoryCoaches:      {"Alex Morgan", "Priya Patel", "Jonas Eriksen"},
			types.CategoryCoachees:     {"Jordan Lee", "Mina Chen", "Samuel Ortiz", "Taylor Brooks"},
			types.CategorySessionTypes: {"1:1 Coaching", "Career Planning", "Onboarding Support", "Performance Review"},
			types.CategoryFocusAreas:   {"Leadership", "Communication", "Strategy", "Well-being"},
			types.CategoryStatuses:     {"Scheduled", "Completed", "Rescheduled", "Cancelled"},
		},
		Sessions: []*Session{},
	}
}

func (x *Document) Clone() *Document {
	if x == nil {
		return nil
	}
	copied := &Document{
		ReferenceData: make(map[types.ReferenceCategory][]string, len(x.ReferenceData)),
		Sessions:      make([]*Session, 0, len(x.Sessions)),
	}
	for category, values := range x.ReferenceData {
		copied.ReferenceData[category] = append([]string{}, values...)
	}
	for _, session := range x.Sessions {
		copied.Sessions = append(copied.Sessions, session.Clone())
	}
	return copied
}

// IsValueInUse reports whether any session references the exact value in
// the field governed by the category. Linear scan: the log is personal
// scale, not a search index.
func (x *Document) IsValueInUse(category types.ReferenceCategory, value string) bool {
	for _, session := range x.Sessions {
		if session.FieldValue(category) == value {
			return true
		}
	}
	return false
}
