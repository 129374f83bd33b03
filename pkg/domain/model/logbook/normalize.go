package logbook

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PaulNichols/coachlog/pkg/domain/types"
	"github.com/PaulNichols/coachlog/pkg/utils/clock"
)

// NormalizeDocument shapes arbitrary decoded JSON into a Document that
// satisfies the model invariants. Reference lists are trimmed and
// stripped of empty entries but NOT deduplicated: uniqueness is enforced
// at insert time only, so a hand-edited file with duplicates loads
// as-is. A category that is missing or not a sequence falls back to the
// built-in defaults. Normalization is idempotent.
func NormalizeDocument(ctx context.Context, raw any) *Document {
	defaults := DefaultDocument()
	doc := &Document{
		ReferenceData: make(map[types.ReferenceCategory][]string, len(defaults.ReferenceData)),
		Sessions:      []*Session{},
	}

	rawObj, _ := raw.(map[string]any)
	rawReference, _ := rawObj["referenceData"].(map[string]any)

	for _, category := range types.AllReferenceCategories() {
		values, ok := rawReference[category.String()].([]any)
		if !ok {
			doc.ReferenceData[category] = append([]string{}, defaults.ReferenceData[category]...)
			continue
		}

		list := []string{}
		for _, item := range values {
			value, _ := item.(string)
			if value = strings.TrimSpace(value); value != "" {
				list = append(list, value)
			}
		}
		doc.ReferenceData[category] = list
	}

	if rawSessions, ok := rawObj["sessions"].([]any); ok {
		for _, item := range rawSessions {
			if session, ok := NormalizeSession(ctx, item); ok {
				doc.Sessions = append(doc.Sessions, session)
			}
		}
	}

	return doc
}

// NormalizeSession coerces one decoded JSON value into a Session.
// Missing ID and CreatedAt are stamped here so legacy records survive a
// reload. Returns false when the minimal validity bar is not met: date,
// coach and coachee must be non-blank after trimming.
func NormalizeSession(ctx context.Context, raw any) (*Session, bool) {
	rawObj, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}

	session := &Session{
		ID:          types.SessionID(trimmedString(rawObj["id"])),
		Date:        trimmedString(rawObj["date"]),
		Coach:       trimmedString(rawObj["coach"]),
		Coachee:     trimmedString(rawObj["coachee"]),
		SessionType: trimmedString(rawObj["sessionType"]),
		FocusArea:   trimmedString(rawObj["focusArea"]),
		Status:      trimmedString(rawObj["status"]),
		Duration:    ParseDuration(rawObj["duration"]),
		FollowUp:    trimmedString(rawObj["followUp"]),
		Highlights:  trimmedString(rawObj["highlights"]),
		Actions:     trimmedString(rawObj["actions"]),
		CreatedAt:   trimmedString(rawObj["createdAt"]),
	}

	if session.Date == "" || session.Coach == "" || session.Coachee == "" {
		return nil, false
	}

	if session.ID == types.EmptySessionID {
		session.ID = types.NewSessionID()
	}
	if session.CreatedAt == "" {
		session.CreatedAt = clock.Now(ctx).UTC().Format(time.RFC3339Nano)
	}

	return session, true
}

// ParseDuration applies the permissive-input/strict-output rule for
// session duration: a finite number >= 0, or a string parsing to one
// after trimming, yields that number; everything else yields absent.
func ParseDuration(value any) *float64 {
	switch v := value.(type) {
	case float64:
		if v >= 0 {
			return &v
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err == nil && parsed >= 0 && !math.IsInf(parsed, 0) {
			return &parsed
		}
	}
	return nil
}

func trimmedString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}
