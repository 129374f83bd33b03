package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
	"github.com/PaulNichols/coachlog/pkg/domain/types"
	"github.com/PaulNichols/coachlog/pkg/utils/clock"
)

// requiredSessionFields must be non-blank after trimming for a session
// submitted through the API. This is stricter than the load-time bar in
// NormalizeSession, which only demands date, coach and coachee.
var requiredSessionFields = []string{"date", "coach", "coachee", "sessionType", "focusArea", "status"}

// CreateSession validates the raw payload, stores the new session at the
// head of the sequence (newest-first) and returns it.
func (u *UseCases) CreateSession(ctx context.Context, payload map[string]any) (*logbook.Session, error) {
	fields := map[string]string{}
	for _, field := range requiredSessionFields {
		value, _ := payload[field].(string)
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, goerr.New(`field "`+field+`" is required`,
				goerr.T(errs.TagValidation), goerr.V("field", field))
		}
		fields[field] = value
	}

	session := &logbook.Session{
		ID:          types.NewSessionID(),
		Date:        fields["date"],
		Coach:       fields["coach"],
		Coachee:     fields["coachee"],
		SessionType: fields["sessionType"],
		FocusArea:   fields["focusArea"],
		Status:      fields["status"],
		Duration:    logbook.ParseDuration(payload["duration"]),
		FollowUp:    trimmed(payload["followUp"]),
		Highlights:  trimmed(payload["highlights"]),
		Actions:     trimmed(payload["actions"]),
		CreatedAt:   clock.Now(ctx).UTC().Format(time.RFC3339Nano),
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.doc.Sessions = append([]*logbook.Session{session}, u.doc.Sessions...)

	if err := u.persist(ctx); err != nil {
		return nil, err
	}
	return session.Clone(), nil
}

func trimmed(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}
