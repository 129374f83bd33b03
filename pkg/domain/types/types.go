package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type SessionID string

func (x SessionID) String() string {
	return string(x)
}

func NewSessionID() SessionID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return SessionID(id.String())
}

func (x SessionID) Validate() error {
	if x == EmptySessionID {
		return goerr.New("empty session ID")
	}
	if _, err := uuid.Parse(string(x)); err != nil {
		return goerr.Wrap(err, "invalid session ID format", goerr.V("id", x))
	}
	return nil
}

const (
	EmptySessionID SessionID = ""
)

// ReferenceCategory identifies one of the controlled vocabularies a
// session record draws its values from.
type ReferenceCategory string

const (
	CategoryCoaches      ReferenceCategory = "coaches"
	CategoryCoachees     ReferenceCategory = "coachees"
	CategorySessionTypes ReferenceCategory = "sessionTypes"
	CategoryFocusAreas   ReferenceCategory = "focusAreas"
	CategoryStatuses     ReferenceCategory = "statuses"
)

func (x ReferenceCategory) String() string {
	return string(x)
}

func AllReferenceCategories() []ReferenceCategory {
	return []ReferenceCategory{
		CategoryCoaches,
		CategoryCoachees,
		CategorySessionTypes,
		CategoryFocusAreas,
		CategoryStatuses,
	}
}

func (x ReferenceCategory) Validate() error {
	switch x {
	case CategoryCoaches, CategoryCoachees, CategorySessionTypes, CategoryFocusAreas, CategoryStatuses:
		return nil
	}
	return goerr.New("unknown reference category", goerr.V("category", x))
}
