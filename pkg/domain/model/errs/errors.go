package errs

import (
	"errors"
)

// ErrNoDocument is returned by a repository when no document has been
// persisted yet. The caller seeds defaults on first boot.
var ErrNoDocument = errors.New("state document does not exist")
