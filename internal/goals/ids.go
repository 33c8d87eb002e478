package goals

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/akyairhashvil/goalpad/internal/config"
	"github.com/google/uuid"
)

// IDFunc produces a new goal identifier.
type IDFunc func() string

// NewUUID returns a random (version 4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// NewCounterIDs returns an IDFunc yielding goal-1, goal-2, ... Safe for
// concurrent use.
func NewCounterIDs() IDFunc {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("goal-%d", n.Add(1))
	}
}

// IDFuncFor maps a configured identifier scheme to its generator.
func IDFuncFor(scheme string) (IDFunc, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "", config.IDSchemeUUID:
		return NewUUID, nil
	case config.IDSchemeCounter:
		return NewCounterIDs(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDScheme, scheme)
	}
}
