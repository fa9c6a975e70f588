package queries

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	// DefaultActivityLimit is used when the caller does not ask for a size.
	DefaultActivityLimit = 20
	// MaxActivityLimit caps a single page of the feed.
	MaxActivityLimit = 100
)

var ErrGetActivityFeedQueryIsNotConstructed = errors.New(
	"GetActivityFeedQuery must be created via NewGetActivityFeedQuery constructor",
)

// GetActivityFeedQuery returns the latest domain events, newest first.
type GetActivityFeedQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewGetActivityFeedQuery accepts 0 (meaning DefaultActivityLimit) up to MaxActivityLimit.
func NewGetActivityFeedQuery(limit int) (GetActivityFeedQuery, error) {
	if limit == 0 {
		limit = DefaultActivityLimit
	}
	if limit < 0 || limit > MaxActivityLimit {
		return GetActivityFeedQuery{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"limit", limit, 1, MaxActivityLimit, fmt.Errorf("feed pages hold at most %d entries", MaxActivityLimit))
	}
	return GetActivityFeedQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActivityFeedQuery) Validate() error {
	return q.guard.Validate(ErrGetActivityFeedQueryIsNotConstructed)
}

func (q GetActivityFeedQuery) Limit() int {
	return q.limit
}
