package queries

import (
	"context"
	"time"

	"warehouse/internal/core/ports"
)

// ActivityResponse is one entry of the activity feed.
type ActivityResponse struct {
	ID          string
	Name        string
	AggregateID string
	OccurredAt  time.Time
	Attributes  map[string]string
}

type GetActivityFeedQueryHandler struct {
	feed ports.ActivityFeed
}

func NewGetActivityFeedQueryHandler(feed ports.ActivityFeed) GetActivityFeedQueryHandler {
	return GetActivityFeedQueryHandler{feed: feed}
}

func (h GetActivityFeedQueryHandler) Handle(
	ctx context.Context,
	query GetActivityFeedQuery,
) ([]ActivityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events, err := h.feed.Recent(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	responses := make([]ActivityResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, ActivityResponse{
			ID:          e.EventID().String(),
			Name:        e.EventName(),
			AggregateID: e.AggregateID(),
			OccurredAt:  e.OccurredAt(),
			Attributes:  e.Attributes(),
		})
	}
	return responses, nil
}
