package places

import (
	"context"

	"lp-server/models"
)

// PlacesAPI defines the interface for fetching candidate places near a
// request's origin. Implemented by the live upstream client and by the
// deterministic mock generator; the orchestrator never cares which.
type PlacesAPI interface {
	SearchNearby(ctx context.Context, req models.SearchRequest) ([]models.RawPlace, error)
}
