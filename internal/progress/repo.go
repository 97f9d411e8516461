package progress

import "context"

// ErrNotFound is returned for unknown progress IDs.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "progress not found" }

// Repo stores progress snapshots. IDs live in their own namespace,
// independent of assessment IDs.
type Repo interface {
	Create(ctx context.Context, p Progress) (Progress, error)
	Get(ctx context.Context, id int) (Progress, error)
}
