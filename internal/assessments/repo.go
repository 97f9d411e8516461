package assessments

import "context"

// ErrNotFound is returned for unknown assessment IDs.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "assessment not found" }

// Repo stores assessments. Create assigns the ID and creation timestamp;
// AttachAnalysis sets the analysis for an existing assessment.
type Repo interface {
	Create(ctx context.Context, a Assessment) (Assessment, error)
	Get(ctx context.Context, id int) (Assessment, error)
	AttachAnalysis(ctx context.Context, id int, analysis Analysis) (Assessment, error)
}
