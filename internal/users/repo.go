package users

import "context"

// ErrNotFound is returned for unknown users.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

// Repo stores users.
type Repo interface {
	Create(ctx context.Context, username, password string) (User, error)
	Get(ctx context.Context, id int) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
