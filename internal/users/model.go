package users

// User is an authentication scaffold. No survey flow exercises it yet.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
