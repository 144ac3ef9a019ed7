package user

// User is the authenticated profile held for the app's lifetime. It never
// carries the password: Record is the wire shape, and it is stripped before
// anything is persisted or handed to the rest of the app.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// Record is what the remote /users resource actually stores and returns:
// the profile plus the plaintext credential.
type Record struct {
	User
	Password string `json:"password"`
}

// Stripped returns the profile without the credential.
func (r Record) Stripped() User {
	return r.User
}
