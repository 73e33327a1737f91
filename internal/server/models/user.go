package models

// User is the account record. The username doubles as the public user id
// the client logs in with; ID is the internal primary key.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
}
