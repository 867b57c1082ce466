package models

// User mirrors the legacy account schema. It is kept for wire
// compatibility with the original data model, but no route or service
// reads or writes it: this service does not enforce authentication.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
