package domain

import "time"

// Gender is the self-reported gender captured at registration. Input is
// case-insensitive and normalized to lowercase before it reaches here.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User is the domain model for registered accounts. Email is the natural
// login identifier and the key tweets reference their author by; ID is a
// storage surrogate assigned by the repository (0 = not yet persisted).
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Gender       Gender
	DateOfBirth  *time.Time
	Email        string
	PasswordHash string
	LoggedIn     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
