package account

import "time"

// Record is an athlete's registered account. Location fields are filled at
// signup and may be empty for older accounts.
type Record struct {
	ID        string
	Name      string
	FirstName string
	LastName  string
	Email     string
	Username  string
	State     string
	District  string
	ImageURL  string
	CreatedAt time.Time
}
