package profile

import "time"

// Record is the optional self-maintained athlete profile. It intentionally
// carries no district field; district only exists on the account record.
type Record struct {
	UserID       string
	Name         string
	Sport        string
	State        string
	ProfileImage string
	UpdatedAt    time.Time
}
