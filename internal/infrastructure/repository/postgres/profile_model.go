package postgres

import "time"

type profileTableModel struct {
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	Sport        string    `db:"sport"`
	State        string    `db:"state"`
	ProfileImage string    `db:"profile_image"`
	UpdatedAt    time.Time `db:"updated_at"`
}
