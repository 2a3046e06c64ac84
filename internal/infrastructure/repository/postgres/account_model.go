package postgres

import "time"

type accountTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	State     string    `db:"state"`
	District  string    `db:"district"`
	ImageURL  string    `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
}
