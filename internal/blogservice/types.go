package blogservice

import (
	"database/sql"
	"time"
)

type Blog struct {
	ID        int       `json:"id,string"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	UserID    int       `json:"-"`
	User      Creator   `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Creator is the owning user projection attached to blog reads.
type Creator struct {
	ID       int    `json:"id,string"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}
