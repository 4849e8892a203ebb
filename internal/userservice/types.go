package userservice

import (
	"database/sql"
	"time"

	"bloglist/internal/common"
)

// AccessTokenTTL bounds how long an issued login token stays valid.
const AccessTokenTTL = 24 * time.Hour

var AnonymousUser = User{}

type UserService struct {
	m      *DBModel
	mb     common.MessageProducer
	secret []byte
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID       int      `json:"id,string"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Password Password `json:"-"`
	// Blogs holds the blogs owned by the user, resolved by join on listing.
	Blogs     []BlogSummary `json:"blogs"`
	CreatedAt time.Time     `json:"created_at"`
}

// BlogSummary is the owned-blog projection embedded in user listings.
type BlogSummary struct {
	ID     int    `json:"id,string"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// LoginResult is the payload returned on successful authentication.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
