package userservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"bloglist/internal/common"
)

func setupTestService(t *testing.T) (*UserService, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)

	return NewUserService(db, nil, testSecret), db
}

func countUsers(t *testing.T, db *sql.DB) int {
	var n int
	err := db.QueryRow("SELECT count(*) FROM users").Scan(&n)
	assert.NoError(t, err)
	return n
}

func TestCreateUser(t *testing.T) {
	s, db := setupTestService(t)

	t.Run("valid user", func(t *testing.T) {
		user, err := s.CreateUser(context.Background(), "mariano", "Mariano Rivera", "", "secret")
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "mariano", user.Username)
		assert.Equal(t, "Mariano Rivera", user.Name)
		assert.Empty(t, user.Blogs)
		assert.Equal(t, 1, countUsers(t, db))
	})

	t.Run("duplicate username", func(t *testing.T) {
		user, err := s.CreateUser(context.Background(), "mariano", "Another Mariano", "", "secret")
		assert.ErrorIs(t, err, ErrDuplicateUsername)
		assert.Nil(t, user)
		assert.Equal(t, 1, countUsers(t, db))
	})

	t.Run("username too short", func(t *testing.T) {
		user, err := s.CreateUser(context.Background(), "ab", "", "", "secret")
		assert.ErrorIs(t, err, ErrUsernameTooShort)
		assert.Nil(t, user)
		assert.Equal(t, 1, countUsers(t, db))
	})

	t.Run("password too short", func(t *testing.T) {
		user, err := s.CreateUser(context.Background(), "another", "", "", "ab")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
		assert.Nil(t, user)
		assert.Equal(t, 1, countUsers(t, db))
	})

	t.Run("hash is stored instead of the password", func(t *testing.T) {
		var hash []byte
		err := db.QueryRow("SELECT password_hash FROM users WHERE username = $1", "mariano").Scan(&hash)
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, []byte("secret"), hash)
	})
}

func TestLoginUser(t *testing.T) {
	s, _ := setupTestService(t)

	_, err := s.CreateUser(context.Background(), "mariano", "Mariano Rivera", "", "secret")
	assert.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := s.LoginUser(context.Background(), "mariano", "secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "mariano", result.Username)
		assert.Equal(t, "Mariano Rivera", result.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		result, err := s.LoginUser(context.Background(), "mariano", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailure)
		assert.Nil(t, result)
	})

	t.Run("unknown user", func(t *testing.T) {
		result, err := s.LoginUser(context.Background(), "nobody", "secret")
		assert.ErrorIs(t, err, ErrAuthenticationFailure)
		assert.Nil(t, result)
	})
}

func TestGetUserByAccessToken(t *testing.T) {
	s, _ := setupTestService(t)

	created, err := s.CreateUser(context.Background(), "mariano", "Mariano Rivera", "", "secret")
	assert.NoError(t, err)

	result, err := s.LoginUser(context.Background(), "mariano", "secret")
	assert.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		user, err := s.GetUserByAccessToken(context.Background(), result.Token)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "mariano", user.Username)
	})

	t.Run("tampered token", func(t *testing.T) {
		user, err := s.GetUserByAccessToken(context.Background(), result.Token+"x")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, user)
	})
}

func TestGetUsers(t *testing.T) {
	s, db := setupTestService(t)

	t.Run("empty store", func(t *testing.T) {
		users, err := s.GetUsers(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("users with blogs expanded", func(t *testing.T) {
		first, err := s.CreateUser(context.Background(), "writer", "A Writer", "", "secret")
		assert.NoError(t, err)

		_, err = s.CreateUser(context.Background(), "reader", "A Reader", "", "secret")
		assert.NoError(t, err)

		_, err = db.Exec("INSERT INTO blogs (title, author, url, likes, user_id) VALUES ($1, $2, $3, $4, $5)",
			"A Blog", "Some Author", "http://example.com", 2, first.ID)
		assert.NoError(t, err)

		users, err := s.GetUsers(context.Background())
		assert.NoError(t, err)
		assert.Len(t, users, 2)

		byName := map[string]User{}
		for _, u := range users {
			byName[u.Username] = u
		}

		assert.Len(t, byName["writer"].Blogs, 1)
		assert.Equal(t, "A Blog", byName["writer"].Blogs[0].Title)
		assert.Empty(t, byName["reader"].Blogs)
	})
}
