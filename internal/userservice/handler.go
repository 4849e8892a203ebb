package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"bloglist/internal/common"
)

var ErrAuthenticationFailure = errors.New("invalid username or password")

// NewUserService wires the user domain. mb may be nil when no message broker is
// available, in which case user.created events are not published.
func NewUserService(db *sql.DB, mb common.MessageProducer, secret []byte) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		secret: secret,
	}
}

// CreateUser validates and persists a new user account. When the optional
// email is present a user.created event is published for the welcome mail;
// publishing is best effort and never fails the registration.
func (s *UserService) CreateUser(ctx context.Context, username, name, email, password string) (*User, error) {
	if err := validateNewUser(username, password, email); err != nil {
		return nil, err
	}

	u := User{
		Username: username,
		Name:     name,
		Email:    email,
		Blogs:    []BlogSummary{},
	}

	if err := u.Password.set(password); err != nil {
		return nil, err
	}

	if err := s.m.insertUser(ctx, &u); err != nil {
		return nil, err
	}

	if s.mb != nil && u.Email != "" {
		data := struct {
			Email    string
			Username string
		}{
			Email:    u.Email,
			Username: u.Username,
		}

		if payload, err := json.Marshal(data); err == nil {
			_ = s.mb.Publish(ctx, payload, common.UserCreatedKey, common.UserExchange)
		}
	}

	return &u, nil
}

// GetUsers returns all users with their owned blogs expanded.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsersWithBlogs(ctx)
}

// LoginUser checks the credentials and issues a signed access token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.m.getUserByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrAuthenticationFailure
	}

	token, err := newAccessToken(s.secret, user.ID, AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// GetUserByAccessToken verifies the token signature and expiry, then resolves
// the embedded user identifier against the store.
func (s *UserService) GetUserByAccessToken(ctx context.Context, token string) (*User, error) {
	userID, err := parseAccessToken(s.secret, token)
	if err != nil {
		return nil, err
	}

	return s.m.getUserByID(ctx, userID)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
