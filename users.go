package betpro

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// User is a locally stored account record. It guards no actual resource; the
// list only lives in the local store next to the bets.
type User struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}

var ErrBadCredentials = errors.New("unknown email or wrong password")

// Register appends a new user to the list. The email must not already be
// taken; the password is stored as a bcrypt hash.
func Register(users []User, email, name, password string) ([]User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(name) == "" || password == "" {
		return nil, fmt.Errorf("email, name and password are all required")
	}
	for _, u := range users {
		if u.Email == email {
			return nil, fmt.Errorf("email %q is already registered", email)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("cannot hash password: %w", err)
	}
	return append(users, User{Email: email, Name: name, PasswordHash: string(hash)}), nil
}

// Authenticate validates the credentials against the stored user list.
func Authenticate(users []User, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return User{}, ErrBadCredentials
		}
		return u, nil
	}
	return User{}, ErrBadCredentials
}
