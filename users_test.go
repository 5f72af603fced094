package betpro

import (
	"errors"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	users, err := Register(nil, "Ana@Example.com", "Ana", "s3cret")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("len(users) = %d, want 1", len(users))
	}
	if users[0].Email != "ana@example.com" {
		t.Errorf("Email = %q, want normalized lower case", users[0].Email)
	}
	if users[0].PasswordHash == "s3cret" || users[0].PasswordHash == "" {
		t.Error("PasswordHash stored in clear or empty")
	}

	u, err := Authenticate(users, "ANA@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if u.Name != "Ana" {
		t.Errorf("Name = %q, want Ana", u.Name)
	}

	if _, err := Authenticate(users, "ana@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Authenticate(wrong password) error = %v, want ErrBadCredentials", err)
	}
	if _, err := Authenticate(users, "bob@example.com", "s3cret"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Authenticate(unknown email) error = %v, want ErrBadCredentials", err)
	}
}

func TestRegister_Rejections(t *testing.T) {
	users, err := Register(nil, "ana@example.com", "Ana", "s3cret")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := Register(users, "ANA@example.com ", "Other", "pw"); err == nil {
		t.Error("Register() with a taken email error = nil, want rejection")
	}
	if _, err := Register(users, "", "Name", "pw"); err == nil {
		t.Error("Register() without email error = nil, want rejection")
	}
	if _, err := Register(users, "x@example.com", "", "pw"); err == nil {
		t.Error("Register() without name error = nil, want rejection")
	}
	if _, err := Register(users, "x@example.com", "Name", ""); err == nil {
		t.Error("Register() without password error = nil, want rejection")
	}
}
