package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"betpro"
	"betpro/store"

	"github.com/google/subcommands"
)

// loadUsers reads the locally stored user list. Corrupt data fails soft to an
// empty list, like the bet collection.
func loadUsers(s store.Store) []betpro.User {
	data, err := s.Get(store.KeyUsers)
	if err != nil {
		return nil
	}
	var users []betpro.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("warning: discarding corrupt user list: %v", err)
		return nil
	}
	return users
}

func saveUsers(s store.Store, users []betpro.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("cannot encode users: %w", err)
	}
	return s.Put(store.KeyUsers, data)
}

type registerCmd struct {
	email    string
	name     string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a local user account" }
func (*registerCmd) Usage() string {
	return `bp register -email <email> -name <name> -password <password>

  Creates a user record in the local store. The password is kept as a bcrypt
  hash. Duplicate emails are rejected.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.name, "name", "", "Display name")
	f.StringVar(&c.password, "password", "", "Password")
}

func (c *registerCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	users, err := betpro.Register(loadUsers(s), c.email, c.name, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := saveUsers(s, users); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered %s\n", c.email)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "validate credentials against the local user list" }
func (*loginCmd) Usage() string {
	return `bp login -email <email> -password <password>

  Validates the credentials against the locally stored user list.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.password, "password", "", "Password")
}

func (c *loginCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	user, err := betpro.Authenticate(loadUsers(s), c.email, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Welcome back, %s\n", user.Name)
	return subcommands.ExitSuccess
}
