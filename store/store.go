// Package store is the persistence collaborator: a small key-value store
// holding the serialized bet collection and the user settings under fixed
// keys. Two backends exist, a directory of plain files and a single SQLite
// database; both fail soft on missing keys so a fresh install starts empty.
package store

import (
	"errors"
	"strings"
)

// Fixed keys of everything the application persists.
const (
	KeyBets     = "betpro_bets"
	KeyLang     = "betpro_lang"
	KeyCurrency = "betpro_currency"
	KeyTheme    = "betpro_theme"
	KeyUsers    = "betpro_users"
)

// ErrNotFound reports that a key has no stored value yet.
var ErrNotFound = errors.New("key not found")

// Store is a key-value store keyed by fixed string names. There is a single
// writer: every mutation replaces the whole value under its key.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(key string, value []byte) error
	Close() error
}

// Open selects a backend from the path: a .db or .sqlite file opens the
// SQLite store, anything else is treated as a directory of files.
func Open(path string) (Store, error) {
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		return OpenSQLite(path)
	}
	return OpenDir(path)
}
