package core

import "github.com/fox-one/pkg/store/db"

// Committer executes fn as a single atomic write batch against the keyed
// state store: every write inside fn commits together or not at all.
// *db.DB satisfies it.
type Committer interface {
	Tx(fn func(tx *db.DB) error) error
}
