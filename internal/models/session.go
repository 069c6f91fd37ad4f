package models

import "time"

// AdminSession is a logged-in admin. There are no per-user accounts, only the
// shared password gate, so the session carries nothing but its identity.
type AdminSession struct {
	ID       string    `msgpack:"id" json:"id"`
	IssuedAt time.Time `msgpack:"issued_at" json:"issuedAt"`
}
