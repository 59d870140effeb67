// Package migrations carries the forward-only SQL schema migrations that
// are compiled into the buddydesk binary.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
