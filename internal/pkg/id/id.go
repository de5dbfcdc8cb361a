package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID. Identifiers sort by creation time, which keeps
// listing order stable without a separate timestamp attribute.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
