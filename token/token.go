// Package token generates the opaque share tokens that identify published
// forms on their public link.
package token

import (
	nanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

// URL-safe, no lookalike ambiguity concerns: tokens are only ever copied.
const (
	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length   = 12
)

// NewShare returns a fresh share token. Assigned once at form creation and
// immutable afterwards.
func NewShare() (string, error) {
	id, err := nanoid.Generate(alphabet, length)
	if err != nil {
		return "", errors.Wrap(err, "token: generate share token")
	}
	return id, nil
}
