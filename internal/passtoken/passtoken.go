// Package passtoken mints the opaque tokens that prove an event registration.
//
// A token is "CLUBHIVE-" followed by the hex encoding of a BLAKE2b-256 digest
// over the event id, the user id and 16 random bytes, truncated to 20 bytes.
// Tokens are compared as whole strings and never parsed.
package passtoken

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Prefix starts every pass token
const Prefix = "CLUBHIVE-"

const (
	nonceSize  = 16
	digestSize = 20
)

// Minter produces pass tokens from a randomness source
type Minter struct {
	random io.Reader
}

// NewMinter returns a minter reading nonces from random.
// A nil reader uses crypto/rand.
func NewMinter(random io.Reader) *Minter {
	if random == nil {
		random = rand.Reader
	}
	return &Minter{random: random}
}

// New mints a token for (eventID, userID)
func (m *Minter) New(eventID, userID string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(m.random, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	h.Write([]byte(eventID))
	h.Write([]byte{0})
	h.Write([]byte(userID))
	h.Write([]byte{0})
	h.Write(nonce)

	return Prefix + hex.EncodeToString(h.Sum(nil)[:digestSize]), nil
}

var defaultMinter = NewMinter(nil)

// New mints a token using crypto/rand
func New(eventID, userID string) (string, error) {
	return defaultMinter.New(eventID, userID)
}
