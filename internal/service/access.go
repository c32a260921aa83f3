package service

import (
	"github.com/google/uuid"

	"github.com/forgo/clubhive/api/internal/model"
)

// requireIdentity returns the signed-in identity or ErrNotAuthenticated
func requireIdentity(sess *model.Session) (*model.Identity, error) {
	id := sess.Current()
	if id == nil {
		return nil, ErrNotAuthenticated
	}
	return id, nil
}

// requireAdmin returns the signed-in admin identity
func requireAdmin(sess *model.Session) (*model.Identity, error) {
	id, err := requireIdentity(sess)
	if err != nil {
		return nil, err
	}
	if !id.IsAdmin() {
		return nil, ErrNotAdmin
	}
	return id, nil
}

// newID returns a fresh "<prefix>-<uuid>" identifier
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
