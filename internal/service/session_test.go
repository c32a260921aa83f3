package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_MatchesEmailCaseInsensitively(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := env.db.Ctx()
	sess := &model.Session{}

	ok, err := env.sessions.Login(ctx, sess, "  Student@Demo.COM ")
	require.NoError(t, err)
	require.True(t, ok)

	current := env.sessions.Current(sess)
	require.NotNil(t, current)
	assert.Equal(t, "user-1", current.ID)
	assert.Equal(t, model.RoleStudent, current.Role)
}

func TestLogin_UnknownEmailNeverCreatesIdentity(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := env.db.Ctx()
	sess := &model.Session{}

	before, err := env.f.Identities.List(ctx)
	require.NoError(t, err)

	ok, err := env.sessions.Login(ctx, sess, "stranger@demo.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, sess.IsAuthenticated())

	after, err := env.f.Identities.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestLogin_FailureKeepsExistingSession(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := env.db.Ctx()
	sess := &model.Session{}

	ok, err := env.sessions.Login(ctx, sess, "admin@demo.com")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = env.sessions.Login(ctx, sess, "nobody@demo.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "admin-1", sess.Current().ID)
}

func TestLogin_BlankEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	ok, err := env.sessions.Login(env.db.Ctx(), &model.Session{}, "   ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_PersistsAcrossRestore(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := env.db.Ctx()

	ok, err := env.sessions.Login(ctx, &model.Session{}, "admin@demo.com")
	require.NoError(t, err)
	require.True(t, ok)

	restored, err := env.sessions.Restore(ctx)
	require.NoError(t, err)
	require.True(t, restored.IsAuthenticated())
	assert.Equal(t, "admin-1", restored.Current().ID)
}

// ============================================================================
// Logout Tests
// ============================================================================

func TestLogout_ClearsPersistedIdentity(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := env.db.Ctx()
	sess := &model.Session{}

	_, err := env.sessions.Login(ctx, sess, "student@demo.com")
	require.NoError(t, err)

	require.NoError(t, env.sessions.Logout(ctx, sess))
	assert.Nil(t, env.sessions.Current(sess))

	restored, err := env.sessions.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, restored.IsAuthenticated())
}

func TestLogout_WhenAnonymous(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.sessions.Logout(env.db.Ctx(), &model.Session{}))
}

func TestRestore_UnreadableRecordIsAnonymous(t *testing.T) {
	env := newTestEnv(t)
	env.db.MustSet(store.CurrentIdentity, "{not json")

	sess, err := env.sessions.Restore(env.db.Ctx())
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated())
}

// ============================================================================
// SwitchRole Tests
// ============================================================================

func TestSwitchRole_Disabled(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := env.db.Ctx()
	sess := &model.Session{}
	_, err := env.sessions.Login(ctx, sess, "student@demo.com")
	require.NoError(t, err)

	ok, err := env.sessions.SwitchRole(ctx, sess, model.RoleAdmin)
	assert.True(t, errors.Is(err, ErrRoleSwitchDisabled))
	assert.False(t, ok)
	assert.Equal(t, "user-1", sess.Current().ID)
}

func TestSwitchRole_SwapsToFirstIdentityWithRole(t *testing.T) {
	env := newTestEnv(t, withRoleSwitch())
	env.seed(t)
	ctx := env.db.Ctx()
	sess := &model.Session{}
	_, err := env.sessions.Login(ctx, sess, "student@demo.com")
	require.NoError(t, err)

	ok, err := env.sessions.SwitchRole(ctx, sess, model.RoleAdmin)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "admin-1", sess.Current().ID)

	restored, err := env.sessions.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", restored.Current().ID)
}

func TestSwitchRole_AnonymousIsNoop(t *testing.T) {
	env := newTestEnv(t, withRoleSwitch())
	env.seed(t)
	sess := &model.Session{}

	ok, err := env.sessions.SwitchRole(env.db.Ctx(), sess, model.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, sess.IsAuthenticated())
}

func TestSwitchRole_NoIdentityWithRole(t *testing.T) {
	env := newTestEnv(t, withRoleSwitch())
	ctx := env.db.Ctx()
	student := env.f.CreateStudent(t)
	sess := signIn(student)

	ok, err := env.sessions.SwitchRole(ctx, sess, model.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, student.ID, sess.Current().ID)
}

// ============================================================================
// Store Fault Tests
// ============================================================================

type mockSessionRepo struct {
	loadFunc  func(ctx context.Context) (*model.Identity, error)
	saveFunc  func(ctx context.Context, identity *model.Identity) error
	clearFunc func(ctx context.Context) error
}

func (m *mockSessionRepo) Load(ctx context.Context) (*model.Identity, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return nil, nil
}

func (m *mockSessionRepo) Save(ctx context.Context, identity *model.Identity) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, identity)
	}
	return nil
}

func (m *mockSessionRepo) Clear(ctx context.Context) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx)
	}
	return nil
}

func TestLogin_SaveFailureLeavesSessionAnonymous(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	saveErr := errors.New("disk full")

	svc := NewSessionService(SessionServiceConfig{
		Identities: env.f.Identities,
		Sessions: &mockSessionRepo{
			saveFunc: func(ctx context.Context, identity *model.Identity) error { return saveErr },
		},
	})

	sess := &model.Session{}
	ok, err := svc.Login(env.db.Ctx(), sess, "student@demo.com")
	assert.ErrorIs(t, err, saveErr)
	assert.False(t, ok)
	assert.False(t, sess.IsAuthenticated())
}
