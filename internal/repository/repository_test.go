package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

func newStore(t *testing.T) (store.Store, store.Keyspace) {
	t.Helper()
	return store.NewMemoryStore(), store.Keyspace{Namespace: "test"}
}

// ============================================================================
// Collection Tests
// ============================================================================

func TestCollection_AbsentListsEmpty(t *testing.T) {
	t.Parallel()
	s, keys := newStore(t)
	clubs := NewClubRepository(s, keys)

	items, err := clubs.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	exists, err := clubs.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCollection_AppendPreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, keys := newStore(t)
	clubs := NewClubRepository(s, keys)

	for _, id := range []string{"club-b", "club-a", "club-c"} {
		require.NoError(t, clubs.Create(ctx, &model.Club{ID: id}))
	}

	items, err := clubs.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "club-b", items[0].ID)
	assert.Equal(t, "club-a", items[1].ID)
	assert.Equal(t, "club-c", items[2].ID)
	assert.Equal(t, "test_clubs", clubs.Key())
}

func TestClubRepository_GetByID_Missing(t *testing.T) {
	t.Parallel()
	s, keys := newStore(t)

	club, err := NewClubRepository(s, keys).GetByID(context.Background(), "club-404")

	require.NoError(t, err)
	assert.Nil(t, club)
}

// ============================================================================
// Identity Tests
// ============================================================================

func TestIdentityRepository_GetByEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, keys := newStore(t)
	ids := NewIdentityRepository(s, keys)
	require.NoError(t, ids.ReplaceAll(ctx, []model.Identity{
		{ID: "user-1", Email: "student@demo.com", Role: model.RoleStudent},
		{ID: "user-2", Email: "Élodie@Demo.com", Role: model.RoleStudent},
	}))

	got, err := ids.GetByEmail(ctx, "STUDENT@demo.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.ID)

	got, err = ids.GetByEmail(ctx, "  élodie@DEMO.com ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-2", got.ID)

	got, err = ids.GetByEmail(ctx, "nobody@demo.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIdentityRepository_FirstWithRole_StoreOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, keys := newStore(t)
	ids := NewIdentityRepository(s, keys)
	require.NoError(t, ids.ReplaceAll(ctx, []model.Identity{
		{ID: "user-1", Role: model.RoleStudent},
		{ID: "admin-2", Role: model.RoleAdmin},
		{ID: "admin-1", Role: model.RoleAdmin},
	}))

	got, err := ids.FirstWithRole(ctx, model.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "admin-2", got.ID)
}

// ============================================================================
// Session Tests
// ============================================================================

func TestSessionRepository_SaveLoadClear(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, keys := newStore(t)
	sessions := NewSessionRepository(s, keys)

	got, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, sessions.Save(ctx, &model.Identity{ID: "user-1", Email: "student@demo.com"}))
	got, err = sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.ID)

	require.NoError(t, sessions.Clear(ctx))
	got, err = sessions.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ============================================================================
// Registration Tests
// ============================================================================

func TestRegistrationRepository_LookupsAndUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, keys := newStore(t)
	regs := NewRegistrationRepository(s, keys)

	require.NoError(t, regs.Create(ctx, &model.Registration{ID: "reg-1", EventID: "event-1", UserID: "user-1", PassToken: "CLUBHIVE-a"}))
	require.NoError(t, regs.Create(ctx, &model.Registration{ID: "reg-2", EventID: "event-2", UserID: "user-1", PassToken: "CLUBHIVE-b"}))

	byEvent, err := regs.ListByEvent(ctx, "event-1")
	require.NoError(t, err)
	assert.Len(t, byEvent, 1)

	reg, err := regs.GetByPassToken(ctx, "CLUBHIVE-b")
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Equal(t, "reg-2", reg.ID)

	now := time.Date(2026, 1, 25, 9, 5, 0, 0, time.UTC)
	reg.Attended = true
	reg.CheckedInOn = &now
	require.NoError(t, regs.Update(ctx, reg))

	reg, err = regs.Get(ctx, "event-2", "user-1")
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.True(t, reg.Attended)
	require.NotNil(t, reg.CheckedInOn)
	assert.True(t, now.Equal(*reg.CheckedInOn))
}

// ============================================================================
// Legacy Adapter Tests
// ============================================================================

func TestLegacyRecords_BrowserClientSchema(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, keys := newStore(t)

	require.NoError(t, s.Set(ctx, keys.Key(store.Clubs), []byte(`[
		{"id":"club-1","name":"Tech Innovators","description":"d","adminId":"admin-1","createdAt":"2025-09-01T10:00:00.000Z"}
	]`)))
	require.NoError(t, s.Set(ctx, keys.Key(store.Events), []byte(`[
		{"id":"event-1","clubId":"club-1","title":"AI Workshop","description":"d","date":"2026-01-15","time":"14:00","venue":"Tech Lab 101","capacity":50,"createdAt":"2025-09-01T10:00:00.000Z"},
		{"id":"event-9","clubId":"club-1","title":"Open Mic","description":"d","date":"2026-02-01T18:30:00.000Z","venue":"Quad","capacity":0}
	]`)))
	require.NoError(t, s.Set(ctx, keys.Key(store.Registrations), []byte(`[
		{"id":"reg-1","eventId":"event-1","userId":"user-1","registeredAt":"2026-01-02T08:00:00.000Z","attended":false,"qrCode":"CLUBHIVE-event-1-user-1-1767340800000"}
	]`)))
	require.NoError(t, s.Set(ctx, keys.Key(store.Memberships), []byte(`[
		{"id":"mem-1","clubId":"club-1","userId":"user-1","joinedAt":"2025-09-02T10:00:00.000Z"}
	]`)))

	club, err := NewClubRepository(s, keys).GetByID(ctx, "club-1")
	require.NoError(t, err)
	require.NotNil(t, club)
	assert.Equal(t, "admin-1", club.OwnerID)
	assert.Equal(t, 2025, club.CreatedOn.Year())

	events, err := NewEventRepository(s, keys).List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "club-1", events[0].ClubID)
	assert.Equal(t, "Tech Lab 101", events[0].Location)
	require.NotNil(t, events[0].Capacity)
	assert.Equal(t, 50, *events[0].Capacity)
	assert.Equal(t, "2026-02-01", events[1].Date)
	assert.Equal(t, "18:30", events[1].Time)
	require.NotNil(t, events[1].Capacity)
	assert.Equal(t, 0, *events[1].Capacity)

	reg, err := NewRegistrationRepository(s, keys).Get(ctx, "event-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Equal(t, "CLUBHIVE-event-1-user-1-1767340800000", reg.PassToken)
	assert.False(t, reg.RegisteredOn.IsZero())

	mem, err := NewMembershipRepository(s, keys).Get(ctx, "club-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, mem)
	assert.Equal(t, "mem-1", mem.ID)
}

func TestLegacyRecords_HostedBackendSchema(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, keys := newStore(t)

	require.NoError(t, s.Set(ctx, keys.Key(store.Events), []byte(`[
		{"id":"event-3","club_id":"club-3","title":"Pitch Night","description":"d","date":"2026-01-20","time":"18:00","location":"Business School Hall","capacity":null,"created_at":"2025-09-01T10:00:00Z"}
	]`)))

	events, err := NewEventRepository(s, keys).ListFiltered(ctx, model.EventFilter{ClubID: "club-3"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Business School Hall", events[0].Location)
	assert.Nil(t, events[0].Capacity)
	assert.False(t, events[0].CreatedOn.IsZero())
}

func TestLegacyRecords_CanonicalKeyWins(t *testing.T) {
	t.Parallel()

	rec := legacyTransform(store.Events)(map[string]interface{}{
		"location": "New Hall",
		"venue":    "Old Hall",
	})

	assert.Equal(t, "New Hall", rec["location"])
	assert.NotContains(t, rec, "venue")
}
