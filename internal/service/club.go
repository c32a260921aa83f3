package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/forgo/clubhive/api/internal/clock"
	"github.com/forgo/clubhive/api/internal/model"
)

// ClubRepository defines the interface for club storage
type ClubRepository interface {
	List(ctx context.Context) ([]model.Club, error)
	GetByID(ctx context.Context, id string) (*model.Club, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Club, error)
	Create(ctx context.Context, club *model.Club) error
}

// MembershipRepository defines the interface for membership storage
type MembershipRepository interface {
	Get(ctx context.Context, clubID, userID string) (*model.Membership, error)
	ListByUser(ctx context.Context, userID string) ([]model.Membership, error)
	ListByClub(ctx context.Context, clubID string) ([]model.Membership, error)
	Create(ctx context.Context, m *model.Membership) error
}

// IdentityRepository defines the identity lookups shared by services
type IdentityRepository interface {
	List(ctx context.Context) ([]model.Identity, error)
	GetByID(ctx context.Context, id string) (*model.Identity, error)
}

// ClubEventRepository defines the event reads used for club summaries
type ClubEventRepository interface {
	ListByClubs(ctx context.Context, clubIDs map[string]bool) ([]model.Event, error)
}

// ClubRegistrationRepository defines the registration reads used for club summaries
type ClubRegistrationRepository interface {
	List(ctx context.Context) ([]model.Registration, error)
}

// ClubService handles club business logic
type ClubService struct {
	mu            sync.Mutex
	clubs         ClubRepository
	memberships   MembershipRepository
	identities    IdentityRepository
	events        ClubEventRepository
	registrations ClubRegistrationRepository
	clock         clock.Clock
}

// ClubServiceConfig holds configuration for the club service
type ClubServiceConfig struct {
	Clubs         ClubRepository
	Memberships   MembershipRepository
	Identities    IdentityRepository
	Events        ClubEventRepository
	Registrations ClubRegistrationRepository
	Clock         clock.Clock
}

// NewClubService creates a new club service
func NewClubService(cfg ClubServiceConfig) *ClubService {
	return &ClubService{
		clubs:         cfg.Clubs,
		memberships:   cfg.Memberships,
		identities:    cfg.Identities,
		events:        cfg.Events,
		registrations: cfg.Registrations,
		clock:         clock.OrSystem(cfg.Clock),
	}
}

// ListAll returns every club in store order
func (s *ClubService) ListAll(ctx context.Context) ([]model.Club, error) {
	return s.clubs.List(ctx)
}

// Get retrieves a club by ID
func (s *ClubService) Get(ctx context.Context, clubID string) (*model.Club, error) {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}

// ListMine returns the clubs a student belongs to or an admin owns.
// Anonymous sessions get an empty list.
func (s *ClubService) ListMine(ctx context.Context, sess *model.Session) ([]model.Club, error) {
	mine, err := s.mineSet(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.partition(ctx, mine, true)
}

// ListOthers returns the clubs not returned by ListMine
func (s *ClubService) ListOthers(ctx context.Context, sess *model.Session) ([]model.Club, error) {
	mine, err := s.mineSet(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.partition(ctx, mine, false)
}

func (s *ClubService) mineSet(ctx context.Context, sess *model.Session) (map[string]bool, error) {
	mine := make(map[string]bool)
	identity := sess.Current()
	if identity == nil {
		return mine, nil
	}

	if identity.IsAdmin() {
		owned, err := s.clubs.ListByOwner(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range owned {
			mine[c.ID] = true
		}
		return mine, nil
	}

	memberships, err := s.memberships.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range memberships {
		mine[m.ClubID] = true
	}
	return mine, nil
}

func (s *ClubService) partition(ctx context.Context, mine map[string]bool, want bool) ([]model.Club, error) {
	all, err := s.clubs.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Club, 0, len(all))
	for _, c := range all {
		if mine[c.ID] == want {
			out = append(out, c)
		}
	}
	return out, nil
}

// Join adds the signed-in identity to a club. Joining twice returns the
// existing membership.
func (s *ClubService) Join(ctx context.Context, sess *model.Session, clubID string) (*model.Membership, error) {
	identity, err := requireIdentity(sess)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Get(ctx, clubID); err != nil {
		return nil, err
	}
	known, err := s.identities.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if known == nil {
		return nil, ErrIdentityNotFound
	}

	existing, err := s.memberships.Get(ctx, clubID, identity.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	membership := &model.Membership{
		ID:       newID("mem"),
		ClubID:   clubID,
		UserID:   identity.ID,
		JoinedOn: s.clock.Now(),
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		return nil, err
	}

	slog.Info("club joined", slog.String("club_id", clubID), slog.String("user_id", identity.ID))
	return membership, nil
}

// Create creates a club owned by the signed-in admin
func (s *ClubService) Create(ctx context.Context, sess *model.Session, req *model.CreateClubRequest) (*model.Club, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	club := &model.Club{
		ID:          newID("club"),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OwnerID:     admin.ID,
		CreatedOn:   s.clock.Now(),
	}
	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, err
	}

	slog.Info("club created", slog.String("club_id", club.ID), slog.String("owner_id", admin.ID))
	return club, nil
}

// ListManaged returns the signed-in admin's clubs with member, event and
// registration counts
func (s *ClubService) ListManaged(ctx context.Context, sess *model.Session) ([]model.ClubSummary, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}

	owned, err := s.clubs.ListByOwner(ctx, admin.ID)
	if err != nil {
		return nil, err
	}
	ownedIDs := make(map[string]bool, len(owned))
	for _, c := range owned {
		ownedIDs[c.ID] = true
	}

	events, err := s.events.ListByClubs(ctx, ownedIDs)
	if err != nil {
		return nil, err
	}
	registrations, err := s.registrations.List(ctx)
	if err != nil {
		return nil, err
	}

	regsPerEvent := make(map[string]int)
	for _, r := range registrations {
		regsPerEvent[r.EventID]++
	}
	eventsPerClub := make(map[string]int)
	regsPerClub := make(map[string]int)
	for _, e := range events {
		eventsPerClub[e.ClubID]++
		regsPerClub[e.ClubID] += regsPerEvent[e.ID]
	}

	summaries := make([]model.ClubSummary, 0, len(owned))
	for _, c := range owned {
		members, err := s.memberships.ListByClub(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, model.ClubSummary{
			Club:              c,
			MemberCount:       len(members),
			EventCount:        eventsPerClub[c.ID],
			RegistrationCount: regsPerClub[c.ID],
		})
	}
	return summaries, nil
}

// Members returns the identities belonging to a club. Owner only.
func (s *ClubService) Members(ctx context.Context, sess *model.Session, clubID string) ([]model.Identity, error) {
	admin, err := requireAdmin(sess)
	if err != nil {
		return nil, err
	}
	club, err := s.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club.OwnerID != admin.ID {
		return nil, ErrNotClubOwner
	}

	memberships, err := s.memberships.ListByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	identities, err := s.identities.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Identity, len(identities))
	for _, i := range identities {
		byID[i.ID] = i
	}

	members := make([]model.Identity, 0, len(memberships))
	for _, m := range memberships {
		if identity, ok := byID[m.UserID]; ok {
			members = append(members, identity)
		}
	}
	return members, nil
}
