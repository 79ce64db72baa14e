package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/view"
)

const (
	MsgLoadUser       = "Error loading user data"
	MsgUpdateUser     = "Error updating user data"
	MsgLoadStatistics = "Error loading statistics"
	MsgProfileUpdated = "Profile updated"
)

// Profile holds the profile screen: one user record plus the read-only
// statistics history, each with its own error string.
type Profile struct {
	gateway Gateway
	userID  int64

	mu       sync.Mutex
	user     *User
	stats    []Statistic
	loading  bool
	errMsg   string
	statsErr string
	notice   string
	version  uint64
	syncedAt time.Time
}

type ProfileSnapshot struct {
	User            *User       `json:"user"`
	Statistics      []Statistic `json:"statistics"`
	Loading         bool        `json:"loading"`
	Error           string      `json:"error,omitempty"`
	StatisticsError string      `json:"statistics_error,omitempty"`
	Notice          string      `json:"notice,omitempty"`
	Version         uint64      `json:"version"`
	SyncedAt        *time.Time  `json:"synced_at,omitempty"`
}

func NewProfile(gateway Gateway, userID int64) *Profile {
	return &Profile{
		gateway: gateway,
		userID:  userID,
		stats:   []Statistic{},
		loading: true,
	}
}

func (p *Profile) requireUser() error {
	if p.userID != 0 {
		return nil
	}
	p.mu.Lock()
	p.errMsg = view.MsgUserNotFound
	p.statsErr = view.MsgUserNotFound
	p.loading = false
	p.mu.Unlock()
	return view.ErrNoUser
}

// Load fetches the user and the statistics. Either may fail on its own.
func (p *Profile) Load(ctx context.Context) error {
	if err := p.requireUser(); err != nil {
		return err
	}
	log := config.WithContext(ctx).WithField("tguser_id", p.userID)

	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	u, userErr := p.gateway.Fetch(ctx, p.userID)
	stats, statsErr := p.gateway.Statistics(ctx, p.userID)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false

	p.errMsg = ""
	if userErr != nil {
		log.WithError(userErr).Warn("Error fetching user data")
		p.errMsg = MsgLoadUser
	} else {
		p.user = u
	}

	p.statsErr = ""
	if statsErr != nil {
		log.WithError(statsErr).Warn("Error fetching user statistics")
		p.statsErr = MsgLoadStatistics
	} else {
		p.stats = stats
	}

	if userErr == nil || statsErr == nil {
		p.version++
		p.syncedAt = time.Now()
	}
	return errors.Join(userErr, statsErr)
}

// Reconcile refetches both parts; the server copy replaces local state.
func (p *Profile) Reconcile(ctx context.Context) error {
	return p.Load(ctx)
}

func (p *Profile) Update(ctx context.Context, patch UserPatch) (*User, error) {
	if err := p.requireUser(); err != nil {
		return nil, err
	}

	updated, err := p.gateway.Update(ctx, p.userID, patch)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("tguser_id", p.userID).Warn("Error updating user data")
		p.errMsg = MsgUpdateUser
		p.notice = ""
		return nil, err
	}
	p.user = updated
	p.errMsg = ""
	p.notice = MsgProfileUpdated
	return updated, nil
}

func (p *Profile) Snapshot() ProfileSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := ProfileSnapshot{
		User:            p.user,
		Statistics:      append(make([]Statistic, 0, len(p.stats)), p.stats...),
		Loading:         p.loading,
		Error:           p.errMsg,
		StatisticsError: p.statsErr,
		Notice:          p.notice,
		Version:         p.version,
	}
	if p.user != nil {
		u := *p.user
		s.User = &u
	}
	if !p.syncedAt.IsZero() {
		synced := p.syncedAt
		s.SyncedAt = &synced
	}
	return s
}
