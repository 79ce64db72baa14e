package view

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/sirupsen/logrus"
)

const MsgUserNotFound = "User not found"

var ErrNoUser = errors.New("no user identity")

// Gateway is the CRUD surface a list screen needs from an entity gateway.
type Gateway[T, D, P any] interface {
	FetchByUser(ctx context.Context, userID int64) ([]T, error)
	Create(ctx context.Context, userID int64, data D) (*T, error)
	Update(ctx context.Context, userID, id int64, patch P) (*T, error)
	Delete(ctx context.Context, userID, id int64) (string, error)
}

type Labels struct {
	Singular string
	Plural   string
}

func (l Labels) title() string {
	if l.Singular == "" {
		return ""
	}
	return strings.ToUpper(l.Singular[:1]) + l.Singular[1:]
}

type Config[T, D any] struct {
	Labels Labels
	ID     func(T) int64
	// ReconcileAfterMutation re-fetches the list after every successful
	// mutation instead of trusting the patched local state alone.
	ReconcileAfterMutation bool
	// BeforeCreate fills defaults into the create payload from the current
	// list, the way the screen's form would.
	BeforeCreate func(items []T, data *D)
}

type Snapshot[T any] struct {
	Items    []T        `json:"items"`
	Loading  bool       `json:"loading"`
	Error    string     `json:"error,omitempty"`
	Notice   string     `json:"notice,omitempty"`
	Version  uint64     `json:"version"`
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

// Container holds the list state of one screen for one user. The mutex
// guards memory only; it is never held across a gateway call, so
// overlapping mutations are neither sequenced nor deduplicated.
type Container[T, D, P any] struct {
	gateway Gateway[T, D, P]
	userID  int64
	cfg     Config[T, D]

	mu       sync.Mutex
	items    []T
	loading  bool
	errMsg   string
	notice   string
	version  uint64
	syncedAt time.Time
}

func NewContainer[T, D, P any](gateway Gateway[T, D, P], userID int64, cfg Config[T, D]) *Container[T, D, P] {
	return &Container[T, D, P]{
		gateway: gateway,
		userID:  userID,
		cfg:     cfg,
		items:   []T{},
		loading: true,
	}
}

func (c *Container[T, D, P]) logger(ctx context.Context) *logrus.Entry {
	return config.WithContext(ctx).WithFields(logrus.Fields{
		"screen":    c.cfg.Labels.Plural,
		"tguser_id": c.userID,
	})
}

func (c *Container[T, D, P]) requireUser() error {
	if c.userID != 0 {
		return nil
	}
	c.mu.Lock()
	c.errMsg = MsgUserNotFound
	c.loading = false
	c.mu.Unlock()
	return ErrNoUser
}

// Load performs the mount fetch.
func (c *Container[T, D, P]) Load(ctx context.Context) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	items, err := c.gateway.FetchByUser(ctx, c.userID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.logger(ctx).WithError(err).Warnf("Error fetching %s", c.cfg.Labels.Plural)
		c.errMsg = "Error loading " + c.cfg.Labels.Plural
		return err
	}
	c.replace(items)
	return nil
}

func (c *Container[T, D, P]) Create(ctx context.Context, data D) (*T, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}

	if c.cfg.BeforeCreate != nil {
		c.cfg.BeforeCreate(c.Items(), &data)
	}

	created, err := c.gateway.Create(ctx, c.userID, data)
	if err != nil {
		c.fail(ctx, err, "creating")
		return nil, err
	}

	c.mu.Lock()
	c.items = append(c.items, *created)
	c.succeed("created")
	c.mu.Unlock()

	c.afterMutation(ctx)
	return created, nil
}

func (c *Container[T, D, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}

	updated, err := c.gateway.Update(ctx, c.userID, id, patch)
	if err != nil {
		c.fail(ctx, err, "updating")
		return nil, err
	}

	c.mu.Lock()
	for i := range c.items {
		if c.cfg.ID(c.items[i]) == id {
			c.items[i] = *updated
		}
	}
	c.succeed("updated")
	c.mu.Unlock()

	c.afterMutation(ctx)
	return updated, nil
}

func (c *Container[T, D, P]) Delete(ctx context.Context, id int64) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	if _, err := c.gateway.Delete(ctx, c.userID, id); err != nil {
		c.fail(ctx, err, "deleting")
		return err
	}

	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.cfg.ID(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.succeed("deleted")
	c.mu.Unlock()

	c.afterMutation(ctx)
	return nil
}

// Reconcile re-fetches the list and merges it into local state. The server
// copy wins: records it no longer returns are dropped, known records keep
// their local position, new ones are appended.
func (c *Container[T, D, P]) Reconcile(ctx context.Context) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	server, err := c.gateway.FetchByUser(ctx, c.userID)
	if err != nil {
		c.logger(ctx).WithError(err).Warnf("Error reconciling %s", c.cfg.Labels.Plural)
		c.mu.Lock()
		c.errMsg = "Error loading " + c.cfg.Labels.Plural
		c.notice = ""
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace(Merge(c.items, server, c.cfg.ID))
	return nil
}

func (c *Container[T, D, P]) afterMutation(ctx context.Context) {
	if c.cfg.ReconcileAfterMutation {
		_ = c.Reconcile(ctx)
	}
}

func (c *Container[T, D, P]) fail(ctx context.Context, err error, action string) {
	c.logger(ctx).WithError(err).Warnf("Error %s %s", action, c.cfg.Labels.Singular)
	c.mu.Lock()
	c.errMsg = "Error " + action + " " + c.cfg.Labels.Singular
	c.notice = ""
	c.mu.Unlock()
}

// succeed and replace are called with c.mu held.
func (c *Container[T, D, P]) succeed(action string) {
	c.errMsg = ""
	c.notice = c.cfg.Labels.title() + " " + action
}

func (c *Container[T, D, P]) replace(items []T) {
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.version++
	c.syncedAt = time.Now()
}

func (c *Container[T, D, P]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

func (c *Container[T, D, P]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot[T]{
		Items:   append(make([]T, 0, len(c.items)), c.items...),
		Loading: c.loading,
		Error:   c.errMsg,
		Notice:  c.notice,
		Version: c.version,
	}
	if !c.syncedAt.IsZero() {
		synced := c.syncedAt
		s.SyncedAt = &synced
	}
	return s
}

// Merge applies a server listing onto local state, keyed by id.
func Merge[T any](local, server []T, id func(T) int64) []T {
	byID := make(map[int64]T, len(server))
	for _, item := range server {
		byID[id(item)] = item
	}

	out := make([]T, 0, len(server))
	placed := make(map[int64]bool, len(server))
	for _, item := range local {
		key := id(item)
		if fresh, ok := byID[key]; ok && !placed[key] {
			out = append(out, fresh)
			placed[key] = true
		}
	}
	for _, item := range server {
		if key := id(item); !placed[key] {
			out = append(out, item)
			placed[key] = true
		}
	}
	return out
}
