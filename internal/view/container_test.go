package view

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type note struct {
	ID   int64
	Text string
}

type noteData struct {
	Number *int
	Text   string
}

type notePatch struct {
	Text *string
}

type fakeGateway struct {
	list      []note
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error
	nextID    int64
	fetches   int
	created   []noteData
}

func (g *fakeGateway) FetchByUser(ctx context.Context, userID int64) ([]note, error) {
	g.fetches++
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	return append([]note(nil), g.list...), nil
}

func (g *fakeGateway) Create(ctx context.Context, userID int64, data noteData) (*note, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, data)
	g.nextID++
	n := note{ID: g.nextID, Text: data.Text}
	g.list = append(g.list, n)
	return &n, nil
}

func (g *fakeGateway) Update(ctx context.Context, userID, id int64, patch notePatch) (*note, error) {
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	n := note{ID: id}
	if patch.Text != nil {
		n.Text = *patch.Text
	}
	return &n, nil
}

func (g *fakeGateway) Delete(ctx context.Context, userID, id int64) (string, error) {
	if g.deleteErr != nil {
		return "", g.deleteErr
	}
	return "note deleted successfully", nil
}

func noteConfig() Config[note, noteData] {
	return Config[note, noteData]{
		Labels: Labels{Singular: "note", Plural: "notes"},
		ID:     func(n note) int64 { return n.ID },
	}
}

func ids(items []note) []int64 {
	out := make([]int64, 0, len(items))
	for _, n := range items {
		out = append(out, n.ID)
	}
	return out
}

func TestContainerLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadingUntilMounted", func(t *testing.T) {
		c := NewContainer[note, noteData, notePatch](&fakeGateway{}, 1, noteConfig())
		if !c.Snapshot().Loading {
			t.Error("a fresh container should report loading")
		}
	})

	t.Run("Success", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}}
		c := NewContainer[note, noteData, notePatch](gw, 1, noteConfig())

		if err := c.Load(ctx); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		s := c.Snapshot()
		if s.Loading || s.Error != "" || len(s.Items) != 2 || s.SyncedAt == nil {
			t.Errorf("unexpected snapshot %+v", s)
		}
		if gw.fetches != 1 {
			t.Errorf("mount should fetch once, fetched %d times", gw.fetches)
		}
	})

	t.Run("FetchFailure", func(t *testing.T) {
		c := NewContainer[note, noteData, notePatch](&fakeGateway{fetchErr: errors.New("boom")}, 1, noteConfig())

		if err := c.Load(ctx); err == nil {
			t.Fatal("expected error")
		}
		s := c.Snapshot()
		if s.Loading {
			t.Error("loading flag should be cleared after a failed fetch")
		}
		if s.Error != "Error loading notes" {
			t.Errorf("unexpected error string %q", s.Error)
		}
	})

	t.Run("NoUser", func(t *testing.T) {
		gw := &fakeGateway{}
		c := NewContainer[note, noteData, notePatch](gw, 0, noteConfig())

		if err := c.Load(ctx); !errors.Is(err, ErrNoUser) {
			t.Fatalf("expected ErrNoUser, got %v", err)
		}
		s := c.Snapshot()
		if s.Error != MsgUserNotFound || s.Loading {
			t.Errorf("unexpected snapshot %+v", s)
		}
		if gw.fetches != 0 {
			t.Error("no fetch should be issued without a user")
		}
	})
}

func TestContainerMutations(t *testing.T) {
	ctx := context.Background()

	mounted := func(t *testing.T, gw *fakeGateway, cfg Config[note, noteData]) *Container[note, noteData, notePatch] {
		t.Helper()
		c := NewContainer[note, noteData, notePatch](gw, 7, cfg)
		if err := c.Load(ctx); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		return c
	}

	t.Run("CreateAppends", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1}}, nextID: 1}
		c := mounted(t, gw, noteConfig())

		created, err := c.Create(ctx, noteData{Text: "new"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID != 2 {
			t.Errorf("unexpected created id %d", created.ID)
		}
		s := c.Snapshot()
		if !reflect.DeepEqual(ids(s.Items), []int64{1, 2}) {
			t.Errorf("unexpected ids %v", ids(s.Items))
		}
		if s.Notice != "Note created" {
			t.Errorf("unexpected notice %q", s.Notice)
		}
	})

	t.Run("CreateDefaults", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1}, {ID: 2}}, nextID: 2}
		cfg := noteConfig()
		cfg.BeforeCreate = func(items []note, data *noteData) {
			if data.Number == nil {
				n := len(items) + 1
				data.Number = &n
			}
		}
		c := mounted(t, gw, cfg)

		if _, err := c.Create(ctx, noteData{Text: "third"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if got := gw.created[0].Number; got == nil || *got != 3 {
			t.Errorf("expected number 3, got %v", got)
		}
	})

	t.Run("CreateFailure", func(t *testing.T) {
		gw := &fakeGateway{createErr: errors.New("boom")}
		c := mounted(t, gw, noteConfig())

		if _, err := c.Create(ctx, noteData{Text: "x"}); err == nil {
			t.Fatal("expected error")
		}
		s := c.Snapshot()
		if s.Error != "Error creating note" || len(s.Items) != 0 {
			t.Errorf("unexpected snapshot %+v", s)
		}
	})

	t.Run("UpdateReplaces", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}}}
		c := mounted(t, gw, noteConfig())

		text := "B"
		if _, err := c.Update(ctx, 2, notePatch{Text: &text}); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		items := c.Items()
		if items[1].Text != "B" || items[0].Text != "a" {
			t.Errorf("unexpected items %+v", items)
		}
		if c.Snapshot().Notice != "Note updated" {
			t.Errorf("unexpected notice %q", c.Snapshot().Notice)
		}
	})

	t.Run("UpdateFailure", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1, Text: "a"}}, updateErr: errors.New("boom")}
		c := mounted(t, gw, noteConfig())

		text := "z"
		if _, err := c.Update(ctx, 1, notePatch{Text: &text}); err == nil {
			t.Fatal("expected error")
		}
		s := c.Snapshot()
		if s.Error != "Error updating note" || s.Items[0].Text != "a" {
			t.Errorf("unexpected snapshot %+v", s)
		}
	})

	t.Run("DeleteRemoves", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1}, {ID: 2}, {ID: 3}}}
		c := mounted(t, gw, noteConfig())

		if err := c.Delete(ctx, 2); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		for _, n := range c.Items() {
			if n.ID == 2 {
				t.Fatal("deleted id still listed")
			}
		}
		if c.Snapshot().Notice != "Note deleted" {
			t.Errorf("unexpected notice %q", c.Snapshot().Notice)
		}
	})

	t.Run("DeleteFailure", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1}}, deleteErr: errors.New("boom")}
		c := mounted(t, gw, noteConfig())

		if err := c.Delete(ctx, 1); err == nil {
			t.Fatal("expected error")
		}
		s := c.Snapshot()
		if s.Error != "Error deleting note" || len(s.Items) != 1 {
			t.Errorf("unexpected snapshot %+v", s)
		}
	})

	t.Run("NoUser", func(t *testing.T) {
		c := NewContainer[note, noteData, notePatch](&fakeGateway{}, 0, noteConfig())
		if _, err := c.Create(ctx, noteData{Text: "x"}); !errors.Is(err, ErrNoUser) {
			t.Errorf("expected ErrNoUser, got %v", err)
		}
		if err := c.Delete(ctx, 1); !errors.Is(err, ErrNoUser) {
			t.Errorf("expected ErrNoUser, got %v", err)
		}
	})
}

func TestContainerReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("ServerWins", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}, {ID: 3, Text: "c"}}}
		c := NewContainer[note, noteData, notePatch](gw, 1, noteConfig())
		if err := c.Load(ctx); err != nil {
			t.Fatal(err)
		}
		before := c.Snapshot().Version

		gw.list = []note{{ID: 4, Text: "d"}, {ID: 3, Text: "C"}, {ID: 1, Text: "a"}}
		if err := c.Reconcile(ctx); err != nil {
			t.Fatalf("Reconcile failed: %v", err)
		}

		s := c.Snapshot()
		if !reflect.DeepEqual(ids(s.Items), []int64{1, 3, 4}) {
			t.Errorf("unexpected ids %v", ids(s.Items))
		}
		if s.Items[1].Text != "C" {
			t.Errorf("server copy should win, got %q", s.Items[1].Text)
		}
		if s.Version <= before {
			t.Error("version should advance")
		}
	})

	t.Run("AfterMutation", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1}}, nextID: 1}
		cfg := noteConfig()
		cfg.ReconcileAfterMutation = true
		c := NewContainer[note, noteData, notePatch](gw, 1, cfg)
		if err := c.Load(ctx); err != nil {
			t.Fatal(err)
		}

		if _, err := c.Create(ctx, noteData{Text: "x"}); err != nil {
			t.Fatal(err)
		}
		if gw.fetches != 2 {
			t.Errorf("expected a reconcile fetch after create, got %d fetches", gw.fetches)
		}
	})

	t.Run("AfterMutationFailure", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1}}, nextID: 1}
		cfg := noteConfig()
		cfg.ReconcileAfterMutation = true
		c := NewContainer[note, noteData, notePatch](gw, 1, cfg)
		if err := c.Load(ctx); err != nil {
			t.Fatal(err)
		}

		gw.fetchErr = errors.New("boom")
		if _, err := c.Create(ctx, noteData{Text: "x"}); err != nil {
			t.Fatal(err)
		}
		s := c.Snapshot()
		if s.Error != "Error loading notes" || s.Notice != "" {
			t.Errorf("a failed refresh must not report success, got error=%q notice=%q", s.Error, s.Notice)
		}
		if len(s.Items) != 2 {
			t.Errorf("the created note should stay in local state, got %+v", s.Items)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		gw := &fakeGateway{list: []note{{ID: 1}}}
		c := NewContainer[note, noteData, notePatch](gw, 1, noteConfig())
		if err := c.Load(ctx); err != nil {
			t.Fatal(err)
		}

		gw.fetchErr = errors.New("boom")
		if err := c.Reconcile(ctx); err == nil {
			t.Fatal("expected error")
		}
		s := c.Snapshot()
		if s.Error != "Error loading notes" || len(s.Items) != 1 {
			t.Errorf("local state should survive a failed reconcile, got %+v", s)
		}
	})
}

func TestMerge(t *testing.T) {
	id := func(n note) int64 { return n.ID }

	got := Merge([]note{{ID: 2}, {ID: 1}}, []note{{ID: 1}, {ID: 2}, {ID: 5}}, id)
	if !reflect.DeepEqual(ids(got), []int64{2, 1, 5}) {
		t.Errorf("unexpected order %v", ids(got))
	}

	if got := Merge([]note{{ID: 1}}, nil, id); len(got) != 0 {
		t.Errorf("empty server listing should clear local state, got %v", got)
	}
}
