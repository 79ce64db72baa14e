package session

import (
	"testing"
	"time"
)

type screen struct{ name string }

func TestMountAndCurrent(t *testing.T) {
	r := NewRegistry(time.Minute)

	tasks := Mount(r, 1, "tasks", func() *screen { return &screen{name: "tasks"} })

	got, fresh := Current(r, 1, "tasks", func() *screen { return &screen{name: "other"} })
	if fresh || got != tasks {
		t.Fatalf("expected the mounted screen back, got %+v fresh=%v", got, fresh)
	}
}

func TestNavigationDiscardsPreviousScreen(t *testing.T) {
	r := NewRegistry(time.Minute)

	tasks := Mount(r, 1, "tasks", func() *screen { return &screen{name: "tasks"} })
	Mount(r, 1, "goals", func() *screen { return &screen{name: "goals"} })

	got, fresh := Current(r, 1, "tasks", func() *screen { return &screen{name: "tasks-again"} })
	if !fresh {
		t.Fatal("navigating away should have discarded the tasks screen")
	}
	if got == tasks || got.name != "tasks-again" {
		t.Errorf("expected a rebuilt screen, got %+v", got)
	}
	if r.Len() != 1 {
		t.Errorf("one entry per user expected, got %d", r.Len())
	}
}

func TestUsersAreIsolated(t *testing.T) {
	r := NewRegistry(time.Minute)

	a := Mount(r, 1, "tasks", func() *screen { return &screen{name: "a"} })
	b := Mount(r, 2, "tasks", func() *screen { return &screen{name: "b"} })

	got, _ := Current(r, 1, "tasks", func() *screen { return nil })
	if got != a {
		t.Errorf("user 1 got %+v", got)
	}
	got, _ = Current(r, 2, "tasks", func() *screen { return nil })
	if got != b {
		t.Errorf("user 2 got %+v", got)
	}
}

func TestIdleEntriesExpire(t *testing.T) {
	r := NewRegistry(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	Mount(r, 1, "tasks", func() *screen { return &screen{name: "old"} })

	now = now.Add(2 * time.Minute)
	got, fresh := Current(r, 1, "tasks", func() *screen { return &screen{name: "new"} })
	if !fresh || got.name != "new" {
		t.Errorf("idle entry should have been swept, got %+v fresh=%v", got, fresh)
	}
}

func TestDiscard(t *testing.T) {
	r := NewRegistry(0)
	Mount(r, 1, "tasks", func() *screen { return &screen{} })
	r.Discard(1)
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestConcurrentFirstTouchKeepsOneView(t *testing.T) {
	r := NewRegistry(time.Minute)

	var inner *screen
	outer, fresh := Current(r, 1, "tasks", func() *screen {
		// another request mounts the same screen while this one builds
		inner, _ = Current(r, 1, "tasks", func() *screen { return &screen{name: "first"} })
		return &screen{name: "second"}
	})

	if fresh || outer != inner || outer.name != "first" {
		t.Fatalf("expected the view mounted first, got %+v fresh=%v", outer, fresh)
	}
	got, _ := Current(r, 1, "tasks", func() *screen { return nil })
	if got != inner {
		t.Errorf("registry holds %+v, want the first view", got)
	}
}
