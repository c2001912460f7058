package night

import (
	"math/rand"
	"testing"

	"github.com/tatianab/doll-chores/internal/catalog"
	"github.com/tatianab/doll-chores/internal/models"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}
	return c
}

func TestStartDrawsDistinctSubsets(t *testing.T) {
	c := defaultCatalog(t)
	rng := rand.New(rand.NewSource(1))
	s := NewSession(DefaultMaxDollItems)

	for round := 0; round < 50; round++ {
		s.Start(rng, c, DefaultMaxItems, DefaultMaxTasks)

		items := s.AvailableItems()
		tasks := s.NightlyTasks()
		if len(items) != 8 {
			t.Fatalf("expected 8 items, got %d", len(items))
		}
		if len(tasks) != 10 {
			t.Fatalf("expected 10 tasks, got %d", len(tasks))
		}

		seenItems := map[int]bool{}
		for _, it := range items {
			if seenItems[it.ID] {
				t.Fatalf("duplicate item %d", it.ID)
			}
			seenItems[it.ID] = true
			if _, ok := c.Item(it.ID); !ok {
				t.Fatalf("item %d not in catalog", it.ID)
			}
		}
		seenTasks := map[int]bool{}
		for _, task := range tasks {
			if seenTasks[task.ID] {
				t.Fatalf("duplicate task %d", task.ID)
			}
			seenTasks[task.ID] = true
			if _, ok := c.Task(task.ID); !ok {
				t.Fatalf("task %d not in catalog", task.ID)
			}
		}
	}
}

func TestStartClampsAndResets(t *testing.T) {
	c := defaultCatalog(t)
	rng := rand.New(rand.NewSource(2))
	s := NewSession(DefaultMaxDollItems)

	s.Start(rng, c, 100, 100)
	if len(s.AvailableItems()) != 20 || len(s.NightlyTasks()) != 20 {
		t.Fatalf("expected caps clamped to 20, got %d items and %d tasks",
			len(s.AvailableItems()), len(s.NightlyTasks()))
	}

	s.Toggle(s.AvailableItems()[0].ID)
	s.SelectTask(s.NightlyTasks()[0].ID)

	s.Start(rng, c, 0, -1)
	if len(s.AvailableItems()) != 0 || len(s.NightlyTasks()) != 0 {
		t.Errorf("expected empty draws for non-positive caps")
	}
	if len(s.Assigned()) != 0 {
		t.Errorf("expected doll items cleared, got %d", len(s.Assigned()))
	}
	if _, ok := s.SelectedTask(); ok {
		t.Error("expected selection cleared")
	}
}

func TestStartIsUnbiased(t *testing.T) {
	c := defaultCatalog(t)
	rng := rand.New(rand.NewSource(3))
	s := NewSession(DefaultMaxDollItems)

	const rounds = 20000
	counts := map[int]int{}
	for i := 0; i < rounds; i++ {
		s.Start(rng, c, 8, 0)
		for _, it := range s.AvailableItems() {
			counts[it.ID]++
		}
	}

	want := rounds * 8 / 20
	for _, it := range c.Items() {
		got := counts[it.ID]
		if got < want-600 || got > want+600 {
			t.Errorf("item %d drawn %d times, expected about %d", it.ID, got, want)
		}
	}
}

func TestToggleNeverExceedsCap(t *testing.T) {
	c := defaultCatalog(t)
	rng := rand.New(rand.NewSource(4))
	s := NewSession(4)
	s.Start(rng, c, 8, 10)
	items := s.AvailableItems()

	for i := 0; i < 1000; i++ {
		s.Toggle(items[rng.Intn(len(items))].ID)
		if n := len(s.Assigned()); n > s.MaxDollItems() {
			t.Fatalf("assignment grew to %d, cap %d", n, s.MaxDollItems())
		}
	}
}

func TestToggle(t *testing.T) {
	c := defaultCatalog(t)
	s := NewSession(2)
	s.Start(rand.New(rand.NewSource(5)), c, 8, 10)
	items := s.AvailableItems()

	t.Run("add then remove restores", func(t *testing.T) {
		if !s.Toggle(items[0].ID) {
			t.Fatal("expected first toggle to assign")
		}
		before := ids(s.Assigned())
		s.Toggle(items[1].ID)
		s.Toggle(items[1].ID)
		if got := ids(s.Assigned()); !equal(got, before) {
			t.Errorf("toggle-toggle changed assignment: %v -> %v", before, got)
		}
	})

	t.Run("capacity guard", func(t *testing.T) {
		s.Toggle(items[1].ID)
		if !s.AtCapacity() {
			t.Fatal("expected doll at capacity")
		}
		if s.Toggle(items[2].ID) {
			t.Error("expected add at capacity to be rejected")
		}
		if s.IsAssigned(items[2].ID) {
			t.Error("rejected item should not be assigned")
		}
	})

	t.Run("re-adding appends at the end", func(t *testing.T) {
		s.Toggle(items[0].ID)
		s.Toggle(items[0].ID)
		got := ids(s.Assigned())
		want := []int{items[1].ID, items[0].ID}
		if !equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("item not drawn tonight", func(t *testing.T) {
		s.Toggle(items[0].ID)
		if s.Toggle(-42) {
			t.Error("expected unknown item to be ignored")
		}
	})
}

func TestHighlightedTasks(t *testing.T) {
	c, err := catalog.New(
		[]models.Task{{ID: 1, Name: "sweep"}, {ID: 2, Name: "polish"}, {ID: 3, Name: "count"}},
		[]models.Item{{ID: 10, Name: "broom"}, {ID: 11, Name: "paste"}},
		[]models.ItemTaskLink{{ItemID: 10, TaskID: 1}, {ItemID: 11, TaskID: 2}, {ItemID: 10, TaskID: 2}},
	)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	s := NewSession(4)
	s.Start(rand.New(rand.NewSource(6)), c, 10, 10)

	if n := len(s.HighlightedTasks(c)); n != 0 {
		t.Errorf("expected no highlights with empty doll, got %d", n)
	}

	s.Toggle(10)
	s.Toggle(11)
	got := map[int]bool{}
	for _, task := range s.HighlightedTasks(c) {
		if got[task.ID] {
			t.Errorf("task %d highlighted twice", task.ID)
		}
		got[task.ID] = true
	}
	if !got[1] || !got[2] || got[3] {
		t.Errorf("expected tasks 1 and 2 highlighted, got %v", got)
	}
}

func TestSelectedTask(t *testing.T) {
	c := defaultCatalog(t)
	s := NewSession(4)
	s.Start(rand.New(rand.NewSource(7)), c, 20, 20)

	if n := len(s.ItemsForSelectedTask(c)); n != 0 {
		t.Errorf("expected no items without selection, got %d", n)
	}

	s.SelectTask(7)
	if id, ok := s.SelectedTask(); !ok || id != 7 {
		t.Fatalf("expected task 7 selected, got %d %v", id, ok)
	}
	if n := len(s.ItemsForSelectedTask(c)); n != 4 {
		t.Errorf("expected 4 items for task 7, got %d", n)
	}

	s.SelectTask(999)
	if _, ok := s.SelectedTask(); ok {
		t.Error("expected unknown task to clear selection")
	}
}

func ids(items []models.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
