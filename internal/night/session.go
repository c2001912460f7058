// Package night holds the per-night draw of tasks and items and the doll's
// current assignment.
package night

import (
	"github.com/tatianab/doll-chores/internal/catalog"
	"github.com/tatianab/doll-chores/internal/dice"
	"github.com/tatianab/doll-chores/internal/models"
)

const (
	DefaultMaxItems     = 8
	DefaultMaxTasks     = 10
	DefaultMaxDollItems = 4
)

// Session is the mutable state of one night. Start replaces it wholesale.
type Session struct {
	maxDollItems int

	availableItems []models.Item
	nightlyTasks   []models.Task
	dollItems      []models.Item

	selectedTaskID int
	hasSelection   bool
}

// NewSession returns an empty session whose assignment cap is maxDollItems
// (DefaultMaxDollItems when not positive).
func NewSession(maxDollItems int) *Session {
	if maxDollItems <= 0 {
		maxDollItems = DefaultMaxDollItems
	}
	return &Session{maxDollItems: maxDollItems}
}

// Start draws a fresh night: up to maxItems items and maxTasks tasks sampled
// uniformly without replacement. The doll's assignment and the selected task
// are cleared.
func (s *Session) Start(src dice.Source, c *catalog.Catalog, maxItems, maxTasks int) {
	s.availableItems = sample(src, c.Items(), maxItems)
	s.nightlyTasks = sample(src, c.Tasks(), maxTasks)
	s.dollItems = nil
	s.hasSelection = false
	s.selectedTaskID = 0
}

// sample takes n elements via a partial Fisher-Yates shuffle. pool is owned by
// the caller and gets reordered.
func sample[T any](src dice.Source, pool []T, n int) []T {
	if n > len(pool) {
		n = len(pool)
	}
	if n < 0 {
		n = 0
	}
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return append([]T(nil), pool[:n]...)
}

// MaxDollItems is the doll's carrying capacity.
func (s *Session) MaxDollItems() int { return s.maxDollItems }

func (s *Session) AvailableItems() []models.Item {
	return append([]models.Item(nil), s.availableItems...)
}

func (s *Session) NightlyTasks() []models.Task {
	return append([]models.Task(nil), s.nightlyTasks...)
}

// Assigned returns the doll's items in assignment order.
func (s *Session) Assigned() []models.Item {
	return append([]models.Item(nil), s.dollItems...)
}

// IsAssigned reports whether the doll carries itemID.
func (s *Session) IsAssigned(itemID int) bool {
	return indexOf(s.dollItems, itemID) >= 0
}

// AtCapacity reports whether the doll can take no more items.
func (s *Session) AtCapacity() bool {
	return len(s.dollItems) >= s.maxDollItems
}

// Toggle removes itemID from the doll if assigned, otherwise appends it when
// there is room. Items not drawn this night and additions at capacity are
// ignored. It reports whether the assignment changed.
func (s *Session) Toggle(itemID int) bool {
	if i := indexOf(s.dollItems, itemID); i >= 0 {
		s.dollItems = append(s.dollItems[:i:i], s.dollItems[i+1:]...)
		return true
	}
	if s.AtCapacity() {
		return false
	}
	i := indexOf(s.availableItems, itemID)
	if i < 0 {
		return false
	}
	s.dollItems = append(s.dollItems, s.availableItems[i])
	return true
}

// HighlightedTasks returns the nightly tasks that at least one assigned item
// helps with, in nightly order.
func (s *Session) HighlightedTasks(c *catalog.Catalog) []models.Task {
	out := []models.Task{}
	for _, t := range s.nightlyTasks {
		for _, it := range s.dollItems {
			if c.Linked(it.ID, t.ID) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// SelectTask marks a nightly task as the one the player is inspecting.
// Unknown ids clear the selection.
func (s *Session) SelectTask(taskID int) {
	for _, t := range s.nightlyTasks {
		if t.ID == taskID {
			s.selectedTaskID = taskID
			s.hasSelection = true
			return
		}
	}
	s.ClearSelection()
}

func (s *Session) ClearSelection() {
	s.selectedTaskID = 0
	s.hasSelection = false
}

func (s *Session) SelectedTask() (int, bool) {
	return s.selectedTaskID, s.hasSelection
}

// ItemsForSelectedTask lists the catalog items that help with the selected
// task, or nothing when no task is selected.
func (s *Session) ItemsForSelectedTask(c *catalog.Catalog) []models.Item {
	if !s.hasSelection {
		return []models.Item{}
	}
	return c.ItemsForTask(s.selectedTaskID)
}

func indexOf(items []models.Item, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
