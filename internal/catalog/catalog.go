// Package catalog holds the static registry of tasks, items, and the links
// recording which items help with which tasks.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/tatianab/doll-chores/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrDuplicateTask = errors.New("duplicate task id")
	ErrDuplicateItem = errors.New("duplicate item id")
	ErrDuplicateLink = errors.New("duplicate item-task link")
	ErrUnknownTask   = errors.New("link references unknown task")
	ErrUnknownItem   = errors.New("link references unknown item")
)

// Catalog is read-only after construction.
type Catalog struct {
	tasks []models.Task
	items []models.Item
	links []models.ItemTaskLink

	taskByID map[int]int // id -> index in tasks
	itemByID map[int]int
}

type catalogFile struct {
	Tasks []models.Task         `yaml:"tasks"`
	Items []models.Item         `yaml:"items"`
	Links []models.ItemTaskLink `yaml:"links"`
}

// New builds a catalog, rejecting duplicate ids, duplicate links, and links
// that reference ids missing from the catalog.
func New(tasks []models.Task, items []models.Item, links []models.ItemTaskLink) (*Catalog, error) {
	c := &Catalog{
		tasks:    append([]models.Task(nil), tasks...),
		items:    append([]models.Item(nil), items...),
		links:    append([]models.ItemTaskLink(nil), links...),
		taskByID: make(map[int]int, len(tasks)),
		itemByID: make(map[int]int, len(items)),
	}

	for i, t := range c.tasks {
		if _, ok := c.taskByID[t.ID]; ok {
			return nil, fmt.Errorf("task %d: %w", t.ID, ErrDuplicateTask)
		}
		c.taskByID[t.ID] = i
	}
	for i, it := range c.items {
		if _, ok := c.itemByID[it.ID]; ok {
			return nil, fmt.Errorf("item %d: %w", it.ID, ErrDuplicateItem)
		}
		c.itemByID[it.ID] = i
	}

	seen := make(map[models.ItemTaskLink]bool, len(c.links))
	for _, l := range c.links {
		if _, ok := c.itemByID[l.ItemID]; !ok {
			return nil, fmt.Errorf("item %d: %w", l.ItemID, ErrUnknownItem)
		}
		if _, ok := c.taskByID[l.TaskID]; !ok {
			return nil, fmt.Errorf("task %d: %w", l.TaskID, ErrUnknownTask)
		}
		if seen[l] {
			return nil, fmt.Errorf("item %d, task %d: %w", l.ItemID, l.TaskID, ErrDuplicateLink)
		}
		seen[l] = true
	}

	return c, nil
}

// Load parses a YAML catalog with top-level tasks, items, and links.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Tasks, f.Items, f.Links)
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Load(data)
}

// Default returns the embedded catalog of hut chores.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

// Tasks returns every task in catalog order.
func (c *Catalog) Tasks() []models.Task {
	return append([]models.Task(nil), c.tasks...)
}

// Items returns every item in catalog order.
func (c *Catalog) Items() []models.Item {
	return append([]models.Item(nil), c.items...)
}

// Links returns the item-task relation in catalog order.
func (c *Catalog) Links() []models.ItemTaskLink {
	return append([]models.ItemTaskLink(nil), c.links...)
}

// Task looks up a task by id.
func (c *Catalog) Task(id int) (models.Task, bool) {
	i, ok := c.taskByID[id]
	if !ok {
		return models.Task{}, false
	}
	return c.tasks[i], true
}

// Item looks up an item by id.
func (c *Catalog) Item(id int) (models.Item, bool) {
	i, ok := c.itemByID[id]
	if !ok {
		return models.Item{}, false
	}
	return c.items[i], true
}

// Linked reports whether itemID helps with taskID.
func (c *Catalog) Linked(itemID, taskID int) bool {
	for _, l := range c.links {
		if l.ItemID == itemID && l.TaskID == taskID {
			return true
		}
	}
	return false
}

// ItemsForTask returns the items linked to taskID in link order. Unknown ids
// yield an empty slice.
func (c *Catalog) ItemsForTask(taskID int) []models.Item {
	out := []models.Item{}
	for _, l := range c.links {
		if l.TaskID != taskID {
			continue
		}
		if it, ok := c.Item(l.ItemID); ok {
			out = append(out, it)
		}
	}
	return out
}

// TasksForItem returns the tasks linked to itemID in link order.
func (c *Catalog) TasksForItem(itemID int) []models.Task {
	out := []models.Task{}
	for _, l := range c.links {
		if l.ItemID != itemID {
			continue
		}
		if t, ok := c.Task(l.TaskID); ok {
			out = append(out, t)
		}
	}
	return out
}
