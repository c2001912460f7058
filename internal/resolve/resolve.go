// Package resolve turns the doll's assignment into outcomes for the night's
// tasks.
package resolve

import (
	"github.com/tatianab/doll-chores/internal/catalog"
	"github.com/tatianab/doll-chores/internal/dice"
	"github.com/tatianab/doll-chores/internal/models"
)

// SuccessMargin is the smallest margin classified as a full success.
const SuccessMargin = 3

const (
	successText = "The doll finished the chore so neatly that the hut purrs on its legs."
	partialText = "The doll did most of it. Some corners are still dusty, but the witch may not notice."
	failText    = "The doll tangled itself in the chore and left it worse than before."
)

// Classify maps a margin (total minus difficulty) to an outcome.
func Classify(margin int) models.Outcome {
	switch {
	case margin >= SuccessMargin:
		return models.OutcomeSuccess
	case margin >= 0:
		return models.OutcomePartial
	default:
		return models.OutcomeFail
	}
}

// Flavor returns the narrative line attached to an outcome.
func Flavor(o models.Outcome) string {
	switch o {
	case models.OutcomeSuccess:
		return successText
	case models.OutcomePartial:
		return partialText
	default:
		return failText
	}
}

// Bonus counts the assigned items linked to taskID. Each counts once.
func Bonus(c *catalog.Catalog, taskID int, assigned []models.Item) int {
	bonus := 0
	for _, it := range assigned {
		if c.Linked(it.ID, taskID) {
			bonus++
		}
	}
	return bonus
}

// ResolveTask rolls 3d6 for one task and classifies the result.
func ResolveTask(src dice.Source, c *catalog.Catalog, task models.Task, assigned []models.Item) models.TaskResult {
	difficulty := task.EffectiveDifficulty()
	bonus := Bonus(c, task.ID, assigned)
	roll := dice.Roll3d6(src)
	total := roll + bonus
	outcome := Classify(total - difficulty)

	return models.TaskResult{
		TaskID:     task.ID,
		Roll:       roll,
		Bonus:      bonus,
		Total:      total,
		Difficulty: difficulty,
		Outcome:    outcome,
		Text:       Flavor(outcome),
	}
}

// Resolve resolves every task independently, in the given order. No tasks
// yields an empty, non-nil slice.
func Resolve(src dice.Source, c *catalog.Catalog, tasks []models.Task, assigned []models.Item) []models.TaskResult {
	results := make([]models.TaskResult, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, ResolveTask(src, c, t, assigned))
	}
	return results
}
