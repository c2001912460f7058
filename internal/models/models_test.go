package models

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestTaskDifficultyYAML(t *testing.T) {
	data := []byte(`
- id: 1
  name: Sweep the dirt
- id: 2
  name: Polish the skulls
  difficulty: 13
`)

	var tasks []Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		t.Fatalf("Failed to unmarshal tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	if tasks[0].Difficulty != nil {
		t.Errorf("Expected nil difficulty for task 1, got %d", *tasks[0].Difficulty)
	}
	if got := tasks[0].EffectiveDifficulty(); got != DefaultDifficulty {
		t.Errorf("Expected default difficulty %d, got %d", DefaultDifficulty, got)
	}
	if got := tasks[1].EffectiveDifficulty(); got != 13 {
		t.Errorf("Expected difficulty 13, got %d", got)
	}
}

func TestTaskResultMargin(t *testing.T) {
	r := TaskResult{Roll: 9, Bonus: 1, Total: 10, Difficulty: 10}
	if r.Margin() != 0 {
		t.Errorf("Expected margin 0, got %d", r.Margin())
	}
}
