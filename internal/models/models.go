package models

// DefaultDifficulty is used for tasks that do not set their own difficulty.
const DefaultDifficulty = 10

// Task is a chore the doll may attempt during the night.
type Task struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Difficulty *int   `yaml:"difficulty,omitempty"` // nil means DefaultDifficulty
}

// EffectiveDifficulty returns the configured difficulty or DefaultDifficulty.
func (t Task) EffectiveDifficulty() int {
	if t.Difficulty == nil {
		return DefaultDifficulty
	}
	return *t.Difficulty
}

// Item is something the player can hand to the doll.
type Item struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// ItemTaskLink records that an item helps with a task.
type ItemTaskLink struct {
	ItemID int `yaml:"item_id"`
	TaskID int `yaml:"task_id"`
}

// StepKey is the stable identifier of a game phase.
type StepKey string

const (
	StepNightStart         StepKey = "nightStart"
	StepGetTasks           StepKey = "getTasks"
	StepListItems          StepKey = "listItems"
	StepGiveDollItems      StepKey = "giveDollItems"
	StepNightEnd           StepKey = "nightEnd"
	StepDollAttemptsChores StepKey = "dollAttemptsChores"
	StepPlayerMakesDinner  StepKey = "playerMakesDinner"
	StepWitchGivesBoons    StepKey = "witchGivesBoons"
	StepDayEnd             StepKey = "dayEnd"
	StepWin                StepKey = "win"
)

// GameStep is one entry of the phase sequence. Steps are static configuration.
type GameStep struct {
	Key          StepKey `yaml:"key"`
	Label        string  `yaml:"label"`
	ContinueText string  `yaml:"continue_text"`
	Narrative    string  `yaml:"narrative"`
	Interactive  bool    `yaml:"interactive"` // renderer waits for player input
	Terminal     bool    `yaml:"terminal"`    // the victory step
}

// Outcome classifies a resolved task.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFail    Outcome = "fail"
)

// TaskResult is the immutable record of one resolved task.
type TaskResult struct {
	TaskID     int     `yaml:"task_id"`
	Roll       int     `yaml:"roll"`
	Bonus      int     `yaml:"bonus"`
	Total      int     `yaml:"total"`
	Difficulty int     `yaml:"difficulty"`
	Outcome    Outcome `yaml:"outcome"`
	Text       string  `yaml:"text"`
}

// Margin is Total minus Difficulty.
func (r TaskResult) Margin() int {
	return r.Total - r.Difficulty
}
