package modes

// Mode identifiers. The registry falls back to ModeConversation for
// anything it does not recognize.
const (
	ModeConversation = "conversation"
	ModeVenting      = "venting"
	ModeStructured   = "structured"
)

// ModeSpec describes one journal mode: the system instruction the relay
// prepends to every upstream request, plus the generation parameters
// tuned for that mode.
type ModeSpec struct {
	ID           string  `yaml:"id"`
	Label        string  `yaml:"label"`
	SystemPrompt string  `yaml:"system_prompt"`
	Temperature  float32 `yaml:"temperature"`
	MaxTokens    int     `yaml:"max_tokens"`
}

type modeFile struct {
	Default string     `yaml:"default"`
	Modes   []ModeSpec `yaml:"modes"`
}
