// Package conversation implements the client side of the AI journal:
// an ordered, append-only transcript of turns with a single-submission
// state machine over a relay caller.
package conversation

import (
	"context"
	"strings"
	"sync"
	"time"

	journalModels "nextstep/internal/domain/models/journal"
	"nextstep/internal/modes"
)

// State is the submission state of a journal. The tagged state (rather
// than a bare boolean) makes the no-concurrent-submission invariant
// explicit.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// FailureReply is the fixed local message appended when a submission
// fails. The raw transport or relay error is never shown.
const FailureReply = "I'm having trouble connecting right now. Please make sure the server is running and try again."

// RelayCaller issues one relay call for a serialized transcript. The
// HTTP implementation is RelayClient; tests substitute a double.
type RelayCaller interface {
	Relay(ctx context.Context, messages []journalModels.Message, mode string) (*journalModels.Reply, error)
}

// Journal owns one conversation transcript and its mode. All methods
// are safe for concurrent use; at most one submission is ever in
// flight, and later turns are appended strictly in resolution order.
type Journal struct {
	relay RelayCaller

	mu    sync.Mutex
	state State
	mode  string
	turns []journalModels.Turn

	now func() time.Time
}

// Option configures a Journal.
type Option func(*Journal)

// WithMode sets the initial journal mode.
func WithMode(mode string) Option {
	return func(j *Journal) { j.mode = mode }
}

// WithClock overrides the timestamp source (used in tests).
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// New creates an empty journal in conversation mode.
func New(relay RelayCaller, opts ...Option) *Journal {
	j := &Journal{
		relay: relay,
		state: StateIdle,
		mode:  modes.ModeConversation,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Submit sends one user turn through the relay. It reports false and
// does nothing when text trims to empty or a submission is already in
// flight. Otherwise it appends the user turn immediately, performs the
// relay call with the transcript and mode captured at this moment, and
// appends exactly one assistant turn: the reply on success, or a fixed
// error-flagged apology on any failure. Turns are never edited or
// removed.
func (j *Journal) Submit(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)

	j.mu.Lock()
	if text == "" || j.state == StateSubmitting {
		j.mu.Unlock()
		return false
	}

	j.turns = append(j.turns, journalModels.Turn{
		Role:             journalModels.RoleUser,
		Content:          text,
		DisplayTimestamp: j.timestamp(),
	})
	j.state = StateSubmitting

	// Capture the request under the lock: the full transcript so far
	// (presentation fields stripped) and the mode active right now. A
	// later mode switch must not affect this call.
	messages := buildMessages(j.turns)
	mode := j.mode
	j.mu.Unlock()

	reply, err := j.relay.Relay(ctx, messages, mode)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.state = StateIdle

	if err != nil {
		// Terminal for this submission; the user may simply resubmit.
		j.turns = append(j.turns, journalModels.Turn{
			Role:             journalModels.RoleAssistant,
			Content:          FailureReply,
			DisplayTimestamp: j.timestamp(),
			IsError:          true,
		})
		return true
	}

	j.turns = append(j.turns, journalModels.Turn{
		Role:             journalModels.RoleAssistant,
		Content:          reply.Message,
		DisplayTimestamp: j.timestamp(),
	})
	return true
}

// SetMode switches the journal mode. It has no effect on existing turns
// or on any in-flight submission.
func (j *Journal) SetMode(mode string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.mode = mode
}

// Mode returns the current journal mode.
func (j *Journal) Mode() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.mode
}

// State returns the current submission state.
func (j *Journal) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Turns returns a copy of the transcript.
func (j *Journal) Turns() []journalModels.Turn {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]journalModels.Turn, len(j.turns))
	copy(out, j.turns)
	return out
}

func (j *Journal) timestamp() string {
	return j.now().Format("15:04")
}

// buildMessages serializes turns to the wire form: role and content in
// original order, timestamps and error flags stripped.
func buildMessages(turns []journalModels.Turn) []journalModels.Message {
	messages := make([]journalModels.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, journalModels.Message{
			Role:    t.Role,
			Content: t.Content,
		})
	}
	return messages
}
