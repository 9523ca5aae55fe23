// Package flow owns the step state machine behind the HeartSync screens.
//
// The machine never performs I/O. Submit hands back a Ticket carrying the
// prompt; the caller runs the generator and reports back through
// CompleteGeneration. Every transition is validated here so the UI layer can
// stay a thin adapter.
package flow

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/csheth/heartsync/internal/deck"
	"github.com/csheth/heartsync/internal/i18n"
	"github.com/csheth/heartsync/internal/llm"
	"github.com/csheth/heartsync/internal/prompt"
)

// Step is one screen of the flow.
type Step int

const (
	StepInput Step = iota
	StepLoading
	StepGallery
	StepFocus
	StepFinished
)

func (s Step) String() string {
	switch s {
	case StepInput:
		return "input"
	case StepLoading:
		return "loading"
	case StepGallery:
		return "gallery"
	case StepFocus:
		return "focus"
	case StepFinished:
		return "finished"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

const (
	// MinDescriptionRunes is the shortest trimmed description accepted.
	MinDescriptionRunes = 5

	MissingKeyNoticeTTL  = 3500 * time.Millisecond
	ValidationNoticeTTL  = 3 * time.Second
	GenerationNoticeTTL  = 3500 * time.Millisecond
	LoadingStageInterval = 2 * time.Second
	ExampleInterval      = 4500 * time.Millisecond
	// GalleryDelay is the pause between a successful generation and the gallery.
	GalleryDelay         = time.Second
)

var (
	ErrValidation        = errors.New("flow: description too short")
	ErrConfiguration     = llm.ErrConfiguration
	ErrInvalidTransition = errors.New("flow: invalid transition")
)

// Ticket ties a generation result to the loading episode that requested it.
type Ticket struct {
	ID       string
	Prompt   string
	Language i18n.Language
	IssuedAt time.Time
}

// Completion reports what CompleteGeneration did with a result.
type Completion int

const (
	// CompletionStale means the result belonged to an abandoned request.
	CompletionStale Completion = iota
	// CompletionFailed means the machine went back to input with a notice.
	CompletionFailed
	// CompletionReady means the deck is staged; call EnterGallery after GalleryDelay.
	CompletionReady
)

// Options configures a new Machine.
type Options struct {
	Language i18n.Language
	// Configured reports whether a generation credential exists.
	Configured bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Machine is the flow state. It is not safe for concurrent use; the UI
// update loop is its only writer.
type Machine struct {
	step        Step
	language    i18n.Language
	description string
	deck        deck.Deck
	pending     deck.Deck
	selected    int
	hovered     int
	flipped     bool
	expanded    bool

	configured   bool
	ticket       string
	loadingSince time.Time
	exampleIdx   int
	epoch        uint64

	notice   Notice
	noticeID uint64

	now func() time.Time
}

// New returns a machine on the input step.
func New(opts Options) *Machine {
	lang := opts.Language
	if !lang.Valid() {
		lang = i18n.Default
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Machine{
		step:       StepInput,
		language:   lang,
		selected:   -1,
		hovered:    -1,
		configured: opts.Configured,
		now:        now,
	}
}

func (m *Machine) Step() Step { return m.step }
func (m *Machine) Language() i18n.Language { return m.language }
func (m *Machine) Strings() i18n.Strings { return i18n.For(m.language) }
func (m *Machine) Description() string { return m.description }
func (m *Machine) Deck() deck.Deck { return m.deck }
func (m *Machine) Selected() int { return m.selected }
func (m *Machine) Hovered() int { return m.hovered }
func (m *Machine) Flipped() bool { return m.flipped }
func (m *Machine) Expanded() bool { return m.expanded }
func (m *Machine) Configured() bool { return m.configured }
func (m *Machine) Epoch() uint64 { return m.epoch }
func (m *Machine) PendingTicket() string { return m.ticket }
func (m *Machine) ExampleIndex() int { return m.exampleIdx }

// SelectedCard returns the focused card, if any.
func (m *Machine) SelectedCard() (deck.Card, bool) {
	if m.step != StepFocus {
		return deck.Card{}, false
	}
	return m.deck.At(m.selected)
}

// Example is the placeholder scene currently shown on the input step.
func (m *Machine) Example() string {
	examples := m.Strings().Examples
	if len(examples) == 0 {
		return ""
	}
	return examples[m.exampleIdx%len(examples)]
}

func (m *Machine) enter(step Step) {
	m.step = step
	m.epoch++
}

// SetDescription replaces the scene text. Only valid while editing.
func (m *Machine) SetDescription(s string) error {
	if m.step != StepInput {
		return fmt.Errorf("%w: set description in %s", ErrInvalidTransition, m.step)
	}
	m.description = s
	return nil
}

// Submit validates the description and moves to loading. The returned Ticket
// must be passed back to CompleteGeneration.
func (m *Machine) Submit() (Ticket, error) {
	if m.step != StepInput {
		return Ticket{}, fmt.Errorf("%w: submit in %s", ErrInvalidTransition, m.step)
	}
	if !m.configured {
		m.raise(NoticeMissingKey, MissingKeyNoticeTTL)
		return Ticket{}, ErrConfiguration
	}
	trimmed := strings.TrimSpace(m.description)
	if utf8.RuneCountInString(trimmed) < MinDescriptionRunes {
		m.raise(NoticeDescriptionShort, ValidationNoticeTTL)
		return Ticket{}, fmt.Errorf("%w: %d of %d characters", ErrValidation, utf8.RuneCountInString(trimmed), MinDescriptionRunes)
	}

	now := m.now()
	t := Ticket{
		ID:       uuid.NewString(),
		Prompt:   prompt.Build(trimmed, m.language),
		Language: m.language,
		IssuedAt: now,
	}
	m.ticket = t.ID
	m.loadingSince = now
	m.pending = deck.Deck{}
	m.clearNotice()
	m.enter(StepLoading)
	return t, nil
}

// CompleteGeneration records the outcome of the request behind ticket.
func (m *Machine) CompleteGeneration(ticket Ticket, cards []deck.Card, err error) Completion {
	if !m.current(ticket) {
		return CompletionStale
	}
	if err != nil || len(cards) == 0 {
		m.ticket = ""
		m.raise(NoticeGeneration, GenerationNoticeTTL)
		m.enter(StepInput)
		return CompletionFailed
	}
	m.pending = deck.New(cards...)
	return CompletionReady
}

// EnterGallery installs the staged deck once the exit delay has passed.
func (m *Machine) EnterGallery(ticket Ticket) error {
	if !m.current(ticket) || m.pending.Empty() {
		return fmt.Errorf("%w: no staged deck for ticket", ErrInvalidTransition)
	}
	m.deck = m.deck.Replace(m.pending.Cards())
	m.pending = deck.Deck{}
	m.ticket = ""
	m.selected = -1
	m.hovered = -1
	m.flipped = false
	m.enter(StepGallery)
	return nil
}

func (m *Machine) current(ticket Ticket) bool {
	return m.step == StepLoading && ticket.ID != "" && ticket.ID == m.ticket
}

// Select focuses card i.
func (m *Machine) Select(i int) error {
	if m.step != StepGallery {
		return fmt.Errorf("%w: select in %s", ErrInvalidTransition, m.step)
	}
	if i < 0 || i >= m.deck.Len() {
		return fmt.Errorf("%w: select %d of %d", deck.ErrIndexOutOfRange, i, m.deck.Len())
	}
	m.selected = i
	m.flipped = false
	m.enter(StepFocus)
	return nil
}

// Back returns from focus to the gallery.
func (m *Machine) Back() error {
	if m.step != StepFocus {
		return fmt.Errorf("%w: back in %s", ErrInvalidTransition, m.step)
	}
	m.flipped = false
	m.hovered = -1
	m.selected = -1
	m.enter(StepGallery)
	return nil
}

// EditContext goes back to input keeping both the description and the deck.
func (m *Machine) EditContext() error {
	if m.step != StepGallery {
		return fmt.Errorf("%w: edit context in %s", ErrInvalidTransition, m.step)
	}
	m.hovered = -1
	m.enter(StepInput)
	return nil
}

// Navigate moves the focus by delta, clamped to the deck. It reports whether
// the selection changed.
func (m *Machine) Navigate(delta int) bool {
	if m.step != StepFocus || m.deck.Empty() {
		return false
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if last := m.deck.Len() - 1; next > last {
		next = last
	}
	if next == m.selected {
		return false
	}
	m.selected = next
	m.flipped = false
	return true
}

// Flip turns the focused card over.
func (m *Machine) Flip() bool {
	if m.step != StepFocus {
		return false
	}
	m.flipped = !m.flipped
	return true
}

// MarkUsed discards the focused card.
func (m *Machine) MarkUsed() error {
	if m.step != StepFocus {
		return fmt.Errorf("%w: mark used in %s", ErrInvalidTransition, m.step)
	}
	next, err := m.deck.RemoveAt(m.selected)
	if err != nil {
		return err
	}
	m.deck = next
	m.selected = -1
	m.hovered = -1
	m.flipped = false
	if m.deck.Empty() {
		m.enter(StepFinished)
	} else {
		m.enter(StepGallery)
	}
	return nil
}

// Restart leaves the finished screen for a fresh input.
func (m *Machine) Restart() error {
	if m.step != StepFinished {
		return fmt.Errorf("%w: restart in %s", ErrInvalidTransition, m.step)
	}
	m.description = ""
	m.deck = deck.Deck{}
	m.selected = -1
	m.hovered = -1
	m.flipped = false
	m.enter(StepInput)
	return nil
}

// Reset abandons whatever is happening and returns to input. An in-flight
// ticket becomes stale.
func (m *Machine) Reset() {
	m.ticket = ""
	m.pending = deck.Deck{}
	m.selected = -1
	m.hovered = -1
	m.flipped = false
	m.enter(StepInput)
}

// Hover marks card i as hovered in the gallery; out of range clears it.
func (m *Machine) Hover(i int) {
	if m.step != StepGallery || i < 0 || i >= m.deck.Len() {
		m.hovered = -1
		return
	}
	m.hovered = i
}

// ToggleExpanded flips the gallery between its collapsed and fanned layout.
func (m *Machine) ToggleExpanded() bool {
	if m.step != StepGallery {
		return false
	}
	m.expanded = !m.expanded
	return true
}

// ToggleLanguage switches between the two display languages.
func (m *Machine) ToggleLanguage() i18n.Language {
	m.SetLanguage(m.language.Toggle())
	return m.language
}

// SetLanguage changes the display language without touching the step.
func (m *Machine) SetLanguage(l i18n.Language) {
	if !l.Valid() {
		return
	}
	m.language = l
	if m.notice.Active() {
		m.notice.Text = noticeText(m.notice.Kind, l)
	}
}

// LoadingMessage is the loading caption for now. Stages advance every
// LoadingStageInterval and hold on the last one.
func (m *Machine) LoadingMessage(now time.Time) string {
	stages := m.Strings().LoadingStages
	if len(stages) == 0 {
		return ""
	}
	return stages[m.loadingStage(now, len(stages))]
}

func (m *Machine) loadingStage(now time.Time, n int) int {
	if m.step != StepLoading {
		return 0
	}
	elapsed := now.Sub(m.loadingSince)
	if elapsed < 0 {
		return 0
	}
	idx := int(elapsed / LoadingStageInterval)
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// AdvanceExample rotates the input placeholder. Ticks from an earlier epoch,
// or arriving while the user has typed something, are ignored.
func (m *Machine) AdvanceExample(epoch uint64) bool {
	if epoch != m.epoch || m.step != StepInput || m.description != "" {
		return false
	}
	if n := len(m.Strings().Examples); n > 0 {
		m.exampleIdx = (m.exampleIdx + 1) % n
	}
	return true
}
