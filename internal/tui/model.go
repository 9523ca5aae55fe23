package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/heartsync/internal/flow"
	"github.com/csheth/heartsync/internal/i18n"
	"github.com/csheth/heartsync/internal/llm"
)

const descriptionCharLimit = 500

// Config wires runtime options into the TUI program.
type Config struct {
	Generator      llm.Generator
	Language       i18n.Language
	RequestTimeout time.Duration
	Logger         *zap.Logger
	// Now is the clock; tests replace it.
	Now func() time.Time
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	return newModel(config)
}

type model struct {
	config  Config
	machine *flow.Machine
	logger  *zap.Logger
	now     func() time.Time

	input   textarea.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	layout  pageLayout
	jobs    *jobBus

	cancelGeneration context.CancelFunc
	lastJob          jobSnapshot
	seenEpoch        uint64
	seenNotice       uint64
}

func newModel(config Config) *model {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	machine := flow.New(flow.Options{
		Language:   config.Language,
		Configured: llm.Configured(config.Generator),
		Now:        now,
	})

	input := textarea.New()
	input.ShowLineNumbers = false
	input.CharLimit = descriptionCharLimit
	input.SetHeight(3)
	input.SetWidth(60)
	input.KeyMap.InsertNewline.SetEnabled(false)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Points
	spin.Style = counterStyle

	m := &model{
		config:    config,
		machine:   machine,
		logger:    logger,
		now:       now,
		input:     input,
		spinner:   spin,
		help:      help.New(),
		keys:      newKeyMap(machine.Strings()),
		layout:    newPageLayout(),
		jobs:      newJobBus(logger.Named("jobs")),
		seenEpoch: machine.Epoch(),
	}
	m.syncPlaceholder()
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, exampleTickCmd(m.machine.Epoch()))
}

// Update dispatches msg, then schedules whatever the new step or notice needs.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if epoch := m.machine.Epoch(); epoch != m.seenEpoch {
		m.seenEpoch = epoch
		cmd = tea.Batch(cmd, m.enterStep())
	}
	if notice := m.machine.Notice(); notice.Active() && notice.ID != m.seenNotice {
		m.seenNotice = notice.ID
		cmd = tea.Batch(cmd, noticeExpiryCmd(notice, m.now()))
	}
	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.input.SetWidth(m.layout.contentWidth - 4)
		m.help.Width = m.layout.contentWidth
		return nil
	case spinner.TickMsg:
		if m.machine.Step() != flow.StepLoading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case jobSignalMsg:
		m.lastJob = msg.Snapshot
		return nil
	case jobResultEnvelope:
		m.lastJob = msg.Snapshot
		if msg.Payload == nil {
			return nil
		}
		return m.update(msg.Payload)
	case generationResultMsg:
		return m.handleGenerationResult(msg)
	case galleryReadyMsg:
		if err := m.machine.EnterGallery(msg.ticket); err != nil {
			m.logger.Debug("gallery transition dropped", zap.String("request_id", msg.ticket.ID), zap.Error(err))
			return nil
		}
		m.logger.Info("gallery ready", zap.String("request_id", msg.ticket.ID), zap.Int("cards", m.machine.Deck().Len()))
		return nil
	case loadingTickMsg:
		if msg.epoch != m.machine.Epoch() || m.machine.Step() != flow.StepLoading {
			return nil
		}
		return loadingTickCmd(msg.epoch)
	case exampleTickMsg:
		if msg.epoch != m.machine.Epoch() || m.machine.Step() != flow.StepInput {
			return nil
		}
		if m.machine.AdvanceExample(msg.epoch) {
			m.syncPlaceholder()
		}
		return exampleTickCmd(msg.epoch)
	case noticeExpiryMsg:
		now := m.now()
		if m.machine.ExpireNotice(msg.id, now) {
			return nil
		}
		if notice := m.machine.Notice(); notice.ID == msg.id && now.Before(notice.ExpiresAt) {
			return noticeExpiryCmd(notice, now)
		}
		return nil
	}
	return nil
}

func (m *model) handleGenerationResult(msg generationResultMsg) tea.Cmd {
	switch m.machine.CompleteGeneration(msg.ticket, msg.cards, msg.err) {
	case flow.CompletionReady:
		m.cancelInFlight()
		return galleryReadyCmd(msg.ticket)
	case flow.CompletionFailed:
		m.cancelInFlight()
		return nil
	default:
		m.logger.Debug("stale generation result ignored", zap.String("request_id", msg.ticket.ID))
		return nil
	}
}

// enterStep prepares widgets and timers for the step the machine just entered.
func (m *model) enterStep() tea.Cmd {
	switch m.machine.Step() {
	case flow.StepInput:
		if m.input.Value() != m.machine.Description() {
			m.input.SetValue(m.machine.Description())
		}
		m.syncPlaceholder()
		return tea.Batch(m.input.Focus(), exampleTickCmd(m.machine.Epoch()))
	case flow.StepLoading:
		m.input.Blur()
		return tea.Batch(m.spinner.Tick, loadingTickCmd(m.machine.Epoch()))
	default:
		m.input.Blur()
		return nil
	}
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelInFlight()
		return tea.Quit
	case key.Matches(msg, m.keys.Language):
		m.toggleLanguage()
		return nil
	}

	step := m.machine.Step()
	if step != flow.StepInput {
		switch {
		case key.Matches(msg, m.keys.QuitShort):
			m.cancelInFlight()
			return tea.Quit
		case key.Matches(msg, m.keys.LanguageShort):
			m.toggleLanguage()
			return nil
		}
	}

	switch step {
	case flow.StepInput:
		return m.handleInputKey(msg)
	case flow.StepLoading:
		if key.Matches(msg, m.keys.Cancel) {
			m.cancelInFlight()
			m.machine.Reset()
			m.logger.Info("generation canceled by user")
		}
		return nil
	case flow.StepGallery:
		m.handleGalleryKey(msg)
	case flow.StepFocus:
		m.handleFocusKey(msg)
	case flow.StepFinished:
		if key.Matches(msg, m.keys.Restart) {
			_ = m.machine.Restart()
		}
	}
	return nil
}

func (m *model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Cancel):
		m.input.Reset()
		_ = m.machine.SetDescription("")
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	_ = m.machine.SetDescription(m.input.Value())
	return cmd
}

func (m *model) submit() tea.Cmd {
	_ = m.machine.SetDescription(m.input.Value())
	ticket, err := m.machine.Submit()
	if err != nil {
		m.logger.Debug("submit rejected", zap.Error(err))
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelGeneration = cancel
	m.logger.Info("generation requested",
		zap.String("request_id", ticket.ID),
		zap.String("language", ticket.Language.String()),
	)
	return m.jobs.Start(ctx, jobKindGenerate, m.config.RequestTimeout, generateJob(m.config.Generator, ticket, m.logger))
}

func (m *model) handleGalleryKey(msg tea.KeyMsg) {
	total := m.machine.Deck().Len()
	hovered := m.machine.Hovered()
	switch {
	case key.Matches(msg, m.keys.Left):
		if hovered <= 0 {
			m.machine.Hover(0)
			return
		}
		m.machine.Hover(hovered - 1)
	case key.Matches(msg, m.keys.Right):
		if hovered < 0 {
			m.machine.Hover(0)
			return
		}
		if hovered+1 < total {
			m.machine.Hover(hovered + 1)
		}
	case key.Matches(msg, m.keys.Reveal):
		if hovered < 0 {
			hovered = 0
		}
		m.selectCard(hovered)
	case key.Matches(msg, m.keys.Pick):
		m.selectCard(pickIndex(msg.String()))
	case key.Matches(msg, m.keys.Expand):
		m.machine.ToggleExpanded()
	case key.Matches(msg, m.keys.Edit):
		_ = m.machine.EditContext()
	}
}

func (m *model) selectCard(i int) {
	if err := m.machine.Select(i); err != nil {
		m.logger.Debug("select rejected", zap.Int("index", i), zap.Error(err))
	}
}

// pickIndex maps the digit keys to card indices; 0 addresses the tenth card.
func pickIndex(s string) int {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return -1
	}
	if s[0] == '0' {
		return 9
	}
	return int(s[0] - '1')
}

func (m *model) handleFocusKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.machine.Navigate(-1)
	case key.Matches(msg, m.keys.Right):
		m.machine.Navigate(1)
	case key.Matches(msg, m.keys.Flip):
		m.machine.Flip()
	case key.Matches(msg, m.keys.Used):
		if err := m.machine.MarkUsed(); err != nil {
			m.logger.Warn("mark used failed", zap.Error(err))
			return
		}
		m.logger.Debug("card used", zap.Int("remaining", m.machine.Deck().Len()))
	case key.Matches(msg, m.keys.Back):
		_ = m.machine.Back()
	}
}

func (m *model) toggleLanguage() {
	lang := m.machine.ToggleLanguage()
	m.keys = newKeyMap(m.machine.Strings())
	m.syncPlaceholder()
	m.logger.Debug("language switched", zap.String("language", lang.String()))
}

func (m *model) syncPlaceholder() {
	m.input.Placeholder = m.machine.Example()
}

func (m *model) cancelInFlight() {
	if m.cancelGeneration != nil {
		m.cancelGeneration()
		m.cancelGeneration = nil
	}
}
