package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/heartsync/internal/deck"
	"github.com/csheth/heartsync/internal/flow"
	"github.com/csheth/heartsync/internal/i18n"
)

func (m *model) View() string {
	var body string
	switch m.machine.Step() {
	case flow.StepInput:
		body = m.viewInput()
	case flow.StepLoading:
		body = m.viewLoading()
	case flow.StepGallery:
		body = m.viewGallery()
	case flow.StepFocus:
		body = m.viewFocus()
	case flow.StepFinished:
		body = m.viewFinished()
	}
	return joinNonEmpty([]string{m.headerView(), body, m.noticeView(), m.footerView()})
}

func (m *model) headerView() string {
	s := m.machine.Strings()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderLogo(m.layout.windowWidth),
		subtitleStyle.Render(s.LogoSubtitle),
	)
}

func (m *model) viewInput() string {
	s := m.machine.Strings()
	return joinNonEmpty([]string{
		labelStyle.Render(s.InputLabel),
		inputBoxStyle.Render(m.input.View()),
	})
}

func (m *model) viewLoading() string {
	message := m.machine.LoadingMessage(m.now())
	return fmt.Sprintf("%s %s", m.spinner.View(), message)
}

func (m *model) viewGallery() string {
	s := m.machine.Strings()
	d := m.machine.Deck()
	slots := m.layout.fan(d.Len(), m.machine.Hovered(), m.machine.Expanded())
	rows := make([]string, 0, len(slots))
	for _, slot := range slots {
		style := spineTone(slot.Depth, len(slots))
		label := deck.Label(slot.Index)
		if slot.Hover {
			style = hoverStyle
			label = "◆ " + label
		}
		rows = append(rows, strings.Repeat(" ", slot.Column)+style.Render(label))
	}
	return joinNonEmpty([]string{
		labelStyle.Render(s.GalleryTitle),
		strings.Join(rows, "\n"),
	})
}

func (m *model) viewFocus() string {
	card, ok := m.machine.SelectedCard()
	if !ok {
		return ""
	}
	s := m.machine.Strings()
	width := m.layout.textWidth()
	counter := counterStyle.Render(fmt.Sprintf("%d / %d", m.machine.Selected()+1, m.machine.Deck().Len()))

	if m.machine.Flipped() {
		back := strings.Join([]string{
			labelStyle.Render(s.WhyLabel),
			wordwrap.String(card.Rationale(), width),
			"",
			labelStyle.Render(s.TipLabel),
			wordwrap.String(card.Tip(), width),
		}, "\n")
		return joinNonEmpty([]string{counter, cardBackStyle.Width(m.layout.cardWidth).Render(back)})
	}

	lead, other := questionsFor(card, m.machine.Language())
	front := strings.Join([]string{
		questionStyle.Render(wordwrap.String(lead, width)),
		"",
		helperStyle.Render(wordwrap.String(other, width)),
		"",
		helperStyle.Render(s.FlipHint),
	}, "\n")
	return joinNonEmpty([]string{counter, cardFrontStyle.Width(m.layout.cardWidth).Render(front)})
}

// questionsFor orders the two prompts so the active language comes first.
func questionsFor(card deck.Card, lang i18n.Language) (string, string) {
	if lang == i18n.English {
		return card.PromptSecondary(), card.PromptPrimary()
	}
	return card.PromptPrimary(), card.PromptSecondary()
}

func (m *model) viewFinished() string {
	s := m.machine.Strings()
	return finishedStyle.Width(m.layout.contentWidth).Render(s.FinishedMessage)
}

func (m *model) noticeView() string {
	notice := m.machine.Notice()
	if !notice.Active() {
		return ""
	}
	return errorStyle.Render(notice.Text)
}

func (m *model) footerView() string {
	bindings := m.keys.bindingsFor(m.machine.Step(), m.machine.Flipped())
	return joinNonEmpty([]string{
		m.help.ShortHelpView(bindings),
		m.statusView(),
	})
}

func (m *model) statusView() string {
	stats := []string{"HeartSync"}
	if m.config.Generator != nil {
		stats = append(stats, m.config.Generator.Name())
	}
	if m.lastJob.ID != "" {
		badge := fmt.Sprintf("%s %s", m.lastJob.Kind, m.lastJob.Status)
		if m.lastJob.Duration > 0 {
			badge = fmt.Sprintf("%s %.1fs", badge, m.lastJob.Duration.Seconds())
		}
		stats = append(stats, badge)
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
