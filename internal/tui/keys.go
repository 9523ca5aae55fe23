package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/csheth/heartsync/internal/flow"
	"github.com/csheth/heartsync/internal/i18n"
)

type keyMap struct {
	Quit          key.Binding
	QuitShort     key.Binding
	Language      key.Binding
	LanguageShort key.Binding

	Submit key.Binding
	Cancel key.Binding

	Left    key.Binding
	Right   key.Binding
	Reveal  key.Binding
	Pick    key.Binding
	Expand  key.Binding
	Edit    key.Binding
	Flip    key.Binding
	Unflip  key.Binding
	Used    key.Binding
	Back    key.Binding
	Restart key.Binding
}

// newKeyMap labels the bindings in the active language.
func newKeyMap(s i18n.Strings) keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitShort:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Language:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", s.ToggleLabel)),
		LanguageShort: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", s.ToggleLabel)),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", s.GenerateBtn)),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Left:    key.NewBinding(key.WithKeys("left", "up", "h", "k"), key.WithHelp("←/→", "move")),
		Right:   key.NewBinding(key.WithKeys("right", "down", "tab", "j")),
		Reveal:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", s.RevealHint)),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-0", "pick")),
		Expand:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "fan out")),
		Edit:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", s.GalleryBack)),
		Flip:    key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space", s.FlipHint)),
		Unflip:  key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space", s.ResetBtn)),
		Used:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", s.MarkUsedBtn)),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", s.FocusBack)),
		Restart: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", s.EmptyBack)),
	}
}

// bindingsFor lists the bindings shown in the footer for step.
func (k keyMap) bindingsFor(step flow.Step, flipped bool) []key.Binding {
	switch step {
	case flow.StepInput:
		return []key.Binding{k.Submit, k.Language, k.Quit}
	case flow.StepLoading:
		return []key.Binding{k.Cancel, k.Language, k.Quit}
	case flow.StepGallery:
		return []key.Binding{k.Left, k.Reveal, k.Pick, k.Expand, k.Edit, k.LanguageShort, k.QuitShort}
	case flow.StepFocus:
		flip := k.Flip
		if flipped {
			flip = k.Unflip
		}
		return []key.Binding{k.Left, flip, k.Used, k.Back, k.LanguageShort, k.QuitShort}
	case flow.StepFinished:
		return []key.Binding{k.Restart, k.LanguageShort, k.QuitShort}
	default:
		return []key.Binding{k.Quit}
	}
}
