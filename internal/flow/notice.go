package flow

import (
	"time"

	"github.com/csheth/heartsync/internal/i18n"
)

// NoticeKind says which localized message a Notice carries.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeMissingKey
	NoticeDescriptionShort
	NoticeGeneration
)

// Notice is a transient user-facing message.
type Notice struct {
	Text      string
	Kind      NoticeKind
	ExpiresAt time.Time
	ID        uint64
}

// Active reports whether the notice holds a message.
func (n Notice) Active() bool { return n.Kind != NoticeNone }

func noticeText(kind NoticeKind, lang i18n.Language) string {
	s := i18n.For(lang)
	switch kind {
	case NoticeMissingKey:
		return s.ErrMissingKey
	case NoticeDescriptionShort:
		return s.ErrDescriptionShort
	case NoticeGeneration:
		return s.ErrEngine
	default:
		return ""
	}
}

// Notice returns the current notice; the zero Notice when none is shown.
func (m *Machine) Notice() Notice { return m.notice }

func (m *Machine) raise(kind NoticeKind, ttl time.Duration) {
	m.noticeID++
	m.notice = Notice{
		Text:      noticeText(kind, m.language),
		Kind:      kind,
		ExpiresAt: m.now().Add(ttl),
		ID:        m.noticeID,
	}
}

func (m *Machine) clearNotice() {
	m.notice = Notice{}
}

// ExpireNotice clears notice id if it is still the current one and has run
// its course. A late timer for an older notice leaves a newer one alone.
func (m *Machine) ExpireNotice(id uint64, now time.Time) bool {
	if !m.notice.Active() || m.notice.ID != id || now.Before(m.notice.ExpiresAt) {
		return false
	}
	m.clearNotice()
	return true
}
