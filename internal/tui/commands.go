package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/heartsync/internal/deck"
	"github.com/csheth/heartsync/internal/flow"
	"github.com/csheth/heartsync/internal/llm"
)

type generationResultMsg struct {
	ticket flow.Ticket
	cards  []deck.Card
	err    error
}

type galleryReadyMsg struct {
	ticket flow.Ticket
}

type loadingTickMsg struct {
	epoch uint64
}

type exampleTickMsg struct {
	epoch uint64
}

type noticeExpiryMsg struct {
	id uint64
}

func generateJob(gen llm.Generator, ticket flow.Ticket, logger *zap.Logger) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		started := time.Now()
		cards, err := gen.Generate(ctx, ticket.Prompt)
		fields := []zap.Field{
			zap.String("request_id", ticket.ID),
			zap.String("model", gen.Name()),
			zap.String("language", ticket.Language.String()),
			zap.Duration("duration", time.Since(started)),
		}
		if err != nil {
			logger.Warn("generation failed", append(fields, zap.Error(err))...)
		} else {
			logger.Info("generation succeeded", append(fields, zap.Int("cards", len(cards)))...)
		}
		return generationResultMsg{ticket: ticket, cards: cards, err: err}, err
	}
}

func loadingTickCmd(epoch uint64) tea.Cmd {
	return tea.Tick(flow.LoadingStageInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{epoch: epoch}
	})
}

func exampleTickCmd(epoch uint64) tea.Cmd {
	return tea.Tick(flow.ExampleInterval, func(time.Time) tea.Msg {
		return exampleTickMsg{epoch: epoch}
	})
}

func noticeExpiryCmd(notice flow.Notice, now time.Time) tea.Cmd {
	if !notice.Active() {
		return nil
	}
	wait := notice.ExpiresAt.Sub(now)
	if wait < 0 {
		wait = 0
	}
	id := notice.ID
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return noticeExpiryMsg{id: id}
	})
}

func galleryReadyCmd(ticket flow.Ticket) tea.Cmd {
	return tea.Tick(flow.GalleryDelay, func(time.Time) tea.Msg {
		return galleryReadyMsg{ticket: ticket}
	})
}
