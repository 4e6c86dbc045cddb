package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karvyz/halfmoon/internal/config"
	"github.com/Karvyz/halfmoon/internal/transcript"
)

// storeTimeout bounds every transcript operation started from the UI.
const storeTimeout = 5 * time.Second

type messagesLoadedMsg struct {
	messages []transcript.Message
	err      error
}

type messageSubmittedMsg struct {
	message transcript.Message
	err     error
}

type messageEditedMsg struct {
	message transcript.Message
	summary transcript.EditSummary
	err     error
}

type messageDeletedMsg struct {
	id  string
	err error
}

// editSubmitMsg and editCancelMsg finish a session editing an existing
// message; the input box uses the editor's own SubmitMsg and CancelMsg.
type editSubmitMsg struct {
	content string
}

type editCancelMsg struct{}

type uiSavedMsg struct {
	err error
}

type configChangedMsg struct{}

func loadMessages(svc *transcript.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		msgs, err := svc.List(ctx)
		return messagesLoadedMsg{messages: msgs, err: err}
	}
}

func submitMessage(svc *transcript.Service, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		msg, err := svc.Submit(ctx, transcript.RoleUser, text)
		return messageSubmittedMsg{message: msg, err: err}
	}
}

func editMessage(svc *transcript.Service, id, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		msg, summary, err := svc.Edit(ctx, id, text)
		return messageEditedMsg{message: msg, summary: summary, err: err}
	}
}

func deleteMessage(svc *transcript.Service, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return messageDeletedMsg{id: id, err: svc.Delete(ctx, id)}
	}
}

func saveUI(path string, ui config.UIConfig) tea.Cmd {
	return func() tea.Msg {
		return uiSavedMsg{err: config.SaveUI(path, ui)}
	}
}

// waitForConfigChange blocks until the watcher reports a change. A closed
// channel ends the subscription.
func waitForConfigChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}
