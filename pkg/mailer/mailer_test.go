package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func contactFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"contact.md": &fstest.MapFile{
			Data: []byte(`---
Subject: "New message from {{.Name}}"
---
**{{.Name}}** ({{.Email}}) wrote:

{{.Message}}
`),
		},
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRenderer(contactFS())
	mailer := New(mockSender, renderer, Config{})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "owner@example.com" &&
			email.Subject == "New message from Alice" &&
			email.ReplyTo == "alice@example.com" &&
			len(email.HTML) > 0 &&
			len(email.Text) > 0
	})).Return(nil)

	err := mailer.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		ReplyTo:  "alice@example.com",
		Template: "contact.md",
		Data: map[string]string{
			"Name":    "Alice",
			"Email":   "alice@example.com",
			"Message": "Hello there, I have a question.",
		},
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_SubjectOverride(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRenderer(contactFS())
	mailer := New(mockSender, renderer, Config{})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.Subject == "Contact: Bob"
	})).Return(nil)

	err := mailer.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		Template: "contact.md",
		Subject:  "Contact: {{.Name}}",
		Data: map[string]string{
			"Name":    "Bob",
			"Email":   "bob@example.com",
			"Message": "Short note.",
		},
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_FallbackSubject(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"plain.md":          &fstest.MapFile{Data: []byte(`No frontmatter here.`)},
	}

	mockSender := &MockSender{}
	renderer := NewRenderer(fs)
	mailer := New(mockSender, renderer, Config{FallbackSubject: "New contact form message"})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.Subject == "New contact form message"
	})).Return(nil)

	err := mailer.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		Template: "plain.md",
	})

	require.NoError(t, err)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRenderer(fstest.MapFS{})
	mailer := New(mockSender, renderer, Config{})

	err := mailer.Send(context.Background(), SendParams{
		Template: "contact.md",
	})

	require.ErrorIs(t, err, ErrNoRecipient)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_TemplateNotFound(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRenderer(fstest.MapFS{})
	mailer := New(mockSender, renderer, Config{})

	err := mailer.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		Template: "missing.md",
	})

	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, ErrTemplateNotFound)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_SenderFailure(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("provider unavailable")

	mockSender := &MockSender{}
	renderer := NewRenderer(contactFS())
	mailer := New(mockSender, renderer, Config{})

	mockSender.On("Send", mock.Anything, mock.Anything).Return(sendErr)

	err := mailer.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		Template: "contact.md",
		Data: map[string]string{
			"Name":    "Carol",
			"Email":   "carol@example.com",
			"Message": "Anyone home?",
		},
	})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, sendErr)
}

func TestLogSender_Send(t *testing.T) {
	t.Parallel()

	sender := NewLogSender(nil)
	err := sender.Send(context.Background(), &Email{
		To:      []string{"owner@example.com"},
		Subject: "New message from Dave",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	})

	require.NoError(t, err)
}
