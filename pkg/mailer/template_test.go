package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate_WithFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte(`---
Subject: "New message from {{.Name}}"
Priority: high
---
Body text here.
`)

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)

	assert.Equal(t, "New message from {{.Name}}", tmpl.Metadata["Subject"])
	assert.Equal(t, "high", tmpl.Metadata["Priority"])
	assert.Equal(t, "Body text here.\n", tmpl.Body)
}

func TestParseTemplate_NoFrontmatter(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("Just a body.\n"))
	require.NoError(t, err)

	assert.Empty(t, tmpl.Metadata)
	assert.Equal(t, "Just a body.\n", tmpl.Body)
}

func TestParseTemplate_EmptyFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte("---\n---\nBody only.\n")

	tmpl, err := ParseTemplate(content)
	require.NoError(t, err)

	assert.Empty(t, tmpl.Metadata)
	assert.Equal(t, "Body only.\n", tmpl.Body)
}

func TestParseTemplate_UnclosedFrontmatter(t *testing.T) {
	t.Parallel()

	content := []byte("---\nSubject: broken\n")

	_, err := ParseTemplate(content)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParseTemplate_InvalidYAML(t *testing.T) {
	t.Parallel()

	content := []byte("---\nSubject: [unclosed\n---\nBody.\n")

	_, err := ParseTemplate(content)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alice <alice@example.com>", Recipient("Alice", "alice@example.com"))
	assert.Equal(t, "alice@example.com", Recipient("", "alice@example.com"))
}
