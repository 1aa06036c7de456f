package handout

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render(Handout{
		SessionID: "8a6e0804-2bd0-4672-b79d-d97027f9071a",
		Date:      time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
		Total:     4,
		Entries: []Entry{
			{Author: "Hannah Chukwu", Body: "If conflict between employees and managers is inevitable...", WeekLabel: "Week 2 — Ch 1: Making Inevitable Conflict Productive"},
			{Author: "Drake Bellisari", Body: "HYBHY argues conflict is inevitable and can be productive.", WeekLabel: "Week 2 — Ch 1: Making Inevitable Conflict Productive"},
		},
		ShowAuthors: true,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 500)
}

func renderPlain(t *testing.T, showAuthors bool) string {
	t.Helper()
	compress = false
	t.Cleanup(func() { compress = true })

	out, err := Render(Handout{
		Date:  time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
		Total: 2,
		Entries: []Entry{
			{Author: "Hannah Chukwu", Body: "Is conflict productive?", WeekLabel: "Week 2"},
		},
		ShowAuthors: showAuthors,
	})
	require.NoError(t, err)
	return string(out)
}

func TestRenderHidesAuthorsByDefault(t *testing.T) {
	out := renderPlain(t, false)
	assert.Contains(t, out, "Is conflict productive?")
	assert.NotContains(t, out, "Hannah Chukwu")
}

func TestRenderShowsAuthorsWhenAsked(t *testing.T) {
	out := renderPlain(t, true)
	assert.Contains(t, out, "Is conflict productive?")
	assert.Contains(t, out, "Hannah Chukwu")
}

func TestRenderNothingDrawn(t *testing.T) {
	_, err := Render(Handout{Total: 3})
	assert.ErrorIs(t, err, ErrNothingDrawn)
}
