package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/fentz26/sked/internal/config"
	"github.com/fentz26/sked/internal/models"
	"github.com/fentz26/sked/internal/urgency"
	"github.com/fentz26/sked/internal/view"
	"github.com/stretchr/testify/assert"
)

func TestRenderTaskDetailShortID(t *testing.T) {
	a := &App{
		cfg: config.DefaultConfig(),
		entries: []view.Entry{{
			Task: models.Task{
				ID:        "ab12",
				Title:     "short id task",
				CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
			},
			Tier: urgency.None,
		}},
	}

	out := a.renderTaskDetail()
	assert.Contains(t, out, "ID: ab12")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcdefgh", shortID("abcdefgh12345"))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "", shortID(""))
}

func TestRenderTaskDetailNoSelection(t *testing.T) {
	a := &App{cfg: config.DefaultConfig()}
	assert.True(t, strings.Contains(a.renderTaskDetail(), "No task selected"))
}
