package tui

import "github.com/fentz26/sked/internal/view"

type tasksLoadedMsg struct {
	entries []view.Entry
}

type taskSavedMsg struct {
	message string
}

type errMsg struct {
	err error
}
