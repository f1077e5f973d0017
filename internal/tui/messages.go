package tui

import "github.com/kvasnikov/go-task-sync/models"

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type syncDoneMsg struct {
	err error
}

type taskSavedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}
