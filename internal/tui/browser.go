package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvasnikov/go-task-sync/internal/service"
	"github.com/kvasnikov/go-task-sync/models"
)

// browserModel is the main screen: the local task list with cursor
// navigation, inline toggles, and an overlay form for add/edit. All
// mutations land in the local replica only; "s" runs a sync cycle against
// the server.
type browserModel struct {
	ctx   context.Context
	tasks service.ClientTaskService
	sync  service.ClientSyncService

	items   []models.Task
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model
	status  string
	errMsg  string

	form *formModel
}

func newBrowserModel(ctx context.Context, tasks service.ClientTaskService, sync service.ClientSyncService) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:     ctx,
		tasks:   tasks,
		sync:    sync,
		spinner: s,
		loading: true,
	}
}

func (m browserModel) Init() tea.Cmd {
	return m.cmdLoadTasks()
}

func (m browserModel) current() (models.Task, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Task{}, false
	}
	return m.items[m.idx], true
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.tasks
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("sync failed: %v", msg.err)
			return m, nil
		}
		m.status = "synced"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTasks()
	case taskSavedMsg:
		if m.form != nil {
			m.form.submitting = false
		}
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.form = nil
		m.status = "saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTasks()
	case taskDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTasks()
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "a":
		form := newFormModel(models.Task{})
		m.form = &form
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "no tasks"
			return m, nil
		}
		form := newFormModel(item)
		m.form = &form
	case "enter", " ":
		item, ok := m.current()
		if !ok {
			m.status = "no tasks"
			return m, nil
		}
		item.Done = !item.Done
		return m, m.cmdSave(item, true)
	case "u":
		item, ok := m.current()
		if !ok {
			m.status = "no tasks"
			return m, nil
		}
		item.Urgent = models.Some(!urgentFlag(item))
		return m, m.cmdSave(item, true)
	case "ctrl+d":
		item, ok := m.current()
		if !ok {
			m.status = "no tasks"
			return m, nil
		}
		return m, m.cmdDelete(item.ID)
	case "c":
		item, ok := m.current()
		if !ok {
			m.status = "no tasks"
			return m, nil
		}
		if err := clipboard.WriteAll(copyValue(item)); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "copied"
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "syncing..."
		m.errMsg = ""
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	}

	return m, nil
}

func (m browserModel) View() string {
	if m.form != nil {
		return appStyle.Render(m.form.View())
	}

	header := titleStyle.Render("tasks")
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "loading...\n"
	case len(m.items) == 0:
		out += "no tasks yet\n"
	default:
		for i, item := range m.items {
			out += m.renderItem(i, item)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("error: "+m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("a add  e edit  enter toggle  u urgent  c copy  ctrl+d delete  s sync  q quit")
	return appStyle.Render(out)
}

func (m browserModel) renderItem(i int, task models.Task) string {
	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}

	box := "[ ]"
	if task.Done {
		box = "[x]"
	}

	name := task.Name
	if task.Done {
		name = doneStyle.Render(name)
	}
	if urgentFlag(task) {
		name = urgentStyle.Render("! ") + name
	}

	return fmt.Sprintf("%s%s %s\n", cursor, box, name)
}

func urgentFlag(task models.Task) bool {
	urgent := task.Urgent.Ptr()
	return urgent != nil && *urgent
}

// copyValue picks what "c" puts on the clipboard: the comment when the task
// has one, the name otherwise.
func copyValue(task models.Task) string {
	if comment := task.Comment.Ptr(); comment != nil && *comment != "" {
		return *comment
	}
	return task.Name
}

func (m browserModel) cmdLoadTasks() tea.Cmd {
	ctx, svc := m.ctx, m.tasks

	return func() tea.Msg {
		tasks, err := svc.GetAll(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m browserModel) cmdSync() tea.Cmd {
	ctx, svc := m.ctx, m.sync

	return func() tea.Msg {
		return syncDoneMsg{err: svc.Sync(ctx)}
	}
}

func (m browserModel) cmdDelete(id string) tea.Cmd {
	ctx, svc := m.ctx, m.tasks

	return func() tea.Msg {
		return taskDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m browserModel) cmdSave(task models.Task, update bool) tea.Cmd {
	ctx, svc := m.ctx, m.tasks

	return func() tea.Msg {
		var err error
		if update {
			_, err = svc.Update(ctx, task)
		} else {
			_, err = svc.Create(ctx, task)
		}
		return taskSavedMsg{err: err}
	}
}
