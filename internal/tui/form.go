package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvasnikov/go-task-sync/models"
)

var errNameRequired = errors.New("name is required")

// defaultIcon fills the icon field when the user leaves it blank, since
// every record carries one on the wire.
const defaultIcon = "task"

// formModel is the add/edit overlay: three inputs over a draft record.
// An empty draft id means the submit creates a new task.
type formModel struct {
	draft      models.Task
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newFormModel(draft models.Task) formModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.Width = 40
	name.SetValue(draft.Name)
	name.Focus()

	icon := textinput.New()
	icon.Placeholder = "icon"
	icon.Width = 40
	icon.SetValue(draft.Icon)

	comment := textinput.New()
	comment.Placeholder = "comment (optional)"
	comment.Width = 40
	if c := draft.Comment.Ptr(); c != nil {
		comment.SetValue(*c)
	}

	return formModel{
		draft:  draft,
		inputs: []textinput.Model{name, icon, comment},
	}
}

func (m browserModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && !m.form.submitting {
		switch keyMsg.String() {
		case "esc":
			m.form = nil
			return m, nil
		case "tab":
			m.form.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.form.cycleFocus(-1)
			return m, nil
		case "enter":
			task, err := m.form.submit()
			if err != nil {
				m.form.errMsg = err.Error()
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSave(task, task.ID != "")
		}
	}

	cmd := m.form.updateFocused(msg)
	return m, cmd
}

func (f *formModel) cycleFocus(step int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + step + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *formModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// submit builds the record handed to the task service. A blank comment is
// an explicit null, clearing whatever the record held before.
func (f *formModel) submit() (models.Task, error) {
	name := strings.TrimSpace(f.inputs[0].Value())
	if name == "" {
		return models.Task{}, errNameRequired
	}

	task := f.draft
	task.Name = name

	task.Icon = strings.TrimSpace(f.inputs[1].Value())
	if task.Icon == "" {
		task.Icon = defaultIcon
	}

	comment := strings.TrimSpace(f.inputs[2].Value())
	if comment == "" {
		task.Comment = models.Null[string]()
	} else {
		task.Comment = models.Some(comment)
	}

	return task, nil
}

func (f formModel) View() string {
	title := "new task"
	if f.draft.ID != "" {
		title = "edit task"
	}

	out := titleStyle.Render(title) + "\n\n"

	labels := []string{"name", "icon", "comment"}
	for i, input := range f.inputs {
		out += labels[i] + ": " + input.View() + "\n"
	}

	if f.errMsg != "" {
		out += "\n" + errorStyle.Render(f.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("tab next field  enter save  esc cancel")
	return out
}
