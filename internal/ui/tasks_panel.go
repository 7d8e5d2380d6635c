package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Abbas45-cpu/22-Promodoro-Productive-App/internal/core/model"
)

// TaskCallbacks defines task list action handlers.
type TaskCallbacks struct {
	OnAdd       func(title string)
	OnToggle    func(id int64)
	OnDelete    func(id int64)
	OnSetActive func(id int64)
}

// TasksPanel renders the persisted task list.
type TasksPanel struct {
	root           *fyne.Container
	list           *widget.List
	entry          *widget.Entry
	completedLabel *widget.Label
	tasks          []model.Task
	callbacks      TaskCallbacks
}

// NewTasksPanel builds the task list panel. Callbacks are nil-guarded.
func NewTasksPanel(callbacks TaskCallbacks) *TasksPanel {
	panel := &TasksPanel{callbacks: callbacks}

	panel.entry = widget.NewEntry()
	panel.entry.SetPlaceHolder("Add a task...")
	panel.entry.OnSubmitted = func(title string) {
		panel.submit(title)
	}
	addButton := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		panel.submit(panel.entry.Text)
	})

	panel.completedLabel = widget.NewLabel("0 done")

	panel.list = widget.NewList(
		func() int {
			return len(panel.tasks)
		},
		func() fyne.CanvasObject {
			check := widget.NewCheck("", nil)
			title := widget.NewLabel("task title")
			title.Truncation = fyne.TextTruncateEllipsis
			deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			return container.NewBorder(nil, nil, check, deleteButton, title)
		},
		func(itemID widget.ListItemID, object fyne.CanvasObject) {
			if itemID >= len(panel.tasks) {
				return
			}
			task := panel.tasks[itemID]
			border := object.(*fyne.Container)

			check := border.Objects[1].(*widget.Check)
			check.OnChanged = nil
			check.SetChecked(task.Done)
			check.OnChanged = func(bool) {
				if panel.callbacks.OnToggle != nil {
					panel.callbacks.OnToggle(task.ID)
				}
			}

			title := border.Objects[0].(*widget.Label)
			title.TextStyle = fyne.TextStyle{Bold: task.Active}
			title.SetText(task.Title)

			deleteButton := border.Objects[2].(*widget.Button)
			deleteButton.OnTapped = func() {
				if panel.callbacks.OnDelete != nil {
					panel.callbacks.OnDelete(task.ID)
				}
			}
		},
	)

	panel.list.OnSelected = func(itemID widget.ListItemID) {
		panel.list.Unselect(itemID)
		if itemID >= len(panel.tasks) {
			return
		}
		if panel.callbacks.OnSetActive != nil {
			panel.callbacks.OnSetActive(panel.tasks[itemID].ID)
		}
	}

	header := container.NewBorder(nil, nil, nil, addButton, panel.entry)
	footer := container.NewHBox(panel.completedLabel)
	panel.root = container.NewBorder(header, footer, nil, nil, panel.list)

	return panel
}

func (panel *TasksPanel) submit(title string) {
	if title == "" {
		return
	}
	panel.entry.SetText("")
	if panel.callbacks.OnAdd != nil {
		panel.callbacks.OnAdd(title)
	}
}

// Object returns the panel's root canvas object.
func (panel *TasksPanel) Object() fyne.CanvasObject {
	return panel.root
}

// SetTasks replaces the displayed tasks. Safe only on the UI thread.
func (panel *TasksPanel) SetTasks(tasks []model.Task) {
	panel.tasks = tasks
	panel.list.Refresh()
}

// SetCompletedCount updates the done counter.
func (panel *TasksPanel) SetCompletedCount(count int) {
	panel.completedLabel.SetText(fmt.Sprintf("%d done", count))
}
