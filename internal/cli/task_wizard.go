package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/cli/formatter"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/workflow"
)

// taskDraft collects the inputs of "task add" before they become a record.
type taskDraft struct {
	Title       string
	Description string
	Project     string
	Priority    string
	Status      string
	Assignee    string
	Due         string
}

// deckHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func deckHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runTaskWizard walks through an interactive form for a new task, seeded
// with whatever flags were already given.
func runTaskWizard(ws *workspace, draft taskDraft) (taskDraft, error) {
	if len(ws.Projects) == 0 {
		return draft, fmt.Errorf("no projects exist yet; run seed or create one first")
	}

	projectOptions := make([]huh.Option[string], 0, len(ws.Projects))
	for _, p := range ws.Projects {
		projectOptions = append(projectOptions, huh.NewOption(p.Name, p.ID))
	}
	if draft.Project != "" {
		if id, err := ws.resolveProject(draft.Project); err == nil {
			draft.Project = id
		}
	}

	statusOptions := make([]huh.Option[string], 0, len(workflow.Statuses()))
	for _, s := range workflow.Statuses() {
		statusOptions = append(statusOptions, huh.NewOption(string(s), string(s)))
	}

	priorityOptions := []huh.Option[string]{
		huh.NewOption("urgent", string(domain.PriorityUrgent)),
		huh.NewOption("high", string(domain.PriorityHigh)),
		huh.NewOption("medium", string(domain.PriorityMedium)),
		huh.NewOption("low", string(domain.PriorityLow)),
	}

	assigneeOptions := []huh.Option[string]{huh.NewOption("(unassigned)", "")}
	for _, u := range ws.Users {
		assigneeOptions = append(assigneeOptions, huh.NewOption(u.Name, u.ID))
	}

	if draft.Priority == "" {
		draft.Priority = string(domain.PriorityMedium)
	}
	if draft.Status == "" {
		draft.Status = string(domain.TaskTodo)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Write the release notes").
				Value(&draft.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description (optional)").
				Value(&draft.Description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project").
				Options(projectOptions...).
				Value(&draft.Project),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions...).
				Value(&draft.Status),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOptions...).
				Value(&draft.Priority),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Assignee").
				Options(assigneeOptions...).
				Value(&draft.Assignee),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-09-30").
				Value(&draft.Due).
				Validate(validateOptionalDate),
		),
	).WithTheme(deckHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return draft, err
	}
	return draft, nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
