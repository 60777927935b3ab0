package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/p6tools/p6delta/pkg/models"
)

var viewScope string

// View styles.
var (
	viewTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	listPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	detailPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62"))

	byItselfStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	byPredecessorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	viewHelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// viewModel browses delay records: a selectable list on the left and
// the selected record's attribution detail on the right.
type viewModel struct {
	report *models.Report
	cursor int
	width  int
	height int
}

func newViewModel(rep *models.Report) viewModel {
	return viewModel{report: rep}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.report.Delayed)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	title := viewTitleStyle.Render(fmt.Sprintf(
		"p6delta - %d delayed of %d analyzed",
		m.report.Summary.DelayedCount, m.report.Summary.TotalActivities,
	))

	if len(m.report.Delayed) == 0 {
		return title + "\n\nNo delayed activities.\n\n" + viewHelpStyle.Render("q quit")
	}

	list := m.renderList()
	detail := m.renderDetail(m.report.Delayed[m.cursor])
	body := lipgloss.JoinHorizontal(lipgloss.Top, listPaneStyle.Render(list), detailPaneStyle.Render(detail))

	help := viewHelpStyle.Render("up/down navigate - q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

// renderList renders the task-code list with reason-colored rows.
func (m viewModel) renderList() string {
	var rows []string
	for i, rec := range m.report.Delayed {
		row := fmt.Sprintf("%-12s %s", rec.TaskCode, rec.DelayReason)
		switch {
		case i == m.cursor:
			row = selectedRowStyle.Render(row)
		case rec.DelayReason == models.DelayedByItself:
			row = byItselfStyle.Render(row)
		default:
			row = byPredecessorStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// renderDetail renders the selected record's dates, magnitudes, and
// attribution lists.
func (m viewModel) renderDetail(rec models.DelayRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - %s\n\n", rec.TaskCode, rec.TaskName)
	fmt.Fprintf(&b, "Start: %s -> %s (%+.1f days)\n", orDash(rec.BaselineStart), orDash(rec.UpdatedStart), rec.StartDelayDays)
	fmt.Fprintf(&b, "End:   %s -> %s (%+.1f days)\n", orDash(rec.BaselineEnd), orDash(rec.UpdatedEnd), rec.EndDelayDays)
	fmt.Fprintf(&b, "Reason: %s\n", rec.DelayReason)

	if len(rec.CausingPredecessors) > 0 {
		b.WriteString("\nCaused by:\n")
		for _, pred := range rec.CausingPredecessors {
			fmt.Fprintf(&b, "  %s %s (%s)\n", pred.TaskCode, pred.TaskName, pred.DependencyType)
		}
	}
	if len(rec.ImpactedSuccessors) > 0 {
		b.WriteString("\nImpacts:\n")
		for _, succ := range rec.ImpactedSuccessors {
			fmt.Fprintf(&b, "  %s %s (%s)\n", succ.TaskCode, succ.TaskName, succ.DependencyType)
		}
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var viewCmd = &cobra.Command{
	Use:   "view BASELINE UPDATED CRITICAL_PATH",
	Short: "Browse delay records interactively",
	Long: `Run the delay analysis and browse the resulting records in an
interactive terminal UI instead of writing report files.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Runner == nil {
			return fmt.Errorf("analysis runner not initialized")
		}

		scope := models.Scope(viewScope)
		if viewScope == "" {
			scope = Config.Scope
		}
		if !scope.Valid() {
			return fmt.Errorf("invalid scope %q: must be critical or all", viewScope)
		}

		rep, err := Runner.Run(args[0], args[1], args[2], scope)
		if err != nil {
			return err
		}

		p := tea.NewProgram(newViewModel(rep), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running viewer: %w", err)
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewScope, "scope", "", "Analysis scope: critical or all (default from config)")
	rootCmd.AddCommand(viewCmd)
}
