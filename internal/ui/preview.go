package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/misldy/testcase-converter/internal/config"
	"github.com/misldy/testcase-converter/internal/domain"
)

// SuiteViewer browses a parsed suite in an interactive TUI: the tree on the
// left, details for the selected group or case on the right.
type SuiteViewer struct {
	config *config.Config
}

// NewSuiteViewer creates a new SuiteViewer.
func NewSuiteViewer(cfg *config.Config) *SuiteViewer {
	return &SuiteViewer{config: cfg}
}

// View displays the suite. Arrow keys navigate, Enter expands or collapses
// a group and opens a case, q or Ctrl+C exits.
func (sv *SuiteViewer) View(s *domain.Suite) error {
	if len(s.Groups) == 0 {
		color.Green("✓ Suite %q has no groups to preview", s.Name)
		return nil
	}

	app := tview.NewApplication()

	root := tview.NewTreeNode(s.Name).
		SetColor(tcell.ColorGreen).
		SetReference(s)
	for _, g := range s.Groups {
		root.AddChild(groupNode(g))
	}

	tree := tview.NewTreeView().
		SetRoot(root).
		SetCurrentNode(root)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(tree, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	stats := s.Stats()
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s: %d group(s), %d case(s), %d step(s) | Use ↑↓ to navigate, Enter to expand, → to view details, ← to go back, [yellow]Q[white] to exit ",
			s.Name, stats.Groups, stats.Cases, stats.Steps))

	updateDetails := func(node *tview.TreeNode) {
		if node == nil {
			return
		}
		statsView.SetText(sv.formatNodeStats(node))
		detailsView.SetText(sv.formatNodeDetails(node))
	}

	tree.SetChangedFunc(func(node *tview.TreeNode) {
		updateDetails(node)
	})
	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		if _, ok := node.GetReference().(*domain.Case); ok {
			app.SetFocus(detailsView)
			return
		}
		node.SetExpanded(!node.IsExpanded())
	})

	quitKeys := func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC:
			app.Stop()
			return nil
		case event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q'):
			app.Stop()
			return nil
		}
		return event
	}

	tree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRight {
			app.SetFocus(detailsView)
			return nil
		}
		return quitKeys(event)
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyLeft || event.Key() == tcell.KeyEsc {
			app.SetFocus(tree)
			return nil
		}
		return quitKeys(event)
	})

	updateDetails(root)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(tree).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func groupNode(g *domain.Group) *tview.TreeNode {
	node := tview.NewTreeNode(g.Name).
		SetColor(tcell.ColorAqua).
		SetReference(g)
	for _, sub := range g.Groups {
		node.AddChild(groupNode(sub))
	}
	for _, c := range g.Cases {
		label := fmt.Sprintf("%s (%d)", c.Name, len(c.Steps))
		node.AddChild(tview.NewTreeNode(label).
			SetColor(tcell.ColorYellow).
			SetReference(c))
	}
	return node
}

// formatNodeStats formats the path header for the selected node.
func (sv *SuiteViewer) formatNodeStats(node *tview.TreeNode) string {
	switch ref := node.GetReference().(type) {
	case *domain.Case:
		path := strings.Join(ref.Path(), " > ")
		return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]::[yellow]%s[white]\n", path, ref.Name)
	case *domain.Group:
		return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]\n", strings.Join(ref.Path(), " > "))
	case *domain.Suite:
		return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]\n", ref.Name)
	default:
		return ""
	}
}

// formatNodeDetails formats the details pane using tview color tags.
func (sv *SuiteViewer) formatNodeDetails(node *tview.TreeNode) string {
	switch ref := node.GetReference().(type) {
	case *domain.Case:
		return formatCaseDetails(ref)
	case *domain.Group:
		return fmt.Sprintf("[aqua]Group: %s[white]\n\n%d sub-group(s), %d case(s)\n",
			ref.Name, len(ref.Groups), len(ref.Cases))
	case *domain.Suite:
		stats := ref.Stats()
		return fmt.Sprintf("[green]Suite: %s[white]\n\n%d group(s), %d case(s), %d step(s)\n",
			ref.Name, stats.Groups, stats.Cases, stats.Steps)
	default:
		return ""
	}
}

func formatCaseDetails(c *domain.Case) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[yellow]Case: %s[white]\n\n", c.Name)
	fmt.Fprintf(w, "[cyan]Path:[white]\t%s\n", strings.Join(c.Path(), " > "))
	if c.Priority != "" {
		fmt.Fprintf(w, "[cyan]Priority:[white]\t%s\n", c.Priority)
	}
	fmt.Fprintf(w, "\n")

	if c.Precondition != "" {
		fmt.Fprintf(w, "[yellow]Precondition:[white]\n%s\n\n", c.Precondition)
	}

	if len(c.Steps) == 0 {
		fmt.Fprintf(w, "[gray]No steps.[white]\n")
	} else {
		fmt.Fprintf(w, "[yellow]Steps:[white]\n")
		for i, st := range c.Steps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, st.Action)
			if st.Expected != "" {
				fmt.Fprintf(w, "     [green]expect: %s[white]\n", st.Expected)
			}
		}
	}

	w.Flush()
	return builder.String()
}
