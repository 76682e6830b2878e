package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
	"github.com/dmitrijs2005/patientkeeper/internal/client/validation"
	"golang.org/x/term"
)

const defaultWidth = 80

// test seams for terminal probing
var (
	isTerminal  = term.IsTerminal
	getTermSize = term.GetSize
)

var (
	colorSuccess = lipgloss.Color("#2ECC71")
	colorError   = lipgloss.Color("#E74C3C")
	colorAccent  = lipgloss.Color("#3498DB")
	colorMuted   = lipgloss.Color("#7F8C8D")
)

// view renders store data for one output. Colors follow the writer's
// capabilities, so plain buffers get plain text.
type view struct {
	width int
	loc   *time.Location

	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	card    lipgloss.Style
}

func newView(w io.Writer, width int, loc *time.Location) *view {
	r := lipgloss.NewRenderer(w)
	return &view{
		width:   width,
		loc:     loc,
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorSuccess).Padding(0, 1),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorError).Padding(0, 1),
		card:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
	}
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	fd := int(f.Fd())
	if !isTerminal(fd) {
		return defaultWidth
	}
	cols, _, err := getTermSize(fd)
	if err != nil || cols <= 0 {
		return defaultWidth
	}
	return cols
}

func (v *view) notification(n models.Notification) string {
	if n.Kind == models.NotificationError {
		return v.failure.Render("✗ " + n.Message)
	}
	return v.success.Render("✓ " + n.Message)
}

func (v *view) list(patients []models.Patient) string {
	if len(patients) == 0 {
		return v.muted.Render("No patients yet. Type 'add' to create one.")
	}
	var b strings.Builder
	for i, p := range patients {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s\n", v.muted.Render(fmt.Sprintf("#%s", p.ID)), v.title.Render(p.Name))
		fmt.Fprintf(&b, "    %s  %s", p.Website, v.muted.Render(p.CreatedDate(v.loc)))
	}
	return b.String()
}

// detail is the expanded card: everything list shows plus avatar and
// description.
func (v *view) detail(p models.Patient) string {
	rows := []string{
		v.title.Render(p.Name) + " " + v.muted.Render("#"+p.ID),
		v.label.Render("Website: ") + p.Website,
		v.label.Render("Created: ") + p.CreatedDate(v.loc),
		v.label.Render("Avatar:  ") + p.AvatarURL(),
		"",
		v.label.Render("Description"),
		p.Description,
	}
	width := v.width - 2
	if width < 20 {
		width = 20
	}
	return v.card.Width(width).Render(strings.Join(rows, "\n"))
}

func (v *view) fieldErrors(errs validation.Errors) string {
	lines := make([]string, 0, len(errs))
	for _, f := range errs.Fields() {
		lines = append(lines, v.failure.Render(fmt.Sprintf("%s: %s", f, errs[f])))
	}
	return strings.Join(lines, "\n")
}

func (v *view) loadError(msg string) string {
	return v.failure.Render(msg) + "\n" + v.muted.Render("Type 'retry' to try again.")
}
