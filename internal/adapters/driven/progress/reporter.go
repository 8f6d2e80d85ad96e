package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// Ensure Reporter implements the interface.
var _ driven.ProgressReporter = (*Reporter)(nil)

// rule frames banners.
var rule = strings.Repeat("=", 60)

// Reporter writes progress lines to w. Colour is only used when w is a
// terminal, so redirected output stays plain text.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	styled bool
	styles styles
}

// New creates a reporter writing to w with the default theme.
func New(w io.Writer) *Reporter {
	return NewWithTheme(w, DefaultTheme())
}

// NewWithTheme creates a reporter writing to w with the given theme.
func NewWithTheme(w io.Writer, theme *Theme) *Reporter {
	return &Reporter{
		w:      w,
		styled: isTerminal(w),
		styles: newStyles(lipgloss.NewRenderer(w), theme),
	}
}

// Banner prints a framed title.
func (r *Reporter) Banner(title string) {
	r.lines(
		r.render(r.styles.banner, rule),
		r.render(r.styles.banner, title),
		r.render(r.styles.banner, rule),
	)
}

// Stage announces stage n of total, preceded by a blank line.
func (r *Reporter) Stage(n, total int, message string) {
	r.lines("", r.render(r.styles.stage, fmt.Sprintf("[%d/%d] %s", n, total, message)))
}

// Success reports a completed step.
func (r *Reporter) Success(format string, args ...any) {
	r.lines(r.render(r.styles.success, "✓ "+fmt.Sprintf(format, args...)))
}

// Detail reports an indented informational line.
func (r *Reporter) Detail(format string, args ...any) {
	r.lines(r.render(r.styles.detail, "  - "+fmt.Sprintf(format, args...)))
}

// Warn reports a recoverable problem.
func (r *Reporter) Warn(format string, args ...any) {
	r.lines(r.render(r.styles.warning, "⚠ "+fmt.Sprintf(format, args...)))
}

// Fail reports an unrecoverable problem.
func (r *Reporter) Fail(format string, args ...any) {
	r.lines(r.render(r.styles.failure, "✗ "+fmt.Sprintf(format, args...)))
}

// Done prints the closing frame.
func (r *Reporter) Done(message string) {
	r.lines(
		"",
		r.render(r.styles.banner, rule),
		r.render(r.styles.success, "✓ "+message),
		r.render(r.styles.banner, rule),
	)
}

func (r *Reporter) render(style lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return style.Render(text)
}

func (r *Reporter) lines(lines ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(r.w, line)
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Discard is a reporter that prints nothing.
type Discard struct{}

// Ensure Discard implements the interface.
var _ driven.ProgressReporter = Discard{}

func (Discard) Banner(string) {}
func (Discard) Stage(int, int, string) {}
func (Discard) Success(string, ...any) {}
func (Discard) Detail(string, ...any) {}
func (Discard) Warn(string, ...any) {}
func (Discard) Fail(string, ...any) {}
func (Discard) Done(string) {}
