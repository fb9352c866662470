package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rootlab/dual"
	"github.com/san-kum/rootlab/internal/funcs"
	"github.com/san-kum/rootlab/internal/trace"
	"github.com/san-kum/rootlab/scalar"
	"github.com/san-kum/rootlab/solve"
)

const (
	canvasWidth  = 70
	canvasHeight = 22
	autoInterval = 400 * time.Millisecond
)

type TickMsg time.Time

const (
	stateMenu = iota
	stateRun
)

// Model drives the interactive explorer: a function menu, then a
// step-through view of the iteration against that function's curve.
// Steps are taken one keypress at a time, so every update is driven by
// input except the auto-stepping tick.
type Model struct {
	state   int
	cursor  int
	entries []funcs.Entry

	fname   string
	fdesc   string
	method  string
	f       dual.Func[dual.Nested[scalar.Float64]]
	plain   func(float64) float64
	stepper solve.Stepper[scalar.Float64]

	x0       float64
	iterates []float64
	logs     []float64
	failed   error

	auto     bool
	playHead int // -1 follows the latest iterate
	showHelp bool
}

// NewModel prepares the explorer. An empty fname starts at the function
// menu; an empty x0 starts from the function's catalog default.
func NewModel(fname, method, x0 string) (Model, error) {
	if method == "" {
		method = "cubic"
	}
	m := Model{entries: funcs.Catalog(), method: method, playHead: -1}
	if fname == "" {
		m.state = stateMenu
		return m, nil
	}
	if err := m.load(fname, x0); err != nil {
		return m, err
	}
	m.state = stateRun
	return m, nil
}

// load resolves a function and the current method, then restarts the
// iteration from x0 (or the catalog default when x0 is empty).
func (m *Model) load(fname, x0 string) error {
	entry, err := funcs.Find(fname)
	if err != nil {
		return err
	}
	f, err := funcs.Lookup[dual.Nested[scalar.Float64]](fname)
	if err != nil {
		return err
	}
	g, err := funcs.Lookup[scalar.Float64](fname)
	if err != nil {
		return err
	}
	stepper, err := solve.Lookup[scalar.Float64](m.method)
	if err != nil {
		return err
	}

	if x0 == "" {
		x0 = entry.X0
	}
	start, err := scalar.ParseFloat64(x0)
	if err != nil {
		return err
	}

	m.fname = entry.Name
	m.fdesc = entry.Desc
	m.f = f
	m.plain = func(v float64) float64 { return float64(g(scalar.Float64(v))) }
	m.stepper = stepper
	m.x0 = float64(start)
	m.restart()
	return nil
}

// restart wipes the iteration history back to x0.
func (m *Model) restart() {
	m.iterates = []float64{m.x0}
	m.logs = []float64{math.Log10(math.Abs(m.plain(m.x0)))}
	m.failed = nil
	m.auto = false
	m.playHead = -1
}

// advance takes one step, recording the new iterate and its residual.
// After a failure the iteration is frozen until restart.
func (m *Model) advance() {
	if m.failed != nil {
		m.auto = false
		return
	}
	m.playHead = -1
	x := scalar.Float64(m.iterates[len(m.iterates)-1])
	next, err := m.stepper.Step(m.f, x)
	if err != nil {
		m.failed = err
		m.auto = false
		return
	}
	v := float64(next)
	m.iterates = append(m.iterates, v)
	m.logs = append(m.logs, math.Log10(math.Abs(m.plain(v))))
}

// scrub walks the displayed position through the taken steps.
func (m *Model) scrub(dir int) {
	if len(m.iterates) < 2 {
		return
	}
	if m.playHead == -1 {
		m.playHead = len(m.iterates) - 1
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.iterates)-1 {
		m.playHead = -1
	}
}

// cycleFunction moves to the next catalog entry, restarting from its
// default start.
func (m *Model) cycleFunction() {
	for i, e := range m.entries {
		if e.Name == m.fname {
			next := m.entries[(i+1)%len(m.entries)]
			m.load(next.Name, "")
			return
		}
	}
}

// cycleMethod switches stepper, keeping the function and x0.
func (m *Model) cycleMethod() {
	names := solve.Names()
	for i, name := range names {
		if name == m.method {
			m.method = names[(i+1)%len(names)]
			break
		}
	}
	if stepper, err := solve.Lookup[scalar.Float64](m.method); err == nil {
		m.stepper = stepper
	}
	m.restart()
}

func tick() tea.Cmd {
	return tea.Tick(autoInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key input and the auto-stepping tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateMenu {
			return m.menuKey(msg)
		}
		return m.runKey(msg)
	case TickMsg:
		if !m.auto {
			return m, nil
		}
		m.advance()
		if !m.auto {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "t":
		m.cycleTheme()
	case "enter", " ":
		if err := m.load(m.entries[m.cursor].Name, ""); err == nil {
			m.state = stateRun
		}
	}
	return m, nil
}

func (m Model) runKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
	case " ":
		m.advance()
	case "a":
		m.auto = !m.auto
		if m.auto {
			return m, tick()
		}
	case "r":
		m.restart()
	case "f":
		m.cycleFunction()
	case "m":
		m.cycleMethod()
	case "[":
		m.scrub(-1)
	case "]":
		m.scrub(1)
	case "t":
		m.cycleTheme()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

// shown returns the iterates visible at the current playback position.
func (m Model) shown() []float64 {
	if m.playHead == -1 {
		return m.iterates
	}
	return m.iterates[:m.playHead+1]
}

// View renders the menu or the run screen.
func (m Model) View() string {
	if m.state == stateMenu {
		return m.viewMenu()
	}
	return m.viewRun()
}

func (m Model) viewMenu() string {
	var s strings.Builder
	s.WriteString(headerStyle().Render("ROOTLAB") + "\n")
	s.WriteString(dimStyle.Render("pick a function, then step through the iteration") + "\n")
	s.WriteString(Separator(44) + "\n")
	for i, e := range m.entries {
		line := fmt.Sprintf("%-8s  %-18s  x0 = %s", e.Name, e.Desc, e.X0)
		if i == m.cursor {
			s.WriteString(selectedStyle().Render("> "+line) + "\n")
		} else {
			s.WriteString(dimStyle.Render("  "+line) + "\n")
		}
	}
	s.WriteString(helpStyle.Render("\n↑↓:Select Enter:Start T:Theme Q:Quit"))
	return canvasStyle.Render(s.String())
}

func (m Model) viewRun() string {
	xs := m.shown()

	canvas := NewCanvas(canvasWidth, canvasHeight)
	lo, hi := m.iterates[0], m.iterates[0]
	for _, x := range m.iterates {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	pad := (hi - lo) * 0.25
	if pad < 0.5 {
		pad = 0.5
	}
	w := FitCurve(canvas, lo-pad, hi+pad, m.plain)
	w.Axes()
	w.Curve(m.plain)
	w.Descent(xs, m.plain)
	canvasView := canvasStyle.Render(curveStyle().Render(canvas.String()))

	var s strings.Builder
	s.WriteString(headerStyle().Render(strings.ToUpper(m.fname)) + "\n")
	s.WriteString(dimStyle.Render(m.fdesc) + "\n\n")

	status := goodStyle().Render("READY")
	switch {
	case m.failed != nil:
		status = badStyle().Render("FAILED: " + m.failed.Error())
	case m.playHead != -1:
		status = valueStyle.Render(fmt.Sprintf("REPLAY step %d/%d", m.playHead, len(m.iterates)-1))
	case m.auto:
		status = goodStyle().Render("AUTO")
	}
	s.WriteString(status + "\n\n")

	x := xs[len(xs)-1]
	fx := m.plain(x)
	s.WriteString(labelStyle.Render("method") + valueStyle.Render(m.method) + "\n")
	s.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%d", len(xs)-1)) + "\n")
	s.WriteString(labelStyle.Render("x") + valueStyle.Render(fmt.Sprintf("%.15g", x)) + "\n")
	s.WriteString(labelStyle.Render("f(x)") + valueStyle.Render(fmt.Sprintf("%.3e", fx)) + "\n")
	s.WriteString(labelStyle.Render("log10|f|") + valueStyle.Render(fmt.Sprintf("%.2f", m.logs[len(xs)-1])) + "\n")

	if rates := trace.Rates(m.logsAsPoints()); len(rates) > 0 {
		s.WriteString(labelStyle.Render("rate") + valueStyle.Render(fmt.Sprintf("%.2f", rates[len(rates)-1])) + "\n")
	}

	if len(m.logs) > 1 {
		s.WriteString("\n" + chartStyle().Render(ResidualSpark(m.logs, 30)) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Step A:Auto R:Restart Q:Quit\nF:Func M:Method [ ]:History\nT:Theme Esc:Menu ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n" + mainView
	}
	return mainView
}

// logsAsPoints adapts the residual history for trace.Rates.
func (m Model) logsAsPoints() []trace.Point {
	pts := make([]trace.Point, len(m.logs))
	for i, l := range m.logs {
		pts[i] = trace.Point{Step: i, Log10: l}
	}
	return pts
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Take one step            ║
║  A        - Toggle auto-stepping     ║
║  R        - Restart from x0          ║
║  F        - Next function            ║
║  M        - Next method              ║
║  [        - Walk back a step         ║
║  ]        - Walk forward a step      ║
║  T        - Cycle themes             ║
║  Esc      - Back to function menu    ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// RunLive starts the explorer and blocks until quit.
func RunLive(fname, method, x0 string) error {
	m, err := NewModel(fname, method, x0)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
