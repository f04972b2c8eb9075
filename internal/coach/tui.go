// Package coach implements the interactive idea-coaching flow: a five-field
// form, one LLM analysis per submission, and a rendered report.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

// view mode
type viewMode int

const (
	modeForm viewMode = iota
	modeAnalyzing
	modeReport
)

// form field focus order
type formField int

const (
	fieldIdea formField = iota
	fieldTargetUsers
	fieldTimeConstraint
	fieldTeamSize
	fieldGoals
	fieldSubmit
	fieldCount
)

// messages
type analysisMsg struct {
	analysis *model.Analysis
}

// TUI runs the interactive coach.
type TUI struct {
	Runner    *Runner
	ThemeName string
}

// tuiModel implements tea.Model.
type tuiModel struct {
	runner *Runner
	ctx    context.Context
	styles styles

	mode  viewMode
	focus formField

	// form inputs
	idea        textarea.Model
	targetUsers textinput.Model
	goals       textarea.Model
	timeIdx     int // index into model.TimeOptions
	teamIdx     int // index into model.TeamOptions

	// analyzing state
	spin spinner.Model

	// report state
	report *reportView

	// dimensions
	width  int
	height int

	// status
	message string
}

func (t *TUI) Run(ctx context.Context) error {
	st := newStyles(ThemeByName(t.ThemeName))

	idea := textarea.New()
	idea.Placeholder = "e.g., An AI-powered tool that helps students find study groups based on their learning style and schedule"
	idea.SetHeight(4)
	idea.CharLimit = 4096
	idea.Focus()

	users := textinput.New()
	users.Placeholder = "e.g., College students, working professionals, parents"
	users.CharLimit = 512

	goals := textarea.New()
	goals.Placeholder = "e.g., Build a working prototype, learn new technologies, win the competition"
	goals.SetHeight(3)
	goals.CharLimit = 4096

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.focused

	m := &tuiModel{
		runner:      t.Runner,
		ctx:         ctx,
		styles:      st,
		idea:        idea,
		targetUsers: users,
		goals:       goals,
		timeIdx:     indexOf(model.TimeOptions, model.DefaultTimeConstraint),
		teamIdx:     indexOf(model.TeamOptions, model.DefaultTeamSize),
		spin:        sp,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func indexOf(options []int, value int) int {
	for i, v := range options {
		if v == value {
			return i
		}
	}
	return 0
}

func (m *tuiModel) Init() tea.Cmd {
	return textarea.Blink
}

// input returns the IdeaInput assembled from the current form state.
func (m *tuiModel) input() model.IdeaInput {
	return model.IdeaInput{
		Idea:           strings.TrimSpace(m.idea.Value()),
		TargetUsers:    strings.TrimSpace(m.targetUsers.Value()),
		TimeConstraint: model.TimeOptions[m.timeIdx],
		TeamSize:       model.TeamOptions[m.teamIdx],
		Goals:          strings.TrimSpace(m.goals.Value()),
	}
}

// missingFields names the required free-text fields that are still empty.
// The required-field check is the form's responsibility; the analyzer
// accepts anything.
func (m *tuiModel) missingFields() []string {
	in := m.input()
	var missing []string
	if in.Idea == "" {
		missing = append(missing, "idea")
	}
	if in.TargetUsers == "" {
		missing = append(missing, "target users")
	}
	if in.Goals == "" {
		missing = append(missing, "goals")
	}
	return missing
}

// submit kicks off the single analysis call in the background.
func (m *tuiModel) submit() tea.Cmd {
	if missing := m.missingFields(); len(missing) > 0 {
		m.message = "Please fill in: " + strings.Join(missing, ", ")
		return nil
	}
	m.message = ""
	m.mode = modeAnalyzing
	input := m.input()
	runner := m.runner
	ctx := m.ctx
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			return analysisMsg{analysis: runner.Run(ctx, input)}
		},
	)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		fieldWidth := m.width - 6
		if fieldWidth < 20 {
			fieldWidth = 20
		}
		m.idea.SetWidth(fieldWidth)
		m.goals.SetWidth(fieldWidth)
		m.targetUsers.Width = fieldWidth
		if m.report != nil {
			m.report.render(m.width)
		}
		return m, nil

	case spinner.TickMsg:
		if m.mode != modeAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case analysisMsg:
		m.mode = modeReport
		m.report = newReportView(msg.analysis, m.styles)
		m.report.render(m.width)
		if msg.analysis.Failed() {
			m.message = msg.analysis.Err
		} else {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeAnalyzing:
		// Analysis is a single blocking call; nothing to cancel per key.
		return m, nil
	case modeReport:
		return m.handleReportKey(msg)
	}
	return m, nil
}

func (m *tuiModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = int(fieldCount) - 1
		}
		m.setFocus(formField((int(m.focus) + delta) % int(fieldCount)))
		return m, nil

	case "ctrl+s":
		return m, m.submit()

	case "enter":
		switch m.focus {
		case fieldSubmit:
			return m, m.submit()
		case fieldTargetUsers, fieldTimeConstraint, fieldTeamSize:
			m.setFocus(m.focus + 1)
			return m, nil
		}
		// Textareas take the newline.

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.focus {
		case fieldTimeConstraint:
			m.timeIdx = clampIndex(m.timeIdx+delta, len(model.TimeOptions))
			return m, nil
		case fieldTeamSize:
			m.teamIdx = clampIndex(m.teamIdx+delta, len(model.TeamOptions))
			return m, nil
		}
	}

	// Forward everything else to the focused text component.
	var cmd tea.Cmd
	switch m.focus {
	case fieldIdea:
		m.idea, cmd = m.idea.Update(msg)
	case fieldTargetUsers:
		m.targetUsers, cmd = m.targetUsers.Update(msg)
	case fieldGoals:
		m.goals, cmd = m.goals.Update(msg)
	}
	return m, cmd
}

// setFocus moves form focus, blurring and focusing text components as needed.
func (m *tuiModel) setFocus(f formField) {
	m.focus = f
	m.idea.Blur()
	m.targetUsers.Blur()
	m.goals.Blur()
	switch f {
	case fieldIdea:
		m.idea.Focus()
	case fieldTargetUsers:
		m.targetUsers.Focus()
	case fieldGoals:
		m.goals.Focus()
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m *tuiModel) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.report
	if r == nil {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "n", "esc", "escape":
		// Back to the form for a new idea; inputs are kept for tweaking.
		m.mode = modeForm
		m.report = nil
		m.message = ""
		m.setFocus(fieldIdea)
		return m, textarea.Blink

	case "up", "k":
		if r.focused {
			if r.cursor > 0 {
				r.cursor--
				r.render(m.width)
				m.scrollToCursor()
			}
		} else if r.scroll > 0 {
			r.scroll--
		}

	case "down", "j":
		if r.focused {
			if r.cursor < len(r.checked)-1 {
				r.cursor++
				r.render(m.width)
				m.scrollToCursor()
			}
		} else if r.scroll < m.maxScroll() {
			r.scroll++
		}

	case "pgup":
		r.scroll -= m.pageSize()
		if r.scroll < 0 {
			r.scroll = 0
		}

	case "pgdown":
		r.scroll += m.pageSize()
		if r.scroll > m.maxScroll() {
			r.scroll = m.maxScroll()
		}

	case "g", "home":
		r.scroll = 0

	case "G", "end":
		r.scroll = m.maxScroll()

	case "c":
		// Toggle checklist focus
		if len(r.checked) > 0 {
			r.focused = !r.focused
			r.render(m.width)
			if r.focused {
				m.scrollToCursor()
			}
		}

	case " ":
		if r.focused {
			r.toggle()
			r.render(m.width)
		}
	}

	return m, nil
}

func (m *tuiModel) pageSize() int {
	n := m.height - 3
	if n < 1 {
		n = 1
	}
	return n
}

func (m *tuiModel) maxScroll() int {
	if m.report == nil {
		return 0
	}
	max := len(m.report.lines) - m.pageSize()
	if max < 0 {
		return 0
	}
	return max
}

// scrollToCursor keeps the checklist cursor line inside the visible window.
func (m *tuiModel) scrollToCursor() {
	r := m.report
	if r == nil {
		return
	}
	page := m.pageSize()
	if r.cursorLn < r.scroll {
		r.scroll = r.cursorLn
	}
	if r.cursorLn >= r.scroll+page {
		r.scroll = r.cursorLn - page + 1
	}
}

func (m *tuiModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeAnalyzing:
		return m.viewAnalyzing()
	case modeReport:
		return m.viewReport()
	}
	return ""
}

func (m *tuiModel) viewForm() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.title.Render("PitchSnitch"))
	b.WriteString("  ")
	b.WriteString(st.dim.Render("Transform your raw idea into a winning hackathon strategy"))
	b.WriteString("\n")
	b.WriteString(st.dim.Render("Tab=next field  ←/→=adjust  Ctrl+S=analyze  Ctrl+C=quit"))
	b.WriteString("\n\n")

	label := func(f formField, text string) string {
		if m.focus == f {
			return st.focused.Render("→ " + text)
		}
		return st.label.Render("  " + text)
	}

	b.WriteString(label(fieldIdea, "Describe your hackathon idea"))
	b.WriteString("\n")
	b.WriteString(indent(m.idea.View(), 2))
	b.WriteString("\n\n")

	b.WriteString(label(fieldTargetUsers, "Who are your target users?"))
	b.WriteString("\n  ")
	b.WriteString(m.targetUsers.View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldTimeConstraint, "Time available (hours)"))
	b.WriteString("\n  ")
	b.WriteString(m.renderOptions(model.TimeOptions, m.timeIdx, m.focus == fieldTimeConstraint))
	b.WriteString("\n\n")

	b.WriteString(label(fieldTeamSize, "Team size"))
	b.WriteString("\n  ")
	b.WriteString(m.renderOptions(model.TeamOptions, m.teamIdx, m.focus == fieldTeamSize))
	b.WriteString("\n\n")

	b.WriteString(label(fieldGoals, "What are your goals for this hackathon?"))
	b.WriteString("\n")
	b.WriteString(indent(m.goals.View(), 2))
	b.WriteString("\n\n")

	submit := "[ Snitch My Pitch ]"
	if m.focus == fieldSubmit {
		b.WriteString("  " + st.selected.Render(submit))
	} else {
		b.WriteString("  " + st.label.Render(submit))
	}
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString("  " + st.err.Render(m.message))
		b.WriteString("\n")
	}

	return b.String()
}

// renderOptions draws a fixed-option selector, highlighting the selection.
func (m *tuiModel) renderOptions(options []int, selected int, focused bool) string {
	st := m.styles
	parts := make([]string, len(options))
	for i, v := range options {
		s := fmt.Sprintf(" %d ", v)
		switch {
		case i == selected && focused:
			parts[i] = st.selected.Render(s)
		case i == selected:
			parts[i] = st.focused.Render(s)
		default:
			parts[i] = st.dim.Render(s)
		}
	}
	return strings.Join(parts, " ")
}

func (m *tuiModel) viewAnalyzing() string {
	st := m.styles
	var b strings.Builder
	b.WriteString(st.title.Render("PitchSnitch"))
	b.WriteString("\n\n  ")
	b.WriteString(m.spin.View())
	b.WriteString(st.text.Render(" Analyzing your idea..."))
	b.WriteString("\n\n  ")
	b.WriteString(st.dim.Render(fmt.Sprintf("One call to %s/%s — this can take a little while.",
		m.runner.Analyzer.Provider(), m.runner.Analyzer.Model())))
	b.WriteString("\n")
	return b.String()
}

func (m *tuiModel) viewReport() string {
	st := m.styles
	r := m.report
	var b strings.Builder

	b.WriteString(st.title.Render("PitchSnitch"))
	b.WriteString("  ")
	if r.focused {
		b.WriteString(st.dim.Render("↑↓=move  Space=toggle task  c=leave checklist  n=new idea  q=quit"))
	} else {
		b.WriteString(st.dim.Render("↑↓/PgUp/PgDn=scroll  c=checklist  n=new idea  q=quit"))
	}
	b.WriteString("\n")
	b.WriteString(st.divider.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")

	// Scroll window over the rendered lines.
	page := m.pageSize()
	start := r.scroll
	if start > len(r.lines) {
		start = len(r.lines)
	}
	end := start + page
	if end > len(r.lines) {
		end = len(r.lines)
	}
	for _, ln := range r.lines[start:end] {
		b.WriteString(ln)
		b.WriteString("\n")
	}

	if len(r.lines) > page {
		b.WriteString(st.dim.Render(fmt.Sprintf("  line %d-%d of %d", start+1, end, len(r.lines))))
		b.WriteString("\n")
	}

	return b.String()
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
