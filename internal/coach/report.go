package coach

import (
	"fmt"
	"sort"
	"strings"

	"github.com/geetanshi0205/pitchsnitch/internal/model"
)

// slide holds the display metadata for one pitch-deck section.
type slide struct {
	key      string
	title    string
	heading  string
	fallback string
	tip      string
}

// slides are the five pitch-deck sections in presentation order.
var slides = []slide{
	{
		key:      "slide1_problem",
		title:    "Slide 1: Problem Statement",
		heading:  "The Problem We're Solving",
		fallback: "Problem statement not available",
		tip:      "Presentation tip: start with a relatable scenario or shocking statistic to grab attention",
	},
	{
		key:      "slide2_solution",
		title:    "Slide 2: Our Solution",
		heading:  "How We Solve It",
		fallback: "Solution description not available",
		tip:      "Presentation tip: demo key features live if possible, use visuals to show before/after",
	},
	{
		key:      "slide3_techstack",
		title:    "Slide 3: Technical Implementation",
		heading:  "How We Built It",
		fallback: "Technical details not available",
		tip:      "Presentation tip: show architecture diagrams, highlight technical challenges overcome",
	},
	{
		key:      "slide4_market",
		title:    "Slide 4: Market Opportunity",
		heading:  "Market & Business Impact",
		fallback: "Market analysis not available",
		tip:      "Presentation tip: use charts for market size, mention specific customer validation",
	},
	{
		key:      "slide5_business_model",
		title:    "Slide 5: Business Strategy",
		heading:  "How We Scale & Monetize",
		fallback: "Business model not available",
		tip:      "Presentation tip: show revenue projections, explain competitive advantages clearly",
	},
}

// reportView carries the state needed to render a finished analysis:
// which checklist items are ticked and where the checklist cursor sits.
type reportView struct {
	analysis *model.Analysis
	styles   styles

	checked  []bool
	cursor   int // index into BuildChecklist
	focused  bool
	scroll   int
	lines    []string // rendered lines, rebuilt on state change
	cursorLn int      // line index of the checklist cursor, for auto-scroll
}

func newReportView(a *model.Analysis, st styles) *reportView {
	return &reportView{
		analysis: a,
		styles:   st,
		checked:  make([]bool, len(a.Result.BuildChecklist)),
	}
}

// render rebuilds the report lines for the given width.
func (r *reportView) render(width int) {
	if width < 40 {
		width = 40
	}
	body := width - 4

	st := r.styles
	a := r.analysis
	res := a.Result
	var lines []string
	r.cursorLn = 0

	add := func(s string) { lines = append(lines, s) }
	addWrapped := func(text string, style func(...string) string) {
		for _, ln := range wrapText(text, body) {
			add("  " + style(ln))
		}
	}
	section := func(title string) {
		add("")
		add(st.header.Render(title))
	}

	// Header with call metadata
	meta := fmt.Sprintf("%s/%s · %.1fs", a.Provider, a.Model, float64(a.DurationMs)/1000)
	if a.Usage.InputTokens > 0 || a.Usage.OutputTokens > 0 {
		meta += fmt.Sprintf(" · %d in / %d out tokens", a.Usage.InputTokens, a.Usage.OutputTokens)
	}
	add(st.dim.Render(meta))

	if a.Failed() {
		section("Analysis Failed")
		addWrapped(a.Err, st.err.Render)
		add("")
		add(st.dim.Render("  Press n for a new idea, q to quit."))
		r.lines = lines
		return
	}

	// Executive summary
	section("Executive Summary")
	addWrapped(res.ExecutiveSummary, st.good.Render)

	// Overall score, colored by band
	section("Overall Score")
	scoreStr := fmt.Sprintf("%.1f/5.0", res.OverallScore)
	add("  " + st.scoreStyle(res.OverallScore).Render(scoreStr))

	// Per-dimension scores
	section("Detailed Analysis")
	for _, s := range res.Scores {
		label := fmt.Sprintf("%s: %d/5", s.Dimension, s.Score)
		add("  " + st.scoreStyle(float64(s.Score)).Render(label))
		addWrapped(s.Reasoning, st.dim.Render)
	}

	// Implementation plan
	section("Implementation Plan")
	addWrapped(res.DetailedPlan, st.text.Render)

	// Risk flags
	if len(res.RiskFlags) > 0 {
		section("Risk Flags")
		for _, risk := range res.RiskFlags {
			for i, ln := range wrapText(risk, body-2) {
				if i == 0 {
					add("  " + st.warn.Render("! "+ln))
				} else {
					add("    " + st.warn.Render(ln))
				}
			}
		}
	}

	// Tech stack by category
	if len(res.TechStack) > 0 {
		section("Recommended Tech Stack")
		for _, category := range techStackCategories(res.TechStack) {
			techs := res.TechStack[category]
			if len(techs) == 0 {
				continue
			}
			add("  " + st.label.Render(category))
			addWrapped("· "+strings.Join(techs, "  · "), st.info.Render)
		}
	}

	// Build checklist — toggleable when the checklist has focus
	if len(res.BuildChecklist) > 0 {
		section(fmt.Sprintf("%d-Hour Build Checklist", a.Input.TimeConstraint))
		for i, task := range res.BuildChecklist {
			box := "[ ]"
			if r.checked[i] {
				box = "[x]"
			}
			line := fmt.Sprintf("%s %d. %s", box, i+1, truncate(task, body-8))
			if r.focused && i == r.cursor {
				r.cursorLn = len(lines)
				add("  " + st.selected.Render("→ "+line))
			} else if r.checked[i] {
				add("    " + st.good.Render(line))
			} else {
				add("    " + st.text.Render(line))
			}
		}
	}

	// Pitch deck
	section("5-Slide Pitch Deck")
	add("  " + st.dim.Render("Comprehensive, judge-ready presentation content for your hackathon pitch:"))
	for _, sl := range slides {
		add("")
		add("  " + st.focused.Render(sl.title))
		add("  " + st.label.Render(sl.heading))
		content := res.PitchDeck[sl.key]
		if content == "" {
			content = sl.fallback
		}
		addWrapped(content, st.text.Render)
		addWrapped(sl.tip, st.dim.Render)
	}

	add("")
	add("  " + st.good.Render("Pro tips: keep each slide under 3 minutes, practice transitions, end with specific asks, and prepare for Q&A."))

	r.lines = lines
}

// toggle flips the checklist item under the cursor.
func (r *reportView) toggle() {
	if r.cursor >= 0 && r.cursor < len(r.checked) {
		r.checked[r.cursor] = !r.checked[r.cursor]
	}
}

// techStackCategories returns the category names in a stable order:
// the conventional categories first, then anything else alphabetically.
func techStackCategories(stack map[string][]string) []string {
	known := []string{"Frontend", "Backend", "AI/ML", "Infrastructure", "Tools"}
	var ordered []string
	seen := map[string]bool{}
	for _, c := range known {
		if _, ok := stack[c]; ok {
			ordered = append(ordered, c)
			seen[c] = true
		}
	}
	var rest []string
	for c := range stack {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
