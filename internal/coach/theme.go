package coach

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used by the coach TUI.
// Use DarkTheme() or LightTheme() to get a pre-built theme,
// or construct a custom Theme.
type Theme struct {
	Primary         lipgloss.Color // warm accent — cursor, title
	Secondary       lipgloss.Color // cool accent — focused field labels
	Accent          lipgloss.Color // section headers
	Error           lipgloss.Color // errors, low scores
	Warning         lipgloss.Color // risk flags, medium scores
	Success         lipgloss.Color // high scores, summaries
	Info            lipgloss.Color // tips, tech names
	Text            lipgloss.Color // primary text
	TextMuted       lipgloss.Color // secondary text — hints, captions
	BackgroundPanel lipgloss.Color // panel background
	BackgroundElem  lipgloss.Color // highlighted element background
	Border          lipgloss.Color // separators, borders
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Primary:         lipgloss.Color("#ff4b4b"),
		Secondary:       lipgloss.Color("#4dabf7"),
		Accent:          lipgloss.Color("#9d7cd8"),
		Error:           lipgloss.Color("#ff4b4b"),
		Warning:         lipgloss.Color("#ffb000"),
		Success:         lipgloss.Color("#00d4aa"),
		Info:            lipgloss.Color("#4dabf7"),
		Text:            lipgloss.Color("#fafafa"),
		TextMuted:       lipgloss.Color("#808080"),
		BackgroundPanel: lipgloss.Color("#0e1117"),
		BackgroundElem:  lipgloss.Color("#1e2329"),
		Border:          lipgloss.Color("#3d4043"),
	}
}

// LightTheme returns a light theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:         lipgloss.Color("#c92a2a"),
		Secondary:       lipgloss.Color("#0550ae"),
		Accent:          lipgloss.Color("#6639ba"),
		Error:           lipgloss.Color("#cf222e"),
		Warning:         lipgloss.Color("#bf8700"),
		Success:         lipgloss.Color("#116329"),
		Info:            lipgloss.Color("#0969da"),
		Text:            lipgloss.Color("#1f2328"),
		TextMuted:       lipgloss.Color("#656d76"),
		BackgroundPanel: lipgloss.Color("#ffffff"),
		BackgroundElem:  lipgloss.Color("#f6f8fa"),
		Border:          lipgloss.Color("#d0d7de"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// styles holds all lipgloss styles derived from a Theme.
// Constructed once from a Theme and stored in tuiModel.
type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	focused  lipgloss.Style
	dim      lipgloss.Style
	text     lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	good     lipgloss.Style
	info     lipgloss.Style
	selected lipgloss.Style
	divider  lipgloss.Style
}

// newStyles builds all styles from a theme.
func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		header:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		label:    lipgloss.NewStyle().Foreground(t.Text),
		focused:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		dim:      lipgloss.NewStyle().Foreground(t.TextMuted),
		text:     lipgloss.NewStyle().Foreground(t.Text),
		err:      lipgloss.NewStyle().Foreground(t.Error),
		warn:     lipgloss.NewStyle().Foreground(t.Warning),
		good:     lipgloss.NewStyle().Foreground(t.Success),
		info:     lipgloss.NewStyle().Foreground(t.Info),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Background(t.BackgroundElem),
		divider:  lipgloss.NewStyle().Foreground(t.Border),
	}
}

// scoreStyle picks the style for a score band: >=3.5 good, >=2.5 warning,
// else error.
func (s styles) scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 3.5:
		return s.good
	case score >= 2.5:
		return s.warn
	default:
		return s.err
	}
}
