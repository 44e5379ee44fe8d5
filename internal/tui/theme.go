package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme is the color set used by every page.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Snippet    lipgloss.Color
	Keyword    lipgloss.Color
	Function   lipgloss.Color
	String     lipgloss.Color
	Comment    lipgloss.Color
	Number     lipgloss.Color
}

// skinFile is the on-disk shape of a custom skin. Empty fields keep the
// default color.
type skinFile struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Muted      string `yaml:"muted"`
	Snippet    string `yaml:"snippet"`
	Keyword    string `yaml:"keyword"`
	Function   string `yaml:"function"`
	String     string `yaml:"string"`
	Comment    string `yaml:"comment"`
	Number     string `yaml:"number"`
}

var builtinSkins = map[string]Theme{
	"default": {
		Name:       "default",
		Background: lipgloss.Color("#0F172A"),
		Foreground: lipgloss.Color("#E2E8F0"),
		Accent:     lipgloss.Color("#38BDF8"),
		Muted:      lipgloss.Color("#64748B"),
		Snippet:    lipgloss.Color("#475569"),
		Keyword:    lipgloss.Color("#C084FC"),
		Function:   lipgloss.Color("#60A5FA"),
		String:     lipgloss.Color("#4ADE80"),
		Comment:    lipgloss.Color("#6B7280"),
		Number:     lipgloss.Color("#FB923C"),
	},
	"mono": {
		Name:       "mono",
		Background: lipgloss.Color("0"),
		Foreground: lipgloss.Color("15"),
		Accent:     lipgloss.Color("15"),
		Muted:      lipgloss.Color("8"),
		Snippet:    lipgloss.Color("8"),
		Keyword:    lipgloss.Color("7"),
		Function:   lipgloss.Color("7"),
		String:     lipgloss.Color("7"),
		Comment:    lipgloss.Color("8"),
		Number:     lipgloss.Color("7"),
	},
}

// theme is the active skin.
var theme = builtinSkins["default"]

// CurrentTheme returns the active skin.
func CurrentTheme() Theme { return theme }

// InitializeSkin activates a built-in skin, or loads
// <configDir>/skins/<name>.yml on top of the default skin.
func InitializeSkin(name, configDir string) error {
	if name == "" {
		name = "default"
	}
	if t, ok := builtinSkins[name]; ok {
		theme = t
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("skin %q not found", name)
		}
		return fmt.Errorf("reading skin: %w", err)
	}

	var sf skinFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing skin %s: %w", path, err)
	}

	t := builtinSkins["default"]
	t.Name = name
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Background, sf.Background)
	set(&t.Foreground, sf.Foreground)
	set(&t.Accent, sf.Accent)
	set(&t.Muted, sf.Muted)
	set(&t.Snippet, sf.Snippet)
	set(&t.Keyword, sf.Keyword)
	set(&t.Function, sf.Function)
	set(&t.String, sf.String)
	set(&t.Comment, sf.Comment)
	set(&t.Number, sf.Number)
	theme = t
	return nil
}

// classStyle maps a highlight span class to a style.
func classStyle(class string) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch class {
	case "keyword":
		return s.Foreground(theme.Keyword)
	case "function":
		return s.Foreground(theme.Function)
	case "string":
		return s.Foreground(theme.String)
	case "comment":
		return s.Foreground(theme.Comment).Italic(true)
	case "number":
		return s.Foreground(theme.Number)
	case classCursor:
		return s.Foreground(theme.Accent)
	case classTitle:
		return s.Foreground(theme.Foreground).Bold(true)
	case classTagline:
		return s.Foreground(theme.Muted)
	}
	return s.Foreground(theme.Snippet)
}
