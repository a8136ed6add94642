package format

import (
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/expansions"
	"golang.org/x/term"
)

// Role classifies the parts of a rendered expansion for colorization.
type Role int

const (
	// Leading is the most significant component of an expansion.
	Leading Role = iota
	// Residual are the trailing error-term components.
	Residual
)

// Config collects rendering parameters.
type Config struct {
	// LineWidth is the target line length for wrapping, in character
	// positions. Zero disables wrapping.
	LineWidth int
}

// separator glues components; a line break replaces its trailing blank.
const separator = " + "

// ConsoleFormat renders expansions to a console, most significant component
// first, each component in scientific notation.
type ConsoleFormat struct {
	colors map[Role]*color.Color
	ccnt   int // number of character positions already printed for line
}

// NewConsoleFormat creates a new console formatter.
//
// colors maps component roles to display colors. It may be nil, in which
// case a default palette is used.
func NewConsoleFormat(colors map[Role]*color.Color) *ConsoleFormat {
	cf := &ConsoleFormat{}
	if colors == nil {
		cf.colors = makeDefaultPalette()
	} else {
		cf.colors = colors
	}
	return cf
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		Leading:  color.New(color.FgRed),
		Residual: color.New(color.FgBlue),
	}
	return palette
}

// Print outputs an expansion to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (cf *ConsoleFormat) Print(e expansions.Expansion, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Output(e, os.Stdout, config, cf)
}

// Output renders an expansion to w using formatter cf, most significant
// component first. A trailing newline terminates the output.
func Output(e expansions.Expansion, w io.Writer, config *Config, cf *ConsoleFormat) error {
	if config == nil || cf == nil {
		return expansions.ErrIllegalArguments
	}
	comp := e.Components()
	cf.ccnt = 0
	for i := len(comp) - 1; i >= 0; i-- {
		s := strconv.FormatFloat(comp[i], 'e', -1, 64)
		if i < len(comp)-1 {
			cf.glue(len(s), config.LineWidth, w)
		}
		role := Residual
		if i == len(comp)-1 {
			role = Leading
		}
		cf.styled(s, role, w)
		cf.ccnt += len(s)
	}
	w.Write([]byte{'\n'})
	return nil
}

// glue writes the component separator, breaking the line first whenever the
// upcoming component would overrun the target line width.
func (cf *ConsoleFormat) glue(next int, linelength int, w io.Writer) {
	if linelength > 0 && cf.ccnt+len(separator)+next > linelength {
		w.Write([]byte(" +\n"))
		cf.ccnt = 0
		return
	}
	w.Write([]byte(separator))
	cf.ccnt += len(separator)
}

// styled outputs one component, colorized by role.
func (cf *ConsoleFormat) styled(s string, role Role, w io.Writer) {
	if c, ok := cf.colors[role]; ok {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
