package formatter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/gted"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Op is the kind of edit operation a pair of a mapping stands for.
type Op uint8

const (
	Match Op = iota
	Relabel
	Delete
	Insert
)

var opMarkers = [...]string{"=", "~", "-", "+"}

func (op Op) String() string {
	return opMarkers[op]
}

// OpOf classifies pair p of a mapping between trees a and b.
func OpOf(a, b gted.Tree, p gted.Pair) Op {
	switch {
	case p.IsDelete():
		return Delete
	case p.IsInsert():
		return Insert
	}
	x, y := p.IDs()
	if a.Label(x) != b.Label(y) {
		return Relabel
	}
	return Match
}

// Config configures the output of a mapping.
type Config struct {
	LineWidth int                 // total width in fixed-width 'en's
	Context   *uax11.Context      // context for measuring labels; nil means Latin
	Palette   map[Op]*color.Color // colors per operation; nil selects a default palette
}

// DefaultPalette returns the colors used if Config.Palette is unset.
func DefaultPalette() map[Op]*color.Color {
	return map[Op]*color.Color{
		Match:   color.New(color.FgBlue),
		Relabel: color.New(color.FgYellow),
		Delete:  color.New(color.FgRed),
		Insert:  color.New(color.FgGreen),
	}
}

var setupGraphemes sync.Once

// minimum width of a label column
const minLabelWidth = 3

// PrintMapping writes mapping m between trees a and b to w, one pair per line,
// preceded by the distance.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive).
func PrintMapping(w io.Writer, a, b gted.Tree, m *gted.Mapping, config *Config) error {
	if w == nil || a == nil || b == nil || m == nil {
		return errors.New("illegal argument: nil")
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	idw := len(strconv.Itoa(max(a.Size(), b.Size())))
	// layout: "op␣" + id + "␣" + label + "␣␣" + id + "␣" + label
	lw := (config.LineWidth - 2 - 2*(idw+1) - 2) / 2
	lw = min(max(lw, minLabelWidth), max(labelWidth(a, ctx), labelWidth(b, ctx), minLabelWidth))
	T().P("format", "console").Debugf("label columns are %d en wide", lw)
	if _, err := fmt.Fprintf(w, "DISTANCE: %d\n", m.Distance); err != nil {
		return err
	}
	blank := strings.Repeat(" ", idw+1+lw)
	for _, p := range m.Pairs {
		op := OpOf(a, b, p)
		x, y := p.IDs()
		left, right := blank, blank
		if !p.IsInsert() {
			left = cell(x, a.Label(x), idw, lw, ctx)
		}
		if !p.IsDelete() {
			right = cell(y, b.Label(y), idw, lw, ctx)
		}
		line := strings.TrimRight(op.String()+" "+left+"  "+right, " ")
		if c, ok := palette[op]; ok && c != nil {
			_, err := c.Fprint(w, line)
			if err != nil {
				return err
			}
		} else if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// cell formats a node id and its label, padded to the column width.
func cell(id int, label string, idw, lw int, ctx *uax11.Context) string {
	label = shorten(label, lw, ctx)
	pad := lw - width(label, ctx)
	return fmt.Sprintf("%*d %s%s", idw, id, label, strings.Repeat(" ", max(pad, 0)))
}

func width(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

func labelWidth(t gted.Tree, ctx *uax11.Context) int {
	w := 0
	for id := 0; id < t.Size(); id++ {
		w = max(w, width(t.Label(id), ctx))
	}
	return w
}

const ellipsis = "…"

// shorten cuts label to at most lw 'en's, marking a cut with an ellipsis.
func shorten(label string, lw int, ctx *uax11.Context) string {
	if width(label, ctx) <= lw {
		return label
	}
	runes := []rune(label)
	for len(runes) > 0 && width(string(runes)+ellipsis, ctx) > lw {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Output to anything other
// than a terminal is not colored.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		config.Palette = map[Op]*color.Color{}
	} else if w, _, err := term.GetSize(fd); err == nil {
		switch {
		case w > 30:
			config.LineWidth = w - 2
		case w > 10:
			config.LineWidth = w
		default:
			config.LineWidth = 10
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
