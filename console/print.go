package console

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/treaps"
	"golang.org/x/term"
)

// Config holds the layout parameters of a TreePrinter.
type Config struct {
	LineWidth  int  // maximum width of an output line, in 'en's
	ShowDetail bool // print sub-tree sizes and priorities
}

// ConfigFromTerminal creates a configuration fitting the current terminal,
// if stdout is interactive, and a default configuration otherwise.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil && w > 0 {
			config.LineWidth = w
		}
	}
	T().P("format", "console").Infof("line width is %d", config.LineWidth)
	return config
}

// TreePrinter is a type for outputting the structure of a treap to a console
// with a fixed width font.
type TreePrinter struct {
	config  *Config
	palette []*color.Color
}

// NewTreePrinter creates a new printer. palette holds the colors to use for
// nodes at increasing depths; the colors repeat for deeper nodes. If palette
// is empty, a default palette is used. If config is nil, a configuration is
// created from the terminal's properties.
func NewTreePrinter(palette []*color.Color, config *Config) *TreePrinter {
	tp := &TreePrinter{config: config, palette: palette}
	if config == nil {
		tp.config = ConfigFromTerminal()
	}
	if len(palette) == 0 {
		tp.palette = makeDefaultPalette()
	}
	return tp
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgYellow),
		color.New(color.FgGreen),
		color.New(color.FgCyan),
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
	}
}

// Print outputs the nodes of a treap to w, as delivered by the Nodes method
// of treaps.Seq and treaps.Map.
func (tp *TreePrinter) Print(w io.Writer, nodes iter.Seq[treaps.NodeInfo]) error {
	infos := slices.Collect(nodes)
	if len(infos) == 0 {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	maxDepth := 0
	for _, info := range infos {
		maxDepth = max(maxDepth, info.Depth)
	}
	indent := max(1, min(4, tp.config.LineWidth/2/(maxDepth+1)))
	for i := len(infos) - 1; i >= 0; i-- { // right sub-trees first
		info := infos[i]
		prefix := strings.Repeat(" ", info.Depth*indent)
		switch {
		case info.Parent < 0:
			prefix += "─ "
		case info.Index > info.Parent:
			prefix += "┌ "
		default:
			prefix += "└ "
		}
		label := info.Label
		if tp.config.ShowDetail {
			label = fmt.Sprintf("%s  [%d|%04x]", label, info.Size, info.Priority>>48)
		}
		label = truncate(label, tp.config.LineWidth-len([]rune(prefix)))
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		c := tp.palette[info.Depth%len(tp.palette)]
		if _, err := c.Fprint(w, label); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 {
		return "…"
	}
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
