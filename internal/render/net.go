package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/SeamusWaldron/cubeanim"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	stickerColors = map[cubeanim.Color]lipgloss.Color{
		cubeanim.White:  lipgloss.Color("15"),
		cubeanim.Yellow: lipgloss.Color("11"),
		cubeanim.Green:  lipgloss.Color("10"),
		cubeanim.Blue:   lipgloss.Color("12"),
		cubeanim.Red:    lipgloss.Color("9"),
		cubeanim.Orange: lipgloss.Color("208"),
	}

	blockStyle = lipgloss.NewStyle().PaddingRight(1)

	moveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	faultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// DefaultBarWidth is the width of the progress bar in cells.
const DefaultBarWidth = 20

// Renderer draws frames. In plain mode stickers are drawn as color letters,
// lower case while their layer is turning.
type Renderer struct {
	plain    bool
	barWidth int
}

// NewRenderer creates a renderer.
func NewRenderer(plain bool) *Renderer {
	return &Renderer{plain: plain, barWidth: DefaultBarWidth}
}

// SetBarWidth sets the progress bar width.
func (r *Renderer) SetBarWidth(w int) {
	if w > 0 {
		r.barWidth = w
	}
}

func (r *Renderer) sticker(c cubeanim.Color, moving bool) string {
	if r.plain {
		s := c.String()
		if moving {
			s = strings.ToLower(s)
		}
		return s + " "
	}

	style := lipgloss.NewStyle().Background(stickerColors[c])
	if moving {
		return style.Foreground(lipgloss.Color("0")).Render("░░")
	}
	return style.Render("  ")
}

func (r *Renderer) face(f Frame, side cubeanim.Side) string {
	rows := make([]string, 3)
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			i := row*3 + col
			b.WriteString(r.sticker(f.Faces[side][i], f.Moving[side][i]))
		}
		rows[row] = b.String()
	}
	return blockStyle.Render(strings.Join(rows, "\n"))
}

// Net draws the unfolded cube: Up on top, Left Front Right Back across the
// middle and Down at the bottom.
func (r *Renderer) Net(f Frame) string {
	up := r.face(f, cubeanim.SidePosY)
	indent := lipgloss.NewStyle().MarginLeft(lipgloss.Width(up))

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		r.face(f, cubeanim.SideNegX),
		r.face(f, cubeanim.SidePosZ),
		r.face(f, cubeanim.SidePosX),
		r.face(f, cubeanim.SideNegZ),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		indent.Render(up),
		middle,
		indent.Render(r.face(f, cubeanim.SideNegY)),
	)
}

// Bar draws linear progress as a filled bar.
func (r *Renderer) Bar(progress float64) string {
	progress = math.Max(0, math.Min(1, progress))
	filled := int(math.Round(progress * float64(r.barWidth)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", r.barWidth-filled)
	if r.plain {
		return bar
	}
	return barStyle.Render(bar)
}

// Status draws the one-line summary under the net.
func (r *Renderer) Status(f Frame) string {
	var parts []string

	if f.Turning {
		deg := f.Angle * 180 / math.Pi
		parts = append(parts, fmt.Sprintf("%-2s %s %+4.0f°",
			r.style(moveStyle, f.Current.Notation()), r.Bar(f.Progress), deg))
	} else {
		parts = append(parts, r.style(statusStyle, "idle"))
	}

	queue := fmt.Sprintf("queue: %d", len(f.Pending))
	if len(f.Pending) > 0 {
		queue += " [" + cubeanim.FormatMoves(f.Pending) + "]"
	}
	parts = append(parts, r.style(statusStyle, queue))

	if f.Faults > 0 {
		parts = append(parts, r.style(faultStyle, fmt.Sprintf("faults: %d", f.Faults)))
	}
	if f.Solved && !f.Turning {
		parts = append(parts, r.style(solvedStyle, "SOLVED"))
	}

	return strings.Join(parts, "  ")
}

// Render draws the net followed by the status line.
func (r *Renderer) Render(f Frame) string {
	return r.Net(f) + "\n\n" + r.Status(f)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}
