package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/swipedeck/internal/cards"
	"github.com/jask/swipedeck/internal/deck"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxShadow     = 3
)

func (a *App) render() string {
	width, height := a.width, a.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	header := titleStyle.Render(a.deck.Title) + "  " +
		subtleStyle.Render(fmt.Sprintf("%d/%d", min(a.ctrl.Cursor()+1, a.ctrl.Len()), a.ctrl.Len()))

	footer := []string{a.renderStatus(width), a.help.View(a.keys)}
	canvasHeight := height - 2 - lipgloss.Height(strings.Join(footer, "\n"))
	canvasHeight = max(canvasHeight, a.cfg.UI.CardHeight+2)

	var canvas string
	if a.ctrl.Exhausted() {
		canvas = lipgloss.Place(width, canvasHeight, lipgloss.Center, lipgloss.Center,
			subtleStyle.Render("No more cards. u to undo, r to reload, s to shuffle."))
	} else {
		canvas = a.renderStack(width, canvasHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", canvas, strings.Join(footer, "\n"))
}

// renderStack draws the visible cards: the next card peeks out below the
// resting position and the top card is drawn at its live offset.
func (a *App) renderStack(width, height int) string {
	views := deck.Render(a.ctrl, a.renderCard)
	visible := a.ctrl.Cards()

	var top, peek string
	var offset deck.Point
	for i, v := range views {
		if visible[i].Top {
			top = v
			offset = a.liveOffset(visible[i])
			continue
		}
		peek = v
	}

	base := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "")
	if peek != "" {
		base = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Center, a.blankCard(), peek))
	}

	cardW := lipgloss.Width(top)
	left := (width-cardW)/2 + int(math.Round(offset.X))
	dy := int(math.Round(offset.Y / a.cfg.UI.RowAspect))
	return overlay(base, top, left, dy, width, height)
}

// liveOffset prefers the tween position while an animation plays.
func (a *App) liveOffset(c deck.Card) deck.Point {
	if anim, ok := a.ctrl.Animation(); ok {
		return anim.At(a.now())
	}
	return c.Visual.Offset
}

// renderCard is the deck's render callback. Only the top card carries a
// stamp, scale and shadow; the card below is drawn as a bare edge.
func (a *App) renderCard(c deck.Card, remote *deck.Remote) string {
	if !c.Top {
		w := a.cfg.UI.CardWidth
		return peekStyle.Width(w - 2).Render(ansi.Truncate(cardTitle(c.Item), w-4, "…"))
	}

	cfg := a.ctrl.Config()
	w := int(math.Round(float64(a.cfg.UI.CardWidth) * c.Visual.Scale))
	inner := w - 4

	var lines []string
	if card, ok := c.Item.(cards.Card); ok {
		lines = append(lines, cardTitleStyle.Render(ansi.Truncate(card.Title, inner, "…")))
		if card.Subtitle != "" {
			lines = append(lines, subtleStyle.Render(ansi.Truncate(card.Subtitle, inner, "…")))
		}
		lines = append(lines, "")
		if card.Body != "" {
			lines = append(lines, lipgloss.NewStyle().Width(inner).Render(card.Body))
		}
		if len(card.Tags) > 0 {
			tags := make([]string, len(card.Tags))
			for i, t := range card.Tags {
				tags[i] = tagStyle.Render(t)
			}
			lines = append(lines, "", strings.Join(tags, " "))
		}
	} else {
		lines = append(lines, cardTitleStyle.Render(c.Item.ID()))
	}

	stamp := ""
	border := colorFocus
	switch c.Action {
	case deck.ActionAccept:
		stamp, border = stampAccept.Render("LIKE"), colorAccept
	case deck.ActionReject:
		stamp, border = stampReject.Render("NOPE"), colorReject
	}
	tilt := subtleStyle.Render(fmt.Sprintf("tilt %+.0f°", c.Visual.Rotation(cfg)))
	hint := ""
	if remote.Attached() {
		hint = subtleStyle.Render("n ✗  y ✓")
	}
	gap := max(1, inner-lipgloss.Width(stamp)-lipgloss.Width(tilt)-lipgloss.Width(hint)-1)
	lines = append(lines, "", stamp+tilt+strings.Repeat(" ", gap)+hint)

	body := strings.Join(lines, "\n")
	height := max(a.cfg.UI.CardHeight-2, lipgloss.Height(body))
	box := cardStyle.BorderForeground(border).Width(w - 2).Height(height).Render(body)
	return withShadow(box, int(math.Min(maxShadow, math.Round(c.Visual.Shadow))))
}

func (a *App) blankCard() string {
	return lipgloss.NewStyle().Height(a.cfg.UI.CardHeight).Render("")
}

func (a *App) renderStatus(width int) string {
	phase := a.ctrl.Phase().String()
	text := fmt.Sprintf("%s  ✓ %d  ✗ %d  · %d  ↺ %d", phase,
		a.summary.Accepted, a.summary.Rejected, a.summary.Skipped, a.summary.Undone)
	if a.journal == nil {
		text = phase + "  journal off"
	}
	if a.status != "" {
		text += "  │  " + a.status
	}
	if a.ctrl.Len() == 0 {
		text += "  " + warnStyle.Render("empty deck")
	}
	return statusBarStyle.Width(width).Render(ansi.Truncate(text, max(0, width-2), "…"))
}

// withShadow adds a drop shadow n cells deep to the right and bottom.
func withShadow(box string, n int) string {
	if n <= 0 {
		return box
	}
	lines := strings.Split(box, "\n")
	w := lipgloss.Width(box)
	shade := shadowStyle.Render(strings.Repeat("▒", n))
	for i := range lines {
		if i == 0 {
			lines[i] += strings.Repeat(" ", n)
			continue
		}
		lines[i] += shade
	}
	bottom := " " + shadowStyle.Render(strings.Repeat("▒", w+n-1))
	return strings.Join(append(lines, bottom), "\n")
}

// overlay draws fg onto bg with its top-left corner at (left, top),
// clipping to the width x height canvas.
func overlay(bg, fg string, left, top, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	bgLines = bgLines[:height]

	for i, line := range strings.Split(fg, "\n") {
		y := top + i
		if y < 0 || y >= height {
			continue
		}
		lw := ansi.StringWidth(line)
		start, end := left, left+lw
		if end <= 0 || start >= width {
			continue
		}
		clipped := line
		if start < 0 {
			clipped = ansi.Cut(line, -start, lw)
			start = 0
		}
		if end > width {
			clipped = ansi.Truncate(clipped, width-start, "")
			end = width
		}
		row := padRight(bgLines[y], width)
		bgLines[y] = ansi.Truncate(row, start, "") + clipped + ansi.Cut(row, end, width)
	}
	return strings.Join(bgLines, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
