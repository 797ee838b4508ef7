package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/tui/styles"
)

const castLimit = 8

// Detail renders a single movie with its credits, trailers and similar
// titles inside a scrollable viewport.
type Detail struct {
	vp      viewport.Model
	detail  *domain.MovieDetail
	credits *domain.Credits
	videos  []domain.Video
	similar []domain.Movie
	loading bool
	width   int
}

// NewDetail creates an empty detail pane
func NewDetail() Detail {
	return Detail{vp: viewport.New(0, 0)}
}

// SetSize updates the pane dimensions
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.vp.Width = width
	d.vp.Height = height
	d.refresh()
}

// SetLoading marks the pane as waiting for content
func (d *Detail) SetLoading() {
	d.loading = true
	d.detail = nil
	d.credits = nil
	d.videos = nil
	d.similar = nil
	d.refresh()
}

// SetContent installs a loaded detail with its subresources
func (d *Detail) SetContent(detail *domain.MovieDetail, credits *domain.Credits, videos []domain.Video, similar []domain.Movie) {
	d.loading = false
	d.detail = detail
	d.credits = credits
	d.videos = videos
	d.similar = similar
	d.vp.GotoTop()
	d.refresh()
}

// Movie returns the displayed detail, if loaded
func (d *Detail) Movie() *domain.MovieDetail {
	return d.detail
}

// Update forwards scrolling to the viewport
func (d *Detail) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return cmd
}

// ScrollUp scrolls the viewport up one line
func (d *Detail) ScrollUp() { d.vp.ScrollUp(1) }

// ScrollDown scrolls the viewport down one line
func (d *Detail) ScrollDown() { d.vp.ScrollDown(1) }

// View renders the pane
func (d *Detail) View() string {
	return d.vp.View()
}

func (d *Detail) refresh() {
	if d.loading {
		d.vp.SetContent(styles.DimStyle.Render("  loading..."))
		return
	}
	if d.detail == nil {
		d.vp.SetContent("")
		return
	}
	d.vp.SetContent(d.render())
}

func (d *Detail) render() string {
	m := d.detail
	var b strings.Builder

	title := m.Title
	if year := m.ReleaseYear(); year != 0 {
		title += fmt.Sprintf(" (%d)", year)
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	if m.Tagline != "" {
		b.WriteString(styles.TaglineStyle.Render(m.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var facts []string
	if runtime := m.FormattedRuntime(); runtime != "" {
		facts = append(facts, runtime)
	}
	if m.VoteAverage > 0 {
		facts = append(facts, fmt.Sprintf("%s (%d votes)", m.FormattedRating(), m.VoteCount))
	}
	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		facts = append(facts, strings.Join(names, ", "))
	}
	if len(facts) > 0 {
		b.WriteString(styles.SubtitleStyle.Render(strings.Join(facts, "  ·  ")))
		b.WriteString("\n\n")
	}

	if m.Overview != "" {
		b.WriteString(wrap(m.Overview, d.width-2))
		b.WriteString("\n\n")
	}

	if d.credits != nil {
		if director, ok := d.credits.Director(); ok {
			b.WriteString(styles.AccentStyle.Render("Director  "))
			b.WriteString(director.Name)
			b.WriteString("\n")
		}
		if len(d.credits.Cast) > 0 {
			b.WriteString(styles.AccentStyle.Render("Cast      "))
			cast := d.credits.Cast
			if len(cast) > castLimit {
				cast = cast[:castLimit]
			}
			names := make([]string, len(cast))
			for i, c := range cast {
				names[i] = c.Name
			}
			b.WriteString(strings.Join(names, ", "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(d.videos) > 0 {
		b.WriteString(styles.AccentStyle.Render("Trailers"))
		b.WriteString("\n")
		for _, v := range d.videos {
			url := v.WatchURL()
			if url == "" {
				continue
			}
			b.WriteString("  " + v.Name + "  " + styles.DimStyle.Render(url) + "\n")
		}
		b.WriteString("\n")
	}

	if len(d.similar) > 0 {
		b.WriteString(styles.AccentStyle.Render("Similar"))
		b.WriteString("\n")
		limit := len(d.similar)
		if limit > 10 {
			limit = 10
		}
		for _, s := range d.similar[:limit] {
			line := "  " + s.Title
			if year := s.ReleaseYear(); year != 0 {
				line += " " + styles.DimStyle.Render(fmt.Sprintf("(%d)", year))
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// wrap does a simple greedy word wrap
func wrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(s)
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
