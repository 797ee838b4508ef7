package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/tui/styles"
)

// View renders the whole application
func (m Model) View() string {
	if !m.Ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	tabs := []struct {
		label string
		view  View
	}{
		{"Browse", ViewBrowse},
		{"Search", ViewSearch},
		{"Favorites", ViewFavorites},
	}

	parts := make([]string, 0, len(tabs)+1)
	active := m.view
	if active == ViewDetail || active == ViewAccount {
		active = m.returnTo
	}
	for _, tab := range tabs {
		if tab.view == active {
			parts = append(parts, styles.TabActiveStyle.Render(tab.label))
		} else {
			parts = append(parts, styles.TabInactiveStyle.Render(tab.label))
		}
	}

	left := strings.Join(parts, " ")

	account := styles.DimStyle.Render("not signed in")
	if st := m.Session.Snapshot(); st.IsAuthenticated {
		name := "account"
		if st.User != nil && st.User.Username != "" {
			name = st.User.Username
		}
		account = styles.AccentStyle.Render(name)
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(account) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + account
}

func (m Model) renderFilterLine() string {
	switch m.view {
	case ViewBrowse:
		genre := "All genres"
		if m.genreIdx > 0 && m.genreIdx <= len(m.genres) {
			genre = m.genres[m.genreIdx-1].Name
		}
		periods := domain.Periods()
		period := periods[0].String()
		if m.periodIdx > 0 && m.periodIdx < len(periods) {
			period = periods[m.periodIdx].String()
		}
		line := fmt.Sprintf("%s  ·  %s", styles.FilterStyle.Render(genre), styles.FilterStyle.Render(period))
		if total := m.browsePager.TotalResults(); total >= 0 {
			line += styles.DimStyle.Render(fmt.Sprintf("  (%d results)", total))
		}
		if m.filtering || m.browseList.FilterQuery() != "" {
			line += "  " + m.filterInput.View()
		}
		return " " + line

	case ViewSearch:
		line := " " + m.searchInput.View()
		if total := m.searchPager.TotalResults(); total >= 0 && m.searchPager.Filter().IsSearch() {
			line += styles.DimStyle.Render(fmt.Sprintf("  (%d results)", total))
		}
		return line

	case ViewFavorites:
		line := " " + styles.FilterStyle.Render(fmt.Sprintf("%d favorites", m.Favorites.Len()))
		if m.filtering || m.favList.FilterQuery() != "" {
			line += "  " + m.filterInput.View()
		}
		return line

	case ViewDetail:
		return " " + styles.DimStyle.Render(m.loc.String())

	case ViewAccount:
		return ""
	}
	return ""
}

func (m Model) renderBody() string {
	bodyHeight := m.Height - chromeHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.view {
	case ViewBrowse:
		body = m.browseList.View()
	case ViewSearch:
		body = m.searchList.View()
	case ViewFavorites:
		if m.favList.Len() == 0 && m.favList.FilterQuery() == "" {
			body = styles.DimStyle.Render("\n  No favorites yet. Press f on a movie to save it.")
		} else {
			body = m.favList.View()
		}
	case ViewDetail:
		body = styles.DetailBorder.Render(m.detail.View())
	case ViewAccount:
		form := m.form.View()
		body = lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, form)
	}

	return fitHeight(body, bodyHeight)
}

func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			return " " + styles.ErrorStyle.Render(m.StatusMsg)
		}
		return " " + styles.SuccessStyle.Render(m.StatusMsg)
	}

	var hints [][2]string
	switch m.view {
	case ViewBrowse:
		hints = [][2]string{
			{"j/k", "move"}, {"enter", "details"}, {"f", "favorite"},
			{"[/]", "genre"}, {"{/}", "period"}, {"s", "search"}, {"q", "quit"},
		}
	case ViewSearch:
		hints = [][2]string{
			{"type", "search"}, {"esc", "list"}, {"j/k", "move"},
			{"enter", "details"}, {"f", "favorite"}, {"b", "browse"},
		}
	case ViewFavorites:
		hints = [][2]string{
			{"j/k", "move"}, {"enter", "details"}, {"f", "remove"},
			{"/", "filter"}, {"X", "clear all"}, {"b", "browse"},
		}
	case ViewDetail:
		hints = [][2]string{
			{"j/k", "scroll"}, {"f", "favorite"}, {"esc", "back"},
		}
	case ViewAccount:
		hints = [][2]string{
			{"enter", "submit"}, {"tab", "next"}, {"ctrl+r", "switch mode"}, {"esc", "back"},
		}
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = styles.HelpKeyStyle.Render(h[0]) + " " + styles.HelpDescStyle.Render(h[1])
	}
	return " " + strings.Join(parts, "  ")
}

// fitHeight pads or trims rendered content to exactly n lines
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
