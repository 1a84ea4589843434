package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		return "starting logradar...\n"
	}

	var body string
	switch m.mode {
	case ModeHelp:
		body = m.renderHelp()
	case ModeDrilldown:
		body = m.renderDrilldown()
	case ModeProfilePicker:
		body = m.renderOverlay(m.renderProfilePicker())
	case ModeSourceMenu:
		body = m.renderOverlay(m.renderSourceMenu())
	default:
		body = m.renderNormal()
	}

	header := ""
	if m.showBanner && m.tickCount < 30 {
		header = m.styles.title.Render(strings.TrimRight(bannerText, "\n")) + "\n"
	}

	return header + body + "\n" + m.renderStatusBar()
}

// renderOverlay centers a modal panel (profile picker, add-source menu)
// within the pane area, replacing the normal two-pane layout while active.
func (m Model) renderOverlay(panel string) string {
	return lipgloss.Place(m.width, m.paneHeight(), lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) paneHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) renderNormal() string {
	leftWidth := m.width * 2 / 3
	rightWidth := m.width - leftWidth - 1
	height := m.paneHeight()

	patternsStyle := m.styles.panel
	sourcesStyle := m.styles.panel
	if m.pane == PanePatterns {
		patternsStyle = m.styles.activePanel
	} else {
		sourcesStyle = m.styles.activePanel
	}

	left := patternsStyle.Width(leftWidth - 2).Height(height - 2).Render(m.renderPatternsPane(leftWidth - 4))
	right := sourcesStyle.Width(rightWidth - 2).Height(height - 2).Render(m.renderSourcesPane(rightWidth - 4))

	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var searchLine string
	if m.mode == ModeSearch || m.searchQuery != "" {
		searchLine = m.styles.label.Render("search: ") + m.styles.value.Render(m.searchQuery) + "_"
	}
	if searchLine != "" {
		return row + "\n" + searchLine
	}
	return row
}

func (m Model) renderStatusBar() string {
	prof := m.activeProfile()
	pauseFlag := ""
	if m.paused {
		pauseFlag = " [PAUSED]"
	}
	filterFlag := ""
	if m.activeSourceFilter != "" {
		filterFlag = fmt.Sprintf(" filter=%s", m.activeSourceFilter)
	}
	left := fmt.Sprintf("profile:%s theme:%s%s%s", prof.Name, m.theme.Name, pauseFlag, filterFlag)
	right := "? help  q quit"
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.help.Render(left + strings.Repeat(" ", gap) + right)
}
