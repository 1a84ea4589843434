package ui

import "strings"

// helpLines is the static keybinding reference shown by '?'. It mirrors the
// documented keymap exactly so there is exactly one place it can drift
// from what the keys actually do.
var helpLines = []string{
	"NORMAL",
	"  tab / shift+tab   cycle panes",
	"  j/k, up/down      move selection",
	"  enter             drill into pattern / toggle source filter",
	"  /                 search",
	"  esc               clear search, then clear source filter",
	"  a                 add source",
	"  p                 pause / resume ingest",
	"  P                 profile picker",
	"  r                 reset pattern store",
	"  c                 clear counters",
	"  n                 toggle normalized/raw sample",
	"  t                 cycle theme",
	"  ?                 toggle this help",
	"  q                 quit",
	"",
	"SEARCH",
	"  type to filter, enter locks filter, esc clears",
	"",
	"DRILLDOWN",
	"  j/k scroll samples, n toggle normalized, b/esc back",
}

func (m Model) renderHelp() string {
	body := strings.Join(helpLines, "\n")
	return m.styles.panel.Width(m.width - 4).Render(m.styles.title.Render("HELP") + "\n\n" + body)
}
