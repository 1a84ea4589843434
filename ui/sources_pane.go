package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ftahirops/logradar/model"
)

// providerOrder is the display order groups are rendered in, regardless of
// attach order.
var providerOrder = []model.SourceKind{model.SourceDocker, model.SourceAzure, model.SourceCommand, model.SourceFile}

func (m Model) renderSourcesPane(width int) string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("SOURCES (%d)", len(m.sourceOrder))))
	b.WriteString("\n")

	if len(m.sourceOrder) == 0 {
		b.WriteString(m.styles.dim.Render("press 'a' to add a source"))
		return b.String()
	}

	for i, row := range m.visibleSourceRows() {
		selected := i == m.selectedSource && m.pane == PaneSources
		if row.header {
			glyph := "▾"
			if m.collapsedGroups[row.kind] {
				glyph = "▸"
			}
			line := fmt.Sprintf("%s %s (%d)", glyph, row.kind.String(), len(m.sourcesOfKind(row.kind)))
			if selected {
				line = m.styles.selected.Render(line)
			} else {
				line = m.styles.label.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			continue
		}
		src := m.sources[row.id]
		line := m.renderSourceRow(src, width)
		if selected {
			line = m.styles.selected.Render(line)
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// sourceRow is one selectable row of the Sources pane: either a provider
// group header (collapsible with Enter) or a leaf row naming one attached
// source (toggles the pattern filter with Enter).
type sourceRow struct {
	header bool
	kind   model.SourceKind
	id     string // unset for header rows
}

// visibleSourceRows returns the pane's rows in display order: a header row
// per non-empty provider kind, followed by its leaf rows unless that group
// is collapsed. This is the selection index space moveSelection,
// toggleSourceFilter, and renderSourcesPane all share, so the highlighted
// row always matches the one acted on.
func (m Model) visibleSourceRows() []sourceRow {
	var rows []sourceRow
	for _, kind := range providerOrder {
		ids := m.sourcesOfKind(kind)
		if len(ids) == 0 {
			continue
		}
		rows = append(rows, sourceRow{header: true, kind: kind})
		if m.collapsedGroups[kind] {
			continue
		}
		for _, id := range ids {
			rows = append(rows, sourceRow{kind: kind, id: id})
		}
	}
	return rows
}

// sourcesOfKind returns source IDs of the given kind, in attach order.
func (m Model) sourcesOfKind(kind model.SourceKind) []string {
	var ids []string
	for _, id := range m.sourceOrder {
		if m.sources[id].Kind == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m Model) renderSourceRow(src *model.SourceInfo, width int) string {
	statusGlyph := map[model.SourceStatus]string{
		model.StatusStarting: "…",
		model.StatusRunning:  "●",
		model.StatusError:    "✗",
		model.StatusStopped:  "○",
	}[src.Status]

	rate := len(m.sourceRates[src.ID])
	name := src.Name
	maxName := width - 12
	if maxName > 0 && len(name) > maxName {
		name = name[:maxName-1] + "…"
	}

	line := fmt.Sprintf("%s %s %3d/m  %s events, up %s",
		statusGlyph, name, rate, humanize.Comma(int64(src.EventsIn)), humanize.Time(src.StartedAt))
	if src.Status == model.StatusError && src.Err != "" {
		line += " " + m.styles.severity(errSeverity).Render(src.Err)
	}
	return line
}

const errSeverity = model.Error
