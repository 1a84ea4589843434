package ui

import (
	"fmt"
	"strings"

	"github.com/ftahirops/logradar/model"
)

func (m Model) renderPatternsPane(width int) string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("PATTERNS (%d)", m.visibleCount())))
	b.WriteString("\n")

	if m.visibleCount() == 0 {
		b.WriteString(m.styles.dim.Render("no patterns yet"))
		return b.String()
	}

	for row, idx := range m.filteredIndices {
		p := m.store.Pattern(idx)
		line := m.renderPatternRow(p, width)
		if row == m.selectedPattern && m.pane == PanePatterns {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPatternRow(p model.Pattern, width int) string {
	spike := " "
	if p.Spike {
		spike = "!"
	}
	sig := p.Canonical
	maxSig := width - 28
	if maxSig > 0 && len(sig) > maxSig {
		sig = sig[:maxSig-1] + "…"
	}
	return fmt.Sprintf("%s%s %5.1f/m %5.1f/5m %s %s",
		m.styles.severity(p.Level).Render(p.Level.Short()),
		spike,
		p.Rate1m(),
		p.Rate5m(),
		p.Trend.Symbol(),
		sig,
	) + "  " + renderSparkline(p)
}
