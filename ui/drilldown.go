package ui

import (
	"fmt"
	"strings"

	"github.com/ftahirops/logradar/engine"
)

func (m Model) renderDrilldown() string {
	idx, ok := m.selectedPatternIndex()
	if !ok {
		m2 := m
		m2.mode = ModeNormal
		return m2.renderNormal()
	}
	p := m.store.Pattern(idx)

	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("PATTERN — %s", p.Level.String())))
	b.WriteString("\n\n")
	b.WriteString(m.styles.label.Render("signature: "))
	b.WriteString(m.styles.value.Render(p.Canonical))
	b.WriteString("\n")
	b.WriteString(m.styles.label.Render(fmt.Sprintf("count: %d  1m: %.1f/m  5m: %.1f/m  trend: %s  spike: %v",
		p.CountTotal, p.Rate1m(), p.Rate5m(), p.Trend.Symbol(), p.Spike)))
	b.WriteString("\n")

	var sources []string
	for s := range p.Sources {
		sources = append(sources, s)
	}
	b.WriteString(m.styles.label.Render("sources: " + strings.Join(sources, ", ")))
	b.WriteString("\n\n")

	mode := "raw"
	if m.drilldownNormalized {
		mode = "normalized"
	}
	b.WriteString(m.styles.header.Render(fmt.Sprintf("SAMPLES (%s, 'n' to toggle)", mode)))
	b.WriteString("\n")

	start := m.drilldownScroll
	if start > len(p.Samples) {
		start = len(p.Samples)
	}
	for _, s := range p.Samples[start:] {
		line := s
		if m.drilldownNormalized {
			line = engine.Normalize(s)
		}
		b.WriteString(m.styles.value.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("j/k scroll  n toggle normalized  b/esc back"))
	return b.String()
}
