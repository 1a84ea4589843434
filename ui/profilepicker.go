package ui

import (
	"fmt"
	"strings"
)

func (m Model) renderProfilePicker() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("PROFILE"))
	b.WriteString("\n\n")
	for i, p := range m.profiles {
		line := fmt.Sprintf("%-10s min=%-5s theme=%s", p.Name, p.MinLevel.String(), p.Theme)
		if i == m.profilePickerIdx {
			line = m.styles.selected.Render(line)
		} else {
			line = m.styles.value.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("j/k move  enter select  esc cancel"))
	return m.styles.panel.Render(b.String())
}
