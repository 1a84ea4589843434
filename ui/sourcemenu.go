package ui

import (
	"fmt"
	"strings"
)

var sourceMenuLabels = map[sourceMenuField]string{
	menuKindDocker:  "docker container",
	menuKindCommand: "shell command",
	menuKindFile:    "file path",
	menuKindAzure:   "azure app[/resource-group]",
}

func (m Model) renderSourceMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("ADD SOURCE"))
	b.WriteString("\n\n")

	for kind := sourceMenuField(0); kind < menuKindCount; kind++ {
		label := sourceMenuLabels[kind]
		if kind == m.sourceMenuField {
			b.WriteString(m.styles.selected.Render(fmt.Sprintf("> %s: %s_", label, m.sourceMenuInput)))
		} else {
			b.WriteString(m.styles.dim.Render(fmt.Sprintf("  %s", label)))
		}
		b.WriteString("\n")
	}

	if m.discovering {
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render("discovering..."))
	} else if len(m.dockerList) > 0 || len(m.azureList) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.label.Render("discovered:"))
		b.WriteString("\n")
		for _, c := range m.dockerList {
			b.WriteString(m.styles.dim.Render("  docker: " + c.Name + " (" + c.Status + ")"))
			b.WriteString("\n")
		}
		for _, a := range m.azureList {
			b.WriteString(m.styles.dim.Render("  azure: " + a.Name + "/" + a.ResourceGroup))
			b.WriteString("\n")
		}
	}

	if m.sourceMenuErr != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.severity(errSeverity).Render(m.sourceMenuErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("tab switch kind  d discover  enter attach  esc cancel"))
	return m.styles.panel.Render(b.String())
}
