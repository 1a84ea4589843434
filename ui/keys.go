package ui

import (
	"context"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/logradar/collector"
	"github.com/ftahirops/logradar/model"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	case ModeDrilldown:
		return m.handleDrilldownKey(msg)
	case ModeProfilePicker:
		return m.handleProfilePickerKey(msg)
	case ModeSourceMenu:
		return m.handleSourceMenuKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.supervisor.StopAll()
		return m, tea.Quit

	case "tab":
		m.pane = (m.pane + 1) % 2
	case "shift+tab":
		m.pane = (m.pane + 1) % 2 // only two panes: cycling either direction lands the same place

	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)

	case "enter":
		if m.pane == PanePatterns {
			if _, ok := m.selectedPatternIndex(); ok {
				m.mode = ModeDrilldown
				m.drilldownScroll = 0
			}
		} else {
			m.toggleSourceFilter()
		}

	case "/":
		m.mode = ModeSearch

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
		} else {
			m.activeSourceFilter = ""
		}
		m.recomputeFilter()

	case "a":
		m.mode = ModeSourceMenu
		m.sourceMenuField = menuKindDocker
		m.sourceMenuInput = ""
		m.sourceMenuErr = ""
		if !m.discovering && m.dockerList == nil && m.azureList == nil {
			m.discovering = true
			return m, discoverCmd()
		}

	case "p":
		m.paused = !m.paused

	case "P":
		m.mode = ModeProfilePicker
		m.profilePickerIdx = m.profileIdx

	case "r":
		m.store.Reset()
		m.selectedPattern = 0
		m.recomputeFilter()

	case "c":
		m.store.ClearCounters()

	case "n":
		m.drilldownNormalized = !m.drilldownNormalized

	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)

	case "?":
		m.mode = ModeHelp
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if m.pane == PanePatterns {
		n := m.visibleCount()
		if n == 0 {
			m.selectedPattern = 0
			return
		}
		m.selectedPattern = clamp(m.selectedPattern+delta, 0, n-1)
	} else {
		n := len(m.visibleSourceRows())
		if n == 0 {
			m.selectedSource = 0
			return
		}
		m.selectedSource = clamp(m.selectedSource+delta, 0, n-1)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toggleSourceFilter acts on the currently selected Sources-pane row: a
// header row toggles its group's collapsed state, a leaf row toggles
// filtering the Patterns pane down to that one source.
func (m *Model) toggleSourceFilter() {
	rows := m.visibleSourceRows()
	if m.selectedSource < 0 || m.selectedSource >= len(rows) {
		return
	}
	row := rows[m.selectedSource]
	if row.header {
		m.collapsedGroups[row.kind] = !m.collapsedGroups[row.kind]
		return
	}
	src, ok := m.sources[row.id]
	if !ok {
		return
	}
	if m.activeSourceFilter == src.ID {
		m.activeSourceFilter = ""
	} else {
		m.activeSourceFilter = src.ID
	}
	m.recomputeFilter()
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = ModeNormal
	case tea.KeyEsc:
		m.searchQuery = ""
		m.mode = ModeNormal
	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			r := []rune(m.searchQuery)
			m.searchQuery = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.searchQuery += string(msg.Runes)
		if msg.Type == tea.KeySpace {
			m.searchQuery += " "
		}
	}
	m.recomputeFilter()
	m.selectedPattern = 0
	return m, nil
}

func (m Model) handleDrilldownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.supervisor.StopAll()
		return m, tea.Quit
	case "j", "down":
		m.drilldownScroll++
	case "k", "up":
		if m.drilldownScroll > 0 {
			m.drilldownScroll--
		}
	case "n":
		m.drilldownNormalized = !m.drilldownNormalized
	case "b", "esc":
		m.mode = ModeNormal
		m.drilldownScroll = 0
	}
	return m, nil
}

func (m Model) handleProfilePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.profilePickerIdx = clamp(m.profilePickerIdx+1, 0, len(m.profiles)-1)
	case "k", "up":
		m.profilePickerIdx = clamp(m.profilePickerIdx-1, 0, len(m.profiles)-1)
	case "enter":
		m.profileIdx = m.profilePickerIdx
		m.mode = ModeNormal
	case "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m Model) handleSourceMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil
	case "tab":
		m.sourceMenuField = (m.sourceMenuField + 1) % menuKindCount
		m.sourceMenuInput = ""
		return m, nil
	case "d":
		m.discovering = true
		m.sourceMenuErr = ""
		return m, discoverCmd()
	case "backspace":
		if len(m.sourceMenuInput) > 0 {
			r := []rune(m.sourceMenuInput)
			m.sourceMenuInput = string(r[:len(r)-1])
		}
		return m, nil
	case "enter":
		m.attachFromMenu()
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.sourceMenuInput += string(msg.Runes)
	} else if msg.Type == tea.KeySpace {
		m.sourceMenuInput += " "
	}
	return m, nil
}

func (m *Model) attachFromMenu() {
	target := strings.TrimSpace(m.sourceMenuInput)
	if target == "" {
		m.sourceMenuErr = "target required"
		return
	}
	switch m.sourceMenuField {
	case menuKindDocker:
		m.AttachSource(target, model.SourceDocker, target, collector.DockerProducer{Container: target})
	case menuKindCommand:
		m.AttachSource(target, model.SourceCommand, target, collector.CommandProducer{Shell: target})
	case menuKindFile:
		m.AttachSource(target, model.SourceFile, target, collector.FileProducer{Path: target})
	case menuKindAzure:
		parts := strings.SplitN(target, "/", 2)
		appName := parts[0]
		rg := ""
		if len(parts) == 2 {
			rg = parts[1]
		}
		sub := ""
		for _, a := range m.azureList {
			if a.Name == appName {
				sub = a.SubscriptionID
				if rg == "" {
					rg = a.ResourceGroup
				}
				break
			}
		}
		m.AttachSource(appName, model.SourceAzure, target, collector.AzureProducer{
			AppName: appName, ResourceGroup: rg, SubscriptionID: sub, Token: m.azureToken,
		})
	}
	m.sourceMenuInput = ""
	m.mode = ModeNormal
}

// discoverCmd runs docker discovery, azure discovery, and the azure token
// fetch as three independent jobs, concurrently, and reports them back as
// a single discoveryMsg; each result's failure only sets its own *Err
// field, never skips or blocks the others.
func discoverCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var res model.DiscoveryResult
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			res.Docker, res.DockerErr = collector.DiscoverDocker(ctx)
		}()
		go func() {
			defer wg.Done()
			res.Azure, res.AzureErr = collector.DiscoverAzure(ctx)
		}()
		go func() {
			defer wg.Done()
			res.AzureToken, res.TokenErr = collector.FetchAzureToken(ctx)
		}()
		wg.Wait()
		return discoveryMsg(res)
	}
}
