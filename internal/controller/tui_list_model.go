package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/marauders/internal/model"
)

const (
	nameColumn   = 16
	activeColumn = 14
	// title, summary, box border, column header and footer
	listChrome = 9
)

type variationDelegate struct {
	offset int
}

func (d variationDelegate) Height() int  { return 1 }
func (d variationDelegate) Spacing() int { return 0 }
func (d variationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d variationDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	v, ok := item.(variationItem)
	if !ok {
		return
	}

	restWidth := l.Width() - nameColumn - activeColumn - 4
	rest := v.location() + "  " + strings.Join(v.info.Variants, " | ")

	if index == l.Index() {
		line := fmt.Sprintf("%-*s  %-*s  %s",
			nameColumn, truncateToWidth(v.info.DisplayName(), nameColumn),
			activeColumn, truncateToWidth(v.info.ActiveName(), activeColumn),
			animateScroll(rest, restWidth, d.offset))
		_, _ = fmt.Fprint(w, selectedStyle.Render(line))

		return
	}

	_, _ = fmt.Fprint(w, renderVariationRow(v, restWidth))
}

func renderVariationRow(v variationItem, restWidth int) string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	if v.info.Active != 0 {
		activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	}

	rest := v.location() + "  " + strings.Join(v.info.Variants, " | ")

	return fmt.Sprintf("%s  %s  %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(nameColumn).
			Render(truncateToWidth(v.info.DisplayName(), nameColumn)),
		activeStyle.Width(activeColumn).Render(truncateToWidth(v.info.ActiveName(), activeColumn)),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(truncateToWidth(rest, restWidth)),
	)
}

// variationsModel is the browsable list of variations shown by `list`.
type variationsModel struct {
	width        int
	height       int
	infos        []m.VariationInfo
	list         list.Model
	delegate     variationDelegate
	animOffset   int
	lastSelected int
}

func newVariationsModel(infos []m.VariationInfo) variationsModel {
	items := make([]list.Item, 0, len(infos))
	for _, info := range infos {
		items = append(items, variationItem{info: info})
	}

	delegate := variationDelegate{}
	l := list.New(items, delegate, 80, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by name, variant, tag or path…"

	return variationsModel{
		width:        80,
		infos:        infos,
		list:         l,
		delegate:     delegate,
		lastSelected: 0,
	}
}

func (vm variationsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (vm variationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return vm.resize(msg.Width, msg.Height), nil

	case tickMsg:
		if vm.list.FilterState() == list.Filtering {
			return vm, nil
		}

		vm.animOffset++
		vm.delegate.offset = vm.animOffset
		vm.list.SetDelegate(vm.delegate)

		return vm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && vm.list.FilterState() != list.Filtering) {
			return vm, tea.Quit
		}

		var cmd tea.Cmd

		vm.list, cmd = vm.list.Update(msg)

		if vm.list.Index() != vm.lastSelected {
			vm.lastSelected = vm.list.Index()
			vm.animOffset = 0
			vm.delegate.offset = 0
			vm.list.SetDelegate(vm.delegate)
		}

		return vm, cmd
	}

	return vm, nil
}

func (vm variationsModel) resize(width, height int) variationsModel {
	vm.width = width
	vm.height = height

	vm.list.SetWidth(max(width-6, 20))
	vm.list.SetHeight(max(height-listChrome, 5))

	return vm
}

func (vm variationsModel) withSize(width, height int) pageable {
	return vm.resize(width, height)
}

func (vm variationsModel) needsPagination() bool {
	return vm.height > 0 && len(vm.infos)+listChrome > vm.height
}

func (vm variationsModel) summary() string {
	variants, active := 0, 0

	for _, info := range vm.infos {
		variants += len(info.Variants)
		if info.Active != 0 {
			active++
		}
	}

	return summaryStyle.Render(fmt.Sprintf(
		"Variations: %s   Variants: %s   Active: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(vm.infos))),
		accentStyle.Render(fmt.Sprintf("%d", variants)),
		accentStyle.Render(fmt.Sprintf("%d", active)),
	))
}

func (vm variationsModel) header(width int) string {
	return headerStyle.Width(width).Render(fmt.Sprintf("%-*s  %-*s  %s",
		nameColumn, "Variation", activeColumn, "Active", "Location  Variants"))
}

func (vm variationsModel) View() string {
	listWidth := vm.list.Width()

	table := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		vm.header(listWidth),
		vm.list.View(),
	))

	footer := footerStyle.Width(vm.width).Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Marauders Variations"),
		vm.summary(),
		table,
		footer,
	)
}

// staticView renders every row without the interactive list.
func (vm variationsModel) staticView() string {
	width := max(vm.width-6, 40)
	rows := []string{vm.header(width)}

	for _, info := range vm.infos {
		rows = append(rows, renderVariationRow(variationItem{info: info}, width-nameColumn-activeColumn-4))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Marauders Variations"),
		vm.summary(),
		boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	) + "\n"
}
