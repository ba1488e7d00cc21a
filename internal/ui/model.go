// Package ui provides the Bubble Tea dashboard interface.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/streamsync/internal/model"
	"github.com/verte-zerg/streamsync/internal/report"
	"github.com/verte-zerg/streamsync/internal/seed"
	"github.com/verte-zerg/streamsync/internal/store"
)

const (
	tabOverview = iota
	tabAnalytics
	tabDataCenter
	tabHosts
	tabLogEntry
)

const plotHeight = 8

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardDeltaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	cardDropStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// rangePreset is a named shortcut for the date filter.
type rangePreset struct {
	label string
	rng   model.DateRange
}

var rangePresets = []rangePreset{
	{label: "This Month", rng: model.DateRange{Start: seed.CurrentMonthStart, End: seed.CurrentMonthEnd}},
	{label: "Last Month", rng: model.DateRange{Start: seed.LastMonthStart, End: seed.LastMonthEnd}},
	{label: "Last 7 Days", rng: model.DateRange{Start: seed.WeekStart, End: seed.CurrentMonthEnd}},
	{label: "All Time", rng: model.DateRange{Start: seed.AllTimeStart, End: seed.AllTimeEnd}},
}

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	store      *store.Store
	summarizer report.Summarizer

	hosts    []model.Host
	sessions []model.Session
	errMsg   string

	tabs      []string
	activeTab int
	viewports []viewport.Model

	width  int
	height int

	rng       model.DateRange
	rangeIdx  int // -1 when a custom range is active
	rangeName string

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string

	form *sessionForm

	searchInput  textinput.Model
	searchActive bool
	dcTable      table.Model
	dcSessions   []model.Session
	dcTruncated  bool

	deleteConfirm bool
	deleteID      string

	generating bool
	reportText string
	lastLogged string
}

// NewModel constructs the dashboard model over a seeded store.
func NewModel(st *store.Store, summarizer report.Summarizer) *Model {
	m := &Model{
		store:      st,
		summarizer: summarizer,
		tabs:       []string{"Overview", "Analytics", "Data Center", "Hosts", "Log Entry"},
		rng:        rangePresets[0].rng,
		rangeIdx:   0,
		rangeName:  rangePresets[0].label,
	}
	m.initFilterInputs()
	m.initSearchInput()
	m.initDataTable()
	m.initViewports()
	m.refreshData()
	return m
}

// SetRange overrides the initial date range before the program starts.
func (m *Model) SetRange(start, end string) {
	m.rng = model.DateRange{Start: start, End: end}
	m.rangeIdx = -1
	m.rangeName = "Custom"
	for i, preset := range rangePresets {
		if preset.rng == m.rng {
			m.rangeIdx = i
			m.rangeName = preset.label
			break
		}
	}
	m.renderTabContents()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case reportMsg:
		m.generating = false
		m.reportText = string(msg)
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.deleteConfirm {
			return m.updateDeleteConfirm(msg)
		}
		if m.searchActive {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			return m.startFilter()
		case "p":
			m.cyclePreset()
			return m, nil
		case "r":
			if m.activeTab == tabAnalytics && !m.generating {
				m.generating = true
				m.renderTabContents()
				return m, m.generateReportCmd()
			}
			return m, nil
		case "s":
			if m.activeTab == tabDataCenter {
				return m.startSearch()
			}
			return m, nil
		case "enter":
			switch m.activeTab {
			case tabDataCenter:
				return m.startEdit()
			case tabLogEntry:
				return m.startLogForm()
			}
			return m, nil
		case "d":
			if m.activeTab == tabDataCenter {
				return m.startDelete()
			}
			return m, nil
		case "up", "k":
			if m.activeTab == tabDataCenter {
				m.moveCursor(-1)
				return m, nil
			}
		case "down", "j":
			if m.activeTab == tabDataCenter {
				m.moveCursor(1)
				return m, nil
			}
		case "g", "home":
			if m.activeTab == tabDataCenter {
				m.setCursor(0)
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabDataCenter {
				m.setCursor(len(m.dcSessions) - 1)
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		}
		vp := m.viewports[m.activeTab]
		var cmd tea.Cmd
		vp, cmd = vp.Update(msg)
		m.viewports[m.activeTab] = vp
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.form != nil {
		return fitLines(m.renderFormModal(), m.width, m.height)
	}
	if m.deleteConfirm {
		return fitLines(m.renderDeleteModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initFilterInputs() {
	m.filterInputs = []textinput.Model{
		newRangeInput("Start (YYYY-MM-DD): "),
		newRangeInput("End (YYYY-MM-DD): "),
	}
}

func (m *Model) initSearchInput() {
	m.searchInput = textinput.New()
	m.searchInput.Prompt = "Search: "
	m.searchInput.Placeholder = "host, account, or date"
	m.searchInput.CharLimit = 0
	m.searchInput.Cursor.SetMode(cursor.CursorBlink)
}

func newRangeInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
	promptWidth := lipgloss.Width(m.searchInput.Prompt)
	m.searchInput.Width = maxInt(10, m.width-promptWidth-2)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
}

func (m *Model) cyclePreset() {
	m.rangeIdx = (m.rangeIdx + 1) % len(rangePresets)
	m.rng = rangePresets[m.rangeIdx].rng
	m.rangeName = rangePresets[m.rangeIdx].label
	m.renderTabContents()
}

// refreshData reloads both collections from the store and re-renders every
// tab. Called at startup and after each mutation.
func (m *Model) refreshData() {
	ctx := context.Background()
	hosts, err := m.store.ListHosts(ctx)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	sessions, err := m.store.ListSessions(ctx)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.hosts = hosts
	m.sessions = sessions
	m.refreshDataCenter()
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(m.renderOverview(width))
	m.viewports[tabAnalytics].SetContent(m.renderAnalytics(width))
	m.viewports[tabHosts].SetContent(m.renderHosts(width))
	m.viewports[tabLogEntry].SetContent(m.renderLogEntry())
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := padLines(m.renderRangeSummary(), m.width)
	return tabs + "\n" + summary
}

func (m *Model) renderRangeSummary() string {
	label := m.rangeName
	if label == "" {
		label = "Custom"
	}
	summary := fmt.Sprintf("Range: %s .. %s  (%s)", m.rng.Start, m.rng.End, label)
	summary = truncateLine(summary, m.width)
	return headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Range: p / '/'  Quit: q"
	switch m.activeTab {
	case tabAnalytics:
		help = "Nav: left/right  Report: r  Range: p / '/'  Quit: q"
	case tabDataCenter:
		help = "Nav: left/right  Rows: up/down  Search: s  Edit: enter  Delete: d  Quit: q"
	case tabLogEntry:
		help = "Nav: left/right  New session: enter  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.activeTab == tabDataCenter {
		return fitLines(m.renderDataCenter(height), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Date range (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.filterInputs[0].SetValue(m.rng.Start)
	m.filterInputs[1].SetValue(m.rng.End)
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.renderTabContents()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	start := strings.TrimSpace(m.filterInputs[0].Value())
	end := strings.TrimSpace(m.filterInputs[1].Value())
	if !dateRe.MatchString(start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD)")
	}
	if !dateRe.MatchString(end) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD)")
	}
	m.rng = model.DateRange{Start: start, End: end}
	m.rangeIdx = -1
	m.rangeName = "Custom"
	for _, preset := range rangePresets {
		if preset.rng == m.rng {
			m.rangeName = preset.label
			break
		}
	}
	return nil
}

// updateForm routes keys while the session form modal is open.
func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch msg.Type {
	case tea.KeyEsc:
		m.form = nil
		return m, tea.ClearScreen
	case tea.KeyEnter:
		sess, err := f.session()
		if err != nil {
			f.errMsg = err.Error()
			return m, nil
		}
		m.submitForm(sess)
		return m, tea.ClearScreen
	case tea.KeyTab, tea.KeyDown:
		f.moveField(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.moveField(-1)
		return m, nil
	}
	if f.onChoiceField() {
		switch msg.String() {
		case "left", "h":
			f.cycleChoice(-1)
		case "right", "l", " ":
			f.cycleChoice(1)
		}
		return m, nil
	}
	idx := f.inputIndex()
	var cmd tea.Cmd
	f.inputs[idx], cmd = f.inputs[idx].Update(msg)
	return m, cmd
}

func (m *Model) submitForm(sess model.Session) {
	ctx := context.Background()
	if m.form.editID == "" {
		created, err := m.store.InsertSession(ctx, sess)
		if err != nil {
			m.form.errMsg = err.Error()
			return
		}
		m.lastLogged = fmt.Sprintf("Logged session %s: %s on %s", created.ID, created.HostName, created.Date)
		m.activeTab = tabOverview
	} else if err := m.store.UpdateSession(ctx, sess); err != nil {
		m.form.errMsg = err.Error()
		return
	}
	m.form = nil
	m.refreshData()
}

func (m *Model) renderFormModal() string {
	box := modalStyle.Width(modalWidth(m.width)).Render(m.form.render())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) startLogForm() (tea.Model, tea.Cmd) {
	active, err := m.store.ActiveHosts(context.Background())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if len(active) == 0 {
		m.errMsg = "no active host to log a session for"
		return m, nil
	}
	m.form = newSessionForm("Log New Session", active)
	m.form.focusField()
	return m, nil
}

func (m *Model) renderLogEntry() string {
	lines := []string{
		"Press enter to log a new session.",
		"",
		headerStyle.Render("Only active hosts can be selected. Revenue in USD is derived"),
		headerStyle.Render(fmt.Sprintf("from PHP at %.1f per dollar unless entered explicitly.", model.PesoPerUSD)),
	}
	if m.lastLogged != "" {
		lines = append(lines, "", cardDeltaStyle.Render(m.lastLogged))
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(44, minInt(width-4, 80))
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
