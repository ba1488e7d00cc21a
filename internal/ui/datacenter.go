package ui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/streamsync/internal/model"
	"github.com/verte-zerg/streamsync/internal/stats"
	"github.com/verte-zerg/streamsync/internal/store"
)

func (m *Model) initDataTable() {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Start", Width: 5},
		{Title: "Host", Width: 10},
		{Title: "Account", Width: 18},
		{Title: "Min", Width: 5},
		{Title: "Revenue (PHP)", Width: 13},
		{Title: "USD", Width: 10},
		{Title: "Views", Width: 7},
	}
	m.dcTable = table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	m.dcTable.SetStyles(dataTableStyles())
}

func dataTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

// refreshDataCenter reloads the table rows. Without a search term every
// session is listed newest first; with one the store search applies its
// match rules and the display cap.
func (m *Model) refreshDataCenter() {
	term := strings.TrimSpace(m.searchInput.Value())
	if term == "" {
		sessions := append([]model.Session(nil), m.sessions...)
		sort.SliceStable(sessions, func(i, j int) bool {
			return sessions[i].Date > sessions[j].Date
		})
		m.dcSessions = sessions
		m.dcTruncated = false
	} else {
		sessions, truncated, err := m.store.SearchSessions(context.Background(), term)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		m.dcSessions = sessions
		m.dcTruncated = truncated
	}

	rows := make([]table.Row, 0, len(m.dcSessions))
	for _, s := range m.dcSessions {
		rows = append(rows, table.Row{
			s.Date,
			s.StartTime,
			s.HostName,
			s.AccountName,
			strconv.Itoa(s.DurationMinutes),
			stats.FormatPHP(s.Revenue),
			stats.FormatUSD(s.RevenueUSD),
			strconv.Itoa(s.Views),
		})
	}
	m.dcTable.SetRows(rows)
	if m.dcTable.Cursor() >= len(rows) {
		m.dcTable.SetCursor(maxInt(0, len(rows)-1))
	}
}

func (m *Model) renderDataCenter(height int) string {
	var top []string
	if m.searchActive {
		top = append(top, m.searchInput.View())
	}
	top = append(top, headerStyle.Render(m.dataCenterStatus()))

	tableHeight := maxInt(1, height-len(top)-1)
	m.dcTable.SetHeight(tableHeight)
	view := m.dcTable.View()
	if diff := tableHeight - lipgloss.Height(view); diff != 0 {
		m.dcTable.SetHeight(maxInt(1, tableHeight+diff))
		view = m.dcTable.View()
	}
	return strings.Join(top, "\n") + "\n" + tableMutedStyle.Render(view)
}

func (m *Model) dataCenterStatus() string {
	term := strings.TrimSpace(m.searchInput.Value())
	if term == "" {
		return fmt.Sprintf("All sessions: %d (newest first)", len(m.dcSessions))
	}
	status := fmt.Sprintf("Search %q: %d matches", term, len(m.dcSessions))
	if m.dcTruncated {
		status += fmt.Sprintf(" (showing first %d)", store.SearchLimit)
	}
	return status
}

func (m *Model) selectedSession() (model.Session, bool) {
	idx := m.dcTable.Cursor()
	if idx < 0 || idx >= len(m.dcSessions) {
		return model.Session{}, false
	}
	return m.dcSessions[idx], true
}

func (m *Model) moveCursor(delta int) {
	if delta < 0 {
		m.dcTable.MoveUp(-delta)
	} else {
		m.dcTable.MoveDown(delta)
	}
}

func (m *Model) setCursor(idx int) {
	if idx < 0 {
		idx = 0
	}
	m.dcTable.SetCursor(idx)
}

func (m *Model) startSearch() (tea.Model, tea.Cmd) {
	m.searchActive = true
	return m, m.searchInput.Focus()
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.refreshDataCenter()
		return m, nil
	case tea.KeyEnter:
		m.searchActive = false
		m.searchInput.Blur()
		m.refreshDataCenter()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) startEdit() (tea.Model, tea.Cmd) {
	sess, ok := m.selectedSession()
	if !ok {
		return m, nil
	}
	m.form = newEditForm(sess, m.hosts)
	m.form.focusField()
	return m, nil
}

func (m *Model) startDelete() (tea.Model, tea.Cmd) {
	sess, ok := m.selectedSession()
	if !ok {
		return m, nil
	}
	m.deleteConfirm = true
	m.deleteID = sess.ID
	return m, nil
}

func (m *Model) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.store.DeleteSession(context.Background(), m.deleteID); err != nil {
			m.errMsg = err.Error()
		}
		m.deleteConfirm = false
		m.deleteID = ""
		m.refreshData()
		return m, tea.ClearScreen
	case "n", "N", "esc":
		m.deleteConfirm = false
		m.deleteID = ""
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *Model) renderDeleteModal() string {
	sess, ok := m.selectedSession()
	body := "Delete this session?"
	if ok {
		body = fmt.Sprintf("Delete session %s?\n%s %s on %s, %s",
			sess.ID, sess.HostName, sess.StartTime, sess.Date, stats.FormatPHP(sess.Revenue))
	}
	body += "\n\n" + headerStyle.Render("y: delete  n/esc: cancel")
	box := modalStyle.Width(modalWidth(m.width)).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
