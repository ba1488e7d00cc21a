package ui

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/verte-zerg/streamsync/internal/model"
)

// Session form fields. The first two are choice fields cycled with
// left/right; the rest are text inputs.
const (
	fieldHost = iota
	fieldAccount
	fieldDate
	fieldStartTime
	fieldDuration
	fieldRevenuePHP
	fieldRevenueUSD
	fieldViews
	fieldCount
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

var accountChoices = []string{model.AccountBig, model.AccountSmall}

// sessionForm drives both the new-session form and the edit form. Invalid
// input is rejected with a message and never reaches the store.
type sessionForm struct {
	title  string
	editID string // empty for a new session

	hosts      []model.Host
	hostIdx    int
	accountIdx int

	inputs []textinput.Model
	index  int
	errMsg string
}

func newFormInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

// newSessionForm builds an empty form over the selectable hosts.
func newSessionForm(title string, hosts []model.Host) *sessionForm {
	f := &sessionForm{
		title: title,
		hosts: hosts,
	}
	f.inputs = []textinput.Model{
		newFormInput("Date: ", "YYYY-MM-DD"),
		newFormInput("Start time: ", "HH:MM"),
		newFormInput("Duration (min): ", "120"),
		newFormInput("Revenue (PHP): ", "15000"),
		newFormInput("Revenue (USD, blank = auto): ", ""),
		newFormInput("Views: ", "2500"),
	}
	return f
}

// newEditForm builds a form pre-filled from an existing session.
func newEditForm(sess model.Session, hosts []model.Host) *sessionForm {
	f := newSessionForm("Edit Session "+sess.ID, hosts)
	f.editID = sess.ID
	for i, h := range hosts {
		if h.ID == sess.HostID {
			f.hostIdx = i
			break
		}
	}
	for i, id := range accountChoices {
		if id == sess.AccountID {
			f.accountIdx = i
			break
		}
	}
	f.inputs[0].SetValue(sess.Date)
	f.inputs[1].SetValue(sess.StartTime)
	f.inputs[2].SetValue(strconv.Itoa(sess.DurationMinutes))
	f.inputs[3].SetValue(strconv.FormatFloat(sess.Revenue, 'f', -1, 64))
	f.inputs[4].SetValue(strconv.FormatFloat(sess.RevenueUSD, 'f', -1, 64))
	f.inputs[5].SetValue(strconv.Itoa(sess.Views))
	return f
}

func (f *sessionForm) inputIndex() int {
	return f.index - fieldDate
}

func (f *sessionForm) onChoiceField() bool {
	return f.index < fieldDate
}

func (f *sessionForm) focusField() {
	for i := range f.inputs {
		if !f.onChoiceField() && i == f.inputIndex() {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *sessionForm) moveField(delta int) {
	f.index += delta
	if f.index < 0 {
		f.index = fieldCount - 1
	}
	if f.index >= fieldCount {
		f.index = 0
	}
	f.focusField()
}

func (f *sessionForm) cycleChoice(delta int) {
	switch f.index {
	case fieldHost:
		if len(f.hosts) == 0 {
			return
		}
		f.hostIdx = (f.hostIdx + delta + len(f.hosts)) % len(f.hosts)
	case fieldAccount:
		f.accountIdx = (f.accountIdx + delta + len(accountChoices)) % len(accountChoices)
	}
}

// session validates the form and assembles the record. The denormalized
// host and account names are snapshotted here.
func (f *sessionForm) session() (model.Session, error) {
	if len(f.hosts) == 0 {
		return model.Session{}, fmt.Errorf("no host available")
	}
	host := f.hosts[f.hostIdx]
	accountID := accountChoices[f.accountIdx]

	date := strings.TrimSpace(f.inputs[0].Value())
	if !dateRe.MatchString(date) {
		return model.Session{}, fmt.Errorf("invalid date (expected YYYY-MM-DD)")
	}
	startTime := strings.TrimSpace(f.inputs[1].Value())
	if !timeRe.MatchString(startTime) {
		return model.Session{}, fmt.Errorf("invalid start time (expected HH:MM)")
	}
	duration, err := strconv.Atoi(strings.TrimSpace(f.inputs[2].Value()))
	if err != nil || duration <= 0 {
		return model.Session{}, fmt.Errorf("invalid duration (use a positive integer of minutes)")
	}
	revenue, err := parseAmount(f.inputs[3].Value())
	if err != nil {
		return model.Session{}, fmt.Errorf("invalid revenue (use a non-negative number)")
	}
	usdRaw := strings.TrimSpace(f.inputs[4].Value())
	revenueUSD := revenue / model.PesoPerUSD
	if usdRaw != "" {
		revenueUSD, err = parseAmount(usdRaw)
		if err != nil {
			return model.Session{}, fmt.Errorf("invalid USD revenue (use a non-negative number or leave blank)")
		}
	}
	views, err := strconv.Atoi(strings.TrimSpace(f.inputs[5].Value()))
	if err != nil || views < 0 {
		return model.Session{}, fmt.Errorf("invalid views (use a non-negative integer)")
	}

	return model.Session{
		ID:              f.editID,
		HostID:          host.ID,
		HostName:        host.Name,
		AccountID:       accountID,
		AccountName:     model.AccountName(accountID),
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: duration,
		Revenue:         revenue,
		RevenueUSD:      revenueUSD,
		Views:           views,
	}, nil
}

// parseAmount accepts finite, non-negative numbers only. ParseFloat would
// happily return NaN or Inf for their spellings.
func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("amount out of range")
	}
	return v, nil
}

func (f *sessionForm) render() string {
	hostName := "(none)"
	if len(f.hosts) > 0 {
		hostName = f.hosts[f.hostIdx].Name
	}
	choice := func(idx int, label, value string) string {
		line := fmt.Sprintf("%s %s", label, value)
		if f.index == idx {
			return cardValueStyle.Render("> " + line + "  (left/right to change)")
		}
		return "  " + line
	}

	lines := []string{
		cardValueStyle.Render(f.title),
		"",
		choice(fieldHost, "Host:", hostName),
		choice(fieldAccount, "Account:", model.AccountName(accountChoices[f.accountIdx])),
	}
	for _, input := range f.inputs {
		lines = append(lines, "  "+input.View())
	}
	lines = append(lines, "", headerStyle.Render("tab/shift+tab: next field  enter: save  esc: cancel"))
	if f.errMsg != "" {
		lines = append(lines, errorStyle.Render(f.errMsg))
	}
	return strings.Join(lines, "\n")
}
