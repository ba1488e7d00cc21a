package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/streamsync/internal/model"
)

func formHosts() []model.Host {
	return []model.Host{
		{ID: "h1", Name: "Maricel", Status: model.StatusActive},
		{ID: "h2", Name: "Jasmine", Status: model.StatusActive},
	}
}

func filledForm() *sessionForm {
	f := newSessionForm("Log New Session", formHosts())
	f.inputs[0].SetValue("2025-11-21")
	f.inputs[1].SetValue("19:00")
	f.inputs[2].SetValue("120")
	f.inputs[3].SetValue("15000")
	f.inputs[5].SetValue("2500")
	return f
}

func TestFormSessionDerivesUSD(t *testing.T) {
	f := filledForm()
	sess, err := f.session()
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if sess.ID != "" {
		t.Fatalf("new session must not carry an id, got %q", sess.ID)
	}
	if sess.HostID != "h1" || sess.HostName != "Maricel" {
		t.Fatalf("unexpected host snapshot: %+v", sess)
	}
	if sess.AccountName != model.AccountBigName {
		t.Fatalf("unexpected account name: %q", sess.AccountName)
	}
	want := 15000 / model.PesoPerUSD
	if math.Abs(sess.RevenueUSD-want) > 1e-9 {
		t.Fatalf("expected derived USD %f, got %f", want, sess.RevenueUSD)
	}
}

func TestFormSessionExplicitUSD(t *testing.T) {
	f := filledForm()
	f.inputs[4].SetValue("250.5")
	sess, err := f.session()
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if sess.RevenueUSD != 250.5 {
		t.Fatalf("expected explicit USD kept, got %f", sess.RevenueUSD)
	}
}

func TestFormSessionRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
	}{
		{"bad date", 0, "21-11-2025"},
		{"bad time", 1, "7pm"},
		{"zero duration", 2, "0"},
		{"non-numeric duration", 2, "two hours"},
		{"negative revenue", 3, "-100"},
		{"non-numeric revenue", 3, "lots"},
		{"bad usd", 4, "NaN"},
		{"negative views", 5, "-1"},
	}
	for _, tt := range tests {
		f := filledForm()
		f.inputs[tt.field].SetValue(tt.value)
		if _, err := f.session(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestFormCycleChoices(t *testing.T) {
	f := filledForm()
	f.index = fieldHost
	f.cycleChoice(1)
	if f.hostIdx != 1 {
		t.Fatalf("expected host cycled to 1, got %d", f.hostIdx)
	}
	f.cycleChoice(1)
	if f.hostIdx != 0 {
		t.Fatalf("expected host wrapped to 0, got %d", f.hostIdx)
	}
	f.index = fieldAccount
	f.cycleChoice(-1)
	if accountChoices[f.accountIdx] != model.AccountSmall {
		t.Fatalf("expected account wrapped to small, got %q", accountChoices[f.accountIdx])
	}
}

func TestEditFormPrefills(t *testing.T) {
	sess := model.Session{
		ID: "s123", HostID: "h2", HostName: "Jasmine",
		AccountID: model.AccountSmall, AccountName: model.AccountSmallName,
		Date: "2025-11-10", StartTime: "20:00",
		DurationMinutes: 90, Revenue: 8400, RevenueUSD: 144.83, Views: 1950,
	}
	f := newEditForm(sess, formHosts())
	if f.editID != "s123" {
		t.Fatalf("expected edit id carried, got %q", f.editID)
	}
	if f.hostIdx != 1 || accountChoices[f.accountIdx] != model.AccountSmall {
		t.Fatalf("choices not prefilled: host=%d account=%d", f.hostIdx, f.accountIdx)
	}

	got, err := f.session()
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if got != sess {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, sess)
	}
}

func TestFormRenderMarksActiveField(t *testing.T) {
	f := filledForm()
	f.index = fieldAccount
	out := f.render()
	if !strings.Contains(out, "> Account:") {
		t.Fatalf("expected active marker on account field, got %q", out)
	}
	if strings.Contains(out, "> Host:") {
		t.Fatalf("host field should not be marked active")
	}
}

func TestFormSessionRejectsNaNRevenue(t *testing.T) {
	f := filledForm()
	f.inputs[3].SetValue("NaN")
	if _, err := f.session(); err == nil {
		t.Fatalf("expected NaN revenue to be rejected")
	}
}
