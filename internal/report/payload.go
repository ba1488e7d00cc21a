// Package report builds the AI analysis prompt and talks to the
// text-generation service.
package report

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/verte-zerg/streamsync/internal/model"
)

// Meta carries the aggregate header of the analysis payload.
type Meta struct {
	TotalSessions   int      `json:"totalSessions"`
	TotalRevenueUSD int      `json:"totalRevenueUSD"`
	HostNames       []string `json:"hostNames"`
	AnalysisDate    string   `json:"analysisDate"`
}

// Record is one session reduced to the fields the analyst prompt needs.
// Amounts are rounded to whole units to keep the payload small.
type Record struct {
	Date       string `json:"date"`
	Host       string `json:"host"`
	Account    string `json:"account"`
	Duration   int    `json:"duration"`
	RevenueUSD int    `json:"revenueUSD"`
	RevenuePHP int    `json:"revenuePHP"`
}

// Payload is the structured data embedded in the prompt.
type Payload struct {
	Meta           Meta     `json:"meta"`
	HistoricalData []Record `json:"historicalData"`
}

// BuildPayload maps the full record set into the prompt payload.
func BuildPayload(sessions []model.Session, hosts []model.Host, analysisDate string) Payload {
	var totalUSD float64
	records := make([]Record, 0, len(sessions))
	for _, s := range sessions {
		totalUSD += s.RevenueUSD
		records = append(records, Record{
			Date:       s.Date,
			Host:       s.HostName,
			Account:    s.AccountName,
			Duration:   s.DurationMinutes,
			RevenueUSD: int(math.Round(s.RevenueUSD)),
			RevenuePHP: int(math.Round(s.Revenue)),
		})
	}
	names := make([]string, 0, len(hosts))
	for _, h := range hosts {
		names = append(names, h.Name)
	}
	return Payload{
		Meta: Meta{
			TotalSessions:   len(sessions),
			TotalRevenueUSD: int(math.Round(totalUSD)),
			HostNames:       names,
			AnalysisDate:    analysisDate,
		},
		HistoricalData: records,
	}
}

// BuildPrompt embeds the payload in the analyst instruction prompt.
func BuildPrompt(sessions []model.Session, hosts []model.Host, analysisDate string) (string, error) {
	payload := BuildPayload(sessions, hosts, analysisDate)
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	prompt := fmt.Sprintf(`Act as a Senior Data Analyst for an e-commerce live-streaming agency.

You are given the FULL historical dataset of our live-streaming sessions.

Data: %s

Provide a comprehensive performance analysis report in Markdown. Cover:
1. **Long-term performance trends**: growth, stagnation, or volatility in revenue and duration across the whole period; compare recent weeks to earlier ones.
2. **Host performance matrix**: compare hosts on consistency, total contribution, and recent trajectory. Who carries the team, who is improving, who is declining?
3. **Account analysis**: insights on %s versus %s.
4. **Actionable strategy**: based on the historical patterns (best days, optimal duration, best host-account pairing), give 3 specific recommendations for the upcoming month to maximize GMV.

Tone: professional, analytical, growth-oriented. Use bolding for key insights.`,
		data, model.AccountBigName, model.AccountSmallName)
	return prompt, nil
}
