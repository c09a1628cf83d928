package models

import (
	"fmt"
	"strings"
)

// Priority is the discrete tier derived from the numeric priority score.
type Priority string

const (
	PriorityUrgent   Priority = "Urgent"
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityNormal   Priority = "Normal"
	PriorityLow      Priority = "Low"
)

// Priorities lists all tiers from most to least severe.
var Priorities = []Priority{
	PriorityUrgent,
	PriorityCritical,
	PriorityHigh,
	PriorityNormal,
	PriorityLow,
}

// Sentiment is the coarse tone label detected in the ticket text.
type Sentiment string

const (
	SentimentVeryNegative Sentiment = "Very Negative"
	SentimentNegative     Sentiment = "Negative"
	SentimentNeutral      Sentiment = "Neutral"
	SentimentPositive     Sentiment = "Positive"
)

// Value returns the score contribution of a sentiment label.
func (s Sentiment) Value() int {
	switch s {
	case SentimentVeryNegative:
		return -3
	case SentimentNegative:
		return -2
	case SentimentPositive:
		return 1
	default:
		return 0
	}
}

// Category is a non-exclusive classification tag.
type Category string

const (
	CategoryAuthentication Category = "Authentication"
	CategoryTaxDocuments   Category = "Tax Documents"
	CategoryBanking        Category = "Banking"
	CategoryDistributions  Category = "Distributions"
	CategoryTechnicalIssue Category = "Technical Issue"
	CategoryFeatureRequest Category = "Feature Request"
	CategoryReporting      Category = "Reporting"
	CategoryEscalation     Category = "Escalation"
)

// ActionType is the single recommended handling path for a ticket.
type ActionType string

const (
	ActionImmediateResponse        ActionType = "Immediate Response Required"
	ActionEngineeringInvestigation ActionType = "Engineering Investigation"
	ActionProductBacklog           ActionType = "Product Backlog"
	ActionAccountManagement        ActionType = "Account Management"
	ActionStandardSupport          ActionType = "Standard Support"
)

// Ticket is a raw support ticket as submitted. It is immutable once created.
type Ticket struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate fails fast on a malformed ticket record before scoring is
// attempted. Empty text is allowed; a missing identifier or a record with
// neither subject nor body is not.
func (t Ticket) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("ticket id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Subject) == "" && strings.TrimSpace(t.Body) == "" {
		return fmt.Errorf("ticket %d has neither subject nor body", t.ID)
	}
	return nil
}

// Text returns the lowercased concatenation of subject and body with a
// single space separator, the exact input form all keyword rules match on.
func (t Ticket) Text() string {
	return strings.ToLower(t.Subject + " " + t.Body)
}

// AnnotatedTicket is a ticket after scoring. All fields are populated;
// annotated tickets live only for the duration of one triage run.
type AnnotatedTicket struct {
	Ticket

	Priority      Priority   `json:"priority"`
	PriorityScore int        `json:"priorityScore"`
	Sentiment     Sentiment  `json:"sentiment"`
	Categories    []Category `json:"categories"`
	ActionType    ActionType `json:"actionType"`

	// Subscores on the 0-10 scale before weighting.
	Urgency         int `json:"urgency"`
	FinancialImpact int `json:"financialImpact"`
	Blocking        int `json:"blocking"`
}

// HasCategory reports whether a tag was detected on the ticket.
func (a AnnotatedTicket) HasCategory(c Category) bool {
	for _, cat := range a.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

// TierCounts is the per-tier summary for one triage run.
type TierCounts struct {
	Urgent   int `json:"urgent"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Normal   int `json:"normal"`
	Low      int `json:"low"`
}

// NormalAndLow is the combined figure the summary view reports.
func (c TierCounts) NormalAndLow() int {
	return c.Normal + c.Low
}

// Total returns the number of tickets counted across all tiers.
func (c TierCounts) Total() int {
	return c.Urgent + c.Critical + c.High + c.Normal + c.Low
}
