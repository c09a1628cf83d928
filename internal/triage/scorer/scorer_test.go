package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-triage/internal/common/logger"
	"ticket-triage/internal/models"
)

func createTestScorer(t *testing.T) *Scorer {
	return New(logger.NewTestLogger(t))
}

func TestScore_EmptyTicket(t *testing.T) {
	s := createTestScorer(t)

	out := s.Score(models.Ticket{ID: 1, Subject: "", Body: ""})

	assert.Equal(t, 3, out.Urgency)
	assert.Equal(t, 0, out.FinancialImpact)
	assert.Equal(t, 0, out.Blocking)
	assert.Equal(t, models.SentimentNeutral, out.Sentiment)
	assert.Equal(t, 9, out.PriorityScore)
	assert.Equal(t, models.PriorityLow, out.Priority)
	assert.Empty(t, out.Categories)
	assert.Equal(t, models.ActionStandardSupport, out.ActionType)
}

func TestScore_Urgency(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"deadline today", "I need this today", 10},
		{"deadline 5 pm", "please finish by 5 pm", 10},
		{"bare by-space matches inside longer phrases", "sort by 'Vintage Year'", 10},
		{"missing funds", "my payment is missing", 9},
		{"where is", "where is my statement", 9},
		{"double question mark", "is anyone there??", 9},
		{"server error", "I hit an error", 7},
		{"http 500", "the page returns 500", 7},
		{"login trouble", "login is broken", 7},
		{"cannot proceed", "I can't open the page", 7},
		{"feature wish", "a new feature idea", 1},
		{"no signals", "hello there", 3},
		{"empty text", "", 3},
	}

	s := createTestScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Score(models.Ticket{ID: 1, Subject: "", Body: tt.body})
			assert.Equal(t, tt.expected, out.Urgency)
		})
	}
}

func TestScore_FinancialImpact(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"missing distribution", "where is my distribution", 10},
		{"distribution reported missing", "my distribution is missing", 10},
		{"plain distribution", "change my distribution instructions", 8},
		{"bank change", "my bank details changed", 8},
		{"account matches inside accountant", "send it to my accountant", 8},
		{"tax documents", "I need my tax forms", 7},
		{"k-1 documents", "my k-1 is wrong", 7},
		{"login only", "login is broken", 3},
		{"access only", "I lost access", 3},
		{"no signals", "hello there", 0},
	}

	s := createTestScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Score(models.Ticket{ID: 1, Subject: "", Body: tt.body})
			assert.Equal(t, tt.expected, out.FinancialImpact)
		})
	}
}

func TestScore_Blocking(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"cannot do anything", "I can't see my documents", 10},
		{"locked out", "I keep trying to log in without luck", 10},
		{"error page", "the export throws an error", 7},
		{"http 500", "500 on every page", 7},
		{"polite request", "please update my address", 3},
		{"no signals", "hello there", 0},
	}

	s := createTestScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Score(models.Ticket{ID: 1, Subject: "", Body: tt.body})
			assert.Equal(t, tt.expected, out.Blocking)
		})
	}
}

func TestScore_Sentiment(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected models.Sentiment
	}{
		{"unacceptable", "this is unacceptable", models.SentimentVeryNegative},
		{"double question mark", "hello?? anyone??", models.SentimentVeryNegative},
		{"angry", "I am angry about this", models.SentimentVeryNegative},
		{"need this", "I need this for my accountant", models.SentimentNegative},
		{"checked spam", "I checked spam already", models.SentimentNegative},
		{"great", "the platform is great", models.SentimentPositive},
		{"just a thought", "just a thought!", models.SentimentPositive},
		{"neutral default", "hello there", models.SentimentNeutral},
		// First match wins over magnitude: a positive trigger does not
		// soften an escalation trigger.
		{"mixed very negative and positive", "it would be great but this is unacceptable", models.SentimentVeryNegative},
	}

	s := createTestScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Score(models.Ticket{ID: 1, Subject: "", Body: tt.body})
			assert.Equal(t, tt.expected, out.Sentiment)
		})
	}
}

func TestScore_ScoreFormula(t *testing.T) {
	bodies := []string{
		"",
		"I can't log in to export my tax report by 5 pm today??",
		"where is my distribution?? this is unacceptable",
		"It would be great to have a dark mode. Just a thought!",
		"please update my bank account",
		"500 error when trying to log in, I checked spam, need this today",
	}

	s := createTestScorer(t)
	for _, body := range bodies {
		out := s.Score(models.Ticket{ID: 1, Subject: "x", Body: body})
		expected := out.Urgency*3 + out.FinancialImpact*3 + out.Blocking*2 + out.Sentiment.Value()
		assert.Equal(t, expected, out.PriorityScore, "body: %q", body)
	}
}

func TestClassifyPriority_Thresholds(t *testing.T) {
	tests := []struct {
		score    int
		expected models.Priority
	}{
		{81, models.PriorityUrgent},
		{50, models.PriorityUrgent},
		{49, models.PriorityCritical},
		{45, models.PriorityCritical},
		{44, models.PriorityHigh},
		{35, models.PriorityHigh},
		{34, models.PriorityNormal},
		{20, models.PriorityNormal},
		{19, models.PriorityLow},
		{0, models.PriorityLow},
		{-3, models.PriorityLow},
	}

	s := createTestScorer(t)
	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.classifyPriority(tt.score), "score %d", tt.score)
	}
}

func TestClassifyPriority_Monotonic(t *testing.T) {
	s := createTestScorer(t)

	rank := func(p models.Priority) int {
		for i, tier := range models.Priorities {
			if tier == p {
				return i
			}
		}
		t.Fatalf("unknown priority %q", p)
		return -1
	}

	prev := rank(s.classifyPriority(-3))
	for score := -2; score <= 81; score++ {
		cur := rank(s.classifyPriority(score))
		assert.LessOrEqual(t, cur, prev, "tier must not drop in severity as score rises at score %d", score)
		prev = cur
	}
}

func TestDetectCategories(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []models.Category
	}{
		{
			name:     "no signals",
			body:     "hello there",
			expected: []models.Category{},
		},
		{
			name:     "authentication only",
			body:     "my password reset link never arrives",
			expected: []models.Category{models.CategoryAuthentication},
		},
		{
			name: "banking and distributions in detection order",
			body: "please update my distribution to my new bank",
			expected: []models.Category{
				models.CategoryBanking,
				models.CategoryDistributions,
			},
		},
		{
			name: "technical and reporting",
			body: "500 error exporting the report",
			expected: []models.Category{
				models.CategoryTechnicalIssue,
				models.CategoryReporting,
			},
		},
		{
			name: "escalation alongside distributions",
			body: "where is my distribution?? unacceptable",
			expected: []models.Category{
				models.CategoryDistributions,
				models.CategoryEscalation,
			},
		},
	}

	s := createTestScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Score(models.Ticket{ID: 1, Subject: "", Body: tt.body})
			assert.Equal(t, tt.expected, out.Categories)
		})
	}
}

func TestDetectCategories_Independent(t *testing.T) {
	// Adding an unrelated keyword must never remove an already-matched
	// category.
	s := createTestScorer(t)

	base := s.Score(models.Ticket{ID: 1, Subject: "", Body: "my password is broken"})
	require.Contains(t, base.Categories, models.CategoryAuthentication)

	extended := s.Score(models.Ticket{ID: 1, Subject: "", Body: "my password is broken and the tax report has an error"})
	assert.Contains(t, extended.Categories, models.CategoryAuthentication)
	assert.Contains(t, extended.Categories, models.CategoryTaxDocuments)
	assert.Contains(t, extended.Categories, models.CategoryTechnicalIssue)
	assert.Contains(t, extended.Categories, models.CategoryReporting)
}

func TestDetermineAction(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		body     string
		expected models.ActionType
	}{
		{
			name:     "urgent tier wins over everything",
			subject:  "Angry / Missing Funds",
			body:     "Where is my distribution?? This is unacceptable.",
			expected: models.ActionImmediateResponse,
		},
		{
			name:     "technical issue below critical",
			subject:  "Broken page",
			body:     "The dashboard shows an error.",
			expected: models.ActionEngineeringInvestigation,
		},
		{
			name:     "feature request goes to backlog",
			subject:  "Idea",
			body:     "A CSV feature would be nice. Just a thought!",
			expected: models.ActionProductBacklog,
		},
		{
			name:     "banking goes to account management",
			subject:  "Bank change",
			body:     "My bank details changed.",
			expected: models.ActionAccountManagement,
		},
		{
			name:     "default standard support",
			subject:  "Question",
			body:     "How do I change my display name?",
			expected: models.ActionStandardSupport,
		},
	}

	s := createTestScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Score(models.Ticket{ID: 1, Subject: tt.subject, Body: tt.body})
			assert.Equal(t, tt.expected, out.ActionType)
		})
	}
}

func TestScore_LoginHelpTicket(t *testing.T) {
	// The classic lockout ticket: deadline, K-1s, literal "trying to log
	// in", "checked spam", and "account" matching inside "accountant".
	s := createTestScorer(t)

	out := s.Score(models.Ticket{
		ID:      101,
		Subject: "Login help",
		Body:    "I'm trying to log in to see my K-1s but the password link isn't arriving. I checked spam. I need this for my accountant by 5 PM today.",
	})

	assert.Equal(t, 10, out.Urgency)
	assert.Equal(t, 8, out.FinancialImpact)
	assert.Equal(t, 10, out.Blocking)
	assert.Equal(t, models.SentimentNegative, out.Sentiment)
	assert.Equal(t, 72, out.PriorityScore)
	assert.Equal(t, models.PriorityUrgent, out.Priority)
	assert.Equal(t, models.ActionImmediateResponse, out.ActionType)
	assert.Equal(t, []models.Category{
		models.CategoryAuthentication,
		models.CategoryTaxDocuments,
		models.CategoryBanking,
	}, out.Categories)
}

func TestScore_FeatureRequestTicket(t *testing.T) {
	// "by 'Vintage Year'" contains the deadline substring "by ", so this
	// polite feature request scores urgency 10, not 1.
	s := createTestScorer(t)

	out := s.Score(models.Ticket{
		ID:      105,
		Subject: "Feature Request",
		Body:    "It would be great if I could sort my investments by 'Vintage Year' on the dashboard. Just a thought!",
	})

	assert.Equal(t, 10, out.Urgency)
	assert.Equal(t, 0, out.FinancialImpact)
	assert.Equal(t, 0, out.Blocking)
	assert.Equal(t, models.SentimentPositive, out.Sentiment)
	assert.Equal(t, 31, out.PriorityScore)
	assert.Equal(t, models.PriorityNormal, out.Priority)
	assert.Equal(t, []models.Category{models.CategoryFeatureRequest}, out.Categories)
	assert.Equal(t, models.ActionProductBacklog, out.ActionType)
}

func TestScore_NonASCIIInput(t *testing.T) {
	s := createTestScorer(t)

	out := s.Score(models.Ticket{ID: 7, Subject: "日本語の件名", Body: "क्या हाल है 😀"})

	assert.Equal(t, 3, out.Urgency)
	assert.Equal(t, models.PriorityLow, out.Priority)
	assert.Equal(t, models.ActionStandardSupport, out.ActionType)
}
