package generator

import "strings"

type Score struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// ScoreDraft rates a draft's fitness for LinkedIn engagement on a 0-100
// scale with the reasons behind each adjustment.
func ScoreDraft(text string) *Score {
	var reasons []string
	score := 50

	trimmed := strings.TrimSpace(text)
	length := len(trimmed)
	switch {
	case length >= 400 && length <= 1600:
		score += 15
		reasons = append(reasons, "Good length for LinkedIn skimming.")
	case length < 250:
		score -= 10
		reasons = append(reasons, "Too short: might not deliver enough value.")
	case length > 2000:
		score -= 10
		reasons = append(reasons, "Too long: likely to lose attention.")
	}

	if strings.HasSuffix(trimmed, "?") || strings.Contains(text, "?\n") {
		score += 10
		reasons = append(reasons, "Contains a question to invite comments.")
	}

	if strings.Count(text, "\n") >= 6 {
		score += 10
		reasons = append(reasons, "Good whitespace for readability.")
	}

	if strings.Contains(text, "\n1)") || strings.Contains(text, "\n1.") {
		score += 5
		reasons = append(reasons, "Has a structured list.")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "Baseline score.")
	}
	return &Score{Score: score, Reasons: reasons}
}
