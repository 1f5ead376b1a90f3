// Package generator produces draft post text and scores it with simple
// heuristics. It is deliberately deterministic: no model call, no state.
package generator

import (
	"fmt"
	"strings"

	"github.com/Vajbratya/automnator/internal/models"
)

type GenerateInput struct {
	Topic    string
	Language string
	Audience string
	Tone     string
}

type GeneratedPost struct {
	Hook     string `json:"hook"`
	Body     string `json:"body"`
	CTA      string `json:"cta"`
	FullText string `json:"fullText"`
}

type languageStrings struct {
	opener   string
	takeaway string
	question string
	cta      string
}

func stringsFor(language string) languageStrings {
	if language == models.LanguagePortuguese {
		return languageStrings{
			opener:   "Uma ideia contraintuitiva sobre",
			takeaway: "O ponto principal:",
			question: "Qual foi a sua experiência com isso?",
			cta:      "Se isso te ajudou, deixa um comentário com a sua opinião.",
		}
	}
	return languageStrings{
		opener:   "A counterintuitive idea about",
		takeaway: "The takeaway:",
		question: "What has your experience been?",
		cta:      "If this helped, share your take in the comments.",
	}
}

func clampText(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return strings.TrimRight(text[:max-1], " ") + "…"
}

func GeneratePost(input GenerateInput) *GeneratedPost {
	s := stringsFor(input.Language)
	topic := strings.TrimSpace(input.Topic)

	hook := clampText(fmt.Sprintf("%s %s: most people optimize the wrong thing.", s.opener, topic), 180)

	var bodyLines []string
	if input.Language == models.LanguagePortuguese {
		bodyLines = []string{
			fmt.Sprintf("Um padrão que eu vejo com %s:", topic),
			"",
			"1) O óbvio quase sempre faz mais barulho.",
			"2) O chato quase sempre compõe ao longo do tempo.",
			"3) Consistência pequena vence intensidade ocasional.",
			"",
			fmt.Sprintf("%s uma melhoria pequena por dia durante 14 dias.", s.takeaway),
			"",
			s.question,
		}
	} else {
		bodyLines = []string{
			fmt.Sprintf("Here is the pattern I keep seeing with %s:", topic),
			"",
			"1) The obvious move is usually the noisy one.",
			"2) The boring move is usually the compounding one.",
			"3) Small consistency beats occasional intensity.",
			"",
			fmt.Sprintf("%s ship one small improvement per day for 14 days.", s.takeaway),
			"",
			s.question,
		}
	}

	var meta []string
	if input.Audience != "" {
		meta = append(meta, "Audience: "+input.Audience)
	}
	if input.Tone != "" {
		meta = append(meta, "Tone: "+input.Tone)
	}

	parts := []string{hook, ""}
	parts = append(parts, bodyLines...)
	parts = append(parts, "", s.cta)
	if len(meta) > 0 {
		parts = append(parts, "")
		parts = append(parts, meta...)
	}

	return &GeneratedPost{
		Hook:     hook,
		Body:     strings.Join(bodyLines, "\n"),
		CTA:      s.cta,
		FullText: strings.Join(parts, "\n"),
	}
}
