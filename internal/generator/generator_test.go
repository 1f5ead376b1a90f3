package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vajbratya/automnator/internal/models"
)

func TestGeneratePost_English(t *testing.T) {
	post := GeneratePost(GenerateInput{Topic: "code review", Language: models.LanguageEnglish})

	assert.Contains(t, post.Hook, "code review")
	assert.NotEmpty(t, post.Body)
	assert.NotEmpty(t, post.CTA)
	assert.True(t, strings.HasPrefix(post.FullText, post.Hook))
	assert.Contains(t, post.FullText, post.CTA)
}

func TestGeneratePost_Portuguese(t *testing.T) {
	post := GeneratePost(GenerateInput{Topic: "carreira", Language: models.LanguagePortuguese})

	assert.Contains(t, post.Hook, "Uma ideia contraintuitiva sobre")
	assert.Contains(t, post.Body, "carreira")
	assert.Contains(t, post.CTA, "comentário")
}

func TestGeneratePost_MetaLines(t *testing.T) {
	post := GeneratePost(GenerateInput{
		Topic:    "hiring",
		Language: models.LanguageEnglish,
		Audience: "engineering managers",
		Tone:     "direct",
	})

	assert.Contains(t, post.FullText, "Audience: engineering managers")
	assert.Contains(t, post.FullText, "Tone: direct")
}

func TestGeneratePost_HookClamped(t *testing.T) {
	post := GeneratePost(GenerateInput{
		Topic:    strings.Repeat("very long topic ", 30),
		Language: models.LanguageEnglish,
	})
	assert.LessOrEqual(t, len(post.Hook), 183, "hook must be clamped (180 plus ellipsis bytes)")
}

func TestScoreDraft_StructuredPostScoresHigher(t *testing.T) {
	structured := GeneratePost(GenerateInput{Topic: "testing", Language: models.LanguageEnglish}).FullText
	good := ScoreDraft(structured)
	bad := ScoreDraft("hi")

	assert.Greater(t, good.Score, bad.Score)
	assert.NotEmpty(t, good.Reasons)
	assert.Contains(t, bad.Reasons, "Too short: might not deliver enough value.")
}

func TestScoreDraft_Bounds(t *testing.T) {
	assert.GreaterOrEqual(t, ScoreDraft("").Score, 0)
	assert.LessOrEqual(t, ScoreDraft(strings.Repeat("a?\n", 600)).Score, 100)
}

func TestScoreDraft_QuestionDetected(t *testing.T) {
	s := ScoreDraft("A statement. What do you think?")
	assert.Contains(t, s.Reasons, "Contains a question to invite comments.")
}
