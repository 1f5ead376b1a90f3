package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Vajbratya/automnator/internal/generator"
	"github.com/Vajbratya/automnator/internal/transfer"
)

const maxVariants = 5

type GenerateHandler struct{}

func NewGenerateHandler() *GenerateHandler {
	return &GenerateHandler{}
}

type generatedVariant struct {
	*generator.GeneratedPost
	Score *generator.Score `json:"score"`
}

func (h *GenerateHandler) GeneratePost(c *fiber.Ctx) error {
	var body transfer.GenerateRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(body.Topic) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "topic is required",
		})
	}

	count := body.VariantCount
	if count < 1 {
		count = 3
	}
	if count > maxVariants {
		count = maxVariants
	}

	variants := make([]*generatedVariant, 0, count)
	for i := 0; i < count; i++ {
		post := generator.GeneratePost(generator.GenerateInput{
			Topic:    body.Topic,
			Language: body.Language,
			Audience: body.Audience,
			Tone:     body.Tone,
		})

		if count > 1 {
			hook := fmt.Sprintf("%s (v%d)", post.Hook, i+1)
			post.FullText = strings.Replace(post.FullText, post.Hook, hook, 1)
			post.Hook = hook
		}

		variants = append(variants, &generatedVariant{
			GeneratedPost: post,
			Score:         generator.ScoreDraft(post.FullText),
		})
	}

	return c.JSON(fiber.Map{"variants": variants})
}

func (h *GenerateHandler) ScoreDraft(c *fiber.Ctx) error {
	var body transfer.ScoreRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(body.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	return c.JSON(fiber.Map{"score": generator.ScoreDraft(body.Text)})
}
