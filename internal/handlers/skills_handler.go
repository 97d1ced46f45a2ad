package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-skill-ranker/internal/models"
	"alfredoptarigan/resume-skill-ranker/internal/services"
	"alfredoptarigan/resume-skill-ranker/internal/skills"
)

type SkillsHandler struct {
	matcher *skills.Matcher
	ranker  services.RankerService
}

func NewSkillsHandler(matcher *skills.Matcher, ranker services.RankerService) *SkillsHandler {
	return &SkillsHandler{
		matcher: matcher,
		ranker:  ranker,
	}
}

// HandleList handles GET /api/v1/skills
func (h *SkillsHandler) HandleList(c *fiber.Ctx) error {
	vocab := h.matcher.Vocabulary()

	return c.JSON(models.VocabularyResponse{
		Count:  vocab.Len(),
		Skills: vocab.Phrases(),
	})
}

// HandleExtract handles POST /api/v1/skills/extract
func (h *SkillsHandler) HandleExtract(c *fiber.Ctx) error {
	var req models.ExtractRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	return c.JSON(models.ExtractResponse{
		Skills: h.ranker.ExtractSkills(req.Text),
	})
}
