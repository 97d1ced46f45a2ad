package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-skill-ranker/internal/models"
	"alfredoptarigan/resume-skill-ranker/internal/services"
)

const (
	pageTitle = "AI-Powered Resume Parser"

	jobDescriptionField = "job_description"
	resumesField        = "resumes"
)

type RankHandler struct {
	ranker services.RankerService
}

func NewRankHandler(ranker services.RankerService) *RankHandler {
	return &RankHandler{
		ranker: ranker,
	}
}

// HandleIndex handles GET /
func (h *RankHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": pageTitle,
	})
}

// HandleRankPage handles POST /rank
func (h *RankHandler) HandleRankPage(c *fiber.Ctx) error {
	jobDescription, resp, err := h.rank(c)
	if err != nil {
		return err
	}

	return c.Render("index", fiber.Map{
		"Title":          pageTitle,
		"JobDescription": jobDescription,
		"Result":         resp,
	})
}

// HandleRank handles POST /api/v1/rank
func (h *RankHandler) HandleRank(c *fiber.Ctx) error {
	_, resp, err := h.rank(c)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *RankHandler) rank(c *fiber.Ctx) (string, *models.RankResponse, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusBadRequest, "failed to parse multipart form")
	}

	var jobDescription string
	if values := form.Value[jobDescriptionField]; len(values) > 0 {
		jobDescription = values[0]
	}

	result, err := h.ranker.Rank(c.UserContext(), jobDescription, form.File[resumesField])
	if err != nil {
		return "", nil, err
	}

	resp := models.NewRankResponse(result)
	return jobDescription, &resp, nil
}
