package server

import (
	"cmp"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

// POST /api/generate-image
// Always answers 200 with the final outcome of the fallback chain; individual
// provider failures never surface to the caller.
func (s *Server) handlePostGenerateImage(c echo.Context) error {
	var req schema.ImageGenerationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	if req.CharacterInfo == nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("인물 정보가 제공되지 않았습니다."))
	}

	req.Style = cmp.Or(req.Style, "caricature")
	req.Mood = cmp.Or(req.Mood, "friendly")

	log.Info("image generation request", "character", req.CharacterInfo.Name, "style", req.Style, "mood", req.Mood)

	// Best effort: an LLM-phrased prompt idea is logged for operators, but the
	// chain itself always works from the deterministic builder.
	if s.Characters != nil {
		idea := s.Characters.ImagePromptIdea(c.Request().Context(), req.CharacterInfo)
		log.Debug("image prompt idea", "prompt", utils.LimitStr(idea, 200))
	}

	result := s.Images.Generate(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, result)
}

// GET /api/generate-image
func (s *Server) handleGetGenerateImage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"availableStyles": []string{"caricature", "cartoon", "realistic"},
		"availableMoods":  []string{"happy", "serious", "friendly", "professional"},
		"description":     "인물 정보를 바탕으로 캐리커쳐 이미지를 생성합니다.",
		"requirements": map[string]any{
			"replicateApiToken":    s.Config.ReplicateConfigured,
			"localStableDiffusion": s.Config.LocalSDURL,
		},
	})
}
