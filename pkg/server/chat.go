package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/ksuid"

	"carichat/pkg/character"
	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

type chatRequest struct {
	CharacterInfo *schema.CharacterProfile `json:"characterInfo"`
	Message       string                   `json:"message"`
	ChatHistory   []schema.ChatMessage     `json:"chatHistory,omitempty"`
	OriginalText  string                   `json:"originalText,omitempty"`
}

type chatResponse struct {
	Success          bool               `json:"success"`
	UserMessage      schema.ChatMessage `json:"userMessage"`
	AssistantMessage schema.ChatMessage `json:"assistantMessage"`
	Response         string             `json:"response"`
}

// POST /api/chat
func (s *Server) handlePostChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("invalid json"))
	}

	if req.CharacterInfo == nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("인물 정보가 제공되지 않았습니다."))
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("메시지가 제공되지 않았습니다."))
	}

	log.Info("chat request",
		"character", req.CharacterInfo.Name,
		"message", utils.LimitStr(req.Message, 100),
		"history", len(req.ChatHistory),
	)

	history := character.FormatHistory(req.ChatHistory, req.CharacterInfo.Name)
	reply := s.Characters.Reply(c.Request().Context(), req.CharacterInfo, req.Message, req.OriginalText, history)

	now := time.Now()
	userMessage := schema.ChatMessage{
		ID:          ksuid.New().String(),
		Role:        "user",
		Content:     req.Message,
		Timestamp:   now,
		CharacterID: req.CharacterInfo.ID,
	}
	assistantMessage := schema.ChatMessage{
		ID:          ksuid.New().String(),
		Role:        "assistant",
		Content:     reply,
		Timestamp:   now,
		CharacterID: req.CharacterInfo.ID,
	}

	return c.JSON(http.StatusOK, chatResponse{
		Success:          true,
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		Response:         reply,
	})
}

// GET /api/chat?characterId=
// History always comes back empty: nothing is stored server-side and the
// caller round-trips the full transcript on every turn.
func (s *Server) handleGetChat(c echo.Context) error {
	characterID := c.QueryParam("characterId")
	if characterID == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("인물 ID가 제공되지 않았습니다."))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"chatHistory": []schema.ChatMessage{},
		"characterId": characterID,
	})
}
