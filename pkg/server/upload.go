package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"carichat/pkg/pdf"
	"carichat/pkg/schema"
	"carichat/pkg/utils"
)

// maxUploadSize caps PDF uploads at 10 MiB; a file of exactly this size is
// still accepted.
const maxUploadSize = 10 << 20

// rawTextLimit bounds how much extracted text the analysis response echoes
// back. Intentionally a preview, not a transcript.
const rawTextLimit = 1000

// POST /api/upload-pdf
func (s *Server) handlePostUploadPDF(c echo.Context) error {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("PDF 파일이 제공되지 않았습니다."))
	}

	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("PDF 파일만 업로드 가능합니다."))
	}

	if fileHeader.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("파일 크기는 10MB 이하여야 합니다."))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("업로드된 파일을 열 수 없습니다."))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("업로드된 파일을 읽을 수 없습니다."))
	}

	log.Info("processing pdf upload", "filename", fileHeader.Filename, "bytes", fileHeader.Size)

	text, err := pdf.ExtractTextFromBytes(data)
	if err != nil {
		log.Error("pdf extraction failed", "filename", fileHeader.Filename, "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("PDF 파일을 읽을 수 없습니다."))
	}

	if strings.TrimSpace(text) == "" {
		return c.JSON(http.StatusBadRequest, utils.ErrJSON("PDF에서 텍스트를 추출할 수 없습니다."))
	}

	profile, err := s.Characters.ExtractProfile(c.Request().Context(), text)
	if err != nil {
		log.Error("profile extraction failed", "filename", fileHeader.Filename, "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("인물 정보를 추출할 수 없습니다."))
	}

	return c.JSON(http.StatusOK, schema.PDFAnalysisResult{
		Success:       true,
		CharacterInfo: profile,
		RawText:       utils.TruncateRunes(text, rawTextLimit),
	})
}

// GET /api/upload-pdf
func (s *Server) handleGetUploadPDF(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"maxFileSize":  "10MB",
		"allowedTypes": []string{"application/pdf"},
		"description":  "PDF 파일에서 인물 정보를 추출합니다.",
	})
}
