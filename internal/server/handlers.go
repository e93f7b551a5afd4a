package server

import (
	_ "embed"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eykd/mdvet-go/internal/checker"
	"github.com/eykd/mdvet-go/internal/textenc"
)

//go:embed index.html
var indexPage []byte

type validateRequest struct {
	Content  string `json:"content"`
	FileName string `json:"file_name"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleValidate validates JSON-posted content and responds with the report.
func (s *Server) handleValidate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.clientError(c, "invalid JSON body")
		return
	}
	if req.Content == "" {
		s.clientError(c, "no content provided")
		return
	}

	s.respondWithReport(c, req.FileName, []byte(req.Content))
}

// handleValidateFile validates an uploaded file and responds with the
// report. Uploads are capped at the configured size.
func (s *Server) handleValidateFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		s.clientError(c, "no file provided")
		return
	}
	if header.Size > s.config.MaxUploadBytes {
		s.clientError(c, "file too large")
		return
	}

	f, err := header.Open()
	if err != nil {
		s.logger.Errorw("opening upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		recordValidation("server_error")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, s.config.MaxUploadBytes+1))
	if err != nil {
		s.logger.Errorw("reading upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		recordValidation("server_error")
		return
	}
	if int64(len(raw)) > s.config.MaxUploadBytes {
		s.clientError(c, "file too large")
		return
	}

	s.respondWithReport(c, header.Filename, raw)
}

func (s *Server) respondWithReport(c *gin.Context, fileName string, raw []byte) {
	text, err := textenc.Normalize(raw)
	if err != nil {
		s.clientError(c, "input is not text")
		return
	}

	result := s.validate.Validate(text)
	recordValidation("ok")
	recordIssues(result.Summary)

	c.JSON(http.StatusOK, checker.BuildReport(fileName, result))
}

func (s *Server) clientError(c *gin.Context, msg string) {
	recordValidation("client_error")
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
