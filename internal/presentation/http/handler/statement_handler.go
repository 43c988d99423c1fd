package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/application/service"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/response"
)

// StatementHandler handles statement export and sharing HTTP requests
type StatementHandler struct {
	statementService *service.StatementService
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(statementService *service.StatementService) *StatementHandler {
	return &StatementHandler{statementService: statementService}
}

// ExportCSV streams the ledger's statement as a CSV download
func (h *StatementHandler) ExportCSV(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	file, err := h.statementService.ExportCSV(
		c.Request.Context(),
		id,
		parseDate(c.Query("from")),
		parseDate(c.Query("to")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(200, file.ContentType, file.Data)
}

// ExportPDF streams the ledger's statement as a PDF download
func (h *StatementHandler) ExportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	file, err := h.statementService.ExportPDF(
		c.Request.Context(),
		id,
		parseDate(c.Query("from")),
		parseDate(c.Query("to")),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(200, file.ContentType, file.Data)
}

// ShareLink returns a WhatsApp deep link with the ledger's balance summary
func (h *StatementHandler) ShareLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ledger ID")
		return
	}

	link, err := h.statementService.ShareLink(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share link generated", gin.H{
		"link": link,
	})
}
