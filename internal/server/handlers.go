package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EdukronCodes/mcp-server-box/internal/common"
	"github.com/EdukronCodes/mcp-server-box/internal/export"
)

func (s *Server) handleAllInvoices(c *gin.Context) {
	result, err := s.svc.ProcessAll(c.Request.Context())
	if err != nil {
		s.fail(c, "fetch invoices", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleSummary(c *gin.Context) {
	report, err := s.svc.Summary(c.Request.Context())
	if err != nil {
		s.fail(c, "fetch summary", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("query")
	result, err := s.svc.Search(c.Request.Context(), query)
	if err != nil {
		s.fail(c, "search invoices", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleListAvailable(c *gin.Context) {
	listing, err := s.svc.ListInvoices()
	if err != nil {
		s.fail(c, "list invoices", err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (s *Server) handleInvoiceDetails(c *gin.Context) {
	fileName := c.Param("file_name")
	inv, err := s.svc.ProcessInvoice(c.Request.Context(), fileName)
	if err != nil {
		s.fail(c, "fetch invoice details", err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (s *Server) handleExport(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("output_format", "json"))

	result, err := s.svc.ProcessAll(c.Request.Context())
	if err != nil {
		s.fail(c, "export invoices", err)
		return
	}

	switch format {
	case "json":
		c.JSON(http.StatusOK, result)
	case "csv":
		if len(result.Invoices) == 0 {
			c.JSON(http.StatusOK, gin.H{"error": "No invoices to export"})
			return
		}
		data, err := export.RecordsCSV(result.Invoices)
		if err != nil {
			s.fail(c, "render csv", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"format": "csv",
			"data":   string(data),
			"count":  len(result.Invoices),
		})
	case "xlsx":
		data, err := export.RecordsXLSX(result.Invoices)
		if err != nil {
			s.fail(c, "render xlsx", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="invoices.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Unsupported format"})
	}
}

// fail maps application errors to HTTP status codes.
func (s *Server) fail(c *gin.Context, op string, err error) {
	s.logger.Error("http."+strings.ReplaceAll(op, " ", "_")+".failed", "err", err)
	switch {
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, common.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}
