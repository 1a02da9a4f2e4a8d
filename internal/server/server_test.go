package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdukronCodes/mcp-server-box/internal/invoices"
)

type stubDecoder struct {
	texts map[string]string
}

func (d *stubDecoder) Decode(ctx context.Context, path string) (string, error) {
	return d.texts[filepath.Base(path)], nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	decoder := &stubDecoder{texts: map[string]string{
		"acme.pdf": "Acme Corporation\nInvoice Number: INV-100\nInvoice Date: 01/15/2024\nTotal: $108.00\nTax: $8.00",
		"beta.pdf": "Beta Industries Ltd\nInvoice Number: INV-200\nTotal: $50.00",
	}}
	for name := range decoder.texts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}

	svc, err := invoices.NewService(dir, decoder, 16, nil)
	require.NoError(t, err)
	return New(svc, nil)
}

func doRequest(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestGetAllInvoices(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/invoices")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalProcessed int `json:"total_processed"`
		Invoices       []struct {
			FileName      string `json:"file_name"`
			InvoiceNumber string `json:"invoice_number"`
		} `json:"invoices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalProcessed)
	require.Len(t, body.Invoices, 2)
	assert.Equal(t, "INV-100", body.Invoices[0].InvoiceNumber)
}

func TestGetInvoiceSummary(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/invoices/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalInvoices int     `json:"total_invoices"`
		TotalAmount   float64 `json:"total_amount"`
		TotalTax      float64 `json:"total_tax"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.TotalInvoices)
	assert.InDelta(t, 158.0, body.TotalAmount, 1e-9)
	assert.InDelta(t, 8.0, body.TotalTax, 1e-9)
}

func TestGetInvoiceDetails(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/invoices/acme.pdf")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		FileName   string  `json:"file_name"`
		VendorName string  `json:"vendor_name"`
		Total      float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "acme.pdf", body.FileName)
	assert.Equal(t, "Acme Corporation", body.VendorName)
	assert.InDelta(t, 108.0, body.Total, 1e-9)
}

func TestGetInvoiceDetailsNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/invoices/missing.pdf")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchInvoices(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/invoices/search?query=inv-200")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Matches int `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Matches)
}

func TestSearchInvoicesMissingQuery(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/invoices/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAvailable(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/invoices/list/available")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int      `json:"count"`
		Files []string `json:"files"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, []string{"acme.pdf", "beta.pdf"}, body.Files)
}

func TestExportInvoices(t *testing.T) {
	srv := newTestServer(t)

	t.Run("json", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/invoices/export?output_format=json")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("csv", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/invoices/export?output_format=csv")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Format string `json:"format"`
			Count  int    `json:"count"`
			Data   string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "csv", body.Format)
		assert.Equal(t, 2, body.Count)
		assert.Contains(t, body.Data, "file_name")
	})

	t.Run("xlsx", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/invoices/export?output_format=xlsx")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "invoices.xlsx")
	})

	t.Run("csv with nothing to export", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		svc, err := invoices.NewService(t.TempDir(), &stubDecoder{}, 16, nil)
		require.NoError(t, err)
		empty := New(svc, nil)

		rec := doRequest(t, empty, http.MethodPost, "/api/invoices/export?output_format=csv")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "No invoices to export", body["error"])
	})

	t.Run("unsupported", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/invoices/export?output_format=yaml")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodOptions, "/api/invoices")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
