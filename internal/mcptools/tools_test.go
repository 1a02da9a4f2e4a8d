package mcptools

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
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

func newTestMCPServer(t *testing.T) *MCPServer {
	t.Helper()

	dir := t.TempDir()
	decoder := &stubDecoder{texts: map[string]string{
		"acme.pdf": "Acme Corporation\nInvoice Number: INV-100\nInvoice Date: 01/15/2024\nSubtotal: $100.00\nTax: $8.00\nTotal: $108.00",
		"beta.pdf": "Beta Industries Ltd\nInvoice Number: INV-200\nTotal: $50.00",
	}}
	for name := range decoder.texts {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}

	svc, err := invoices.NewService(dir, decoder, 16, nil)
	require.NoError(t, err)
	return &MCPServer{svc: svc, logger: slog.Default()}
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestHandleProcessSingleInvoice(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleProcessSingleInvoice(context.Background(), toolRequest(map[string]any{"file_name": "acme.pdf"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var inv struct {
		FileName      string  `json:"file_name"`
		InvoiceNumber string  `json:"invoice_number"`
		TotalAmount   float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &inv))
	assert.Equal(t, "acme.pdf", inv.FileName)
	assert.Equal(t, "INV-100", inv.InvoiceNumber)
	assert.InDelta(t, 108.0, inv.TotalAmount, 1e-9)
}

func TestHandleProcessSingleInvoiceMissingArg(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleProcessSingleInvoice(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleProcessSingleInvoiceNotFound(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleProcessSingleInvoice(context.Background(), toolRequest(map[string]any{"file_name": "missing.pdf"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleProcessAllInvoices(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleProcessAllInvoices(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var body struct {
		TotalProcessed int `json:"total_processed"`
		Invoices       []struct {
			FileName string `json:"file_name"`
		} `json:"invoices"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, 2, body.TotalProcessed)
	require.Len(t, body.Invoices, 2)
}

func TestHandleListInvoices(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleListInvoices(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var listing struct {
		Count int      `json:"count"`
		Files []string `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &listing))
	assert.Equal(t, 2, listing.Count)
	assert.Equal(t, []string{"acme.pdf", "beta.pdf"}, listing.Files)
}

func TestHandleInvoiceSummary(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleInvoiceSummary(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var report struct {
		TotalInvoices int     `json:"total_invoices"`
		TotalAmount   float64 `json:"total_amount"`
		TotalTax      float64 `json:"total_tax"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, 2, report.TotalInvoices)
	assert.InDelta(t, 158.0, report.TotalAmount, 1e-9)
	assert.InDelta(t, 8.0, report.TotalTax, 1e-9)
}

func TestHandleSearchInvoices(t *testing.T) {
	ms := newTestMCPServer(t)

	t.Run("match", func(t *testing.T) {
		res, err := ms.handleSearchInvoices(context.Background(), toolRequest(map[string]any{"query": "inv-200"}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		var body struct {
			Matches  int `json:"matches"`
			Invoices []struct {
				FileName string `json:"file_name"`
			} `json:"invoices"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
		assert.Equal(t, 1, body.Matches)
		assert.Equal(t, "beta.pdf", body.Invoices[0].FileName)
	})

	t.Run("missing query argument", func(t *testing.T) {
		res, err := ms.handleSearchInvoices(context.Background(), toolRequest(nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("blank query rejected", func(t *testing.T) {
		res, err := ms.handleSearchInvoices(context.Background(), toolRequest(map[string]any{"query": "  "}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestHandleInvoiceDetails(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleInvoiceDetails(context.Background(), toolRequest(map[string]any{"file_name": "beta.pdf"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var inv struct {
		FileName        string  `json:"file_name"`
		VendorName      string  `json:"vendor_name"`
		ConfidenceScore float64 `json:"confidence_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &inv))
	assert.Equal(t, "beta.pdf", inv.FileName)
	assert.Equal(t, "Beta Industries Ltd", inv.VendorName)
	assert.Greater(t, inv.ConfidenceScore, 0.0)
}

func TestHandleExportInvoices(t *testing.T) {
	ms := newTestMCPServer(t)

	res, err := ms.handleExportInvoices(context.Background(), toolRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var body struct {
		TotalProcessed int `json:"total_processed"`
		Invoices       []json.RawMessage `json:"invoices"`
		Summary        struct {
			TotalAmount float64 `json:"total_amount"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, 2, body.TotalProcessed)
	require.Len(t, body.Invoices, 2)

	// every exported record passes the published schema
	for _, raw := range body.Invoices {
		assert.NoError(t, invoices.ValidateInvoiceJSON(raw))
	}
}

func TestHandleExportInvoicesToFile(t *testing.T) {
	ms := newTestMCPServer(t)
	outputFile := filepath.Join(t.TempDir(), "export.json")

	res, err := ms.handleExportInvoices(context.Background(), toolRequest(map[string]any{"output_file": outputFile}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var status struct {
		Status     string `json:"status"`
		OutputFile string `json:"output_file"`
		Count      int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &status))
	assert.Equal(t, "saved", status.Status)
	assert.Equal(t, outputFile, status.OutputFile)
	assert.Equal(t, 2, status.Count)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var exported struct {
		Invoices []json.RawMessage `json:"invoices"`
	}
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Len(t, exported.Invoices, 2)
}
