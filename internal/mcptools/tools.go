package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/EdukronCodes/mcp-server-box/internal/invoices"
)

// MCPServer exposes the invoice service as MCP tools.
type MCPServer struct {
	svc    *invoices.Service
	logger *slog.Logger
}

// Run registers the invoice tools and serves MCP on Stdio.
func Run(ctx context.Context, svc *invoices.Service, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	s := server.NewMCPServer(
		"invoice-processor",
		"1.0.0",
		server.WithLogging(),
	)

	ms := &MCPServer{svc: svc, logger: logger}

	s.AddTool(
		mcp.NewTool(
			"process_single_invoice",
			mcp.WithDescription("Process a single invoice PDF and extract key fields (number, dates, amounts, vendor)."),
			mcp.WithString("file_name", mcp.Required(), mcp.Description("Name of the PDF file in the invoice directory")),
		),
		ms.handleProcessSingleInvoice,
	)

	s.AddTool(
		mcp.NewTool(
			"process_all_invoices",
			mcp.WithDescription("Process all invoices in the invoice directory and return records plus summary statistics."),
		),
		ms.handleProcessAllInvoices,
	)

	s.AddTool(
		mcp.NewTool(
			"list_invoices",
			mcp.WithDescription("List all available invoice PDF files."),
		),
		ms.handleListInvoices,
	)

	s.AddTool(
		mcp.NewTool(
			"get_invoice_summary",
			mcp.WithDescription("Get a summary of all invoices with key statistics."),
		),
		ms.handleInvoiceSummary,
	)

	s.AddTool(
		mcp.NewTool(
			"search_invoices",
			mcp.WithDescription("Search invoices by invoice number, date, file name or vendor."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search term")),
		),
		ms.handleSearchInvoices,
	)

	s.AddTool(
		mcp.NewTool(
			"get_invoice_details",
			mcp.WithDescription("Get the complete extracted record for a specific invoice."),
			mcp.WithString("file_name", mcp.Required(), mcp.Description("Name of the invoice PDF file")),
		),
		ms.handleInvoiceDetails,
	)

	s.AddTool(
		mcp.NewTool(
			"export_invoices",
			mcp.WithDescription("Export all invoices as JSON, optionally writing to a file."),
			mcp.WithString("output_file", mcp.Description("Optional path to save the JSON export")),
		),
		ms.handleExportInvoices,
	)

	logger.Info("mcp.serve", "transport", "stdio")
	return server.ServeStdio(s)
}

func (ms *MCPServer) handleProcessSingleInvoice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fileName, ok := args["file_name"].(string)
	if !ok || fileName == "" {
		return mcp.NewToolResultError("file_name argument required"), nil
	}

	inv, err := ms.svc.ProcessInvoice(ctx, fileName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("process invoice: %v", err)), nil
	}
	return toolJSON(inv)
}

func (ms *MCPServer) handleProcessAllInvoices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ms.svc.ProcessAll(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("process invoices: %v", err)), nil
	}
	return toolJSON(result)
}

func (ms *MCPServer) handleListInvoices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	listing, err := ms.svc.ListInvoices()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list invoices: %v", err)), nil
	}
	return toolJSON(listing)
}

func (ms *MCPServer) handleInvoiceSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := ms.svc.Summary(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invoice summary: %v", err)), nil
	}
	return toolJSON(report)
}

func (ms *MCPServer) handleSearchInvoices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	query, ok := args["query"].(string)
	if !ok {
		return mcp.NewToolResultError("query argument required"), nil
	}

	result, err := ms.svc.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search invoices: %v", err)), nil
	}
	return toolJSON(result)
}

func (ms *MCPServer) handleInvoiceDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fileName, ok := args["file_name"].(string)
	if !ok || fileName == "" {
		return mcp.NewToolResultError("file_name argument required"), nil
	}

	inv, err := ms.svc.ProcessInvoice(ctx, fileName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invoice details: %v", err)), nil
	}
	return toolJSON(inv)
}

func (ms *MCPServer) handleExportInvoices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ms.svc.ProcessAll(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export invoices: %v", err)), nil
	}

	// Every record crossing the tool boundary must match the published schema.
	for _, inv := range result.Invoices {
		b, err := json.Marshal(inv)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("marshal %s: %v", inv.FileName, err)), nil
		}
		if err := invoices.ValidateInvoiceJSON(b); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid record %s: %v", inv.FileName, err)), nil
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal export: %v", err)), nil
	}

	args := request.GetArguments()
	if outputFile, ok := args["output_file"].(string); ok && outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0o644); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("write %s: %v", outputFile, err)), nil
		}
		ms.logger.Info("mcp.export.saved", "output_file", outputFile, "count", result.TotalProcessed)
		return toolJSON(map[string]any{
			"status":      "saved",
			"output_file": outputFile,
			"count":       result.TotalProcessed,
		})
	}

	return mcp.NewToolResultText(string(data)), nil
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
