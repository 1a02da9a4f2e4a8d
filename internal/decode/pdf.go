package decode

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/ledongthuc/pdf"

	"github.com/EdukronCodes/mcp-server-box/internal/common"
)

// Decoder is the document decoding boundary: file in, plain text out.
// A failure here is fatal for the single document being decoded.
type Decoder interface {
	Decode(ctx context.Context, path string) (string, error)
}

// PDFDecoder extracts the flattened text stream of a PDF. Layout, tables
// and visual structure are not reconstructed.
type PDFDecoder struct {
	logger *slog.Logger
}

func NewPDFDecoder(logger *slog.Logger) *PDFDecoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFDecoder{logger: logger}
}

func (d *PDFDecoder) Decode(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		d.logger.Error("decode.open.failed", "path", path, "err", err)
		return "", common.NewAppError("DECODE_ERROR", "open pdf "+path, common.ErrDecode)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			d.logger.Warn("decode.close.failed", "path", path, "err", cerr)
		}
	}()

	return readPlainText(r, path)
}

// DecodeBytes decodes an in-memory PDF, for callers that already hold the
// document body (uploads, object storage).
func (d *PDFDecoder) DecodeBytes(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		d.logger.Error("decode.read.failed", "name", name, "err", err)
		return "", common.NewAppError("DECODE_ERROR", "read pdf "+name, common.ErrDecode)
	}
	return readPlainText(r, name)
}

func readPlainText(r *pdf.Reader, name string) (string, error) {
	b, err := r.GetPlainText()
	if err != nil {
		return "", common.NewAppError("DECODE_ERROR", "extract text from "+name, common.ErrDecode)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(b); err != nil {
		return "", common.NewAppError("DECODE_ERROR", "read text from "+name, common.ErrDecode)
	}
	return buf.String(), nil
}
