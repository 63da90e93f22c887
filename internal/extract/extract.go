package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"caroai-backend/internal/shared/storage/object"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDOC  = "application/msword"
)

// ErrExtraction wraps any failure to pull text out of an uploaded resume:
// corrupt files, password-protected PDFs, unsupported formats. Callers show
// the user a generic failure message and let them re-upload.
var ErrExtraction = errors.New("extraction failed")

// Text extracts plain text from an in-memory payload. It either returns
// non-empty text or an error wrapping ErrExtraction, never both.
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
func Text(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch normalizeMimeType(mimeType, fileName, data) {
	case mimePDF:
		text, err = extractPDF(data)
	case mimeDOCX, mimeDOC:
		text, err = extractDOCX(data)
	default:
		err = fmt.Errorf("unsupported mime type: %s", mimeType)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: document contains no extractable text", ErrExtraction)
	}
	return text, nil
}

// TextAndPersist extracts text and saves a derived .extracted.txt copy
// alongside the original object.
func TextAndPersist(ctx context.Context, store object.ObjectStore, data []byte, mimeType, fileName, storageKey string) (string, error) {
	text, err := Text(ctx, data, mimeType, fileName)
	if err != nil {
		return "", err
	}

	extractedKey := storageKey + ".extracted.txt"
	if _, err := store.SaveWithKey(ctx, extractedKey, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		return "", fmt.Errorf("persist extracted text key=%s: %w", extractedKey, err)
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens word/document.xml markup into paragraph-separated text.
func stripDocxXML(raw string) string {
	var buf strings.Builder
	inTag := false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '<':
			inTag = true
			if strings.HasPrefix(raw[i:], "</w:p>") || strings.HasPrefix(raw[i:], "<w:br") {
				if buf.Len() > 0 {
					buf.WriteByte('\n')
				}
			}
		case '>':
			inTag = false
		default:
			if !inTag {
				buf.WriteByte(raw[i])
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean != "application/zip" {
		return clean
	}

	if mapped := mapOOXMLFromZip(data); mapped != "" {
		return mapped
	}

	if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
		return mimeDOCX
	}
	return clean
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			return mimeDOCX
		}
	}
	return ""
}
