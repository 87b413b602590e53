// Package extract converts uploaded file bytes into plain text.
package extract

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/m-mizutani/goerr/v2"
)

// ErrUnsupportedFormat is returned for file types the extractor does not
// handle. It is an expected outcome, mapped to a guidance reply, not a
// fault.
var ErrUnsupportedFormat = goerr.New("unsupported file format")

// Extract converts file bytes into plain text based on the declared file
// name. PDF pages are concatenated in order with a single newline between
// consecutive pages. The caller owns any staging of the bytes.
func Extract(data []byte, name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return fromPDF(data)
	case ".txt", ".md":
		if !utf8.Valid(data) {
			return "", goerr.Wrap(ErrUnsupportedFormat, "file is not valid UTF-8 text", goerr.V("name", name))
		}
		return string(data), nil
	default:
		return "", goerr.Wrap(ErrUnsupportedFormat, "unrecognized file extension", goerr.V("name", name))
	}
}

func fromPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = goerr.New("failed to parse pdf", goerr.V("recover", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to open pdf")
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", goerr.Wrap(err, "failed to extract page text", goerr.V("page", i))
		}
		pages = append(pages, pageText)
	}

	return joinPages(pages), nil
}

func joinPages(pages []string) string {
	return strings.Join(pages, "\n")
}
