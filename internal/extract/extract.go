// Package extract converts resume files into plain text for scoring.
// PDF extraction uses github.com/ledongthuc/pdf; DOCX files are read
// directly from their zip container.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"resumescan/internal/errors"
)

// SupportedExtensions lists the file extensions FromFile accepts.
var SupportedExtensions = []string{".txt", ".md", ".pdf", ".docx"}

// FromFile reads the file and extracts cleaned plain text based on its
// extension. Plain-text formats pass through unchanged apart from cleaning.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable, "failed to read file", err).
			WithContext("path", path)
	}
	return FromBytes(data, filepath.Base(path))
}

// FromBytes extracts cleaned plain text from an in-memory payload. The
// file name determines the format.
func FromBytes(data []byte, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	var text string
	var err error
	switch ext {
	case ".txt", ".md":
		text = string(data)
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFile, "unsupported file type", nil).
			WithContext("extension", ext).
			WithContext("supported", SupportedExtensions)
	}
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed, "failed to extract text", err).
			WithContext("file", fileName)
	}

	return CleanText(text), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
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
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.NewIOError(errors.ErrCodeInvalidFormat, "word/document.xml not found in docx container", nil)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return docxPlainText(raw), nil
}

// docxPlainText walks the document XML and keeps character data, turning
// paragraph and line-break elements into newlines.
func docxPlainText(raw []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return string(raw)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}

// CleanText collapses runs of whitespace within lines and trims the result.
// Line breaks survive so line-based formatting checks still work downstream.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			blankRun++
			// Collapse runs of blank lines to a single separator.
			if blankRun == 1 && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			continue
		}
		blankRun = 0
		cleaned = append(cleaned, strings.Join(fields, " "))
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// resumeIndicators are the vocabulary ValidateContent expects at least two
// of before accepting extracted text as a resume.
var resumeIndicators = []string{
	"experience", "education", "skills", "work", "employment",
	"university", "college", "degree", "email", "phone", "address",
}

// ValidateContent checks that extracted text looks like a resume: at least
// 50 characters and at least two resume indicator words.
func ValidateContent(text string) error {
	if len(strings.TrimSpace(text)) < 50 {
		return errors.NewValidationError(errors.ErrCodeContentValidation,
			"extracted text is too short to be a resume", nil).
			WithContext("length", len(strings.TrimSpace(text)))
	}

	textLower := strings.ToLower(text)
	found := 0
	for _, indicator := range resumeIndicators {
		if strings.Contains(textLower, indicator) {
			found++
		}
	}
	if found < 2 {
		return errors.NewValidationError(errors.ErrCodeContentValidation,
			"extracted text does not look like a resume", nil).
			WithContext("indicators_found", found)
	}

	return nil
}
