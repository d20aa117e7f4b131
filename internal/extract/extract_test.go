package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestFromBytesPlainText(t *testing.T) {
	text, err := FromBytes([]byte("Experience\n\n\nWorked   hard"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Experience\n\nWorked hard", text)
}

func TestFromBytesUnsupportedExtension(t *testing.T) {
	_, err := FromBytes([]byte("data"), "resume.png")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestFromBytesDocx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Experience at Acme</w:t></w:r></w:p>
    <w:p><w:r><w:t>Education: State University</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := FromBytes(buildDocx(t, doc), "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Experience at Acme")
	assert.Contains(t, text, "Education: State University")
}

func TestFromBytesDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = FromBytes(buf.Bytes(), "resume.docx")
	assert.ErrorContains(t, err, "failed to extract text")
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses spaces", "a   b\tc", "a b c"},
		{"collapses blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"trims", "  a  \n", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{
			name:    "too short",
			text:    "experience education",
			wantErr: "too short",
		},
		{
			name:    "no indicators",
			text:    "lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor",
			wantErr: "does not look like a resume",
		},
		{
			name: "valid resume text",
			text: "Professional experience in software development. Education: B.S. from State University.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.text)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
