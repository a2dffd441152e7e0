package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyName(t *testing.T) {
	cases := []struct {
		input string
		want  Kind
	}{
		{"report.pdf", KindPdf},
		{"REPORT.PDF", KindPdf},
		{"photo.jpg", KindImage},
		{"photo.JPEG", KindImage},
		{"scan.Png", KindImage},
		{"notes.docx", KindOther},
		{"archive.pdf.zip", KindOther},
		{"README", KindOther},
		{"", KindOther},
		{"documents/emp-1/cert.pdf", KindPdf},
	}
	for _, c := range cases {
		if got := ClassifyName(c.input); got != c.want {
			t.Errorf("ClassifyName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestClassifyContentType(t *testing.T) {
	assert.Equal(t, KindPdf, ClassifyContentType("application/pdf"))
	assert.Equal(t, KindImage, ClassifyContentType("IMAGE/JPEG"))
	assert.Equal(t, KindImage, ClassifyContentType("image/png; charset=binary"))
	assert.Equal(t, KindOther, ClassifyContentType("image/gif"))
	assert.Equal(t, KindOther, ClassifyContentType(""))
}

func TestClassifyDocument(t *testing.T) {
	assert.Equal(t, KindPdf, ClassifyDocument(StoredDocument{FileName: "x.png", IsPdf: true}), "flag wins over name")
	assert.Equal(t, KindImage, ClassifyDocument(StoredDocument{FileName: "x", IsImage: true}))
	assert.Equal(t, KindPdf, ClassifyDocument(StoredDocument{FileName: "contract.PDF"}))
	assert.Equal(t, KindImage, ClassifyDocument(StoredDocument{FileName: "scan", FilePath: "documents/e/scan.jpg"}))
	assert.Equal(t, KindOther, ClassifyDocument(StoredDocument{FileName: "sheet.xlsx"}))
}

func TestClassifyFile(t *testing.T) {
	assert.Equal(t, KindImage, ClassifyFile(StoredFile{Name: "a.jpg"}))
	assert.Equal(t, KindPdf, ClassifyFile(StoredFile{Key: "trainings/t/b.pdf"}))
	assert.Equal(t, KindPdf, ClassifyFile(StoredFile{Name: "upload", ContentType: "application/pdf"}))
	assert.Equal(t, KindOther, ClassifyFile(StoredFile{Name: "upload", ContentType: "text/plain"}))
}
