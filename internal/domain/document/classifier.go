package document

import (
	"path"
	"strings"
)

var extKinds = map[string]Kind{
	".pdf":  KindPdf,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
}

var mimeKinds = map[string]Kind{
	"application/pdf": KindPdf,
	"image/jpeg":      KindImage,
	"image/png":       KindImage,
}

// ClassifyName classifies by file extension, case-insensitive.
// Unknown or missing extensions are KindOther.
func ClassifyName(name string) Kind {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(name)))
	if kind, ok := extKinds[ext]; ok {
		return kind
	}
	return KindOther
}

// ClassifyContentType classifies by MIME type, ignoring parameters.
func ClassifyContentType(contentType string) Kind {
	mt := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if kind, ok := mimeKinds[mt]; ok {
		return kind
	}
	return KindOther
}

// ClassifyDocument trusts the stored type flags and falls back to the name.
func ClassifyDocument(d StoredDocument) Kind {
	switch {
	case d.IsPdf:
		return KindPdf
	case d.IsImage:
		return KindImage
	}
	if kind := ClassifyName(d.FileName); kind != KindOther {
		return kind
	}
	return ClassifyName(d.FilePath)
}

// ClassifyFile classifies by name suffix, then by content type.
func ClassifyFile(f StoredFile) Kind {
	name := f.Name
	if name == "" {
		name = f.Key
	}
	if kind := ClassifyName(name); kind != KindOther {
		return kind
	}
	return ClassifyContentType(f.ContentType)
}
