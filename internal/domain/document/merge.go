package document

import (
	"net/url"
	"path"
	"strings"
)

// MergeOptions controls how the two document sources are combined.
type MergeOptions struct {
	// DedupeAcrossSources drops storage files that match a structured record.
	// Off by default: the same physical file may be counted once per source.
	DedupeAcrossSources bool
}

// Summary holds the unified counts of both sources
type Summary struct {
	Total        int  `json:"total"`
	PdfCount     int  `json:"pdf_count"`
	ImageCount   int  `json:"image_count"`
	OtherCount   int  `json:"other_count"`
	HasDocuments bool `json:"has_documents"`
}

func (s *Summary) add(kind Kind) {
	s.Total++
	switch kind {
	case KindPdf:
		s.PdfCount++
	case KindImage:
		s.ImageCount++
	default:
		s.OtherCount++
	}
}

// Merge counts structured records and storage files into one Summary.
func Merge(docs []StoredDocument, files []StoredFile, opts MergeOptions) Summary {
	var s Summary
	for _, d := range docs {
		s.add(ClassifyDocument(d))
	}
	for _, f := range FilterFiles(docs, files, opts) {
		s.add(ClassifyFile(f))
	}
	s.HasDocuments = s.Total > 0
	return s
}

// FilterFiles returns the storage files that Merge counts.
// A record with a FilePath matches only the file stored at that path. The base
// name is compared only for records that carry no FilePath.
func FilterFiles(docs []StoredDocument, files []StoredFile, opts MergeOptions) []StoredFile {
	if !opts.DedupeAcrossSources || len(docs) == 0 {
		return files
	}

	paths := make([]string, 0, len(docs))
	names := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		if p := normalizePath(d.FilePath); p != "" {
			paths = append(paths, p)
			continue
		}
		if k := baseKey(d.FileName); k != "" {
			names[k] = struct{}{}
		}
	}

	kept := make([]StoredFile, 0, len(files))
	for _, f := range files {
		if matchesPath(paths, normalizePath(f.Key)) {
			continue
		}
		name := f.Key
		if name == "" {
			name = f.Name
		}
		if _, dup := names[baseKey(name)]; dup {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// matchesPath also accepts record paths stored as full URLs ending in the key.
func matchesPath(paths []string, key string) bool {
	if key == "" {
		return false
	}
	for _, p := range paths {
		if p == key || strings.HasSuffix(p, "/"+key) {
			return true
		}
	}
	return false
}

func normalizePath(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if u, err := url.Parse(p); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	return strings.ToLower(strings.TrimPrefix(path.Clean("/"+p), "/"))
}

func baseKey(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" {
		return ""
	}
	return strings.ToLower(path.Base(p))
}
