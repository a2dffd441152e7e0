package document

import "time"

// StoredDocument is a document record kept in the structured store
type StoredDocument struct {
	ID         string
	EmployeeID string
	TrainingID *string
	FileName   string
	FilePath   string
	IsPdf      bool
	IsImage    bool
	UploadedAt time.Time
}

// StoredFile is an entry of a raw object storage listing
type StoredFile struct {
	Key         string
	Name        string
	ContentType string
	Size        int64
	UpdatedAt   time.Time
}

type Kind string

const (
	KindPdf   Kind = "pdf"
	KindImage Kind = "image"
	KindOther Kind = "other"
)

// Source tells which store a document item came from
type Source string

const (
	SourceRecord  Source = "record"
	SourceStorage Source = "storage"
)
