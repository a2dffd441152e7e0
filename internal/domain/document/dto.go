package document

// ========== EMPLOYEE DOCUMENTS ==========

// EmployeeDocumentsResponse is the employee documents page bundle
type EmployeeDocumentsResponse struct {
	EmployeeID        string              `json:"employee_id"`
	EmployeeName      string              `json:"employee_name"`
	EmployeeCode      string              `json:"employee_code"`
	Documents         []DocumentItem      `json:"documents"`
	Summary           Summary             `json:"summary"`
	Qualifications    []QualificationItem `json:"qualifications"`
	Certificates      []CertificateItem   `json:"certificates"`
	TotalCertificates int                 `json:"total_certificates"`
}

// ========== TRAINING DOCUMENTS (mobile) ==========

// FlutterTrainingDocumentsResponse is the document list of one training for the mobile client
type FlutterTrainingDocumentsResponse struct {
	TrainingID          string            `json:"training_id"`
	TrainingTitle       string            `json:"training_title"`
	EmployeeID          string            `json:"employee_id"`
	HasCertificate      bool              `json:"has_certificate"`
	CertificateURL      string            `json:"certificate_url,omitempty"`
	CertificatePdfURL   string            `json:"certificate_pdf_url,omitempty"`
	CertificateFileName string            `json:"certificate_file_name,omitempty"`
	Documents           []DocumentItem    `json:"documents"`
	Summary             Summary           `json:"summary"`
	Certificates        []CertificateItem `json:"certificates"`
	TotalCertificates   int               `json:"total_certificates"`
}

// DocumentItem is a document from either source
type DocumentItem struct {
	ID         string `json:"id,omitempty"` // empty for storage files
	Name       string `json:"name"`
	Path       string `json:"path"`
	URL        string `json:"url,omitempty"`
	Kind       Kind   `json:"kind"`
	Source     Source `json:"source"`
	Size       int64  `json:"size,omitempty"`
	UploadedAt string `json:"uploaded_at,omitempty"` // RFC3339
}

type QualificationItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	IssuingBody string  `json:"issuing_body,omitempty"`
	ExpiresAt   *string `json:"expires_at,omitempty"`
}

type CertificateItem struct {
	ID         string `json:"id"`
	TrainingID string `json:"training_id"`
	IssueDate  string `json:"issue_date"`
	URL        string `json:"url,omitempty"`
	PdfURL     string `json:"pdf_url,omitempty"`
	Kind       Kind   `json:"kind"`
}
