package document

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/qualification"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/training"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/storage"
	"golang.org/x/sync/errgroup"
)

// urlExpiry bounds presigned links handed to clients
const urlExpiry = 15 * time.Minute

type DocumentServiceImpl struct {
	documentRepo      document.DocumentRepository
	employeeRepo      employee.EmployeeRepository
	trainingRepo      training.TrainingRepository
	certificateRepo   training.CertificateRepository
	qualificationRepo qualification.QualificationRepository
	fileStorage       storage.FileStorage
	mergeOpts         document.MergeOptions
	log               *logger.Logger
}

func NewDocumentService(
	documentRepo document.DocumentRepository,
	employeeRepo employee.EmployeeRepository,
	trainingRepo training.TrainingRepository,
	certificateRepo training.CertificateRepository,
	qualificationRepo qualification.QualificationRepository,
	fileStorage storage.FileStorage,
	mergeOpts document.MergeOptions,
	log *logger.Logger,
) document.DocumentService {
	return &DocumentServiceImpl{
		documentRepo:      documentRepo,
		employeeRepo:      employeeRepo,
		trainingRepo:      trainingRepo,
		certificateRepo:   certificateRepo,
		qualificationRepo: qualificationRepo,
		fileStorage:       fileStorage,
		mergeOpts:         mergeOpts,
		log:               log.WithComponent("document"),
	}
}

// GetEmployeeDocuments implements document.DocumentService.
func (s *DocumentServiceImpl) GetEmployeeDocuments(ctx context.Context, employeeID string) (*document.EmployeeDocumentsResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	var (
		docs           []document.StoredDocument
		files          []document.StoredFile
		qualifications []qualification.Qualification
		certificates   []training.Certificate
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.documentRepo.ListByEmployee(gCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to get document records: %w", err)
		}
		docs = result
		return nil
	})

	g.Go(func() error {
		result, err := s.listFiles(gCtx, storage.EmployeeDocumentsPrefix(emp.ID))
		if err != nil {
			return err
		}
		files = result
		return nil
	})

	g.Go(func() error {
		result, err := s.qualificationRepo.ListByEmployee(gCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to get qualifications: %w", err)
		}
		qualifications = result
		return nil
	})

	g.Go(func() error {
		result, err := s.certificateRepo.ListByEmployee(gCtx, emp.ID)
		if err != nil {
			return fmt.Errorf("failed to get certificates: %w", err)
		}
		certificates = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items, err := s.documentItems(ctx, docs, files)
	if err != nil {
		return nil, err
	}

	resp := &document.EmployeeDocumentsResponse{
		EmployeeID:        emp.ID,
		EmployeeName:      emp.FullName,
		EmployeeCode:      emp.EmployeeCode,
		Documents:         items,
		Summary:           document.Merge(docs, files, s.mergeOpts),
		Qualifications:    make([]document.QualificationItem, 0, len(qualifications)),
		Certificates:      toCertificateItems(certificates),
		TotalCertificates: len(certificates),
	}

	for _, q := range qualifications {
		item := document.QualificationItem{ID: q.ID, Name: q.Name, IssuingBody: q.IssuingBody}
		if q.ExpiresAt != nil {
			expiresAt := q.ExpiresAt.Format("2006-01-02")
			item.ExpiresAt = &expiresAt
		}
		resp.Qualifications = append(resp.Qualifications, item)
	}

	return resp, nil
}

// GetTrainingDocuments implements document.DocumentService.
func (s *DocumentServiceImpl) GetTrainingDocuments(ctx context.Context, trainingID string) (*document.FlutterTrainingDocumentsResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.trainingRepo.GetByID(ctx, companyID, trainingID)
	if err != nil {
		return nil, err
	}

	var (
		docs         []document.StoredDocument
		files        []document.StoredFile
		certificates []training.Certificate
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.documentRepo.ListByTraining(gCtx, t.ID)
		if err != nil {
			return fmt.Errorf("failed to get document records: %w", err)
		}
		docs = result
		return nil
	})

	g.Go(func() error {
		result, err := s.listFiles(gCtx, storage.TrainingDocumentsPrefix(t.ID))
		if err != nil {
			return err
		}
		files = result
		return nil
	})

	g.Go(func() error {
		result, err := s.certificateRepo.ListByTraining(gCtx, t.ID)
		if err != nil {
			return fmt.Errorf("failed to get certificates: %w", err)
		}
		certificates = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items, err := s.documentItems(ctx, docs, files)
	if err != nil {
		return nil, err
	}

	return &document.FlutterTrainingDocumentsResponse{
		TrainingID:          t.ID,
		TrainingTitle:       t.Title,
		EmployeeID:          t.EmployeeID,
		HasCertificate:      training.HasCertificate(t),
		CertificateURL:      t.CertificateURL,
		CertificatePdfURL:   t.CertificatePdfURL,
		CertificateFileName: t.CertificateFileName,
		Documents:           items,
		Summary:             document.Merge(docs, files, s.mergeOpts),
		Certificates:        toCertificateItems(certificates),
		TotalCertificates:   len(certificates),
	}, nil
}

func (s *DocumentServiceImpl) listFiles(ctx context.Context, prefix string) ([]document.StoredFile, error) {
	objects, err := s.fileStorage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored files under %s: %w", prefix, err)
	}

	files := make([]document.StoredFile, 0, len(objects))
	for _, o := range objects {
		files = append(files, document.StoredFile{
			Key:         o.Key,
			Name:        o.Name,
			ContentType: o.ContentType,
			Size:        o.Size,
			UpdatedAt:   o.UpdatedAt,
		})
	}
	return files, nil
}

// documentItems lists records first, then the storage files Merge counts,
// so the list and the summary always agree.
func (s *DocumentServiceImpl) documentItems(ctx context.Context, docs []document.StoredDocument, files []document.StoredFile) ([]document.DocumentItem, error) {
	kept := document.FilterFiles(docs, files, s.mergeOpts)
	items := make([]document.DocumentItem, 0, len(docs)+len(kept))

	for _, d := range docs {
		name := d.FileName
		if name == "" {
			name = path.Base(d.FilePath)
		}
		url, err := s.url(ctx, d.FilePath)
		if err != nil {
			return nil, err
		}
		item := document.DocumentItem{
			ID:     d.ID,
			Name:   name,
			Path:   d.FilePath,
			URL:    url,
			Kind:   document.ClassifyDocument(d),
			Source: document.SourceRecord,
		}
		if !d.UploadedAt.IsZero() {
			item.UploadedAt = d.UploadedAt.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}

	for _, f := range kept {
		url, err := s.url(ctx, f.Key)
		if err != nil {
			return nil, err
		}
		item := document.DocumentItem{
			Name:   f.Name,
			Path:   f.Key,
			URL:    url,
			Kind:   document.ClassifyFile(f),
			Source: document.SourceStorage,
			Size:   f.Size,
		}
		if !f.UpdatedAt.IsZero() {
			item.UploadedAt = f.UpdatedAt.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}

	return items, nil
}

// url keeps absolute links as stored and resolves storage keys
func (s *DocumentServiceImpl) url(ctx context.Context, p string) (string, error) {
	switch {
	case p == "":
		return "", nil
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "https://"):
		return p, nil
	}
	url, err := s.fileStorage.GetURL(ctx, p, urlExpiry)
	if err != nil {
		s.log.Error().Err(err).Str("path", p).Msg("failed to resolve document url")
		return "", fmt.Errorf("failed to resolve url for %s: %w", p, err)
	}
	return url, nil
}

func toCertificateItems(certificates []training.Certificate) []document.CertificateItem {
	items := make([]document.CertificateItem, 0, len(certificates))
	for _, c := range certificates {
		items = append(items, document.CertificateItem{
			ID:         c.ID,
			TrainingID: c.TrainingID,
			IssueDate:  c.IssueDate.Format("2006-01-02"),
			URL:        c.URL,
			PdfURL:     c.PdfURL,
			Kind:       certificateKind(c),
		})
	}
	return items
}

func certificateKind(c training.Certificate) document.Kind {
	if c.PdfURL != "" {
		return document.KindPdf
	}
	link, _, _ := strings.Cut(c.URL, "?")
	return document.ClassifyName(link)
}
