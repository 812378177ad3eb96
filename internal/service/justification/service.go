package justification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chronotec/timeclock-backend-go/internal/domain/employee"
	"github.com/chronotec/timeclock-backend-go/internal/domain/justification"
	"github.com/chronotec/timeclock-backend-go/internal/domain/punch"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/database"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/storage"
)

const maxEvidenceSize = 10 << 20 // 10MB

var allowedEvidenceExts = []string{".jpg", ".jpeg", ".png", ".pdf"}

type JustificationServiceImpl struct {
	tx                database.TxRunner
	justificationRepo justification.JustificationRepository
	punchRepo         punch.PunchRepository
	employeeRepo      employee.EmployeeRepository
	fileStorage       storage.FileStorage
	loc               *time.Location
}

func NewJustificationService(
	tx database.TxRunner,
	justificationRepo justification.JustificationRepository,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
	loc *time.Location,
) justification.JustificationService {
	return &JustificationServiceImpl{
		tx:                tx,
		justificationRepo: justificationRepo,
		punchRepo:         punchRepo,
		employeeRepo:      employeeRepo,
		fileStorage:       fileStorage,
		loc:               loc,
	}
}

// Create implements justification.JustificationService. The correction and
// its reflected punch are written in one transaction so no consumer of raw
// punches ever sees the justification without the corrected time.
func (s *JustificationServiceImpl) Create(ctx context.Context, req justification.CreateRequest) (justification.CreateResponse, error) {
	if req.Status == "" {
		req.Status = justification.StatusApproved
	}
	if err := req.Validate(); err != nil {
		return justification.CreateResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return justification.CreateResponse{}, justification.ErrEmployeeNotFound
		}
		return justification.CreateResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	var resp justification.CreateResponse
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.justificationRepo.Create(txCtx, justification.Justification{
			EmployeeID:   req.EmployeeID,
			Day:          req.Day,
			Field:        req.Field,
			NewTime:      req.NewTime,
			Reason:       req.Reason,
			EvidencePath: req.EvidencePath,
			Status:       req.Status,
			CreatedBy:    req.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to create justification: %w", err)
		}
		resp.Justification = toResponse(created)

		punchID, mode, err := s.reflectPunch(txCtx, created)
		if err != nil {
			return err
		}
		resp.PunchID = punchID
		resp.PunchMode = mode
		return nil
	})
	if err != nil {
		return justification.CreateResponse{}, err
	}
	return resp, nil
}

// reflectPunch upserts the justification-sourced punch for (employee, day,
// field). Revising an existing correction only moves its timestamp; the
// original creator stays on record.
func (s *JustificationServiceImpl) reflectPunch(ctx context.Context, j justification.Justification) (string, string, error) {
	ts, err := s.correctionInstant(j.Day, j.NewTime)
	if err != nil {
		return "", "", err
	}

	existing, err := s.punchRepo.GetJustificationPunch(ctx, j.EmployeeID, j.Day, j.Field)
	if err != nil {
		return "", "", fmt.Errorf("failed to look up justification punch: %w", err)
	}

	if existing != nil {
		if err := s.punchRepo.UpdateTimestamp(ctx, existing.ID, ts); err != nil {
			return "", "", fmt.Errorf("failed to update justification punch: %w", err)
		}
		return existing.ID, "updated", nil
	}

	created, err := s.punchRepo.Create(ctx, punch.Punch{
		EmployeeID: j.EmployeeID,
		Kind:       j.Field,
		Timestamp:  ts,
		Workday:    j.Day,
		Source:     punch.SourceJustification,
		CreatedBy:  j.CreatedBy,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to create justification punch: %w", err)
	}
	return created.ID, "inserted", nil
}

// correctionInstant combines the day and the HH:MM time under the fixed
// business offset.
func (s *JustificationServiceImpl) correctionInstant(day, newTime string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	t, err := time.Parse("15:04", newTime[:5])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", newTime, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, s.loc), nil
}

// List implements justification.JustificationService.
func (s *JustificationServiceImpl) List(ctx context.Context, filter justification.ListFilter) (justification.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return justification.ListResponse{}, err
	}

	items, err := s.justificationRepo.List(ctx, filter)
	if err != nil {
		return justification.ListResponse{}, fmt.Errorf("failed to list justifications: %w", err)
	}

	resp := justification.ListResponse{Items: make([]justification.JustificationResponse, 0, len(items))}
	for _, j := range items {
		resp.Items = append(resp.Items, toResponse(j))
	}
	return resp, nil
}

// UploadEvidence implements justification.JustificationService.
func (s *JustificationServiceImpl) UploadEvidence(ctx context.Context, employeeID, day, filename string, size int64, file io.Reader) (justification.UploadEvidenceResponse, error) {
	if size > maxEvidenceSize {
		return justification.UploadEvidenceResponse{}, justification.ErrEvidenceTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range allowedEvidenceExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return justification.UploadEvidenceResponse{}, justification.ErrEvidenceBadType
	}

	path := fmt.Sprintf("justifications/%s/%s-%s%s", employeeID, day, uuid.NewString(), ext)
	stored, err := s.fileStorage.Upload(ctx, file, path)
	if err != nil {
		return justification.UploadEvidenceResponse{}, fmt.Errorf("failed to store evidence: %w", err)
	}
	return justification.UploadEvidenceResponse{Path: stored}, nil
}

func toResponse(j justification.Justification) justification.JustificationResponse {
	return justification.JustificationResponse{
		ID:           j.ID,
		EmployeeID:   j.EmployeeID,
		Day:          j.Day,
		Field:        j.Field,
		NewTime:      j.NewTime,
		Reason:       j.Reason,
		EvidencePath: j.EvidencePath,
		Status:       j.Status,
		CreatedBy:    j.CreatedBy,
		CreatedAt:    j.CreatedAt.Format(time.RFC3339),
	}
}
