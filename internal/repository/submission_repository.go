package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"court/internal/model"
)

// SubmissionRepository defines case submission persistence operations.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.CaseSubmission) error
	FindByID(ctx context.Context, id uint) (*model.CaseSubmission, error)
	Update(ctx context.Context, submission *model.CaseSubmission) error
	Delete(ctx context.Context, submission *model.CaseSubmission) error
	ListAll(ctx context.Context) ([]model.CaseSubmission, error)
	SearchApprovedByName(ctx context.Context, name string) ([]model.CaseSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository builds a GORM-backed repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.CaseSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepository) FindByID(ctx context.Context, id uint) (*model.CaseSubmission, error) {
	var submission model.CaseSubmission
	if err := r.db.WithContext(ctx).First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) Update(ctx context.Context, submission *model.CaseSubmission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}

func (r *submissionRepository) Delete(ctx context.Context, submission *model.CaseSubmission) error {
	return r.db.WithContext(ctx).Delete(submission).Error
}

func (r *submissionRepository) ListAll(ctx context.Context) ([]model.CaseSubmission, error) {
	var submissions []model.CaseSubmission
	if err := r.db.WithContext(ctx).Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// SearchApprovedByName matches name as a case-insensitive substring of the
// plaintiff or defendant name, scoped to approved submissions.
func (r *submissionRepository) SearchApprovedByName(ctx context.Context, name string) ([]model.CaseSubmission, error) {
	pattern := "%" + strings.ToLower(name) + "%"
	var submissions []model.CaseSubmission
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StatusApproved).
		Where("LOWER(plaintiff_name) LIKE ? OR LOWER(defendant_name) LIKE ?", pattern, pattern).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
