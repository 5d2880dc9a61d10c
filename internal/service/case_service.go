package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "court/internal/errors"
	"court/internal/model"
	"court/internal/policy"
	"court/internal/repository"
)

// SubmitInput carries the fields of a new case submission. All fields are
// validated at the API boundary before reaching the service.
type SubmitInput struct {
	CaseID        string
	PlaintiffName string
	DefendantName string
	ArgumentText  string
	EvidenceText  string
}

// SubmissionPatch is a merge-patch over the editable fields: nil means
// "leave untouched", a pointer to the zero value is an explicit assignment.
type SubmissionPatch struct {
	PlaintiffName *string
	DefendantName *string
	ArgumentText  *string
	EvidenceText  *string
	JudgeNotes    *string
}

// CaseService is the submission workflow: creation by litigants, review by
// judges, visibility per the authorization policy.
type CaseService interface {
	Submit(ctx context.Context, actor *model.User, in SubmitInput) (*model.CaseSubmission, error)
	ListVisible(ctx context.Context, actor *model.User) ([]model.CaseSubmission, error)
	SearchByName(ctx context.Context, actor *model.User, name string) ([]model.CaseSubmission, error)
	Edit(ctx context.Context, actor *model.User, id uint, patch SubmissionPatch) (*model.CaseSubmission, error)
	Approve(ctx context.Context, actor *model.User, id uint, notes *string) (*model.CaseSubmission, error)
	Reject(ctx context.Context, actor *model.User, id uint, notes *string) (*model.CaseSubmission, error)
	Delete(ctx context.Context, actor *model.User, id uint) error
}

type caseService struct {
	submissions repository.SubmissionRepository
}

// NewCaseService creates a new case workflow service.
func NewCaseService(submissions repository.SubmissionRepository) CaseService {
	return &caseService{submissions: submissions}
}

// Submit creates a new PENDING submission, snapshotting the creator's id and
// role. Only plaintiffs and defendants may submit; judge approval is always
// required afterwards.
func (s *caseService) Submit(ctx context.Context, actor *model.User, in SubmitInput) (*model.CaseSubmission, error) {
	if !policy.Can(actor.Role, policy.ActionSubmit) {
		return nil, apperrors.ErrForbidden
	}

	submission := &model.CaseSubmission{
		CaseID:            in.CaseID,
		SubmittedByUserID: actor.ID,
		SubmittedByRole:   actor.Role,
		PlaintiffName:     in.PlaintiffName,
		DefendantName:     in.DefendantName,
		ArgumentText:      in.ArgumentText,
		EvidenceText:      in.EvidenceText,
		Status:            model.StatusPending,
	}

	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return submission, nil
}

// ListVisible returns the submissions the actor may see per the policy
// visibility rules.
func (s *caseService) ListVisible(ctx context.Context, actor *model.User) ([]model.CaseSubmission, error) {
	all, err := s.submissions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return policy.FilterVisible(actor, all), nil
}

// SearchByName is the juror-only name filter over approved submissions.
func (s *caseService) SearchByName(ctx context.Context, actor *model.User, name string) ([]model.CaseSubmission, error) {
	if !policy.Can(actor.Role, policy.ActionSearchByName) {
		return nil, apperrors.ErrForbidden
	}
	results, err := s.submissions.SearchApprovedByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("search submissions: %w", err)
	}
	return results, nil
}

// Edit applies a merge-patch to a submission. Judge-only; works in any
// status and never touches the status field.
func (s *caseService) Edit(ctx context.Context, actor *model.User, id uint, patch SubmissionPatch) (*model.CaseSubmission, error) {
	if !policy.Can(actor.Role, policy.ActionEdit) {
		return nil, apperrors.ErrForbidden
	}

	submission, err := s.findSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.PlaintiffName != nil {
		submission.PlaintiffName = *patch.PlaintiffName
	}
	if patch.DefendantName != nil {
		submission.DefendantName = *patch.DefendantName
	}
	if patch.ArgumentText != nil {
		submission.ArgumentText = *patch.ArgumentText
	}
	if patch.EvidenceText != nil {
		submission.EvidenceText = *patch.EvidenceText
	}
	if patch.JudgeNotes != nil {
		submission.JudgeNotes = patch.JudgeNotes
	}

	if err := s.submissions.Update(ctx, submission); err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return submission, nil
}

// Approve marks a submission APPROVED. Notes overwrite the stored judge
// notes only when provided.
func (s *caseService) Approve(ctx context.Context, actor *model.User, id uint, notes *string) (*model.CaseSubmission, error) {
	return s.decide(ctx, actor, id, policy.ActionApprove, model.StatusApproved, notes)
}

// Reject marks a submission REJECTED, symmetric to Approve.
func (s *caseService) Reject(ctx context.Context, actor *model.User, id uint, notes *string) (*model.CaseSubmission, error) {
	return s.decide(ctx, actor, id, policy.ActionReject, model.StatusRejected, notes)
}

// decide re-assigns status unconditionally: an already-decided submission
// can be re-approved or flipped, and no history is kept. This mirrors the
// long-standing behavior of the API and is pinned by tests.
func (s *caseService) decide(ctx context.Context, actor *model.User, id uint, action policy.Action, status model.SubmissionStatus, notes *string) (*model.CaseSubmission, error) {
	if !policy.Can(actor.Role, action) {
		return nil, apperrors.ErrForbidden
	}

	submission, err := s.findSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	submission.Status = status
	if notes != nil {
		submission.JudgeNotes = notes
	}

	if err := s.submissions.Update(ctx, submission); err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return submission, nil
}

// Delete permanently removes a submission. Judge-only.
func (s *caseService) Delete(ctx context.Context, actor *model.User, id uint) error {
	if !policy.Can(actor.Role, policy.ActionDelete) {
		return apperrors.ErrForbidden
	}

	submission, err := s.findSubmission(ctx, id)
	if err != nil {
		return err
	}

	if err := s.submissions.Delete(ctx, submission); err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	return nil
}

func (s *caseService) findSubmission(ctx context.Context, id uint) (*model.CaseSubmission, error) {
	submission, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return submission, nil
}
