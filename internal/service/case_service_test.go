package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "court/internal/errors"
	"court/internal/model"
)

// MockSubmissionRepository is a mock implementation of SubmissionRepository.
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *model.CaseSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) FindByID(ctx context.Context, id uint) (*model.CaseSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) Update(ctx context.Context, submission *model.CaseSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, submission *model.CaseSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) ListAll(ctx context.Context) ([]model.CaseSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) SearchApprovedByName(ctx context.Context, name string) ([]model.CaseSubmission, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseSubmission), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestCaseService_Submit(t *testing.T) {
	input := SubmitInput{
		CaseID:        "C1",
		PlaintiffName: "Alice",
		DefendantName: "Bob",
		ArgumentText:  "the soup was cold",
		EvidenceText:  "photo of soup",
	}

	tests := []struct {
		name          string
		actor         *model.User
		setupMock     func(*MockSubmissionRepository)
		expectedError error
	}{
		{
			name:  "plaintiff submits",
			actor: &model.User{ID: 3, Role: model.RolePlaintiff},
			setupMock: func(m *MockSubmissionRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.CaseSubmission")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "defendant submits",
			actor: &model.User{ID: 4, Role: model.RoleDefendant},
			setupMock: func(m *MockSubmissionRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.CaseSubmission")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "judge cannot submit",
			actor:         &model.User{ID: 5, Role: model.RoleJudge},
			setupMock:     func(m *MockSubmissionRepository) {},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:          "juror cannot submit",
			actor:         &model.User{ID: 6, Role: model.RoleJuror},
			setupMock:     func(m *MockSubmissionRepository) {},
			expectedError: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSubmissionRepository)
			tt.setupMock(mockRepo)

			service := NewCaseService(mockRepo)
			submission, err := service.Submit(context.Background(), tt.actor, input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, submission)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, submission)
				assert.Equal(t, model.StatusPending, submission.Status)
				assert.Equal(t, tt.actor.ID, submission.SubmittedByUserID)
				assert.Equal(t, tt.actor.Role, submission.SubmittedByRole)
				assert.Nil(t, submission.JudgeNotes)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCaseService_ListVisible(t *testing.T) {
	all := []model.CaseSubmission{
		{ID: 1, SubmittedByUserID: 3, Status: model.StatusPending},
		{ID: 2, SubmittedByUserID: 3, Status: model.StatusRejected},
		{ID: 3, SubmittedByUserID: 9, Status: model.StatusApproved},
	}

	t.Run("juror never sees pending or rejected", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("ListAll", mock.Anything).Return(all, nil)

		service := NewCaseService(mockRepo)
		got, err := service.ListVisible(context.Background(), &model.User{ID: 12, Role: model.RoleJuror})

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, uint(3), got[0].ID)
	})

	t.Run("creator always sees own submissions", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("ListAll", mock.Anything).Return(all, nil)

		service := NewCaseService(mockRepo)
		got, err := service.ListVisible(context.Background(), &model.User{ID: 3, Role: model.RolePlaintiff})

		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("judge sees everything", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("ListAll", mock.Anything).Return(all, nil)

		service := NewCaseService(mockRepo)
		got, err := service.ListVisible(context.Background(), &model.User{ID: 1, Role: model.RoleJudge})

		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestCaseService_SearchByName(t *testing.T) {
	t.Run("juror search trims pattern", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("SearchApprovedByName", mock.Anything, "bob").
			Return([]model.CaseSubmission{{ID: 3, Status: model.StatusApproved}}, nil)

		service := NewCaseService(mockRepo)
		got, err := service.SearchByName(context.Background(), &model.User{ID: 12, Role: model.RoleJuror}, "  bob ")

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("judge is not allowed on this operation", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)

		service := NewCaseService(mockRepo)
		got, err := service.SearchByName(context.Background(), &model.User{ID: 1, Role: model.RoleJudge}, "bob")

		assert.Equal(t, apperrors.ErrForbidden, err)
		assert.Nil(t, got)
	})
}

func TestCaseService_Edit(t *testing.T) {
	judge := &model.User{ID: 1, Role: model.RoleJudge}

	stored := func() *model.CaseSubmission {
		return &model.CaseSubmission{
			ID:            42,
			CaseID:        "C1",
			PlaintiffName: "Alice",
			DefendantName: "Bob",
			ArgumentText:  "argument",
			EvidenceText:  "evidence",
			Status:        model.StatusPending,
		}
	}

	t.Run("merge patch changes only provided fields", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.CaseSubmission")).Return(nil)

		service := NewCaseService(mockRepo)
		got, err := service.Edit(context.Background(), judge, 42, SubmissionPatch{
			DefendantName: strPtr("Robert"),
			JudgeNotes:    strPtr("renamed defendant"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Alice", got.PlaintiffName)
		assert.Equal(t, "Robert", got.DefendantName)
		assert.Equal(t, "argument", got.ArgumentText)
		assert.Equal(t, "evidence", got.EvidenceText)
		assert.Equal(t, "renamed defendant", *got.JudgeNotes)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("empty patch leaves all fields unchanged", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(stored(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.CaseSubmission")).Return(nil)

		service := NewCaseService(mockRepo)
		got, err := service.Edit(context.Background(), judge, 42, SubmissionPatch{})

		assert.NoError(t, err)
		assert.Equal(t, *stored(), *got)
	})

	t.Run("non-judge forbidden", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)

		service := NewCaseService(mockRepo)
		_, err := service.Edit(context.Background(), &model.User{ID: 3, Role: model.RolePlaintiff}, 42, SubmissionPatch{})

		assert.Equal(t, apperrors.ErrForbidden, err)
	})

	t.Run("missing submission", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9999)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCaseService(mockRepo)
		_, err := service.Edit(context.Background(), judge, 9999, SubmissionPatch{})

		assert.Equal(t, apperrors.ErrSubmissionNotFound, err)
	})
}

func TestCaseService_Decide(t *testing.T) {
	judge := &model.User{ID: 1, Role: model.RoleJudge}

	t.Run("approve sets status and notes", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).
			Return(&model.CaseSubmission{ID: 42, Status: model.StatusPending}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.CaseSubmission")).Return(nil)

		service := NewCaseService(mockRepo)
		got, err := service.Approve(context.Background(), judge, 42, strPtr("ok"))

		assert.NoError(t, err)
		assert.Equal(t, model.StatusApproved, got.Status)
		assert.Equal(t, "ok", *got.JudgeNotes)
	})

	t.Run("nil notes preserve existing notes", func(t *testing.T) {
		existing := strPtr("first pass notes")
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).
			Return(&model.CaseSubmission{ID: 42, Status: model.StatusPending, JudgeNotes: existing}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.CaseSubmission")).Return(nil)

		service := NewCaseService(mockRepo)
		got, err := service.Reject(context.Background(), judge, 42, nil)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusRejected, got.Status)
		assert.Equal(t, "first pass notes", *got.JudgeNotes)
	})

	t.Run("re-decide overwrites status", func(t *testing.T) {
		// An approved submission can be flipped to rejected with no guard
		// and no history. Long-standing behavior, kept on purpose.
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).
			Return(&model.CaseSubmission{ID: 42, Status: model.StatusApproved}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.CaseSubmission")).Return(nil)

		service := NewCaseService(mockRepo)
		got, err := service.Reject(context.Background(), judge, 42, nil)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusRejected, got.Status)
	})

	t.Run("juror forbidden", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)

		service := NewCaseService(mockRepo)
		_, err := service.Approve(context.Background(), &model.User{ID: 12, Role: model.RoleJuror}, 42, nil)

		assert.Equal(t, apperrors.ErrForbidden, err)
	})
}

func TestCaseService_Delete(t *testing.T) {
	judge := &model.User{ID: 1, Role: model.RoleJudge}

	t.Run("judge deletes", func(t *testing.T) {
		stored := &model.CaseSubmission{ID: 42}
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(stored, nil)
		mockRepo.On("Delete", mock.Anything, stored).Return(nil)

		service := NewCaseService(mockRepo)
		err := service.Delete(context.Background(), judge, 42)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing submission leaves state untouched", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9999)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCaseService(mockRepo)
		err := service.Delete(context.Background(), judge, 9999)

		assert.Equal(t, apperrors.ErrSubmissionNotFound, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("plaintiff forbidden", func(t *testing.T) {
		mockRepo := new(MockSubmissionRepository)

		service := NewCaseService(mockRepo)
		err := service.Delete(context.Background(), &model.User{ID: 3, Role: model.RolePlaintiff}, 42)

		assert.Equal(t, apperrors.ErrForbidden, err)
	})
}
