package model

import "time"

// SubmissionStatus tracks a case submission through judge review.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "PENDING"
	StatusApproved SubmissionStatus = "APPROVED"
	StatusRejected SubmissionStatus = "REJECTED"
)

// CaseSubmission is a single case narrative awaiting judge review.
// case_id is not unique: multiple submissions may share one case identifier.
type CaseSubmission struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	CaseID string `json:"case_id" gorm:"size:64;not null;index"`

	SubmittedByUserID uint `json:"submitted_by_user_id" gorm:"not null;index"`
	// Role of the submitter at submission time, kept as a snapshot.
	SubmittedByRole Role `json:"submitted_by_role" gorm:"size:20;not null"`

	PlaintiffName string `json:"plaintiff_name" gorm:"size:120;not null;index"`
	DefendantName string `json:"defendant_name" gorm:"size:120;not null;index"`

	ArgumentText string `json:"argument_text" gorm:"type:text;not null"`
	EvidenceText string `json:"evidence_text" gorm:"type:text;not null"`

	Status     SubmissionStatus `json:"status" gorm:"size:20;not null;default:'PENDING';index"`
	JudgeNotes *string          `json:"judge_notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
