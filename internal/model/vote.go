package model

import "time"

// VoteValue is a juror's verdict on a case.
type VoteValue string

const (
	VoteGuilty    VoteValue = "GUILTY"
	VoteNotGuilty VoteValue = "NOT_GUILTY"
)

// Vote records a single juror verdict for a case identifier. The composite
// unique index is the one-vote-per-juror-per-case guarantee; the database
// rejects a second insert for the same pair. Votes reference submissions
// only through the case_id string, so a vote may exist for a case_id with
// no submission.
type Vote struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CaseID      string    `json:"case_id" gorm:"size:64;not null;uniqueIndex:uq_vote_once_per_case,priority:1"`
	JurorUserID uint      `json:"juror_user_id" gorm:"not null;uniqueIndex:uq_vote_once_per_case,priority:2"`
	Vote        VoteValue `json:"vote" gorm:"size:20;not null"`
	CreatedAt   time.Time `json:"created_at"`
}
