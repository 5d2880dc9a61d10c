package repository

import (
	"context"

	"gorm.io/gorm"

	"court/internal/model"
)

// VoteRepository defines vote persistence operations. Create relies on the
// uq_vote_once_per_case unique index: a duplicate (case_id, juror_user_id)
// insert fails with gorm.ErrDuplicatedKey, so conflicting concurrent casts
// are serialized by the database rather than checked in application code.
type VoteRepository interface {
	Create(ctx context.Context, vote *model.Vote) error
	CountByCase(ctx context.Context, caseID string) (guilty, notGuilty int64, err error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository builds a GORM-backed repository.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(ctx context.Context, vote *model.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepository) CountByCase(ctx context.Context, caseID string) (guilty, notGuilty int64, err error) {
	type bucket struct {
		Vote  model.VoteValue
		Total int64
	}
	var buckets []bucket
	err = r.db.WithContext(ctx).
		Model(&model.Vote{}).
		Select("vote, COUNT(*) AS total").
		Where("case_id = ?", caseID).
		Group("vote").
		Scan(&buckets).Error
	if err != nil {
		return 0, 0, err
	}
	for _, b := range buckets {
		switch b.Vote {
		case model.VoteGuilty:
			guilty = b.Total
		case model.VoteNotGuilty:
			notGuilty = b.Total
		}
	}
	return guilty, notGuilty, nil
}
