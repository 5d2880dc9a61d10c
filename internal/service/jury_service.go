package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"court/internal/cache"
	apperrors "court/internal/errors"
	"court/internal/model"
	"court/internal/policy"
	"court/internal/repository"
)

const tallyCacheTTL = 30 * time.Second

// TallyResult is the aggregate vote count for a case identifier.
type TallyResult struct {
	CaseID    string `json:"case_id"`
	Guilty    int64  `json:"guilty"`
	NotGuilty int64  `json:"not_guilty"`
	Total     int64  `json:"total"`
}

// JuryService is the voting ledger: one vote per juror per case, with
// tallies readable by jurors and judges.
type JuryService interface {
	CastVote(ctx context.Context, actor *model.User, caseID string, value model.VoteValue) (*model.Vote, error)
	Tally(ctx context.Context, actor *model.User, caseID string) (*TallyResult, error)
}

type juryService struct {
	votes repository.VoteRepository
	cache *cache.Client
}

// NewJuryService builds a JuryService with repository and cache.
func NewJuryService(votes repository.VoteRepository, cache *cache.Client) JuryService {
	return &juryService{votes: votes, cache: cache}
}

func (s *juryService) tallyKey(caseID string) string {
	return fmt.Sprintf("tally:%s", caseID)
}

// CastVote inserts a vote for (caseID, actor). The insert is all-or-nothing:
// a duplicate pair is rejected by the storage constraint and surfaces as
// ErrAlreadyVoted. There is no retraction or update-in-place. The case_id is
// not checked against submissions; a vote may precede any filing.
func (s *juryService) CastVote(ctx context.Context, actor *model.User, caseID string, value model.VoteValue) (*model.Vote, error) {
	if !policy.Can(actor.Role, policy.ActionVote) {
		return nil, apperrors.ErrForbidden
	}

	vote := &model.Vote{
		CaseID:      caseID,
		JurorUserID: actor.ID,
		Vote:        value,
	}

	if err := s.votes.Create(ctx, vote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyVoted
		}
		return nil, fmt.Errorf("create vote: %w", err)
	}

	_ = s.cache.Delete(ctx, s.tallyKey(caseID))
	return vote, nil
}

// Tally aggregates votes for a case identifier. Zero-vote case identifiers
// tally as all zeroes. Results are cached briefly; the cache is invalidated
// whenever a vote lands.
func (s *juryService) Tally(ctx context.Context, actor *model.User, caseID string) (*TallyResult, error) {
	if !policy.Can(actor.Role, policy.ActionViewResults) {
		return nil, apperrors.ErrForbidden
	}

	if data, _ := s.cache.Get(ctx, s.tallyKey(caseID)); data != nil {
		var cached TallyResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	guilty, notGuilty, err := s.votes.CountByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}

	result := &TallyResult{
		CaseID:    caseID,
		Guilty:    guilty,
		NotGuilty: notGuilty,
		Total:     guilty + notGuilty,
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, s.tallyKey(caseID), payload, tallyCacheTTL)
	}

	return result, nil
}
