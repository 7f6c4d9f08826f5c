package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

func TestRankCandidatesFiltersAndOrders(t *testing.T) {
	recruiterID := uuid.New()
	job := backendJob(recruiterID)
	strong := strongResume(uuid.New())
	weak := weakResume(uuid.New())

	cache := &mockCache{}
	uc := NewCandidateRankingUsecase(
		&mockJobRepo{jobs: map[uuid.UUID]repository.Job{job.ID: job}},
		&mockResumeRepo{public: []repository.Resume{weak, strong}},
		nil,
		cache,
		time.Minute,
		0, 0,
		nil,
	)

	items, err := uc.RankCandidates(context.Background(), recruiterID, job.ID, CandidateRankingParams{})
	if err != nil {
		t.Fatalf("RankCandidates: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 (weak candidate below default min score)", len(items))
	}
	if items[0].ResumeID != strong.ID {
		t.Errorf("top resume = %s, want %s", items[0].ResumeID, strong.ID)
	}
	if items[0].Score != 100 {
		t.Errorf("top score = %v, want 100", items[0].Score)
	}
	if len(cache.setCalls) != 1 {
		t.Errorf("cache writes = %d, want 1", len(cache.setCalls))
	}
}

func TestRankCandidatesForbiddenForNonOwner(t *testing.T) {
	job := backendJob(uuid.New())
	uc := NewCandidateRankingUsecase(
		&mockJobRepo{jobs: map[uuid.UUID]repository.Job{job.ID: job}},
		&mockResumeRepo{},
		nil, nil, 0, 0, 0, nil,
	)

	if _, err := uc.RankCandidates(context.Background(), uuid.New(), job.ID, CandidateRankingParams{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestRankCandidatesServedFromCache(t *testing.T) {
	recruiterID := uuid.New()
	job := backendJob(recruiterID)
	cachedID := uuid.New()

	cache := &mockCache{
		getJSON: func(key string, out any) (bool, error) {
			items := out.(*[]CandidateRankingItem)
			*items = []CandidateRankingItem{{ResumeID: cachedID, Score: 91.5}}
			return true, nil
		},
	}
	uc := NewCandidateRankingUsecase(
		&mockJobRepo{jobs: map[uuid.UUID]repository.Job{job.ID: job}},
		&mockResumeRepo{public: []repository.Resume{strongResume(uuid.New())}},
		nil,
		cache,
		time.Minute,
		0, 0,
		nil,
	)

	items, err := uc.RankCandidates(context.Background(), recruiterID, job.ID, CandidateRankingParams{})
	if err != nil {
		t.Fatalf("RankCandidates: %v", err)
	}
	if len(items) != 1 || items[0].ResumeID != cachedID {
		t.Fatalf("items = %+v, want the cached entry", items)
	}
	if len(cache.setCalls) != 0 {
		t.Errorf("cache writes = %d, want 0 on a hit", len(cache.setCalls))
	}
}

func TestRankCandidatesSkipsCacheWriteWithoutLock(t *testing.T) {
	recruiterID := uuid.New()
	job := backendJob(recruiterID)

	cache := &mockCache{lockDenied: true}
	uc := NewCandidateRankingUsecase(
		&mockJobRepo{jobs: map[uuid.UUID]repository.Job{job.ID: job}},
		&mockResumeRepo{public: []repository.Resume{strongResume(uuid.New())}},
		nil,
		cache,
		time.Minute,
		0, 0,
		nil,
	)

	items, err := uc.RankCandidates(context.Background(), recruiterID, job.ID, CandidateRankingParams{})
	if err != nil {
		t.Fatalf("RankCandidates: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if len(cache.setCalls) != 0 {
		t.Errorf("cache writes = %d, want 0 when another request holds the lock", len(cache.setCalls))
	}
}

func TestRankCandidatesLimitApplied(t *testing.T) {
	recruiterID := uuid.New()
	job := backendJob(recruiterID)

	public := make([]repository.Resume, 5)
	for i := range public {
		public[i] = strongResume(uuid.New())
	}
	uc := NewCandidateRankingUsecase(
		&mockJobRepo{jobs: map[uuid.UUID]repository.Job{job.ID: job}},
		&mockResumeRepo{public: public},
		nil, nil, 0, 0, 0, nil,
	)

	items, err := uc.RankCandidates(context.Background(), recruiterID, job.ID, CandidateRankingParams{Limit: 2})
	if err != nil {
		t.Fatalf("RankCandidates: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
}
