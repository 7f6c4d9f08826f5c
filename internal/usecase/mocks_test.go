package usecase

import (
	"context"
	"sync"
	"time"

	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byEmail map[string]repository.User
	byID    map[uuid.UUID]repository.User
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (repository.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (repository.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

type mockJobRepo struct {
	jobs map[uuid.UUID]repository.Job
	list []repository.Job

	listErr error
}

func (m *mockJobRepo) FindByID(ctx context.Context, jobID uuid.UUID) (repository.Job, error) {
	j, ok := m.jobs[jobID]
	if !ok {
		return repository.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	_, ok := m.jobs[jobID]
	return ok, nil
}

func (m *mockJobRepo) ListActive(ctx context.Context, limit, offset int) ([]repository.Job, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if offset >= len(m.list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.list) {
		end = len(m.list)
	}
	return m.list[offset:end], nil
}

type mockResumeRepo struct {
	byUser map[uuid.UUID]repository.Resume
	public []repository.Resume
}

func (m *mockResumeRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (repository.Resume, error) {
	r, ok := m.byUser[userID]
	if !ok {
		return repository.Resume{}, repository.ErrResumeNotFound
	}
	return r, nil
}

func (m *mockResumeRepo) ListPublic(ctx context.Context, limit int) ([]repository.Resume, error) {
	if limit < len(m.public) {
		return m.public[:limit], nil
	}
	return m.public, nil
}

type mockApplicationRepo struct {
	mu      sync.Mutex
	created []repository.Application
	applied map[string]bool
}

func applicationKey(userID, jobID uuid.UUID) string {
	return userID.String() + "/" + jobID.String()
}

func (m *mockApplicationRepo) Create(ctx context.Context, app repository.Application) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.created = append(m.created, app)
	if m.applied == nil {
		m.applied = map[string]bool{}
	}
	m.applied[applicationKey(app.UserID, app.JobID)] = true
	return app.ID, nil
}

func (m *mockApplicationRepo) ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applied[applicationKey(userID, jobID)], nil
}

type mockCache struct {
	mu          sync.Mutex
	getJSON     func(key string, out any) (bool, error)
	setCalls    []string
	invalidated []string
	lockDenied  bool
}

func (m *mockCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if m.getJSON != nil {
		return m.getJSON(key, out)
	}
	return false, nil
}

func (m *mockCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls = append(m.setCalls, key)
	return nil
}

func (m *mockCache) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	return !m.lockDenied, nil
}

func (m *mockCache) InvalidateJobRankings(ctx context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, jobID)
	return nil
}

type mockNotifier struct {
	mu     sync.Mutex
	alerts map[uuid.UUID][]MatchAlert
}

func (m *mockNotifier) NotifyMatchAlert(userID uuid.UUID, alert MatchAlert) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.alerts == nil {
		m.alerts = map[uuid.UUID][]MatchAlert{}
	}
	m.alerts[userID] = append(m.alerts[userID], alert)
}
