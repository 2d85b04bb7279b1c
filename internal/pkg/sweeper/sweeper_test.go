package sweeper

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/betwise/picks-backend/app/models"
)

type fakeRepository struct {
	mu sync.Mutex

	deleteCutoff time.Time
	deleteErr    error

	expireCalled bool
	expireErr    error

	expiredUsers []models.User
	listErr      error

	clearCalled bool
	clearErr    error
}

func (r *fakeRepository) DeleteUnpaidBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCutoff = cutoff
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	return 2, nil
}

func (r *fakeRepository) ExpireLapsedPayments(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expireCalled = true
	if r.expireErr != nil {
		return 0, r.expireErr
	}
	return 1, nil
}

func (r *fakeRepository) ListExpiredSubscribers(now time.Time) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.expiredUsers, nil
}

func (r *fakeRepository) ClearExpiredEntitlements(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearCalled = true
	if r.clearErr != nil {
		return 0, r.clearErr
	}
	return int64(len(r.expiredUsers)), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
}

func (m *fakeMailer) SendSubscriptionExpired(to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	if m.done != nil {
		m.done <- struct{}{}
	}
	return nil
}

func newTestSweeper(repo *fakeRepository, mailer *fakeMailer, now time.Time) *Sweeper {
	s := New(repo, mailer)
	s.now = func() time.Time { return now }
	return s
}

func TestRunExecutesAllPasses(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{
		expiredUsers: []models.User{{ID: 7, Email: "lapsed@example.com"}},
	}
	mailer := &fakeMailer{done: make(chan struct{}, 1)}

	newTestSweeper(repo, mailer, now).Run()

	wantCutoff := now.Add(-24 * time.Hour)
	if !repo.deleteCutoff.Equal(wantCutoff) {
		t.Fatalf("unpaid cutoff = %v, want %v", repo.deleteCutoff, wantCutoff)
	}
	if !repo.expireCalled {
		t.Fatalf("expected ledger expiry pass to run")
	}
	if !repo.clearCalled {
		t.Fatalf("expected entitlement pass to run")
	}

	select {
	case <-mailer.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected lapse notice to be sent")
	}
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if len(mailer.sent) != 1 || mailer.sent[0] != "lapsed@example.com" {
		t.Fatalf("lapse notices = %v, want one to lapsed@example.com", mailer.sent)
	}
}

func TestRunFailingPassDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{
		deleteErr: errors.New("lock wait timeout"),
		expireErr: errors.New("lock wait timeout"),
	}

	newTestSweeper(repo, &fakeMailer{}, now).Run()

	if !repo.clearCalled {
		t.Fatalf("entitlement pass must run even when earlier passes fail")
	}
}

func TestRunListFailureSkipsMailButNotClear(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{listErr: errors.New("connection reset")}
	mailer := &fakeMailer{}

	newTestSweeper(repo, mailer, now).Run()

	if repo.clearCalled {
		t.Fatalf("clear must not run when the subscriber list is unknown")
	}
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if len(mailer.sent) != 0 {
		t.Fatalf("no lapse notices expected, got %v", mailer.sent)
	}
}
