package services

import (
	"context"
	"sync"
	"time"

	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory ProgressionStore for tests. ApplyReward performs
// the same conditional status transition and fresh-read leveling the real
// store does. profileHook, when set, runs after each Profile read so tests
// can interleave a competing pass at that point.
type fakeStore struct {
	mu       sync.Mutex
	profiles map[string]models.UserProgress
	missions map[primitive.ObjectID]models.Mission
	seasons  []models.Season

	rewardErr   error
	progressErr error
	profileHook func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[string]models.UserProgress),
		missions: make(map[primitive.ObjectID]models.Mission),
	}
}

func (s *fakeStore) Profile(ctx context.Context, email string) (models.UserProgress, error) {
	s.mu.Lock()
	p, ok := s.profiles[email]
	s.mu.Unlock()
	if s.profileHook != nil {
		s.profileHook()
	}
	if !ok {
		return models.UserProgress{}, ErrProfileNotFound
	}
	return p, nil
}

func (s *fakeStore) UpsertProfile(ctx context.Context, p models.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.Email] = p
	return nil
}

func (s *fakeStore) Missions(ctx context.Context, email string) ([]models.Mission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Mission
	for _, m := range s.missions {
		if m.UserEmail == email {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeStore) InsertMissions(ctx context.Context, missions []models.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range missions {
		s.missions[m.ID] = m
	}
	return nil
}

func (s *fakeStore) SaveProgress(ctx context.Context, id primitive.ObjectID, current float64) error {
	if s.progressErr != nil {
		return s.progressErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.missions[id]
	if !ok {
		return nil
	}
	m.CurrentProgress = current
	s.missions[id] = m
	return nil
}

func (s *fakeStore) ApplyReward(ctx context.Context, id primitive.ObjectID, progress float64, completedAt time.Time, email string, reward MissionReward) (models.UserProgress, bool, error) {
	if s.rewardErr != nil {
		return models.UserProgress{}, false, s.rewardErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.missions[id]
	if !ok || m.Status != models.MissionActive {
		return models.UserProgress{}, false, ErrRewardConflict
	}
	m.Status = models.MissionCompleted
	m.CurrentProgress = progress
	m.CompletedAt = &completedAt
	s.missions[id] = m

	next, leveled := ApplyLeveling(s.profiles[email], reward.XP, reward.Gold)
	next.PreviousDebtSnapshot = reward.DebtSnapshot
	s.profiles[email] = next
	return next, leveled, nil
}

func (s *fakeStore) DeleteMissions(ctx context.Context, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, m := range s.missions {
		if m.UserEmail == email {
			delete(s.missions, id)
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountMissions(ctx context.Context, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, m := range s.missions {
		if m.UserEmail == email {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) ActiveSeason(ctx context.Context) (*models.Season, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seasons {
		if s.seasons[i].Status == models.SeasonActive {
			season := s.seasons[i]
			return &season, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) InsertSeason(ctx context.Context, season models.Season) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons = append(s.seasons, season)
	return nil
}

func (s *fakeStore) EndSeason(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seasons {
		if s.seasons[i].ID == id {
			s.seasons[i].Status = models.SeasonEnded
		}
	}
	return nil
}

func (s *fakeStore) TopProfiles(ctx context.Context, limit int) ([]models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.UserProgress
	for _, p := range s.profiles {
		out = append(out, p)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) mission(id primitive.ObjectID) models.Mission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.missions[id]
}

// fakeLedger is an in-memory LedgerReader for tests.
type fakeLedger struct {
	assets       []models.Asset
	debts        []models.Debt
	transactions []models.Transaction
	budgets      []models.BudgetCategory
	goals        []models.Goal

	assetsErr error
}

func (l *fakeLedger) Assets(ctx context.Context, email string) ([]models.Asset, error) {
	if l.assetsErr != nil {
		return nil, l.assetsErr
	}
	return l.assets, nil
}

func (l *fakeLedger) Debts(ctx context.Context, email string) ([]models.Debt, error) {
	return l.debts, nil
}

func (l *fakeLedger) Transactions(ctx context.Context, email string) ([]models.Transaction, error) {
	return l.transactions, nil
}

func (l *fakeLedger) BudgetCategories(ctx context.Context, email string) ([]models.BudgetCategory, error) {
	return l.budgets, nil
}

func (l *fakeLedger) Goals(ctx context.Context, email string) ([]models.Goal, error) {
	return l.goals, nil
}
