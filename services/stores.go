package services

import (
	"context"
	"errors"
	"time"

	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrRewardConflict means another pass already transitioned the mission
	// out of active. Not an error condition for callers; the reward is
	// simply skipped.
	ErrRewardConflict = errors.New("mission already rewarded")

	// ErrProfileNotFound means no progression record exists for the user.
	ErrProfileNotFound = errors.New("progression profile not found")

	// ErrActiveSeasonExists is returned when bootstrapping a season while
	// another one is still active.
	ErrActiveSeasonExists = errors.New("an active season already exists")

	// ErrMissionsExist is returned by non-reset generation when the user
	// already has a mission ladder.
	ErrMissionsExist = errors.New("missions already generated for user")

	// ErrResetIncomplete means the delete phase of a reset left missions
	// behind; regeneration is not started.
	ErrResetIncomplete = errors.New("mission reset left stale missions")
)

// LedgerReader is the narrow contract to the financial ledger subsystem.
// A read failure aborts the whole evaluation pass.
type LedgerReader interface {
	Assets(ctx context.Context, email string) ([]models.Asset, error)
	Debts(ctx context.Context, email string) ([]models.Debt, error)
	Transactions(ctx context.Context, email string) ([]models.Transaction, error)
	BudgetCategories(ctx context.Context, email string) ([]models.BudgetCategory, error)
	Goals(ctx context.Context, email string) ([]models.Goal, error)
}

// MissionReward is the reward attached to one mission completion, plus the
// debt baseline observed by the pass that completed it.
type MissionReward struct {
	XP           int
	Gold         int
	DebtSnapshot float64
}

// ProgressionStore persists profiles, missions and seasons.
//
// ApplyReward is the exactly-once gate: it must transition the mission to
// completed only if its status is still active at write time (returning
// ErrRewardConflict when the conditional write matches nothing), then
// re-read the profile and apply the leveling inside the same logical update.
// Recomputing from a fresh read is what keeps racing passes from
// overwriting each other's grants; callers must not pre-apply the reward to
// a profile they loaded earlier. Returns the updated profile and whether
// the reward crossed a level.
type ProgressionStore interface {
	Profile(ctx context.Context, email string) (models.UserProgress, error)
	UpsertProfile(ctx context.Context, p models.UserProgress) error

	Missions(ctx context.Context, email string) ([]models.Mission, error)
	InsertMissions(ctx context.Context, missions []models.Mission) error
	SaveProgress(ctx context.Context, id primitive.ObjectID, current float64) error
	ApplyReward(ctx context.Context, id primitive.ObjectID, progress float64, completedAt time.Time, email string, reward MissionReward) (models.UserProgress, bool, error)
	DeleteMissions(ctx context.Context, email string) (int64, error)
	CountMissions(ctx context.Context, email string) (int64, error)

	ActiveSeason(ctx context.Context) (*models.Season, error)
	InsertSeason(ctx context.Context, season models.Season) error
	EndSeason(ctx context.Context, id primitive.ObjectID) error

	TopProfiles(ctx context.Context, limit int) ([]models.UserProgress, error)
}
