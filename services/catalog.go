package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog bootstraps seasons and generates per-user mission ladders.
type Catalog struct {
	Store        ProgressionStore
	SeasonMonths int
}

var seasonThemes = []struct {
	Name  string
	Theme string
	Color string
}{
	{"The Journey Begins", "Financial Awakening", "#00FFFF"},
	{"Golden Fortress", "Wealth Building", "#FFD700"},
	{"Realm of the Wise", "Financial Mastery", "#9D4EDD"},
	{"Age of Titans", "Power and Legacy", "#FF006E"},
	{"Eternal Ascension", "Financial Freedom", "#00FF41"},
}

// InitializeSeason creates the next active season with its three tiers.
// Refuses to run while another season is active.
func (c *Catalog) InitializeSeason(ctx context.Context, number int) (models.Season, error) {
	if number < 1 {
		number = 1
	}

	existing, err := c.Store.ActiveSeason(ctx)
	if err != nil {
		return models.Season{}, fmt.Errorf("check active season: %w", err)
	}
	if existing != nil {
		return *existing, ErrActiveSeasonExists
	}

	months := c.SeasonMonths
	if months <= 0 {
		months = 3
	}

	now := time.Now()
	theme := seasonThemes[(number-1)%len(seasonThemes)]
	season := models.Season{
		ID:           primitive.NewObjectID(),
		SeasonNumber: number,
		Name:         fmt.Sprintf("Season %d: %s", number, theme.Name),
		Theme:        theme.Theme,
		ThemeColor:   theme.Color,
		StartDate:    now,
		EndDate:      now.AddDate(0, months, 0),
		Status:       models.SeasonActive,
		Tiers: []models.SeasonTier{
			{OrderIndex: 1, Name: "Tier 1: The Awakening", Description: "Organize your finances and take the first step", Icon: "🌅"},
			{OrderIndex: 2, Name: "Tier 2: The Wall", Description: "Build your financial defenses with savings and security", Icon: "🛡️"},
			{OrderIndex: 3, Name: "Tier 3: The Conquest", Description: "Master investments and multiply your wealth", Icon: "👑"},
		},
		CreatedAt: now,
	}

	if err := c.Store.InsertSeason(ctx, season); err != nil {
		return models.Season{}, fmt.Errorf("insert season: %w", err)
	}
	return season, nil
}

// RolloverExpiredSeason ends the active season once past its end date and
// bootstraps the next one. Returns the season now in effect and whether a
// rollover happened. Meant to be called periodically.
func (c *Catalog) RolloverExpiredSeason(ctx context.Context, now time.Time) (*models.Season, bool, error) {
	current, err := c.Store.ActiveSeason(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("check active season: %w", err)
	}
	if current == nil {
		return nil, false, nil
	}
	if now.Before(current.EndDate) {
		return current, false, nil
	}

	if err := c.Store.EndSeason(ctx, current.ID); err != nil {
		return nil, false, fmt.Errorf("end season %d: %w", current.SeasonNumber, err)
	}
	next, err := c.InitializeSeason(ctx, current.SeasonNumber+1)
	if err != nil {
		return nil, false, err
	}
	return &next, true, nil
}

// missionSpec is one row of a generated ladder.
type missionSpec struct {
	title       string
	description string
	kind        models.VerificationKind
	target      float64
	xp          int
	gold        int
	difficulty  models.Difficulty
	tier        int
	icon        string
}

// buildLadder turns specs into chained missions: each mission requires its
// predecessor, including across tier boundaries, so the prerequisite set
// alone reproduces the linear tier/order progression.
func buildLadder(email string, specs []missionSpec) []models.Mission {
	now := time.Now()
	missions := make([]models.Mission, 0, len(specs))
	var prev primitive.ObjectID

	for i, s := range specs {
		m := models.Mission{
			ID:               primitive.NewObjectID(),
			UserEmail:        email,
			Title:            s.title,
			Description:      s.description,
			Tier:             s.tier,
			OrderIndex:       i + 1,
			VerificationKind: s.kind,
			TargetValue:      s.target,
			Status:           models.MissionActive,
			XPReward:         s.xp,
			GoldReward:       s.gold,
			Difficulty:       s.difficulty,
			BadgeIcon:        s.icon,
			CreatedAt:        now,
		}
		if i > 0 {
			m.RequiredMissionIDs = []primitive.ObjectID{prev}
		}
		prev = m.ID
		missions = append(missions, m)
	}
	return missions
}

// baseLadder is the fixed 9-mission season ladder, three per tier.
func baseLadder() []missionSpec {
	return []missionSpec{
		{"Initial Connection", "Import your first bank statement or connect an account", models.VerifyFirstImport, 1, 100, 50, models.DifficultyEasy, 1, "🔗"},
		{"The First Cut", "Record 5 transactions and start organizing your finances", models.VerifyTransactionCount, 5, 150, 20, models.DifficultyEasy, 1, "✂️"},
		{"Full Picture", "Record at least 10 transactions for a clear view of your cash flow", models.VerifyTransactionCount, 10, 200, 30, models.DifficultyEasy, 1, "👁️"},
		{"Bronze Shield", "Hold a positive balance of at least 500", models.VerifySavingsBalance, 500, 300, 100, models.DifficultyMedium, 2, "🛡️"},
		{"Debt Hunter", "Cut your total liabilities by at least 5% from the baseline", models.VerifyDebtReduction, 5, 500, 150, models.DifficultyHard, 2, "🎯"},
		{"Savings Guardian", "Keep 1000 in savings or investment accounts", models.VerifySavingsBalance, 1000, 400, 120, models.DifficultyMedium, 2, "💰"},
		{"Novice Investor", "Reach a net worth of 2000", models.VerifyNetWorth, 2000, 600, 200, models.DifficultyMedium, 3, "📈"},
		{"Consistency Master", "Keep a 30-day login streak", models.VerifyLoginStreak, 30, 800, 250, models.DifficultyHard, 3, "🔥"},
		{"Supreme Conqueror", "Reach a net worth of 5000 and claim financial mastery", models.VerifyNetWorth, 5000, 1000, 500, models.DifficultyLegendary, 3, "👑"},
	}
}

// personalizedLadder is the full 30-mission ladder, ten per tier, with
// monotonically increasing targets and rewards.
func personalizedLadder() []missionSpec {
	return []missionSpec{
		// Tier 1 - first records and first savings.
		{"The First Step", "Connect a bank account or import your first statement", models.VerifyFirstImport, 1, 100, 20, models.DifficultyEasy, 1, "🚀"},
		{"Financial X-Ray", "Record at least 15 transactions to map your spending", models.VerifyTransactionCount, 15, 120, 25, models.DifficultyEasy, 1, "📊"},
		{"Active Control", "Record at least 30 transactions", models.VerifyTransactionCount, 30, 150, 30, models.DifficultyMedium, 1, "📈"},
		{"First Reserve", "Accumulate 200 in savings or investment accounts", models.VerifySavingsBalance, 200, 180, 35, models.DifficultyMedium, 1, "💵"},
		{"Dedicated Saver", "Accumulate 500 in savings or investment accounts", models.VerifySavingsBalance, 500, 250, 50, models.DifficultyMedium, 1, "💰"},
		{"Base Net Worth", "Reach a positive net worth of 500", models.VerifyNetWorth, 500, 250, 55, models.DifficultyMedium, 1, "🏦"},
		{"Persistent Analyst", "Record at least 50 transactions", models.VerifyTransactionCount, 50, 220, 45, models.DifficultyMedium, 1, "📝"},
		{"Starter Fund", "Accumulate 800 in savings or investment accounts", models.VerifySavingsBalance, 800, 300, 65, models.DifficultyMedium, 1, "🏛️"},
		{"Consolidated Worth", "Reach a positive net worth of 1000", models.VerifyNetWorth, 1000, 320, 70, models.DifficultyHard, 1, "💎"},
		{"Record Master", "Record at least 75 transactions", models.VerifyTransactionCount, 75, 350, 80, models.DifficultyHard, 1, "🎯"},

		// Tier 2 - wealth growth and debt reduction.
		{"Bronze Shield", "Reach a positive net worth of 1500", models.VerifyNetWorth, 1500, 400, 90, models.DifficultyHard, 2, "🛡️"},
		{"Solid Reserve", "Accumulate 1200 in savings or investment accounts", models.VerifySavingsBalance, 1200, 420, 95, models.DifficultyHard, 2, "💸"},
		{"First Strike", "Reduce your debts by at least 10%", models.VerifyDebtReduction, 10, 380, 85, models.DifficultyHard, 2, "⚡"},
		{"Committed Investor", "Accumulate 2000 in savings or investment accounts", models.VerifySavingsBalance, 2000, 500, 110, models.DifficultyHard, 2, "📈"},
		{"Advanced Worth", "Reach a positive net worth of 2500", models.VerifyNetWorth, 2500, 550, 120, models.DifficultyHard, 2, "🏰"},
		{"Relentless Hunter", "Reduce your debts by at least 20%", models.VerifyDebtReduction, 20, 520, 115, models.DifficultyHard, 2, "⚔️"},
		{"Growing Capital", "Accumulate 3000 in savings or investment accounts", models.VerifySavingsBalance, 3000, 600, 135, models.DifficultyHard, 2, "💼"},
		{"Robust Worth", "Reach a positive net worth of 3500", models.VerifyNetWorth, 3500, 650, 145, models.DifficultyHard, 2, "🏆"},
		{"Debt Exterminator", "Reduce your debts by at least 30%", models.VerifyDebtReduction, 30, 700, 150, models.DifficultyLegendary, 2, "🗡️"},
		{"Silver Shield", "Reach a positive net worth of 5000", models.VerifyNetWorth, 5000, 750, 160, models.DifficultyLegendary, 2, "🛡️"},

		// Tier 3 - financial elite.
		{"Elite Investor", "Accumulate 5000 in investments", models.VerifySavingsBalance, 5000, 800, 180, models.DifficultyLegendary, 3, "🌟"},
		{"Solid Fortune", "Reach a positive net worth of 7500", models.VerifyNetWorth, 7500, 900, 200, models.DifficultyLegendary, 3, "💎"},
		{"Total Liberator", "Reduce your debts by at least 40%", models.VerifyDebtReduction, 40, 850, 190, models.DifficultyLegendary, 3, "🔓"},
		{"Substantial Capital", "Accumulate 8000 in investments", models.VerifySavingsBalance, 8000, 1000, 220, models.DifficultyLegendary, 3, "💼"},
		{"Golden Worth", "Reach a positive net worth of 10000", models.VerifyNetWorth, 10000, 1100, 240, models.DifficultyLegendary, 3, "🥇"},
		{"Supreme Eradicator", "Reduce your debts by at least 50%", models.VerifyDebtReduction, 50, 1050, 230, models.DifficultyLegendary, 3, "💥"},
		{"Consolidated Fortune", "Accumulate 12000 in investments", models.VerifySavingsBalance, 12000, 1200, 270, models.DifficultyLegendary, 3, "🏰"},
		{"Financial Titan", "Reach a positive net worth of 15000", models.VerifyNetWorth, 15000, 1300, 290, models.DifficultyLegendary, 3, "🏔️"},
		{"Emerging Magnate", "Accumulate 20000 in investments", models.VerifySavingsBalance, 20000, 1500, 350, models.DifficultyLegendary, 3, "👑"},
		{"Immortal Legend", "Reach a positive net worth of 25000", models.VerifyNetWorth, 25000, 2000, 500, models.DifficultyLegendary, 3, "⭐"},
	}
}

// EnsureProfile returns the user's progression record, creating a fresh
// level-1 record and seeding the base mission ladder on first access.
func (c *Catalog) EnsureProfile(ctx context.Context, email string) (models.UserProgress, error) {
	profile, err := c.Store.Profile(ctx, email)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return profile, err
	}

	profile = models.NewUserProgress(email)
	if err := c.Store.UpsertProfile(ctx, profile); err != nil {
		return profile, fmt.Errorf("create profile: %w", err)
	}
	if _, err := c.SeedBaseMissions(ctx, email); err != nil && !errors.Is(err, ErrMissionsExist) {
		return profile, fmt.Errorf("seed base missions: %w", err)
	}
	return profile, nil
}

// SeedBaseMissions creates the fixed 9-mission season ladder for a user.
func (c *Catalog) SeedBaseMissions(ctx context.Context, email string) ([]models.Mission, error) {
	count, err := c.Store.CountMissions(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("count missions: %w", err)
	}
	if count > 0 {
		return nil, ErrMissionsExist
	}

	missions := buildLadder(email, baseLadder())
	if err := c.Store.InsertMissions(ctx, missions); err != nil {
		return nil, fmt.Errorf("insert missions: %w", err)
	}
	return missions, nil
}

// GeneratePersonalizedMissions creates the 30-mission ladder. Without reset
// it refuses when the user already has missions; with reset it expects the
// caller to have cleared them (ResetMissions does both phases).
func (c *Catalog) GeneratePersonalizedMissions(ctx context.Context, email string, reset bool) (int, error) {
	if !reset {
		count, err := c.Store.CountMissions(ctx, email)
		if err != nil {
			return 0, fmt.Errorf("count missions: %w", err)
		}
		if count > 0 {
			return 0, ErrMissionsExist
		}
	}

	missions := buildLadder(email, personalizedLadder())
	if err := c.Store.InsertMissions(ctx, missions); err != nil {
		return 0, fmt.Errorf("insert missions: %w", err)
	}
	return len(missions), nil
}

// ResetMissions deletes all of a user's missions and regenerates the
// ladder. The delete phase must confirm empty before regeneration starts,
// so an interrupted reset never leaves a partial mix of old and new.
// Calling it twice is safe.
func (c *Catalog) ResetMissions(ctx context.Context, email string) (int64, int, error) {
	deleted, err := c.Store.DeleteMissions(ctx, email)
	if err != nil {
		return 0, 0, fmt.Errorf("delete missions: %w", err)
	}

	remaining, err := c.Store.CountMissions(ctx, email)
	if err != nil {
		return deleted, 0, fmt.Errorf("verify delete: %w", err)
	}
	if remaining != 0 {
		return deleted, 0, ErrResetIncomplete
	}

	created, err := c.GeneratePersonalizedMissions(ctx, email, true)
	if err != nil {
		return deleted, 0, err
	}
	return deleted, created, nil
}
