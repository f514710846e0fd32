package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Evaluator runs evaluation passes: snapshot the ledger, score every active
// mission, and pay out rewards exactly once through the store's conditional
// write. Concurrent passes for the same user are tolerated; the store's
// compare-and-set is the only exclusivity mechanism.
type Evaluator struct {
	ledger LedgerReader
	store  ProgressionStore
	notify func(models.ProgressionEvent)
}

func NewEvaluator(ledger LedgerReader, store ProgressionStore, notify func(models.ProgressionEvent)) *Evaluator {
	return &Evaluator{ledger: ledger, store: store, notify: notify}
}

var (
	defaultEvaluator *Evaluator
	defaultCatalog   *Catalog
	defaultStore     ProgressionStore
	defaultLedger    LedgerReader
)

// InitProgressionService wires the engine's singletons. Called once from main.
func InitProgressionService(ledger LedgerReader, store ProgressionStore, seasonMonths int, notify func(models.ProgressionEvent)) {
	defaultLedger = ledger
	defaultStore = store
	defaultEvaluator = NewEvaluator(ledger, store, notify)
	defaultCatalog = &Catalog{Store: store, SeasonMonths: seasonMonths}
}

func GetEvaluator() *Evaluator      { return defaultEvaluator }
func GetCatalog() *Catalog          { return defaultCatalog }
func GetStore() ProgressionStore    { return defaultStore }
func GetLedgerReader() LedgerReader { return defaultLedger }

// EvaluatePass loads the user's ledger once, evaluates every active mission
// tier- then order-ascending, and applies rewards. An upstream read failure
// aborts the pass before any write. Per-mission write failures leave that
// mission active for the next pass and do not abort the rest.
func (e *Evaluator) EvaluatePass(ctx context.Context, email string) (models.PassResult, error) {
	result := models.PassResult{CompletedMissions: []models.CompletedMission{}}

	profile, err := e.store.Profile(ctx, email)
	if err != nil {
		return result, fmt.Errorf("load profile: %w", err)
	}

	assets, err := e.ledger.Assets(ctx, email)
	if err != nil {
		return result, fmt.Errorf("read assets: %w", err)
	}
	debts, err := e.ledger.Debts(ctx, email)
	if err != nil {
		return result, fmt.Errorf("read debts: %w", err)
	}
	transactions, err := e.ledger.Transactions(ctx, email)
	if err != nil {
		return result, fmt.Errorf("read transactions: %w", err)
	}

	snap := Aggregate(assets, debts, transactions, time.Now())

	missions, err := e.store.Missions(ctx, email)
	if err != nil {
		return result, fmt.Errorf("load missions: %w", err)
	}

	// Tier- then order-ascending so a completion unlocks its successors
	// within the same pass.
	sort.Slice(missions, func(i, j int) bool {
		if missions[i].Tier != missions[j].Tier {
			return missions[i].Tier < missions[j].Tier
		}
		return missions[i].OrderIndex < missions[j].OrderIndex
	})

	working := make(map[primitive.ObjectID]models.Mission, len(missions))
	for _, m := range missions {
		working[m.ID] = m
	}

	tc := TriggerContext{Snapshot: snap, Profile: profile, Transactions: transactions}

	for _, m := range missions {
		if m.Status != models.MissionActive {
			continue
		}

		current, satisfied, known := EvaluateTrigger(m, tc)
		if !known {
			log.Printf("mission %s has unknown verification kind %q, skipping", m.ID.Hex(), m.VerificationKind)
			continue
		}

		// Progress is visible even when the mission is not yet satisfied.
		if err := e.store.SaveProgress(ctx, m.ID, current); err != nil {
			log.Printf("save progress for mission %s: %v", m.ID.Hex(), err)
		}
		m.CurrentProgress = current
		working[m.ID] = m

		if !satisfied || !CanComplete(m, working) {
			continue
		}

		// The store recomputes the leveling from a fresh profile read
		// inside its transaction; the profile loaded at pass start may be
		// stale by now if another pass granted in between.
		now := time.Now()
		next, leveled, err := e.store.ApplyReward(ctx, m.ID, current, now, email, MissionReward{
			XP:           m.XPReward,
			Gold:         m.GoldReward,
			DebtSnapshot: snap.TotalDebts,
		})
		if errors.Is(err, ErrRewardConflict) {
			// Another pass paid this mission out; count it as finished for
			// gating but grant nothing.
			m.Status = models.MissionCompleted
			working[m.ID] = m
			continue
		}
		if err != nil {
			log.Printf("apply reward for mission %s: %v", m.ID.Hex(), err)
			continue
		}

		profile = next
		tc.Profile = profile
		m.Status = models.MissionCompleted
		m.CompletedAt = &now
		working[m.ID] = m

		result.CompletedCount++
		result.TotalXPGained += m.XPReward
		result.TotalGoldGained += m.GoldReward
		result.CompletedMissions = append(result.CompletedMissions, models.CompletedMission{
			ID:         m.ID.Hex(),
			Title:      m.Title,
			XPReward:   m.XPReward,
			GoldReward: m.GoldReward,
			LeveledUp:  leveled,
			NewLevel:   profile.Level,
		})

		if e.notify != nil {
			e.notify(models.ProgressionEvent{
				Type:       models.EventMissionCompleted,
				UserEmail:  email,
				MissionID:  m.ID.Hex(),
				Title:      m.Title,
				XPReward:   m.XPReward,
				GoldReward: m.GoldReward,
				Timestamp:  now,
			})
			if leveled {
				e.notify(models.ProgressionEvent{
					Type:      models.EventLevelUp,
					UserEmail: email,
					NewLevel:  profile.Level,
					Timestamp: now,
				})
			}
		}
	}

	return result, nil
}

// ScorePass computes the composite performance score from a fresh ledger
// snapshot, rolls the net-worth baseline and last score forward for the
// next run, and notifies subscribers. A failed baseline write is logged but
// does not fail the calculation.
func (e *Evaluator) ScorePass(ctx context.Context, email string) (ScoreReport, models.FinancialSnapshot, error) {
	var snap models.FinancialSnapshot

	profile, err := e.store.Profile(ctx, email)
	if err != nil {
		return ScoreReport{}, snap, fmt.Errorf("load profile: %w", err)
	}

	assets, err := e.ledger.Assets(ctx, email)
	if err != nil {
		return ScoreReport{}, snap, fmt.Errorf("read assets: %w", err)
	}
	debts, err := e.ledger.Debts(ctx, email)
	if err != nil {
		return ScoreReport{}, snap, fmt.Errorf("read debts: %w", err)
	}
	transactions, err := e.ledger.Transactions(ctx, email)
	if err != nil {
		return ScoreReport{}, snap, fmt.Errorf("read transactions: %w", err)
	}
	budgets, err := e.ledger.BudgetCategories(ctx, email)
	if err != nil {
		return ScoreReport{}, snap, fmt.Errorf("read budget categories: %w", err)
	}
	goals, err := e.ledger.Goals(ctx, email)
	if err != nil {
		return ScoreReport{}, snap, fmt.Errorf("read goals: %w", err)
	}

	snap = Aggregate(assets, debts, transactions, time.Now())
	report := CalculateScore(ScoreInput{
		Snapshot:         snap,
		PreviousNetWorth: profile.PreviousNetWorth,
		LoginStreak:      profile.LoginStreak,
		Budgets:          budgets,
		Goals:            goals,
	})

	// Roll the baseline forward so the next run measures fresh growth.
	profile.PreviousNetWorth = snap.NetWorth
	profile.LastPerformanceScore = report.TotalScore
	if err := e.store.UpsertProfile(ctx, profile); err != nil {
		log.Printf("persist score baseline for %s: %v", email, err)
	}

	if e.notify != nil {
		e.notify(models.ProgressionEvent{
			Type:      models.EventScoreUpdated,
			UserEmail: email,
			NewScore:  report.TotalScore,
			Timestamp: time.Now(),
		})
	}
	return report, snap, nil
}
