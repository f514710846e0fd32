package services

import (
	"testing"

	"coinquest/models"
)

func TestApplyLevelingNoLevelUp(t *testing.T) {
	p := models.UserProgress{Level: 1}
	next, leveled := ApplyLeveling(p, 50, 10)

	if leveled {
		t.Errorf("Expected no level up at 50 xp")
	}
	if next.Level != 1 || next.XP != 50 || next.TotalXP != 50 || next.Gold != 10 {
		t.Errorf("Unexpected profile after reward: %+v", next)
	}
}

func TestApplyLevelingMultiLevel(t *testing.T) {
	// 80 xp at level 1, reward of 250: crosses level 1 (100) and level 2
	// (200), landing at level 3 with 30 xp and two skill points.
	p := models.UserProgress{Level: 1, XP: 80, TotalXP: 80}
	next, leveled := ApplyLeveling(p, 250, 0)

	if !leveled {
		t.Errorf("Expected level up")
	}
	if next.Level != 3 {
		t.Errorf("Expected level 3, got %d", next.Level)
	}
	if next.XP != 30 {
		t.Errorf("Expected 30 xp remaining, got %d", next.XP)
	}
	if next.SkillPoints != 2 {
		t.Errorf("Expected 2 skill points, got %d", next.SkillPoints)
	}
	if next.TotalXP != 330 {
		t.Errorf("Expected total xp 330, got %d", next.TotalXP)
	}
}

func TestApplyLevelingExactThreshold(t *testing.T) {
	p := models.UserProgress{Level: 1}
	next, leveled := ApplyLeveling(p, 100, 0)

	if !leveled || next.Level != 2 || next.XP != 0 {
		t.Errorf("Expected exact threshold to level up to 2 with 0 xp, got %+v", next)
	}
}

func TestApplyLevelingZeroLevelProfile(t *testing.T) {
	// A zero-valued profile is treated as level 1.
	next, _ := ApplyLeveling(models.UserProgress{}, 10, 0)
	if next.Level != 1 || next.XP != 10 {
		t.Errorf("Expected level 1 with 10 xp, got %+v", next)
	}
}
