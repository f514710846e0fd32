package services

import "coinquest/models"

// levelThreshold is the XP needed to advance from the given level.
func levelThreshold(level int) int {
	return level * 100
}

// ApplyLeveling adds a mission reward to the profile and advances levels.
// The loop handles rewards large enough to cross several levels; each level
// crossed grants one skill point. TotalXP accumulates the raw reward and is
// never reduced by leveling.
func ApplyLeveling(p models.UserProgress, xpReward, goldReward int) (models.UserProgress, bool) {
	if p.Level < 1 {
		p.Level = 1
	}
	p.XP += xpReward
	p.TotalXP += xpReward
	p.Gold += goldReward

	leveled := false
	for p.XP >= levelThreshold(p.Level) {
		p.XP -= levelThreshold(p.Level)
		p.Level++
		p.SkillPoints++
		leveled = true
	}
	return p, leveled
}
