package gamification

// LevelTier is one row of the ordered level table. Thresholds and level
// numbers are strictly increasing.
type LevelTier struct {
	Threshold int    `json:"threshold"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
}

// DefaultLevelTiers is the ten-tier progression curve.
var DefaultLevelTiers = []LevelTier{
	{0, "Beginner", 1},
	{50, "Saver", 2},
	{150, "Smart Saver", 3},
	{300, "Investor", 4},
	{500, "Pro Investor", 5},
	{800, "Finance Guru", 6},
	{1200, "Money Master", 7},
	{1800, "Wealth Builder", 8},
	{2500, "Financial Hero", 9},
	{3500, "Legend", 10},
}

// LevelInfo describes where a given XP total sits in the level curve.
type LevelInfo struct {
	Level     int     `json:"level"`
	Name      string  `json:"name"`
	XPInLevel int     `json:"xp_in_level"`
	XPNeeded  int     `json:"xp_needed"`
	Progress  float64 `json:"progress"`
	TotalXP   int     `json:"total_xp"`
}

// ResolveLevel maps a cumulative XP total to its level tier. It is a total
// function: any XP value resolves (negatives clamp to zero).
func ResolveLevel(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	idx := 0
	for i, tier := range DefaultLevelTiers {
		if totalXP >= tier.Threshold {
			idx = i
		} else {
			break
		}
	}

	tier := DefaultLevelTiers[idx]
	info := LevelInfo{
		Level:     tier.Level,
		Name:      tier.Name,
		XPInLevel: totalXP - tier.Threshold,
		TotalXP:   totalXP,
	}

	if idx+1 < len(DefaultLevelTiers) {
		info.XPNeeded = DefaultLevelTiers[idx+1].Threshold - tier.Threshold
		info.Progress = float64(info.XPInLevel) / float64(info.XPNeeded)
		if info.Progress > 1.0 {
			info.Progress = 1.0
		}
	} else {
		// Max level: nothing left to earn.
		info.XPNeeded = 0
		info.Progress = 1.0
	}
	return info
}
