package gamification

import "testing"

func TestResolveLevelZero(t *testing.T) {
	info := ResolveLevel(0)
	if info.Level != 1 || info.Name != "Beginner" {
		t.Fatalf("level=%d name=%q, want 1 Beginner", info.Level, info.Name)
	}
	if info.Progress != 0 || info.XPInLevel != 0 {
		t.Fatalf("progress=%v xp_in_level=%d, want zero", info.Progress, info.XPInLevel)
	}
	if info.XPNeeded != 50 {
		t.Fatalf("xp_needed=%d, want 50", info.XPNeeded)
	}
}

func TestResolveLevelMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 4000; xp++ {
		level := ResolveLevel(xp).Level
		if level < prev {
			t.Fatalf("level decreased at xp=%d: %d -> %d", xp, prev, level)
		}
		prev = level
	}
}

func TestResolveLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp    int
		level int
		name  string
	}{
		{49, 1, "Beginner"},
		{50, 2, "Saver"},
		{149, 2, "Saver"},
		{150, 3, "Smart Saver"},
		{3499, 9, "Financial Hero"},
		{3500, 10, "Legend"},
	}
	for _, c := range cases {
		info := ResolveLevel(c.xp)
		if info.Level != c.level || info.Name != c.name {
			t.Errorf("ResolveLevel(%d)=%d %q, want %d %q", c.xp, info.Level, info.Name, c.level, c.name)
		}
	}
}

func TestResolveLevelMaxTier(t *testing.T) {
	for _, xp := range []int{3500, 5000, 1 << 20} {
		info := ResolveLevel(xp)
		if info.Level != 10 {
			t.Fatalf("ResolveLevel(%d).Level=%d, want 10", xp, info.Level)
		}
		if info.XPNeeded != 0 || info.Progress != 1.0 {
			t.Fatalf("max tier xp=%d: needed=%d progress=%v, want 0/1.0", xp, info.XPNeeded, info.Progress)
		}
	}
}

func TestResolveLevelProgressClamped(t *testing.T) {
	info := ResolveLevel(-10)
	if info.Level != 1 || info.TotalXP != 0 {
		t.Fatalf("negative xp should clamp to zero, got %+v", info)
	}
	for xp := 0; xp <= 4000; xp += 7 {
		p := ResolveLevel(xp).Progress
		if p < 0 || p > 1.0 {
			t.Fatalf("progress out of range at xp=%d: %v", xp, p)
		}
	}
}
