package ledger

// LevelForXP derives the level from total experience points. Level 1
// spans [0,100) XP and every level's span is 100 XP wider than the
// previous one, so the cumulative thresholds run 100, 300, 600, 1000…
// Returns the level, the XP progressed into the current span, and the
// span's width. Always recomputed from the XP total so the level can
// never drift from its source value.
func LevelForXP(xp int) (level, xpInto, span int) {
	if xp < 0 {
		xp = 0
	}
	level = 1
	span = 100
	for xp >= span {
		xp -= span
		level++
		span += 100
	}
	return level, xp, span
}
