package engine

// ActiveModifier returns the first modifier whose month window contains
// month, or nil when none matches. The caller supplies modifiers in the
// order the catalog returns them (priority, then creation time), so "first
// match" is deterministic. Months outside 1..12 match nothing.
func ActiveModifier(mods []SeasonalModifier, month int) *SeasonalModifier {
	if month < 1 || month > 12 {
		return nil
	}
	for i := range mods {
		if monthInWindow(month, mods[i].MonthStart, mods[i].MonthEnd) {
			return &mods[i]
		}
	}
	return nil
}

// monthInWindow reports whether month falls in the inclusive window
// [start, end]. A window with start > end wraps across year-end, so
// start=11 end=3 covers {11, 12, 1, 2, 3}.
func monthInWindow(month, start, end int) bool {
	if start < 1 || start > 12 || end < 1 || end > 12 {
		return false
	}
	if start <= end {
		return month >= start && month <= end
	}
	return month >= start || month <= end
}

// ActiveDisplaySeason maps a calendar month to the theming season. Spring
// months share the summer theme, so the partition is March–August summer,
// September–November fall, December–February winter. Out-of-range months
// fall back to summer so theming always has a value.
func ActiveDisplaySeason(month int) DisplaySeason {
	switch {
	case month >= 3 && month <= 8:
		return SeasonSummer
	case month >= 9 && month <= 11:
		return SeasonFall
	case month == 12 || month == 1 || month == 2:
		return SeasonWinter
	default:
		return SeasonSummer
	}
}
