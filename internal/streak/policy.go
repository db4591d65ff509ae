package streak

// NextStreak returns the streak after a fully successful run. A gap of at
// most one day, including a negative gap from a clock moved backwards,
// continues the streak, as does a first run. A longer gap starts a new
// streak at 1: the run still counts as the first day.
func NextStreak(old, gap int, firstRun bool) int {
	if old < 0 {
		old = 0
	}
	if firstRun || gap <= 1 {
		return old + 1
	}
	return 1
}

// MissedDays returns how many whole days were skipped for the given gap
func MissedDays(gap int) int {
	if gap <= 1 {
		return 0
	}
	return gap - 1
}
