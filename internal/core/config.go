package core

import "time"

// RuntimeConfig contains presenter-level settings passed to the game at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// ResolveSeed returns Seed, or a time-based seed when Seed is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	return ResolveSeed(c.Seed)
}

// ResolveSeed returns seed unchanged unless it is 0, in which case the wall clock is used.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
