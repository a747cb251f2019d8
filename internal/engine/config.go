package engine

// Config bounds an Engine's capacity. Fields default to spec.md §2/§3's
// constants (D=100, MAX_TOTAL=1000, MAX_DAILY=7); cmd/schedulerd exposes
// these as flags so tests and operators can shrink them without
// recompiling (SPEC_FULL.md §6.2).
type Config struct {
	// Doctors is the number of valid doctor ids, D. Valid doctor ids are
	// [0, Doctors).
	Doctors int
	// MaxTotal is the global live-event cap per doctor timeline.
	MaxTotal int
	// MaxDaily is the live-event cap per calendar day per doctor timeline.
	MaxDaily int
}

// DefaultConfig returns the constants spec.md §2/§3 specifies.
func DefaultConfig() Config {
	return Config{
		Doctors:  100,
		MaxTotal: 1000,
		MaxDaily: 7,
	}
}

func (c Config) validDoctor(doctor int) bool {
	return doctor >= 0 && doctor < c.Doctors
}
