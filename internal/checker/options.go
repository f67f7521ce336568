package checker

import "github.com/jparise/humantime/internal/timeparse"

// Options contains all check parameters.
type Options struct {
	Patterns []string           // File paths or doublestar patterns
	Min      *timeparse.Elapsed // Smallest accepted value (nil = no minimum)
	Max      *timeparse.Elapsed // Largest accepted value (nil = no maximum)
	Jobs     int                // Maximum files checked concurrently
}
