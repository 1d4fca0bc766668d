package cache

import "time"

// Cache TTLs per entry kind. Generation is deterministic, so entries never
// go stale; the TTLs only bound storage growth.
const (
	// TTLImage applies to rendered PNG artifacts.
	TTLImage = 24 * time.Hour

	// TTLPalette applies to resolved prompt palettes.
	TTLPalette = 7 * 24 * time.Hour
)
