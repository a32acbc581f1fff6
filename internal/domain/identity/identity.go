// Package identity derives stable local identifiers for places sourced
// from a provider that issues no durable id. The same place, re-fetched by
// an independent query, hashes onto the same identifier so favorites can
// deduplicate across searches.
package identity

import (
	"fmt"
	"math"
	"unicode/utf16"
)

const (
	hashSeed       = 17
	hashMultiplier = 31
)

// StablePlaceID returns a deterministic non-negative 32-bit identifier for
// a place. The key is the name joined with the coordinate rounded to six
// decimal places (~0.11 m), so coordinate jitter beyond the sixth decimal
// does not change the id. The hash folds the key's UTF-16 code units, which
// keeps ids stable for names outside the BMP as well.
//
// Two genuinely different places may collide; callers that care should
// audit (see the place service). No randomness, no clock.
func StablePlaceID(name string, lon, lat float64) int32 {
	key := fmt.Sprintf("%s_%.6f_%.6f", name, lon, lat)

	hash := int32(hashSeed)
	for _, unit := range utf16.Encode([]rune(key)) {
		hash = hash*hashMultiplier + int32(unit)
	}

	if hash == math.MinInt32 {
		// |MinInt32| is not representable; pin to zero instead of overflowing.
		return 0
	}
	if hash < 0 {
		return -hash
	}

	return hash
}
