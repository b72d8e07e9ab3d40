package rng

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ResolveSeed turns a user-supplied seed string into a 64-bit seed.
// Strings that parse as an unsigned integer after trimming surrounding
// whitespace are used directly. Anything else is hashed, so every string
// resolves to a seed and identical strings always resolve identically.
func ResolveSeed(seed string) uint64 {
	if v, err := strconv.ParseUint(strings.TrimSpace(seed), 10, 64); err == nil {
		return v
	}
	// Hash the original string, not the trimmed one: " cave" and "cave"
	// are distinct map codes.
	return xxhash.Sum64String(seed)
}

// EntropySeed returns a non-reproducible seed drawn from the process
// entropy source. Used when the caller requests no seed.
func EntropySeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}
