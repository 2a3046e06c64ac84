package id

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator issues unique identifiers for newly created records.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces 28-hex-char identifiers: a 48-bit millisecond
// timestamp followed by a 64-bit random tail. Lexical order of IDs follows
// creation order across milliseconds, which keeps result listings and
// btree index pages roughly append-only.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(time.Now().UnixMilli()))

	var buf [14]byte
	copy(buf[:6], ts[2:])
	if _, err := rand.Read(buf[6:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf[:]), nil
}
