// Package hashing provides duplicate detection for chess games.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DuplicateDetector tracks seen games for duplicate game detection.
type DuplicateDetector struct {
	// hashTable maps final-position hashes to the games that reached them
	hashTable map[uint64][]entry
	// useExactMatch also compares move sequences
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a placement hash for additional confidence
	WeakHash uint64
	// MoveHash hashes the moves played
	MoveHash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
}

type entry struct {
	name string
	sig  GameSignature
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]entry),
		useExactMatch: exactMatch,
	}
}

// Signature computes the signature of a game in its current state.
func Signature(g *engine.Game) GameSignature {
	pos := g.Position()
	return GameSignature{
		Hash:      ZobristHash(pos),
		WeakHash:  WeakHash(pos),
		MoveHash:  hashMoveSequence(g),
		MoveCount: g.Ply(),
	}
}

// CheckAndAdd checks if a game is a duplicate of one seen earlier and
// records it under name. It returns the name of the earlier game.
func (d *DuplicateDetector) CheckAndAdd(name string, g *engine.Game) (string, bool) {
	if g == nil {
		return "", false
	}
	sig := Signature(g)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing.sig) {
			d.duplicateCount++
			return existing.name, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], entry{name: name, sig: sig})
	return "", false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch {
		return a.MoveCount == b.MoveCount && a.MoveHash == b.MoveHash
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, entries := range d.hashTable {
		count += len(entries)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]entry)
	d.duplicateCount = 0
}

// hashMoveSequence creates a hash from the long algebraic move texts.
func hashMoveSequence(g *engine.Game) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, m := range g.History() {
		for _, c := range m.String() {
			hash = hash*multiplier + uint64(c)
		}
	}

	return hash
}
