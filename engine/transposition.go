package engine

import (
	"unsafe"

	"hexchess-engine/hexmg"
)

const (
	// Flags
	AlphaFlag = iota
	BetaFlag
	ExactFlag

	// In MB
	TTSize      = 64
	clusterSize = 4

	// Unusable score
	UnusableScore = -32750
)

type TransTable struct {
	isInitialized bool
	entries       []TTEntry
	clusterCount  uint64
}

type TTEntry struct {
	Hash  uint64
	Depth int8
	Move  hexmg.Move
	Score int16
	Flag  int8
}

func (TT *TransTable) clearTT() {
	TT.entries = nil
	TT.isInitialized = false
	TT.clusterCount = 0
}

func (TT *TransTable) init() {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(TTSize) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	TT.clusterCount = clusterCount
	TT.entries = make([]TTEntry, TT.clusterCount*clusterSize)
	TT.isInitialized = true
}

func (TT *TransTable) useEntry(ttEntry *TTEntry, hash uint64, depth int8, alpha int16, beta int16, ply int8) (usable bool, score int16) {
	score = UnusableScore
	usable = false
	if ttEntry != nil && ttEntry.Hash == hash {
		if ttEntry.Depth >= depth {
			// Mate scores are stored node-relative; shift them back to being
			// relative to this node before use.
			norm := ttEntry.Score
			if norm > int16(Checkmate) {
				norm -= int16(ply)
			} else if norm < -int16(Checkmate) {
				norm += int16(ply)
			}
			switch ttEntry.Flag {
			case ExactFlag:
				usable = true
				score = norm
			case AlphaFlag:
				if norm <= alpha {
					usable = true
					score = alpha
				}
			case BetaFlag:
				if norm >= beta {
					usable = true
					score = beta
				}
			}
		}
	}
	return usable, score
}

func (TT *TransTable) getEntry(hash uint64) (entry *TTEntry, found bool) {
	if TT.clusterCount == 0 {
		return nil, false
	}

	clusterIndex := hash % TT.clusterCount
	start := int(clusterIndex * clusterSize)
	for i := 0; i < clusterSize; i++ {
		next := &TT.entries[start+i]
		if next.Hash == hash {
			return next, true
		}
	}
	return nil, false
}

// Always-replace scheme: prefer updating the same hash, then an empty slot,
// otherwise evict the shallowest entry in the cluster.
func (TT *TransTable) storeEntry(hash uint64, depth int8, ply int8, move hexmg.Move, score int16, flag int8) {
	if TT.clusterCount == 0 {
		return
	}

	clusterIndex := hash % TT.clusterCount
	base := int(clusterIndex * clusterSize)

	// Mate scores get the ply added back so they are stored node-relative.
	if score > int16(Checkmate) {
		score += int16(ply)
	}
	if score < -int16(Checkmate) {
		score -= int16(ply)
	}

	targetIdx := -1
	for i := 0; i < clusterSize; i++ {
		idx := base + i
		if TT.entries[idx].Hash == hash {
			targetIdx = idx
			break
		}
	}

	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			idx := base + i
			if TT.entries[idx].Hash == 0 {
				targetIdx = idx
				break
			}
		}
	}

	if targetIdx == -1 {
		targetIdx = base
		minDepth := TT.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			idx := base + i
			if TT.entries[idx].Depth < minDepth {
				minDepth = TT.entries[idx].Depth
				targetIdx = idx
			}
		}
	}

	entry := &TT.entries[targetIdx]
	entry.Hash = hash
	entry.Depth = depth
	entry.Move = move
	entry.Flag = flag
	entry.Score = score
}
