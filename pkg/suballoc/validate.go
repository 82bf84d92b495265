package suballoc

import (
	"fmt"

	"github.com/flier/memutil/internal/debug"
)

// validate asserts that every structural invariant holds. Mutating
// operations call it on exit in debug builds.
func (a *Allocator) validate() {
	err := a.checkInvariants()
	debug.Assert(err == nil, "%v", err)
}

// checkInvariants walks the whole allocator state and reports the first
// violated invariant: contiguous in-order coverage of the managed space by
// the neighbor list, no adjacent free runs, bin membership by rounded-down
// size, bitmap agreement with the bin lists, free-storage accounting, and
// the freelist/live-run partition of the node pool.
func (a *Allocator) checkInvariants() error {
	onFreelist := make([]bool, a.maxAllocs)

	depth := a.freeOffset + 1 // wraps to 0 on an empty stack
	if depth > a.maxAllocs {
		return fmt.Errorf("freelist depth %d exceeds capacity %d", depth, a.maxAllocs)
	}
	for _, index := range a.freeNodes[:depth] {
		if uint32(index) >= a.maxAllocs {
			return fmt.Errorf("freelist holds slot %d outside the pool", index)
		}
		if onFreelist[index] {
			return fmt.Errorf("slot %d on the freelist twice", index)
		}
		onFreelist[index] = true
	}

	// There must be exactly one live run without a previous neighbor.
	first := unused
	for i := range a.nodes {
		if onFreelist[i] || a.nodes[i].nbrPrev != unused {
			continue
		}
		if first != unused {
			return fmt.Errorf("both node %d and node %d start the neighbor list", first, i)
		}
		first = NodeIndex(i)
	}
	if first == unused {
		return fmt.Errorf("neighbor list has no first node")
	}

	// The neighbor list covers [0, size) contiguously, in offset order,
	// with no two adjacent free runs.
	visited := make([]bool, a.maxAllocs)

	var cursor, freeSum, liveFree, steps uint32
	prevFree := false
	for index := first; index != unused; {
		if steps++; steps > a.maxAllocs {
			return fmt.Errorf("neighbor list does not terminate")
		}
		if onFreelist[index] {
			return fmt.Errorf("slot %d is both live and on the freelist", index)
		}
		visited[index] = true

		node := &a.nodes[index]
		if node.dataOffset != cursor {
			return fmt.Errorf("node %d starts at %d, want %d", index, node.dataOffset, cursor)
		}
		if node.used {
			if node.binPrev != unused || node.binNext != unused {
				return fmt.Errorf("used node %d still has bin links", index)
			}
		} else {
			if prevFree {
				return fmt.Errorf("adjacent free runs at offset %d", node.dataOffset)
			}
			freeSum += node.dataSize
			liveFree++
		}
		prevFree = !node.used

		if node.nbrNext != unused && a.nodes[node.nbrNext].nbrPrev != index {
			return fmt.Errorf("neighbor links corrupt between %d and %d", index, node.nbrNext)
		}

		cursor = node.dataOffset + node.dataSize
		index = node.nbrNext
	}
	if cursor != a.size {
		return fmt.Errorf("runs cover [0, %d), want [0, %d)", cursor, a.size)
	}

	// Freelist plus live runs partition the pool.
	for i := range a.nodes {
		if !onFreelist[i] && !visited[i] {
			return fmt.Errorf("slot %d is neither live nor on the freelist", i)
		}
	}

	if freeSum != a.freeStorage {
		return fmt.Errorf("free storage counter is %d, runs sum to %d", a.freeStorage, freeSum)
	}

	// Bin lists hold exactly the free runs, filed by rounded-down size,
	// and the two-level bitmap mirrors which lists are non-empty.
	var binned uint32
	for bin := uint32(0); bin < NumLeafBins; bin++ {
		head := a.binHeads[bin]

		leafSet := a.leafBins[bin>>topBinShift]&(1<<(bin&leafBinMask)) != 0
		if (head != unused) != leafSet {
			return fmt.Errorf("leaf bit for bin %d does not match its list", bin)
		}

		prev := unused
		var steps uint32
		for index := head; index != unused; index = a.nodes[index].binNext {
			if steps++; steps > a.maxAllocs {
				return fmt.Errorf("bin %d list does not terminate", bin)
			}

			node := &a.nodes[index]
			if node.used {
				return fmt.Errorf("used node %d on the bin %d list", index, bin)
			}
			if !visited[index] {
				return fmt.Errorf("bin %d lists slot %d which is not a live run", bin, index)
			}
			if got := binRoundDown(node.dataSize); got != bin {
				return fmt.Errorf("node %d of size %d filed under bin %d, want %d", index, node.dataSize, bin, got)
			}
			if node.binPrev != prev {
				return fmt.Errorf("bin %d links corrupt at node %d", bin, index)
			}

			prev = index
			binned++
		}
	}
	if binned != liveFree {
		return fmt.Errorf("%d free runs live, %d filed in bins", liveFree, binned)
	}

	for i := uint32(0); i < numTopBins; i++ {
		if (a.topBins&(1<<i) != 0) != (a.leafBins[i] != 0) {
			return fmt.Errorf("top bit %d does not match leaf byte %#x", i, a.leafBins[i])
		}
	}

	return nil
}
