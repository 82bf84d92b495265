package suballoc

import (
	"math/bits"

	"github.com/flier/memutil/internal/debug"
)

// StorageReport summarizes the free space of an Allocator.
//
// TotalFreeSpace is the sum of all free runs. LargestFreeRegion is the size
// of the biggest single run; a request larger than it cannot succeed even
// when TotalFreeSpace would cover it.
type StorageReport struct {
	TotalFreeSpace    uint32
	LargestFreeRegion uint32
}

// Region describes the free runs of one size bin.
type Region struct {
	Size  uint32
	Count uint32
}

// StorageReportFull breaks the free space down per size bin.
type StorageReportFull struct {
	FreeRegions [NumLeafBins]Region
}

// StorageReport reports the total free space and the largest free run.
func (a *Allocator) StorageReport() StorageReport {
	report := StorageReport{TotalFreeSpace: a.freeStorage}

	if a.topBins != 0 {
		top := uint32(31 - bits.LeadingZeros32(a.topBins))
		leaf := uint32(31 - bits.LeadingZeros32(uint32(a.leafBins[top])))
		binIndex := top<<topBinShift | leaf

		// Runs are binned by rounded-down size, so the largest run lives
		// in the highest occupied bin but the bin floor under-reports it
		// by up to one mantissa step. Walk that one list for the exact
		// size.
		var largest uint32
		for index := a.binHeads[binIndex]; index != unused; index = a.nodes[index].binNext {
			if size := a.nodes[index].dataSize; size > largest {
				largest = size
			}
		}

		debug.Assert(a.freeStorage >= largest, "free storage %d below largest run %d", a.freeStorage, largest)
		report.LargestFreeRegion = largest
	}

	return report
}

// StorageReportFull counts the free runs of every size bin. It walks every
// bin list and is not constant time; it is meant for diagnostics and
// fragmentation analysis.
func (a *Allocator) StorageReportFull() StorageReportFull {
	var report StorageReportFull

	for bin := uint32(0); bin < NumLeafBins; bin++ {
		var count uint32
		for index := a.binHeads[bin]; index != unused; index = a.nodes[index].binNext {
			count++
		}

		report.FreeRegions[bin] = Region{Size: binToSize(bin), Count: count}
	}

	return report
}
