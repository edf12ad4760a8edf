package fx

import (
	"github.com/but80/m8kit/m8/enums"
)

var seqV2 = []string{
	"ARP", "CHA", "DEL", "GRV", "HOP", "KIL", "RAN", "RET",
	"REP", "NTH", "PSL", "PSN", "PVB", "PVX", "SCA", "SCG",
	"SED", "SNG", "TBL", "THO", "TIC", "TPO", "TSP",
}

var seqV3 = []string{
	"ARP", "CHA", "DEL", "GRV", "HOP", "KIL", "RND", "RNL",
	"RET", "REP", "RMX", "NTH", "PSL", "PBN", "PVB", "PVX",
	"SCA", "SCG", "SED", "SNG", "TBL", "THO", "TIC", "TBX",
	"TPO", "TSP", "OFF",
}

var mixV2 = []string{
	"VMV", "XCM", "XCF", "XCW", "XCR", "XDT", "XDF", "XDW",
	"XDR", "XRS", "XRD", "XRM", "XRF", "XRW", "XRZ", "VCH",
	"VCD", "VRE", "VT1", "VT2", "VT3", "VT4", "VT5", "VT6",
	"VT7", "VT8", "DJF", "IVO", "ICH", "IDE", "IRE", "IV2",
	"IC2", "ID2", "IR2", "USB",
}

var mixV4 = []string{
	"VMV", "XCM", "XCF", "XCW", "XCR", "XDT", "XDF", "XDW",
	"XDR", "XRS", "XRD", "XRM", "XRF", "XRW", "XRZ", "VCH",
	"VDE", "VRE", "VT1", "VT2", "VT3", "VT4", "VT5", "VT6",
	"VT7", "VT8", "DJC", "VIN", "ICH", "IDE", "IRE", "VI2",
	"IC2", "ID2", "IR2", "USB", "DJR", "DJT", "EQM", "EQI",
	"INS", "RTO", "ARC", "GGR",
}

func concat(lists ...[]string) []string {
	var result []string
	for _, l := range lists {
		result = append(result, l...)
	}
	return result
}

var families = map[enums.FXFamily]struct {
	seq, all []string
}{
	enums.FXFamily_V2: {seqV2, concat(seqV2, mixV2)},
	enums.FXFamily_V3: {seqV3, concat(seqV3, mixV2)},
	enums.FXFamily_V4: {seqV3, concat(seqV3, mixV4)},
}

// Names returns the sequencer and mixer commands of a family, indexed by code.
func Names(f enums.FXFamily) []string {
	return families[f].all
}

// SequencerCount returns how many of Names(f) are sequencer commands.
func SequencerCount(f enums.FXFamily) int {
	return len(families[f].seq)
}
