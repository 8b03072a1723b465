package datetime

// Zone offsets from UTC, in minutes.
const (
	GMTMinus12 = -720
	GMTMinus11 = -660
	GMTMinus10 = -600
	GMTMinus9  = -540
	GMTMinus8  = -480
	GMTMinus7  = -420
	GMTMinus6  = -360
	GMTMinus5  = -300
	GMTMinus4  = -240
	GMTMinus3  = -180
	GMTMinus2  = -120
	GMTMinus1  = -60
	GMT        = 0
	GMTPlus1   = 60
	GMTPlus2   = 120
	GMTPlus3   = 180
	GMTPlus4   = 240
	GMTPlus5   = 300
	GMTPlus6   = 360
	GMTPlus7   = 420
	GMTPlus8   = 480
	GMTPlus9   = 540
	GMTPlus10  = 600
	GMTPlus11  = 660
	GMTPlus12  = 720

	UT = GMT

	EST = GMTMinus5
	EDT = GMTMinus4
	CST = GMTMinus6
	CDT = GMTMinus5
	MST = GMTMinus7
	MDT = GMTMinus6
	PST = GMTMinus8
	PDT = GMTMinus7
)

// zoneNames maps the zone names allowed by RFC 2822, including the obsolete
// single letter military zones, to their offsets. Lookups are case-sensitive.
// There is no J.
var zoneNames = map[string]int{
	"UT":  UT,
	"GMT": GMT,
	"Z":   GMT,

	"EST": EST,
	"EDT": EDT,
	"CST": CST,
	"CDT": CDT,
	"MST": MST,
	"MDT": MDT,
	"PST": PST,
	"PDT": PDT,

	"A": GMTMinus1,
	"B": GMTMinus2,
	"C": GMTMinus3,
	"D": GMTMinus4,
	"E": GMTMinus5,
	"F": GMTMinus6,
	"G": GMTMinus7,
	"H": GMTMinus8,
	"I": GMTMinus9,
	"K": GMTMinus10,
	"L": GMTMinus11,
	"M": GMTMinus12,

	"N": GMTPlus1,
	"O": GMTPlus2,
	"P": GMTPlus3,
	"Q": GMTPlus4,
	"R": GMTPlus5,
	"S": GMTPlus6,
	"T": GMTPlus7,
	"U": GMTPlus8,
	"V": GMTPlus9,
	"W": GMTPlus10,
	"X": GMTPlus11,
	"Y": GMTPlus12,
}

// ZoneOffset returns the offset in minutes of a named zone, such as "EST" or
// "Z". The second value is false if the name is not known.
func ZoneOffset(name string) (int, bool) {
	z, ok := zoneNames[name]
	return z, ok
}
