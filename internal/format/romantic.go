package format

// Romantic covers the 8th Edition through Magic 2013 era: every
// Standard-legal expansion and core set from 8ED to M13, including the
// Time Spiral timeshifted sheet.
var romanticSets = []string{
	"8ED", "MRD", "DST", "5DN",
	"CHK", "BOK", "SOK", "9ED",
	"RAV", "GPT", "DIS", "CSP",
	"TSP", "TSB", "PLC", "FUT",
	"10E", "LRW", "MOR", "SHM", "EVE",
	"ALA", "CON", "ARB", "M10",
	"ZEN", "WWK", "ROE", "M11",
	"SOM", "MBS", "NPH", "M12",
	"ISD", "DKA", "AVR", "M13",
}

var romanticBans = []string{
	"Gitaxian Probe",
	"Mental Misstep",
	"Blazing Shoal",
	"Skullclamp",
}

// Romantic returns the default Romantic format definition.
func Romantic() *Format {
	return New("Romantic", romanticSets, romanticBans)
}
