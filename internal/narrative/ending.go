package narrative

// Ending is one of the five closing outcomes of a playthrough.
type Ending int

const (
	EndingUnset Ending = iota
	EndingReturnHome
	EndingTrappedHappy
	EndingMergeWorlds
	// EndingParadoxTruth has a label but no path assigns it. The truth branch
	// always resolves into one of the other four endings.
	EndingParadoxTruth
	EndingSacrificeReset
)

var endingNames = map[Ending]string{
	EndingUnset:          "UNSET",
	EndingReturnHome:     "RETURN_HOME",
	EndingTrappedHappy:   "TRAPPED_HAPPY",
	EndingMergeWorlds:    "MERGE_WORLDS",
	EndingParadoxTruth:   "PARADOX_TRUTH",
	EndingSacrificeReset: "SACRIFICE_RESET",
}

var endingLabels = map[Ending]string{
	EndingReturnHome:     "ENDING 1: PULANG - Kamu kembali ke dimensimu",
	EndingTrappedHappy:   "ENDING 2: AWAL BARU - Kamu tinggal di dimensi baru",
	EndingMergeWorlds:    "ENDING 3: KESATUAN - Dua dimensi bergabung",
	EndingParadoxTruth:   "ENDING 4: PARADOKS - Kebenaran tentang dirimu terbongkar",
	EndingSacrificeReset: "ENDING 5: PENGORBANAN - Kamu mengorbankan diri untuk semua",
}

// String returns the enumeration name, e.g. "RETURN_HOME".
func (e Ending) String() string {
	if name, ok := endingNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

// Label returns the player-facing summary line for the ending, or "" when the
// ending is unset or unknown.
func (e Ending) Label() string {
	return endingLabels[e]
}

// Valid reports whether e is one of the five terminal endings.
func (e Ending) Valid() bool {
	return e >= EndingReturnHome && e <= EndingSacrificeReset
}
