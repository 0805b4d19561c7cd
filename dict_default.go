package gs1

import "fmt"

// DefaultDictionary returns the engine's embedded baseline AI table.
// It covers a representative slice of the GS1 General Specifications
// AI range — enough to exercise every component kind, DL role, and
// cross-AI validator the engine implements — rather than the full,
// several-hundred-entry real-world table (which would just be more of
// the same literal data). A caller embedding the engine in a
// production system is expected to supply its own Dictionary built
// from the authoritative GS1 AI table via NewDictionary.
func DefaultDictionary() *Dictionary {
	entries := defaultEntries()
	d, err := NewDictionary(entries)
	if err != nil {
		// A corrupt embedded dictionary is a fatal, load-time-only
		// condition (§7): the baseline table is a compile-time
		// constant, so disagreement here can only mean a
		// programming error in this file.
		panic(fmt.Sprintf("gs1: embedded default dictionary failed to load: %v", err))
	}
	return d
}

func defaultEntries() []Entry {
	var e []Entry

	e = append(e,
		Entry{
			Code: "00", FNC1Required: false, DLClass: DLNone,
			Components: []Component{{CSet: CSetN, Min: 18, Max: 18, Opt: OptMandatory, Linters: []LinterFunc{LintMod10CheckDigit}}},
			DLPKey:     true,
		},
		Entry{
			Code: "01", FNC1Required: false, DLClass: DLNone,
			Components: []Component{{CSet: CSetN, Min: 14, Max: 14, Opt: OptMandatory, Linters: []LinterFunc{LintMod10CheckDigit}}},
			DLPKey:     true, DLPQualChain: [][]string{{"22", "10", "21"}},
		},
		Entry{
			Code: "10", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Opt: OptMandatory}},
		},
		Entry{
			Code: "17", FNC1Required: false, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 6, Max: 6, Opt: OptMandatory, Linters: []LinterFunc{LintYYMMDD}}},
		},
		Entry{
			Code: "21", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Opt: OptMandatory}},
		},
		Entry{
			Code: "22", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Opt: OptMandatory}},
		},
		Entry{
			Code: "240", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
		},
		Entry{
			Code: "241", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
		},
		Entry{
			Code: "242", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 1, Max: 6, Opt: OptMandatory}},
		},
		Entry{
			Code: "243", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Opt: OptMandatory}},
		},
		Entry{
			Code: "250", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
		},
		Entry{
			Code: "251", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
		},
		// 253/255 carry a mandatory fixed-length key and an
		// optional variable-length serial; DIGSIG_SERIAL_KEY (§4.7)
		// treats "value longer than the minimum" as "serial present".
		Entry{
			Code: "253", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{
				{CSet: CSetN, Min: 13, Max: 13, Opt: OptMandatory},
				{CSet: CSetX, Min: 0, Max: 17, Opt: OptOptional},
			},
		},
		Entry{
			Code: "255", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{
				{CSet: CSetN, Min: 13, Max: 13, Opt: OptMandatory},
				{CSet: CSetN, Min: 0, Max: 12, Opt: OptOptional},
			},
		},
		Entry{
			Code: "254", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 20, Opt: OptMandatory}},
		},
		Entry{
			Code: "401", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
		},
		Entry{
			Code: "402", FNC1Required: false, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 17, Max: 17, Opt: OptMandatory, Linters: []LinterFunc{LintMod10CheckDigit}}},
		},
		Entry{
			Code: "403", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
			Requisites: []ReqGroup{{Alternatives: [][]string{{"402"}}}},
		},
		Entry{
			Code: "421", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{
				{CSet: CSetN, Min: 3, Max: 3, Opt: OptMandatory, Linters: []LinterFunc{LintISO3166Numeric}},
				{CSet: CSetX, Min: 1, Max: 9, Opt: OptMandatory},
			},
		},
		Entry{
			Code: "422", FNC1Required: false, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 3, Max: 3, Opt: OptMandatory, Linters: []LinterFunc{LintISO3166Numeric}}},
		},
		Entry{
			Code: "423", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 3, Max: 15, Opt: OptMandatory}},
		},
		Entry{
			Code: "8003", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 14, Max: 30, Opt: OptMandatory}},
		},
		Entry{
			Code: "8004", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
		},
		Entry{
			Code: "8005", FNC1Required: false, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 6, Max: 6, Opt: OptMandatory}},
		},
		Entry{
			Code: "8008", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 8, Max: 12, Opt: OptMandatory, Linters: []LinterFunc{lintProductionDateTime}}},
		},
		Entry{
			Code: "8018", FNC1Required: false, DLClass: DLNone,
			Components: []Component{{CSet: CSetN, Min: 18, Max: 18, Opt: OptMandatory, Linters: []LinterFunc{LintMod10CheckDigit}}},
			DLPKey:     true,
		},
		Entry{
			Code: "8030", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetZ, Min: 1, Max: 500, Opt: OptMandatory}},
		},
		Entry{
			Code: "8200", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 70, Opt: OptMandatory}},
		},
		Entry{
			Code: "90", FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 30, Opt: OptMandatory}},
		},
	)

	// 91-99: internal company use, free-form attributes. 98 and 99
	// are exercised directly by the boundary scenarios in §8.
	for n := 91; n <= 99; n++ {
		e = append(e, Entry{
			Code: fmt.Sprintf("%d", n), FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetX, Min: 1, Max: 90, Opt: OptMandatory}},
		})
	}

	// 3100-3105: net/gross weight in kilograms, decimal place
	// implied by the AI's last digit (not separately modeled here:
	// the component is a plain 6-digit numeric field).
	for n := 0; n <= 5; n++ {
		e = append(e, Entry{
			Code: fmt.Sprintf("310%d", n), FNC1Required: false, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 6, Max: 6, Opt: OptMandatory}},
		})
	}

	// 392n / 393n: amount payable in single monetary area, and
	// amount payable with an explicit ISO 4217 currency prefix.
	// These two families mutually exclude each other (§4.7's
	// MUTEX_AIS example: "392n matches 3925"), expressed here as a
	// digit-prefix Mutex token rather than ten explicit pairs.
	for n := 0; n <= 9; n++ {
		e = append(e, Entry{
			Code: fmt.Sprintf("392%d", n), FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 1, Max: 15, Opt: OptMandatory}},
			Mutex:      []ExGroup{{AIs: []string{"393"}}},
		})
		e = append(e, Entry{
			Code: fmt.Sprintf("393%d", n), FNC1Required: true, DLClass: DLPermitted,
			Components: []Component{
				{CSet: CSetN, Min: 3, Max: 3, Opt: OptMandatory, Linters: []LinterFunc{LintISO4217}},
				{CSet: CSetN, Min: 1, Max: 15, Opt: OptMandatory},
			},
			Mutex: []ExGroup{{AIs: []string{"392"}}},
		})
	}

	// 410-417: GLN-based logistics references. 414 is a DL primary
	// key with a single-element qualifier chain (254, the GLN
	// extension component); 417 is a bare primary key.
	for n := 0; n <= 7; n++ {
		code := fmt.Sprintf("41%d", n)
		ent := Entry{
			Code: code, FNC1Required: false, DLClass: DLPermitted,
			Components: []Component{{CSet: CSetN, Min: 13, Max: 13, Opt: OptMandatory, Linters: []LinterFunc{LintMod10CheckDigit}}},
		}
		if code == "414" {
			ent.DLClass = DLNone
			ent.DLPKey = true
			ent.DLPQualChain = [][]string{{"254"}}
		}
		if code == "417" {
			ent.DLClass = DLNone
			ent.DLPKey = true
		}
		e = append(e, ent)
	}

	return e
}

// lintProductionDateTime validates AI 8008's YYMMDDHHMM[SS]
// structure: the first six digits as a date, the rest as a
// time-of-day.
func lintProductionDateTime(value []byte) (int, int, LinterCode) {
	if len(value) < 8 {
		return 0, len(value), LintIllegalDay
	}
	if pos, ln, code := lintYYMMDD(value[:6]); code != LintOK {
		return pos, ln, code
	}
	if pos, ln, code := lintHHMM(value[6:]); code != LintOK {
		return pos + 6, ln, code
	}
	return 0, 0, LintOK
}
