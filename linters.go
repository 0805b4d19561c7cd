package gs1

// LinterFunc is a pure function of a component's value bytes, per
// §4.3: it never mutates engine state and returns either LintOK or a
// failure code plus the byte span within value responsible for it.
// Linters are treated as an external capability set: this file
// supplies a documented, minimal set covering the cases spec.md names
// explicitly (check digit, date/time components, packaging indicator,
// non-zero quantity, ISO 3166/4217 membership; there is no piece-count
// linter); a production dictionary
// could swap in richer, externally maintained linters behind the same
// signature without touching the dispatch logic below.
type LinterFunc func(value []byte) (errPos, errLen int, code LinterCode)

// RunComponent validates value against a single component's schema:
// the character-set linter runs first, then each additional linter in
// order, short-circuiting on the first failure (§4.3).
func RunComponent(ai string, value []byte, c Component) *LinterError {
	cs := charsetFor(c.CSet)
	for i, b := range value {
		if !cs.has(rune(b)) {
			return &LinterError{
				Code:   charsetLintCode(c.CSet),
				AI:     ai,
				Markup: buildMarkup(ai, value, i, 1),
			}
		}
	}
	for _, lint := range c.Linters {
		if pos, ln, code := lint(value); code != LintOK {
			return &LinterError{Code: code, AI: ai, Markup: buildMarkup(ai, value, pos, ln)}
		}
	}
	return nil
}

// LintMod10CheckDigit validates a GS1 mod-10 check digit against the
// last character of value (used by GTIN, SSCC and similar numeric
// identifiers).
func LintMod10CheckDigit(value []byte) (int, int, LinterCode) {
	if len(value) == 0 {
		return 0, 0, LintOK
	}
	sum := 0
	// Weight alternates 3,1,3,1... starting from the digit
	// immediately left of the check digit.
	weight := 3
	for i := len(value) - 2; i >= 0; i-- {
		d := int(value[i] - '0')
		sum += d * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	expect := (10 - sum%10) % 10
	got := int(value[len(value)-1] - '0')
	if got != expect {
		return len(value) - 1, 1, LintIncorrectCheckDigit
	}
	return 0, 0, LintOK
}

// yymmdd validates a 6-digit YYMMDD date component, with day 00
// permitted (meaning "end of month", per GS1 convention for
// best-before style dates).
func lintYYMMDD(value []byte) (int, int, LinterCode) {
	if len(value) != 6 {
		return 0, len(value), LintIllegalDay
	}
	month := int(value[2]-'0')*10 + int(value[3]-'0')
	day := int(value[4]-'0')*10 + int(value[5]-'0')
	if month < 1 || month > 12 {
		return 2, 2, LintIllegalMonth
	}
	if day < 0 || day > 31 {
		return 4, 2, LintIllegalDay
	}
	return 0, 0, LintOK
}

// LintYYMMDD is exported so dictionary tables (including
// DefaultDictionary) can reference it as a Component linter.
var LintYYMMDD LinterFunc = lintYYMMDD

func lintHHMM(value []byte) (int, int, LinterCode) {
	if len(value) < 4 {
		return 0, len(value), LintIllegalHour
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[2]-'0')*10 + int(value[3]-'0')
	if hour > 23 {
		return 0, 2, LintIllegalHour
	}
	if minute > 59 {
		return 2, 2, LintIllegalMinute
	}
	if len(value) >= 6 {
		second := int(value[4]-'0')*10 + int(value[5]-'0')
		if second > 59 {
			return 4, 2, LintIllegalSecond
		}
	}
	return 0, 0, LintOK
}

// LintHHMM validates an HHMM or HHMMSS time-of-day component.
var LintHHMM LinterFunc = lintHHMM

// LintPackagingIndicator validates the single-digit packaging
// indicator component used by variable-measure trade item AIs (e.g.
// the leading digit of AI 8006's component structure).
func LintPackagingIndicator(value []byte) (int, int, LinterCode) {
	if len(value) != 1 || value[0] < '0' || value[0] > '9' {
		return 0, len(value), LintIllegalPackagingIndicator
	}
	return 0, 0, LintOK
}

// iso3166Alpha2 is a representative (not exhaustive) set of ISO 3166-1
// alpha-2 country codes; no entry of DefaultDictionary uses it.
// Linter bodies are explicitly out of scope beyond their documented
// contract (spec.md §1/§4.3); this table exists to exercise the
// dispatch mechanism, not to be a complete ISO 3166 implementation.
var iso3166Alpha2 = map[string]bool{
	"AU": true, "BE": true, "BR": true, "CA": true, "CH": true,
	"CN": true, "DE": true, "DK": true, "ES": true, "FR": true,
	"GB": true, "IE": true, "IN": true, "IT": true, "JP": true,
	"KR": true, "MX": true, "NL": true, "NZ": true, "PL": true,
	"SE": true, "SG": true, "US": true, "ZA": true,
}

func LintISO3166Alpha2(value []byte) (int, int, LinterCode) {
	if !iso3166Alpha2[string(value)] {
		return 0, len(value), LintUndefinedISO3166Alpha2
	}
	return 0, 0, LintOK
}

// iso3166Numeric mirrors iso3166Alpha2 but for the 3-digit numeric
// country codes, used by AIs 421 and 422 in DefaultDictionary.
var iso3166Numeric = map[string]bool{
	"036": true, "056": true, "076": true, "124": true, "156": true,
	"208": true, "250": true, "276": true, "356": true, "372": true,
	"380": true, "392": true, "410": true, "484": true, "528": true,
	"554": true, "578": true, "702": true, "710": true, "724": true,
	"752": true, "756": true, "826": true, "840": true,
}

func LintISO3166Numeric(value []byte) (int, int, LinterCode) {
	if !iso3166Numeric[string(value)] {
		return 0, len(value), LintUndefinedISO3166NumericCode
	}
	return 0, 0, LintOK
}

// iso4217 is a representative set of ISO 4217 currency codes used by
// monetary-amount AIs (e.g. 393n amount payable with currency code).
var iso4217 = map[string]bool{
	"036": true, "124": true, "156": true, "208": true, "344": true,
	"392": true, "410": true, "578": true, "752": true, "756": true,
	"826": true, "840": true, "978": true,
}

func LintISO4217(value []byte) (int, int, LinterCode) {
	if !iso4217[string(value)] {
		return 0, len(value), LintUndefinedISO4217CurrencyCode
	}
	return 0, 0, LintOK
}

// LintNonZero rejects an all-zero numeric component, used by AIs whose
// value must represent a strictly positive quantity (e.g. piece
// count components).
func LintNonZero(value []byte) (int, int, LinterCode) {
	for _, b := range value {
		if b != '0' {
			return 0, 0, LintOK
		}
	}
	return 0, len(value), LintNonZeroComponentValue
}
