package gs1

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// dlPair is one decoded (AI, value) pair lifted from either the DL
// path or its query string, before it is resolved against the
// Dictionary.
type dlPair struct {
	ai    string
	value string
}

// ParseDLURI lexes a GS1 Digital Link URI (§4.5) into a canonical
// Buffer. idx is the Key-Qualifier Index built from the same
// Dictionary (§4.6), cfg supplies PERMIT_UNKNOWN_AIS and the GTIN
// zero-suppression knob.
//
// The path is scanned right-to-left for the rightmost segment pair
// whose AI is a declared DL primary key; everything before it is
// carried through as ignored path context (a convenience prefix a
// real-world DL URI may legitimately include), and everything after
// it must form a valid qualifier sequence against idx. The query
// string supplies data attributes: an AI that belongs in the
// qualifier chain instead produces AI_SHOULD_BE_IN_PATH_INFO rather
// than silently accepting it, and a repeat of an AI the path already
// carries is a DUPLICATE_AI.
func ParseDLURI(input []byte, d *Dictionary, idx *Index, cfg *Config) (*Buffer, error) {
	raw := string(input)
	for i := 0; i < len(raw); i++ {
		if raw[i] < 0x21 || raw[i] == 0x7f {
			return nil, newError(ErrURIContainsIllegalCharacters, "URI contains a control or whitespace character at position %d", i)
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, newError(ErrURIContainsIllegalCharacters, "malformed URI: %v", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, newError(ErrURISchemeMismatch, "URI scheme %q is not http(s)", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return nil, newError(ErrURISchemeMismatch, "URI has no host")
	}
	if strings.ContainsAny(host, "_~?#@!$&'()*+,;=%") {
		return nil, newError(ErrURIDomainIllegalCharacters, "domain %q contains illegal characters", host)
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return nil, newError(ErrURIDomainIllegalCharacters, "domain %q contains illegal characters: %v", host, err)
	}

	permitUnknown := cfg.GetBool("permitUnknownAIs")

	segs := nonEmptySplit(u.EscapedPath(), '/')
	if len(segs)%2 != 0 {
		return nil, newError(ErrMissingValueAfterAI, "DL path has a key with no paired value")
	}
	pairs := make([]dlPair, 0, len(segs)/2)
	for i := 0; i < len(segs); i += 2 {
		ai, err := decodePathSegment(segs[i])
		if err != nil {
			return nil, err
		}
		val, err := decodePathSegment(segs[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, dlPair{ai: ai, value: val})
	}

	keyIdx := -1
	var keyEntry *Entry
	for i, p := range pairs {
		if e, ok := d.findExact(p.ai); ok && e.DLPKey {
			keyIdx = i
			keyEntry = e
		}
	}
	if keyIdx < 0 {
		return nil, newError(ErrNoDLPrimaryKeyInPath, "no declared primary key found in DL path")
	}

	buf := newBuffer()

	for i := 0; i < keyIdx; i++ {
		if err := buf.appendDLIgnored([]byte(pairs[i].ai + "/" + pairs[i].value)); err != nil {
			return nil, err
		}
	}

	keyValue := applyGTINZeroSuppression(pairs[keyIdx].value, keyEntry, cfg)
	if err := lintEntryValue(keyEntry.Code, []byte(keyValue), keyEntry); err != nil {
		return nil, err
	}
	fnc1 := buf.needsFNC1Prefix()
	if err := buf.appendAI(keyEntry.Code, []byte(keyValue), fnc1, keyEntry, KindAIValue, 0); err != nil {
		return nil, err
	}

	seq := []string{keyEntry.Code}
	order := 1
	for i := keyIdx + 1; i < len(pairs); i++ {
		p := pairs[i]
		entry, err := lookupOrFail(d, []byte(p.ai), len(p.ai), false)
		if err != nil {
			return nil, err
		}
		seq = append(seq, entry.Code)
		if !idx.Contains(seq) {
			return nil, newError(ErrInvalidKeyQualifierSequence, "AI %s is not a valid qualifier at this position", entry.Code)
		}
		if err := lintEntryValue(entry.Code, []byte(p.value), entry); err != nil {
			return nil, err
		}
		fnc1 := buf.needsFNC1Prefix()
		if err := buf.appendAI(entry.Code, []byte(p.value), fnc1, entry, KindAIValue, order); err != nil {
			return nil, err
		}
		order++
	}

	if u.RawQuery != "" {
		restrictUnknownDLAttrs := cfg.GetBool("unknownAINotDLAttr")
		if err := parseDLQuery(u.RawQuery, d, idx, seq, permitUnknown, restrictUnknownDLAttrs, buf); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// parseDLQuery resolves every `key=value` (or bare) token of a DL
// URI's query string against the dictionary, appending data attributes
// to buf and flagging anything that belongs in the path instead.
func parseDLQuery(rawQuery string, d *Dictionary, idx *Index, pathSeq []string, permitUnknown, restrictUnknownDLAttrs bool, buf *Buffer) error {
	for _, token := range strings.Split(rawQuery, "&") {
		if token == "" {
			continue
		}
		k, v, hasEq := strings.Cut(token, "=")
		key, err := decodeQueryToken(k)
		if err != nil {
			return err
		}
		if !hasEq {
			if err := buf.appendDLIgnored([]byte(key)); err != nil {
				return err
			}
			continue
		}
		val, err := decodeQueryToken(v)
		if err != nil {
			return err
		}

		entry, ok := d.findExact(key)
		if !ok {
			if !isDigit(key[0]) {
				// non-numeric query keys (gs1, or metadata like
				// "linkType") are conventionally ignored attributes.
				if err := buf.appendDLIgnored([]byte(key + "=" + val)); err != nil {
					return err
				}
				continue
			}
			entry, err = lookupOrFail(d, []byte(key), len(key), permitUnknown)
			if err != nil {
				return err
			}
		}
		if _, dup := buf.findByCode(entry.Code); dup {
			return newError(ErrDuplicateAI, "AI %s appears more than once", entry.Code)
		}
		if entry.DLClass == DLNone {
			return newError(ErrAIIsNotValidDataAttribute, "AI %s may not appear as a DL query attribute", entry.Code)
		}
		if entry.DLClass == DLUnknown && restrictUnknownDLAttrs {
			return newError(ErrAIIsNotValidDataAttribute, "AI %s is not a recognised DL data attribute", entry.Code)
		}
		for j := 1; j <= len(pathSeq); j++ {
			if idx.WouldBeValidAt(pathSeq, entry.Code, j) {
				return newError(ErrAIShouldBeInPathInfo, "AI %s belongs in the DL path, not its query string", entry.Code)
			}
		}
		if entry.Code == "01" {
			val = zeroPadGTIN(val)
		}
		if err := lintEntryValue(entry.Code, []byte(val), entry); err != nil {
			return err
		}
		fnc1 := buf.needsFNC1Prefix()
		if err := buf.appendAI(entry.Code, []byte(val), fnc1, entry, KindAIValue, ATTRSentinel); err != nil {
			return err
		}
	}
	return nil
}

// applyGTINZeroSuppression left-pads a numeric primary-key value to
// its entry's fixed length when PERMIT_ZERO_SUPPRESSED_GTIN_IN_DL_URIS
// is enabled (§4.5 step 3). This flag gates the *path* position only:
// a GTIN carried as a query attribute is padded unconditionally by
// zeroPadGTIN instead, per §4.5's query-extraction rule ("GTIN pad as
// above unconditionally — the legacy flag does not gate the query
// path for AI 01"). The asymmetry is deliberate, not a bug: see §9's
// Open Question.
func applyGTINZeroSuppression(value string, entry *Entry, cfg *Config) string {
	if !cfg.GetBool("permitZeroSuppressedGTINinDLuris") {
		return value
	}
	return zeroPadFixedNumeric(value, entry)
}

// zeroPadGTIN left-pads an 8/12/13-digit GTIN value to 14 digits,
// unconditionally (§4.5's query-extraction rule for AI 01).
func zeroPadGTIN(value string) string {
	switch len(value) {
	case 8, 12, 13:
		return zeroPadFixedNumeric(value, gtin14Entry)
	}
	return value
}

// gtin14Entry is a throwaway Entry carrying AI 01's declared shape,
// used only to drive zeroPadFixedNumeric's length/charset checks.
var gtin14Entry = &Entry{Code: "01", Components: []Component{{CSet: CSetN, Min: 14, Max: 14}}}

// zeroPadFixedNumeric left-pads value with zeros to entry's declared
// fixed length, provided entry has exactly one numeric (CSetN)
// component of fixed length, value is shorter than that length, and
// value is all digits; otherwise value is returned unchanged.
func zeroPadFixedNumeric(value string, entry *Entry) string {
	if len(entry.Components) != 1 || entry.Components[0].CSet != CSetN {
		return value
	}
	want := entry.MinLen()
	if entry.MinLen() != entry.MaxLen() || len(value) >= want {
		return value
	}
	for _, b := range value {
		if b < '0' || b > '9' {
			return value
		}
	}
	return strings.Repeat("0", want-len(value)) + value
}
