package gs1

import (
	"sort"
	"strings"
)

// GenerateDLURI renders a parsed element string as a canonical GS1
// Digital Link URI (§4.8) rooted at domain (e.g. "id.example.org"),
// using https.
//
// Primary-key selection takes the first KindAIValue member whose
// Entry.DLPKey is set. The qualifier chain is then maximised against
// that key's declared DLPQualChain alternatives: each alternative is
// matched against the parsed list in declared order, skipping
// qualifiers that aren't present, and the alternative covering the
// most qualifiers wins; a tie keeps whichever alternative appears
// first in DLPQualChain. The key and the chosen qualifiers get
// DLPathOrder 0, 1, 2, ... in buf. Everything left over becomes a query
// attribute, fixed-length AIs emitted before variable-length ones.
func GenerateDLURI(buf *Buffer, domain string, d *Dictionary, idx *Index, cfg *Config) ([]byte, error) {
	parsed := buf.Parsed()

	keyPos := -1
	for i, p := range parsed {
		if p.Kind == KindAIValue && p.Entry != nil && p.Entry.DLPKey {
			keyPos = i
			break
		}
	}
	if keyPos < 0 {
		return nil, newError(ErrCannotCreateDLURIWithoutPrimaryKeyAI, "no primary-key AI is present in the parsed element string")
	}
	keyEntry := parsed[keyPos].Entry
	keyValue := string(parsed[keyPos].Value(buf))

	used := make(map[int]bool)
	used[keyPos] = true

	var chosenChain []string
	var chosenIdxs []int
	bestCount := -1
	for _, alt := range keyEntry.DLPQualChain {
		var chain []string
		var idxs []int
		for _, q := range alt {
			for i, p := range parsed {
				if used[i] || p.Kind != KindAIValue || p.Entry == nil {
					continue
				}
				if p.Entry.Code == q {
					chain = append(chain, q)
					idxs = append(idxs, i)
					break
				}
			}
		}
		if len(chain) > bestCount {
			bestCount = len(chain)
			chosenChain = chain
			chosenIdxs = idxs
		}
	}
	for _, i := range chosenIdxs {
		used[i] = true
	}
	buf.parsed[keyPos].DLPathOrder = 0
	for j, i := range chosenIdxs {
		buf.parsed[i].DLPathOrder = j + 1
	}

	pathParts := []string{encodePathSegment(keyEntry.Code), encodePathSegment(keyValue)}
	for j, q := range chosenChain {
		v := string(parsed[chosenIdxs[j]].Value(buf))
		pathParts = append(pathParts, encodePathSegment(q), encodePathSegment(v))
	}

	restrictUnknownDLAttrs := cfg.GetBool("unknownAINotDLAttr")

	var fixedAttrs, variableAttrs []ParsedAI
	for i, p := range parsed {
		if used[i] || p.Kind != KindAIValue || p.Entry == nil {
			continue
		}
		e := p.Entry
		if e.DLClass == DLNone {
			return nil, newError(ErrAIIsNotValidDataAttribute, "AI %s cannot appear in a DL URI", e.Code)
		}
		if e.DLClass == DLUnknown && restrictUnknownDLAttrs {
			return nil, newError(ErrAIIsNotValidDataAttribute, "AI %s is not a recognised DL data attribute", e.Code)
		}
		if e.MinLen() == e.MaxLen() {
			fixedAttrs = append(fixedAttrs, p)
		} else {
			variableAttrs = append(variableAttrs, p)
		}
	}
	byCode := func(attrs []ParsedAI) {
		sort.Slice(attrs, func(i, j int) bool {
			return string(attrs[i].AI(buf)) < string(attrs[j].AI(buf))
		})
	}
	byCode(fixedAttrs)
	byCode(variableAttrs)

	var query []string
	for _, p := range append(fixedAttrs, variableAttrs...) {
		query = append(query, string(p.AI(buf))+"="+encodeQueryToken(string(p.Value(buf))))
	}

	var b strings.Builder
	b.WriteString("https://")
	b.WriteString(domain)
	b.WriteString("/")
	b.WriteString(strings.Join(pathParts, "/"))
	if len(query) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(query, "&"))
	}
	return []byte(b.String()), nil
}
