package gs1

// This file implements the two element-string lexers of §4.4: the
// bracketed human-readable form ("(01)12345678901231(10)ABC123") and
// the unbracketed canonical form that uses `^` (FNC1) as its
// variable-length-value terminator. Both build a Buffer bottom-up by
// repeatedly looking an AI up in the Dictionary, splitting its value
// into components, and running each component's linters; neither runs
// the cross-AI validators of §4.7 — that's the caller's job once
// lexing succeeds, so the same parsed list can be validated under a
// caller-chosen validator configuration.

// safePrefix renders up to 4 leading bytes of data for an error
// message without risking an out-of-range slice.
func safePrefix(data []byte) string {
	n := len(data)
	if n > MaxAILen {
		n = MaxAILen
	}
	return string(data[:n])
}

// lookupOrFail wraps Dictionary.Lookup with the §7 distinction between
// "no AI is declared for this 2-digit prefix at all" and "the prefix
// is known but this specific code isn't" (or vivification is
// disabled).
func lookupOrFail(d *Dictionary, data []byte, exactLen int, permitUnknown bool) (*Entry, error) {
	entry, ok := d.Lookup(data, exactLen, permitUnknown)
	if ok {
		return entry, nil
	}
	pp := -1
	if len(data) >= 2 {
		pp = prefixIndex(string(data[:2]))
	}
	if pp < 0 || d.LengthForPrefix(pp) == 0 {
		return nil, newError(ErrNoAIForPrefix, "no AI is declared for prefix %q", safePrefix(data))
	}
	return nil, newError(ErrAIUnrecognised, "AI %q is not recognised", safePrefix(data))
}

// splitComponents divides value across entry's components in
// declaration order: a fixed-length (Min==Max) component consumes
// exactly that many bytes, the last component absorbs whatever
// remains. Dictionary entries never declare a variable-length
// component ahead of the last one, so this covers every shape the
// engine's own dictionaries produce.
func splitComponents(value []byte, components []Component) ([][]byte, bool) {
	spans := make([][]byte, len(components))
	offset := 0
	for i, c := range components {
		last := i == len(components)-1
		switch {
		case last:
			spans[i] = value[offset:]
			offset = len(value)
		case c.Min == c.Max:
			if offset+c.Min > len(value) {
				return nil, false
			}
			spans[i] = value[offset : offset+c.Min]
			offset += c.Min
		default:
			if offset+c.Min > len(value) {
				return nil, false
			}
			spans[i] = value[offset : offset+c.Min]
			offset += c.Min
		}
	}
	return spans, offset == len(value)
}

// lintEntryValue checks value's overall length against entry's
// declared bounds, rejects a stray `^` within it (§4.4: "must not
// contain ^"), then runs every component's linter in turn.
func lintEntryValue(ai string, value []byte, entry *Entry) error {
	if len(value) < entry.MinLen() || len(value) > entry.MaxLen() {
		return newError(ErrAIDataHasIncorrectLength, "AI %s value %q has length %d, want [%d,%d]",
			ai, value, len(value), entry.MinLen(), entry.MaxLen())
	}
	for _, b := range value {
		if b == '^' {
			return newError(ErrValueContainsIllegalCharacters, "AI %s value contains an unescaped separator", ai)
		}
	}
	spans, ok := splitComponents(value, entry.Components)
	if !ok {
		return newError(ErrAIDataHasIncorrectLength, "AI %s value %q does not fit its component layout", ai, value)
	}
	for i, c := range entry.Components {
		if lerr := RunComponent(ai, spans[i], c); lerr != nil {
			return lerr
		}
	}
	return nil
}

// ParseBracketed lexes the bracketed human-readable form, e.g.
// "(01)12345678901231(10)ABC123", into a canonical Buffer (§4.4).
// permitUnknown mirrors the engine's PERMIT_UNKNOWN_AIS configuration
// knob (§2): when false, an AI absent from the dictionary fails lexing
// instead of being vivified.
func ParseBracketed(input []byte, d *Dictionary, permitUnknown bool) (*Buffer, error) {
	buf := newBuffer()
	n := len(input)
	i := 0
	for i < n {
		if input[i] != '(' {
			return nil, newError(ErrAIContainsIllegalValue, "expected '(' at position %d", i)
		}
		i++
		start := i
		for i < n && input[i] != ')' {
			i++
		}
		if i >= n {
			return nil, newError(ErrMissingValueAfterAI, "unterminated AI starting at position %d", start-1)
		}
		code := input[start:i]
		i++ // consume ')'

		if len(code) < MinAILen || len(code) > MaxAILen {
			return nil, newError(ErrAIUnrecognised, "AI %q has an invalid code length", code)
		}
		for _, b := range code {
			if !isDigit(b) {
				return nil, newError(ErrAIUnrecognised, "AI %q is not numeric", code)
			}
		}
		entry, err := lookupOrFail(d, code, len(code), permitUnknown)
		if err != nil {
			return nil, err
		}

		var value []byte
		for i < n {
			if input[i] == '\\' && i+1 < n && input[i+1] == '(' {
				value = append(value, '(')
				i += 2
				continue
			}
			if input[i] == '(' {
				break
			}
			value = append(value, input[i])
			i++
		}
		if len(value) == 0 && i == n {
			return nil, newError(ErrMissingValueAfterAI, "AI %s has no value", code)
		}
		if err := lintEntryValue(string(code), value, entry); err != nil {
			return nil, err
		}
		fnc1 := buf.needsFNC1Prefix()
		if err := buf.appendAI(string(code), value, fnc1, entry, KindAIValue, ATTRSentinel); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// ParseUnbracketed lexes the canonical `^`-delimited form (§4.4's
// processAIdata). It has no separate non-extracting mode: it always
// extracts, so the generic-unknown pseudo-entry (whose AI length
// cannot be derived) is always refused.
func ParseUnbracketed(input []byte, d *Dictionary, permitUnknown bool) (*Buffer, error) {
	n := len(input)
	if n == 0 || input[0] != '^' {
		return nil, newError(ErrValueContainsIllegalCharacters, "unbracketed element string must start with FNC1 (^)")
	}
	buf := newBuffer()
	buf.data = append(buf.data, input...)

	pos := 1
	for pos < n {
		aiStart := pos
		entry, err := lookupOrFail(d, input[pos:], 0, permitUnknown)
		if err != nil {
			return nil, err
		}
		if entry.vivified && entry.Code == "" {
			return nil, newError(ErrAIUnrecognised, "generic unknown AI is not permitted in canonical form")
		}
		aiLen := len(entry.Code)
		if pos+aiLen > n {
			return nil, newError(ErrAIDataHasIncorrectLength, "AI %s is truncated", entry.Code)
		}
		valStart := pos + aiLen
		var valEnd int
		if entry.FNC1Required {
			limit := valStart + entry.MaxLen() + 1
			if limit > n {
				limit = n
			}
			j := valStart
			found := false
			for ; j < limit; j++ {
				if input[j] == '^' {
					found = true
					break
				}
			}
			switch {
			case found:
				valEnd = j
			case j == n:
				valEnd = n
			default:
				return nil, newError(ErrAIDataIsTooLong, "AI %s value exceeds its maximum length with no terminator", entry.Code)
			}
		} else {
			want := entry.MaxLen()
			if valStart+want > n {
				return nil, newError(ErrAIDataHasIncorrectLength, "AI %s is truncated", entry.Code)
			}
			valEnd = valStart + want
		}

		value := input[valStart:valEnd]
		if err := lintEntryValue(entry.Code, value, entry); err != nil {
			return nil, err
		}
		if err := buf.recordAI(KindAIValue, entry, aiStart, aiLen, valStart, valEnd-valStart, ATTRSentinel); err != nil {
			return nil, err
		}

		pos = valEnd
		if pos < n && input[pos] == '^' {
			pos++
		}
	}
	return buf, nil
}
