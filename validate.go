package gs1

// ValidatorID names one of the cross-AI validators of §4.7.
type ValidatorID int

const (
	ValidatorMutexAIs ValidatorID = iota
	ValidatorRequisiteAIs
	ValidatorRepeatedAIs
	ValidatorDigsigSerialKey
	ValidatorUnknownAINotDLAttr
)

// Validator is one entry of the §4.7 dispatch table: a function of
// the parsed-AI list plus its locked/enabled state. `Locked`
// validators can't be toggled off by a caller (MUTEX_AIS,
// REPEATED_AIS, DIGSIG_SERIAL_KEY); `Enabled` governs whether a
// toggleable validator runs at all.
type Validator struct {
	ID      ValidatorID
	Locked  bool
	Enabled bool
	fn      func(buf *Buffer, d *Dictionary) error
}

// defaultValidators returns the §4.7 table in its documented
// execution order, all enabled by default. ValidatorUnknownAINotDLAttr
// carries a no-op fn: per §4.7 it is "consulted, not run" — C5
// (parseDLQuery) and C8 (GenerateDLURI) read its enabled state
// directly (via the "unknownAINotDLAttr" Config key, which
// Engine.SetValidatorEnabled keeps in sync) rather than having
// runValidators invoke it over an already-parsed Buffer.
func defaultValidators() []Validator {
	return []Validator{
		{ID: ValidatorMutexAIs, Locked: true, Enabled: true, fn: validateMutexAIs},
		{ID: ValidatorRequisiteAIs, Locked: false, Enabled: true, fn: validateRequisiteAIs},
		{ID: ValidatorRepeatedAIs, Locked: true, Enabled: true, fn: validateRepeatedAIs},
		{ID: ValidatorDigsigSerialKey, Locked: true, Enabled: true, fn: validateDigsigSerialKey},
		{ID: ValidatorUnknownAINotDLAttr, Locked: false, Enabled: true, fn: func(*Buffer, *Dictionary) error { return nil }},
	}
}

// runValidators executes the table in order, aborting on the first
// failure (§4.7's "execution order follows the table; first failure
// aborts").
func runValidators(validators []Validator, buf *Buffer, d *Dictionary) error {
	for _, v := range validators {
		if !v.Enabled {
			continue
		}
		if err := v.fn(buf, d); err != nil {
			return err
		}
	}
	return nil
}

// codePrefixMatches implements the §4.7 MUTEX_AIS prefix-matching
// rule: a token like "392n" (stored here as the literal prefix "392")
// matches any parsed AI code that begins with it.
func codePrefixMatches(token, code string) bool {
	if len(token) > len(code) {
		return false
	}
	return code[:len(token)] == token
}

func validateMutexAIs(buf *Buffer, d *Dictionary) error {
	for _, p := range buf.parsed {
		if p.Kind != KindAIValue || p.Entry == nil {
			continue
		}
		code := string(p.AI(buf))
		for _, group := range p.Entry.Mutex {
			for _, other := range buf.parsed {
				if other.Kind != KindAIValue || other.Entry == nil {
					continue
				}
				otherCode := string(other.AI(buf))
				if otherCode == code {
					continue // the current AI is ignored for self-match
				}
				for _, token := range group.AIs {
					if codePrefixMatches(token, otherCode) {
						return newError(ErrInvalidAIPairs, "AI %s cannot coexist with AI %s", code, otherCode)
					}
				}
			}
		}
	}
	return nil
}

func validateRequisiteAIs(buf *Buffer, d *Dictionary) error {
	present := make(map[string]bool)
	for _, p := range buf.parsed {
		if p.Kind == KindAIValue && p.Entry != nil {
			present[string(p.AI(buf))] = true
		}
	}
	for _, p := range buf.parsed {
		if p.Kind != KindAIValue || p.Entry == nil {
			continue
		}
		code := string(p.AI(buf))
		for _, req := range p.Entry.Requisites {
			satisfied := false
			for _, alt := range req.Alternatives {
				allPresent := true
				for _, ai := range alt {
					if !present[ai] {
						allPresent = false
						break
					}
				}
				if allPresent {
					satisfied = true
					break
				}
			}
			if !satisfied {
				return newError(ErrRequiredAIsNotSatisfied, "AI %s requires one of %v to be present", code, req.Alternatives)
			}
		}
	}
	return nil
}

func validateRepeatedAIs(buf *Buffer, d *Dictionary) error {
	values := make(map[string][]byte)
	for _, p := range buf.parsed {
		if p.Kind != KindAIValue || p.Entry == nil {
			continue
		}
		code := string(p.AI(buf))
		v := p.Value(buf)
		if prev, ok := values[code]; ok {
			if string(prev) != string(v) {
				return newError(ErrInstancesOfAIHaveDifferentValues, "AI %s has conflicting values %q and %q", code, prev, v)
			}
			continue
		}
		values[code] = v
	}
	return nil
}

// digsigSerialCarriers are the AIs whose "serial component present"
// DIGSIG_SERIAL_KEY checks against: a value no longer than the entry's
// MinLen counts as having no serial.
var digsigSerialCarriers = []string{"253", "255", "8003"}

func validateDigsigSerialKey(buf *Buffer, d *Dictionary) error {
	if _, ok := buf.findByCode("8030"); !ok {
		return nil
	}
	for _, code := range digsigSerialCarriers {
		p, ok := buf.findByCode(code)
		if !ok {
			continue
		}
		if p.Entry == nil {
			continue
		}
		if p.ValLen <= p.Entry.MinLen() {
			return newError(ErrSerialNotPresent, "AI %s must include its serial component when AI 8030 is present", code)
		}
	}
	return nil
}
