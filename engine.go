package gs1

// Engine is the public entry point described in §6: it binds a
// Dictionary, the Key-Qualifier Index derived from it, a Config, and
// the §4.7 validator table, then exposes the Parse*/GenerateDLURI
// operations that wire C4/C5/C7/C8 together. An Engine is not safe for
// concurrent use while SetDictionary or SetValidatorEnabled is being
// called (§5): callers that need concurrent parsing share one
// read-only Engine and synchronise configuration changes externally.
type Engine struct {
	dict       *Dictionary
	idx        *Index
	cfg        *Config
	validators []Validator
	cache      *lookupCache
}

// NewEngine builds an Engine from a Dictionary and a Config, deriving
// the Key-Qualifier Index and installing the default validator table
// (§4.7, all entries enabled).
func NewEngine(dict *Dictionary, cfg *Config) *Engine {
	return &Engine{
		dict:       dict,
		idx:        BuildIndex(dict),
		cfg:        cfg,
		validators: defaultValidators(),
		cache:      newLookupCache(),
	}
}

// SetDictionary replaces the Engine's Dictionary. If the replacement's
// Fingerprint matches the current one, the Key-Qualifier Index and
// lookup cache are left untouched rather than rebuilt — a byte-for-
// byte-identical dictionary produces byte-for-byte-identical derived
// structures, so rebuilding would only waste cycles (the
// SPEC_FULL.md §3 optimisation).
func (e *Engine) SetDictionary(dict *Dictionary) {
	if e.dict != nil && e.dict.Fingerprint() == dict.Fingerprint() {
		e.dict = dict
		return
	}
	e.dict = dict
	e.idx = BuildIndex(dict)
	e.cache = newLookupCache()
}

// Dictionary returns the Engine's current Dictionary.
func (e *Engine) Dictionary() *Dictionary { return e.dict }

// Config returns the Engine's configuration, mutable in place via its
// Set* methods.
func (e *Engine) Config() *Config { return e.cfg }

// SetValidatorEnabled toggles a non-locked validator (§4.7). It is a
// no-op, returning false, when id names a locked validator or one that
// doesn't exist in the table.
func (e *Engine) SetValidatorEnabled(id ValidatorID, enabled bool) bool {
	for i := range e.validators {
		if e.validators[i].ID == id {
			if e.validators[i].Locked {
				return false
			}
			e.validators[i].Enabled = enabled
			if id == ValidatorUnknownAINotDLAttr {
				e.cfg.SetBool("unknownAINotDLAttr", enabled)
			}
			return true
		}
	}
	return false
}

func (e *Engine) checkLength(input []byte) error {
	if len(input) > MaxInputLen {
		return newError(ErrAIDataIsTooLong, "input of %d bytes exceeds the %d-byte limit", len(input), MaxInputLen)
	}
	return nil
}

// ParseBracketed lexes a bracketed element string, e.g.
// "(01)12345678901231(10)ABC123", and runs the cross-AI validators
// over the result.
func (e *Engine) ParseBracketed(input []byte) (*Buffer, error) {
	if err := e.checkLength(input); err != nil {
		return nil, err
	}
	buf, err := ParseBracketed(input, e.dict, e.cfg.GetBool("permitUnknownAIs"))
	if err != nil {
		return nil, err
	}
	if err := runValidators(e.validators, buf, e.dict); err != nil {
		return nil, err
	}
	return buf, nil
}

// ParseUnbracketed lexes the canonical `^`-delimited element string
// and runs the cross-AI validators over the result.
func (e *Engine) ParseUnbracketed(input []byte) (*Buffer, error) {
	if err := e.checkLength(input); err != nil {
		return nil, err
	}
	buf, err := ParseUnbracketed(input, e.dict, e.cfg.GetBool("permitUnknownAIs"))
	if err != nil {
		return nil, err
	}
	if err := runValidators(e.validators, buf, e.dict); err != nil {
		return nil, err
	}
	return buf, nil
}

// ParseDLURI lexes a GS1 Digital Link URI and runs the cross-AI
// validators over the result.
func (e *Engine) ParseDLURI(input []byte) (*Buffer, error) {
	if err := e.checkLength(input); err != nil {
		return nil, err
	}
	buf, err := ParseDLURI(input, e.dict, e.idx, e.cfg)
	if err != nil {
		return nil, err
	}
	if err := runValidators(e.validators, buf, e.dict); err != nil {
		return nil, err
	}
	return buf, nil
}

// GenerateDLURI renders a previously parsed Buffer as a canonical DL
// URI rooted at domain.
func (e *Engine) GenerateDLURI(buf *Buffer, domain string) ([]byte, error) {
	return GenerateDLURI(buf, domain, e.dict, e.idx, e.cfg)
}
