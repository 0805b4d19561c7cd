package gs1

// Kind distinguishes a parsed AI value from a DL query-string segment
// that carries no AI at all (§3's "dl-ignored").
type Kind int

const (
	KindAIValue Kind = iota
	KindDLIgnored
)

// ATTRSentinel marks a parsed AI as a DL attribute rather than a path
// position (§3).
const ATTRSentinel = -1

// MaxAIs bounds how many AIs a single canonical buffer may hold
// (§3's invariant, 16 in the reference configuration).
const MaxAIs = 16

// MaxInputLen bounds the three textual input forms the engine accepts
// (§6).
const MaxInputLen = 8191

// ParsedAI is one member of a Buffer's parsed-AI list (§3). It never
// aliases a pointer into the buffer: Start/Len pairs are offsets, so
// the whole parsed structure is owned by (and only by) the Buffer that
// produced it, per the §9 design note on replacing pointer aliasing
// with offset+length pairs.
type ParsedAI struct {
	Kind        Kind
	Entry       *Entry // nil for KindDLIgnored
	AIStart     int
	AILen       int
	ValStart    int
	ValLen      int
	DLPathOrder int // 0..N-1, or ATTRSentinel
}

// AI returns the AI code bytes of p within buf.
func (p ParsedAI) AI(buf *Buffer) []byte { return buf.data[p.AIStart : p.AIStart+p.AILen] }

// Value returns the value bytes of p within buf.
func (p ParsedAI) Value(buf *Buffer) []byte { return buf.data[p.ValStart : p.ValStart+p.ValLen] }

// Buffer is the canonical-form owner described in §3/§9: a single
// growable byte slice holding the unbracketed `^`-separated form, plus
// the parsed-AI list whose members reference it by offset. All
// parsing operations build a fresh Buffer; none mutate one produced by
// a previous call, matching the "prior output is invalidated by each
// call" rule of §5 without requiring in-place buffer reuse.
type Buffer struct {
	data   []byte
	parsed []ParsedAI
}

func newBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, 64)}
}

// Bytes returns the canonical unbracketed form accumulated so far.
func (b *Buffer) Bytes() []byte { return b.data }

// String returns the canonical unbracketed form as a string.
func (b *Buffer) String() string { return string(b.data) }

// Parsed returns the parsed-AI list in the order the AIs were
// encountered.
func (b *Buffer) Parsed() []ParsedAI { return b.parsed }

// appendAI writes `^`(if fnc1) + ai + value into the buffer and
// records a ParsedAI for it, enforcing the MaxAIs invariant.
func (b *Buffer) appendAI(ai string, value []byte, fnc1 bool, entry *Entry, kind Kind, dlPathOrder int) error {
	if len(b.parsed) >= MaxAIs {
		return newError(ErrTooManyAIs, "more than %d AIs in a single element string", MaxAIs)
	}
	if fnc1 {
		b.data = append(b.data, '^')
	}
	aiStart := len(b.data)
	b.data = append(b.data, ai...)
	valStart := len(b.data)
	b.data = append(b.data, value...)

	b.parsed = append(b.parsed, ParsedAI{
		Kind:        kind,
		Entry:       entry,
		AIStart:     aiStart,
		AILen:       len(ai),
		ValStart:    valStart,
		ValLen:      len(value),
		DLPathOrder: dlPathOrder,
	})
	return nil
}

// appendDLIgnored records a query-string segment with no `=` or no
// recognised AI key, per §4.5.
func (b *Buffer) appendDLIgnored(segment []byte) error {
	if len(b.parsed) >= MaxAIs {
		return newError(ErrTooManyAIs, "more than %d AIs in a single element string", MaxAIs)
	}
	start := len(b.data)
	b.data = append(b.data, segment...)
	b.parsed = append(b.parsed, ParsedAI{
		Kind:        KindDLIgnored,
		ValStart:    start,
		ValLen:      len(segment),
		DLPathOrder: ATTRSentinel,
	})
	return nil
}

// recordAI registers a ParsedAI whose ai/value bytes are already
// present in b.data at [aiStart,aiStart+aiLen) and
// [valStart,valStart+valLen) — used when the canonical bytes were
// copied in wholesale (the unbracketed parser extracting from an
// already-canonical input) rather than built incrementally.
func (b *Buffer) recordAI(kind Kind, entry *Entry, aiStart, aiLen, valStart, valLen, dlPathOrder int) error {
	if len(b.parsed) >= MaxAIs {
		return newError(ErrTooManyAIs, "more than %d AIs in a single element string", MaxAIs)
	}
	b.parsed = append(b.parsed, ParsedAI{
		Kind: kind, Entry: entry,
		AIStart: aiStart, AILen: aiLen,
		ValStart: valStart, ValLen: valLen,
		DLPathOrder: dlPathOrder,
	})
	return nil
}

// lastEntry returns the Entry of the most recently parsed AI-value
// member, or nil if there isn't one — used to compute whether the
// next AI needs a leading FNC1 separator (§4.4: "every AI requires
// FNC1 except after a fixed-length predecessor").
func (b *Buffer) lastEntry() *Entry {
	for i := len(b.parsed) - 1; i >= 0; i-- {
		if b.parsed[i].Kind == KindAIValue {
			return b.parsed[i].Entry
		}
	}
	return nil
}

// needsFNC1Prefix decides whether the AI about to be appended needs a
// leading `^`: true for the first element, and true unless the
// immediately preceding element's entry is fixed-length.
func (b *Buffer) needsFNC1Prefix() bool {
	prev := b.lastEntry()
	if prev == nil {
		return true
	}
	return prev.MinLen() != prev.MaxLen()
}

// findByCode returns the first parsed AI-value entry whose code equals
// ai, if any.
func (b *Buffer) findByCode(ai string) (ParsedAI, bool) {
	for _, p := range b.parsed {
		if p.Kind == KindAIValue && string(p.AI(b)) == ai {
			return p, true
		}
	}
	return ParsedAI{}, false
}
