package gs1

import "fmt"

// ErrorCode enumerates the engine-level failures described in §7. It
// is intentionally a flat enumeration, mirroring the way the
// reference grammar compiler keeps a single `ParsingError` shape
// rather than a tree of wrapped error types.
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	ErrURIContainsIllegalCharacters
	ErrURISchemeMismatch
	ErrURIDomainIllegalCharacters
	ErrAIUnrecognised
	ErrNoAIForPrefix
	ErrAIDataHasIncorrectLength
	ErrAIDataIsTooLong
	ErrAIContainsIllegalValue
	ErrAIValueHasIllegalCharacters
	ErrDuplicateAI
	ErrTooManyAIs
	ErrInvalidKeyQualifierSequence
	ErrNoDLPrimaryKeyInPath
	ErrAIShouldBeInPathInfo
	ErrAIIsNotValidDataAttribute
	ErrCannotCreateDLURIWithoutPrimaryKeyAI
	ErrMissingValueAfterAI
	ErrValueContainsIllegalCharacters
	ErrIllegalNULInValue
	ErrInvalidAIPairs
	ErrRequiredAIsNotSatisfied
	ErrInstancesOfAIHaveDifferentValues
	ErrSerialNotPresent
)

var errorCodeName = map[ErrorCode]string{
	ErrNone:                                 "NONE",
	ErrURIContainsIllegalCharacters:         "URI_CONTAINS_ILLEGAL_CHARACTERS",
	ErrURISchemeMismatch:                    "URI_SCHEME_MISMATCH",
	ErrURIDomainIllegalCharacters:           "URI_DOMAIN_ILLEGAL_CHARACTERS",
	ErrAIUnrecognised:                       "AI_UNRECOGNISED",
	ErrNoAIForPrefix:                        "NO_AI_FOR_PREFIX",
	ErrAIDataHasIncorrectLength:             "AI_DATA_HAS_INCORRECT_LENGTH",
	ErrAIDataIsTooLong:                      "AI_DATA_IS_TOO_LONG",
	ErrAIContainsIllegalValue:               "AI_CONTAINS_ILLEGAL_VALUE",
	ErrAIValueHasIllegalCharacters:          "AI_VALUE_HAS_ILLEGAL_CHARACTERS",
	ErrDuplicateAI:                          "DUPLICATE_AI",
	ErrTooManyAIs:                           "TOO_MANY_AIS",
	ErrInvalidKeyQualifierSequence:          "INVALID_KEY_QUALIFIER_SEQUENCE",
	ErrNoDLPrimaryKeyInPath:                 "NO_DL_PRIMARY_KEY_IN_PATH",
	ErrAIShouldBeInPathInfo:                 "AI_SHOULD_BE_IN_PATH_INFO",
	ErrAIIsNotValidDataAttribute:            "AI_IS_NOT_VALID_DATA_ATTRIBUTE",
	ErrCannotCreateDLURIWithoutPrimaryKeyAI: "CANNOT_CREATE_DL_URI_WITHOUT_PRIMARY_KEY_AI",
	ErrMissingValueAfterAI:                  "MISSING_VALUE_AFTER_AI",
	ErrValueContainsIllegalCharacters:       "VALUE_CONTAINS_ILLEGAL_CHARACTERS",
	ErrIllegalNULInValue:                    "ILLEGAL_NUL_IN_VALUE",
	ErrInvalidAIPairs:                       "INVALID_AI_PAIRS",
	ErrRequiredAIsNotSatisfied:              "REQUIRED_AIS_NOT_SATISFIED",
	ErrInstancesOfAIHaveDifferentValues:     "INSTANCES_OF_AI_HAVE_DIFFERENT_VALUES",
	ErrSerialNotPresent:                     "SERIAL_NOT_PRESENT",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeName[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// EngineError is the error value every parsing/validation/generation
// operation returns on failure. It plays the role `ParsingError` plays
// for the grammar parser: a single typed error carrying both a
// machine-readable code and a human-readable message.
type EngineError struct {
	Code    ErrorCode
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// LinterCode enumerates the granular per-component validation
// failures a linter can report (§4.3, §7).
type LinterCode int

const (
	LintOK LinterCode = iota
	LintInvalidCSetNCharacter
	LintInvalidCSet82Character
	LintInvalidCSet39Character
	LintInvalidCSet64Character
	LintIncorrectCheckDigit
	LintIllegalMonth
	LintIllegalDay
	LintIllegalHour
	LintIllegalMinute
	LintIllegalSecond
	LintIllegalPackagingIndicator
	LintIncorrectPieceTotal
	LintUndefinedISO3166Alpha2
	LintUndefinedISO3166NumericCode
	LintUndefinedISO4217CurrencyCode
	LintNonZeroComponentValue
)

var linterCodeName = map[LinterCode]string{
	LintOK:                           "OK",
	LintInvalidCSetNCharacter:        "INVALID_CSET_N_CHARACTER",
	LintInvalidCSet82Character:       "INVALID_CSET82_CHARACTER",
	LintInvalidCSet39Character:       "INVALID_CSET39_CHARACTER",
	LintInvalidCSet64Character:       "INVALID_CSET64_CHARACTER",
	LintIncorrectCheckDigit:          "INCORRECT_CHECK_DIGIT",
	LintIllegalMonth:                 "ILLEGAL_MONTH",
	LintIllegalDay:                   "ILLEGAL_DAY",
	LintIllegalHour:                  "ILLEGAL_HOUR",
	LintIllegalMinute:                "ILLEGAL_MINUTE",
	LintIllegalSecond:                "ILLEGAL_SECOND",
	LintIllegalPackagingIndicator:    "ILLEGAL_PACKAGING_INDICATOR",
	LintIncorrectPieceTotal:          "INCORRECT_PIECE_TOTAL",
	LintUndefinedISO3166Alpha2:       "UNDEFINED_ISO3166_ALPHA2",
	LintUndefinedISO3166NumericCode:  "UNDEFINED_ISO3166_NUMERIC_CODE",
	LintUndefinedISO4217CurrencyCode: "UNDEFINED_ISO4217_CURRENCY_CODE",
	LintNonZeroComponentValue:        "NON_ZERO_COMPONENT_VALUE",
}

func (c LinterCode) String() string {
	if s, ok := linterCodeName[c]; ok {
		return s
	}
	return fmt.Sprintf("LinterCode(%d)", int(c))
}

// LinterError is the second, more granular error channel described in
// §7: a linter failure within a single component's value, carrying a
// three-part markup of the form `(AI)goodPrefix|badSpan|goodSuffix`.
type LinterError struct {
	Code   LinterCode
	AI     string
	Markup string
}

func (e *LinterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Markup)
}

// buildMarkup renders the `(AI)prefix|bad|suffix` error markup from a
// full AI value and the byte range of the offending span within it.
func buildMarkup(ai string, value []byte, errPos, errLen int) string {
	if errPos < 0 {
		errPos = 0
	}
	if errPos > len(value) {
		errPos = len(value)
	}
	end := errPos + errLen
	if end > len(value) {
		end = len(value)
	}
	return fmt.Sprintf("(%s)%s|%s|%s", ai, value[:errPos], value[errPos:end], value[end:])
}
