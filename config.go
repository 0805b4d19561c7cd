package gs1

import "fmt"

// Config is a typed map of engine options. It follows the same
// string-keyed, type-checked-at-access pattern used for grammar
// compiler options: a path-like key maps to a tagged value so that
// accessing a key with the wrong type panics immediately instead of
// silently returning a zero value.
type Config map[string]*cfgVal

// NewConfig returns a configuration primed with the engine's
// documented defaults (§6): unknown AIs are rejected, zero-suppressed
// GTINs in DL paths are rejected, HRI titles are not produced (HRI
// rendering itself is out of scope), and a vivified unknown AI does
// not count as a valid DL attribute (UNKNOWN_AI_NOT_DL_ATTR, §4.7,
// consulted directly by C5/C8 rather than run as a post-parse check).
func NewConfig() *Config {
	m := make(Config)
	m.SetBool("permitUnknownAIs", false)
	m.SetBool("permitZeroSuppressedGTINinDLuris", false)
	m.SetBool("includeDataTitlesInHRI", false)
	m.SetBool("unknownAINotDLAttr", true)
	return &m
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Bool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_Int)
	(*c)[path].asInt = v
}

func (c *Config) SetString(path string, v string) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValType_String)
	(*c)[path].asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("string setting `%s` does not exist", path))
}
