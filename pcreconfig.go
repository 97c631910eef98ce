package textmatch

// PCREConfig reports which PCRE-class build features are available, per
// spec.md §6's `pcre_config() → bool_vector` named ("UTF-8", "Unicode
// properties", "JIT", "stack") signature.
//
// The coregex engine always supports UTF-8 and Unicode character classes
// and has no real JIT (it is a DFA/NFA/SIMD hybrid, not a native-code
// compiler), so JIT and the JIT-only "stack" facility both report false.
func PCREConfig() map[string]bool {
	return map[string]bool{
		"UTF-8":              true,
		"Unicode properties": true,
		"JIT":                false,
		"stack":              false,
	}
}
