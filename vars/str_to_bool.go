package vars

import "strings"

// StrToBool parses the spellings accepted for boolean flags. Anything
// unrecognized reads as false.
func StrToBool(str string) bool {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true
	}
	return false
}
