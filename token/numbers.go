package token

import "strconv"

// IsNumeric reports whether a bareword reads as a number. The test is
// deliberately permissive: anything strconv accepts as a float (so
// "1e3", ".5", "inf") or as an integer in any base ("0x10", "0b101")
// counts. Some barewords a human would not read as numbers therefore
// classify as TNumber; callers that care about stricter forms must
// validate on their side.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	_, err := strconv.ParseInt(s, 0, 64)
	return err == nil
}
