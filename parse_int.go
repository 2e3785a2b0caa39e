package groupby

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt reads the integer at the start of the textual form of v:
// leading whitespace is skipped, an optional sign and 0x prefix are accepted,
// and digits are read up to the first character that is not one. Trailing
// text is ignored. If no digit is found it returns NaN and false.
func ParseLeadingInt(v any) (float64, bool) {
	s := strings.TrimLeftFunc(textOf(v), isSpace)

	sign := 1.0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	base := 10.0
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	n, digits := 0.0, 0
	for _, c := range s {
		d, ok := digitValue(c, base)
		if !ok {
			break
		}
		n = n*base + d
		digits++
	}
	if digits == 0 {
		return math.NaN(), false
	}
	return sign * n, true
}

func digitValue(c rune, base float64) (float64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return float64(c - '0'), true
	case base == 16 && c >= 'a' && c <= 'f':
		return float64(c-'a') + 10, true
	case base == 16 && c >= 'A' && c <= 'F':
		return float64(c-'A') + 10, true
	}
	return 0, false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// textOf renders v the way a dynamic runtime converts values to strings
// before parsing them.
func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return "null"
	case missing:
		return "undefined"
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case float64:
		return formatNumber(x)
	case float32:
		return formatNumber(float64(x))
	case fmt.Stringer:
		return x.String()
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			if e == nil || e == Missing {
				continue
			}
			parts[i] = textOf(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(x, ",")
	}
	if n, ok := asNumber(v); ok {
		return formatNumber(n)
	}
	if _, ok := asRecord(v); ok {
		return "[object Object]"
	}
	return fmt.Sprint(v)
}

// formatNumber prints plain decimals between 1e-6 and 1e21 and exponent
// notation outside that range.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1e-07 -> 1e-7
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
