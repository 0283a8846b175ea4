package submit

import (
	"math"
	"strings"
	"unicode"

	"github.com/sozercan/web-data-gen/apimodels"
	"github.com/sozercan/web-data-gen/internal/form"
)

// BuildRequest shapes a form snapshot into the generator request body.
// String fields are copied verbatim; numeric fields go through ParseInt.
func BuildRequest(cfg form.FormConfig) apimodels.GenerateRequest {
	eventTypes := make([]string, len(apimodels.DefaultEventTypes))
	copy(eventTypes, apimodels.DefaultEventTypes)

	return apimodels.GenerateRequest{
		EventType:     apimodels.EventTypeWebDataNew,
		EventTypes:    eventTypes,
		NumUsers:      ParseInt(cfg.NumUsers),
		NumEvents:     ParseInt(cfg.NumEvents),
		TimeRangeDays: ParseInt(cfg.TimeRangeDays),
		OutputFormat:  apimodels.OutputFormatJSON,
		Email:         cfg.Email,
		Sandbox:       cfg.Sandbox,
		SchemaID:      cfg.SchemaID,
		UserPrompt:    cfg.UserPrompt,
	}
}

// ParseInt reads the leading integer of s the way form number widgets are
// read: leading whitespace is skipped, a sign and a 0x prefix are honoured,
// and parsing stops at the first character that is not a digit. Input with
// no leading digits, or too large for int64, yields the NaN sentinel.
func ParseInt(s string) apimodels.Count {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := uint64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var n uint64
	digits := 0
	for _, r := range s {
		d, ok := digitValue(r, base)
		if !ok {
			break
		}
		if n > (math.MaxInt64-d)/base {
			return apimodels.NaN()
		}
		n = n*base + d
		digits++
	}
	if digits == 0 {
		return apimodels.NaN()
	}

	v := int64(n)
	if negative {
		v = -v
	}
	return apimodels.IntCount(v)
}

func digitValue(r rune, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case r >= '0' && r <= '9':
		d = uint64(r - '0')
	case r >= 'a' && r <= 'f':
		d = uint64(r-'a') + 10
	case r >= 'A' && r <= 'F':
		d = uint64(r-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}
