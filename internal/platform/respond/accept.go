package respond

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Malformed or
// out-of-range q values count as 1.0; a bare type is read as type/*.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(strings.TrimSpace(part), ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		if mt == "" {
			continue
		}
		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok {
			subtype = "*"
		}
		mr := mediaRange{typ: typ, subtype: subtype, q: 1.0}
		for _, p := range params[1:] {
			k, v, _ := strings.Cut(strings.TrimSpace(p), "=")
			if strings.ToLower(strings.TrimSpace(k)) != "q" {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			}
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity reports how precisely mr matches application/<sub> or
// application/problem+<suffix>, or -1 when it does not match.
func (mr mediaRange) specificity(sub, suffix string) int {
	switch {
	case mr.typ == "*" && mr.subtype == "*":
		return 0
	case mr.typ != "application":
		return -1
	case mr.subtype == sub || mr.subtype == "problem+"+suffix:
		return 3
	case mr.subtype == "*+"+suffix:
		return 2
	case mr.subtype == "*":
		return 1
	default:
		return -1
	}
}

// quality returns the q value of the most specific range matching the format.
func quality(ranges []mediaRange, sub, suffix string) float64 {
	best, q := -1, 0.0
	for _, mr := range ranges {
		if s := mr.specificity(sub, suffix); s > best {
			best, q = s, mr.q
		}
	}
	return q
}

// preferCBOR reports whether the client strictly prefers CBOR over JSON.
// Ties, wildcards and missing headers fall back to JSON.
func preferCBOR(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return false
	}
	ranges := parseAccept(accept)
	return quality(ranges, "cbor", "cbor") > quality(ranges, "json", "json")
}
