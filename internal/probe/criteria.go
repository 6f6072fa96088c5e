package probe

import (
	"slices"
	"strconv"
	"strings"

	"github.com/probectl/probectl/internal/errors"
)

// criteriaKind discriminates the success-criteria variants.
type criteriaKind int

const (
	criteriaDefaultOK criteriaKind = iota
	criteriaCodes
	criteriaServiceUp
)

// Criteria classifies a response status code as pass or fail. The zero
// value accepts any 2xx status.
type Criteria struct {
	kind  criteriaKind
	codes []int
}

// DefaultOK returns criteria accepting any 2xx status.
func DefaultOK() Criteria {
	return Criteria{}
}

// Codes returns criteria accepting exactly the given status codes.
func Codes(codes ...int) Criteria {
	return Criteria{kind: criteriaCodes, codes: slices.Clone(codes)}
}

// ServiceUp returns the lenient criteria: any status in [200,499] passes.
// Redirects are not followed under these criteria, so a redirect response
// itself counts as the service answering.
func ServiceUp() Criteria {
	return Criteria{kind: criteriaServiceUp}
}

// ParseCodes parses a comma-separated status code list such as "200,404"
// into explicit-code criteria.
func ParseCodes(list string) (Criteria, error) {
	if strings.TrimSpace(list) == "" {
		return Criteria{}, errors.ValidationError("ok_codes must not be empty")
	}

	var codes []int
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return Criteria{}, errors.ValidationErrorf("empty entry in ok_codes %q", list)
		}
		code, err := strconv.Atoi(entry)
		if err != nil {
			return Criteria{}, errors.ValidationErrorf("ok_codes entry is not an integer: %q", entry)
		}
		codes = append(codes, code)
	}
	return Codes(codes...), nil
}

// Matches reports whether status passes the criteria.
func (c Criteria) Matches(status int) bool {
	switch c.kind {
	case criteriaCodes:
		return slices.Contains(c.codes, status)
	case criteriaServiceUp:
		return status >= 200 && status < 500
	default:
		return status >= 200 && status < 300
	}
}

// followRedirects reports whether the transport may chase redirects while
// probing under these criteria.
func (c Criteria) followRedirects() bool {
	return c.kind != criteriaServiceUp
}

// String describes the criteria for logs and error messages.
func (c Criteria) String() string {
	switch c.kind {
	case criteriaCodes:
		parts := make([]string, len(c.codes))
		for i, code := range c.codes {
			parts[i] = strconv.Itoa(code)
		}
		return "status in {" + strings.Join(parts, ",") + "}"
	case criteriaServiceUp:
		return "status in [200,499]"
	default:
		return "status 2xx"
	}
}
