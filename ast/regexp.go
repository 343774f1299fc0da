package ast

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Compile splits the verbatim /pattern/flags text and compiles the
// pattern in ECMAScript mode. Of the flags, i, m and s map to compile
// options; g, y and u only affect matching state or parsing modes this
// layer does not model and are accepted as no-ops.
func (r *RegExpLiteral) Compile() (*regexp2.Regexp, error) {
	raw := r.Raw
	if len(raw) < 3 || raw[0] != '/' {
		return nil, fmt.Errorf("ast: malformed regexp literal %q", raw)
	}
	end := strings.LastIndexByte(raw, '/')
	if end == 0 {
		return nil, fmt.Errorf("ast: regexp literal %q has no closing delimiter", raw)
	}
	pattern, flags := raw[1:end], raw[end+1:]

	var opts regexp2.RegexOptions = regexp2.ECMAScript
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'g', 'y', 'u':
			// match-state / parse-mode flags, nothing to configure here
		default:
			return nil, fmt.Errorf("ast: unsupported regexp flag %q in %q", f, raw)
		}
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("ast: compile regexp literal %q: %w", raw, err)
	}
	return re, nil
}
