package l10n

import (
	"fmt"
	"strconv"
	"strings"
)

// Args is the substitution argument set for a template. It has exactly two
// variants: List for positional {0} {1} tokens and Map for named {name}
// tokens. The formatter dispatches on the variant via value.
type Args interface {
	// value resolves a placeholder token to its argument, reporting whether
	// the token is covered by this argument set.
	value(token string) (any, bool)
}

// List substitutes positionally: {0} is the first element.
type List []any

func (l List) value(token string) (any, bool) {
	i, err := strconv.Atoi(token)
	if err != nil || i < 0 || i >= len(l) {
		return nil, false
	}
	return l[i], true
}

// Map substitutes by identifier name: {name} takes the "name" element.
type Map map[string]any

func (m Map) value(token string) (any, bool) {
	v, ok := m[token]
	return v, ok
}

// FormatterFunc renders a resolved template with the supplied arguments. args
// may be nil. Implementations must not fail: unmatched placeholders are
// expected to remain in the output verbatim.
type FormatterFunc func(template string, args Args) string

// Format is the default formatter. It replaces every {token} covered by args
// with the argument's string form and leaves everything else untouched,
// including unmatched tokens and unpaired braces.
func Format(template string, args Args) string {
	if args == nil || !strings.Contains(template, "{") {
		return template
	}

	var buf strings.Builder
	buf.Grow(len(template))

	i := 0
	for i < len(template) {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			buf.WriteString(template[i:])
			break
		}
		open += i
		buf.WriteString(template[i:open])

		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			// 没有配对的 '}'，宽松模式：剩余部分按普通文本输出
			buf.WriteString(template[open:])
			break
		}
		end += open

		// 命中参数则替换，否则整个占位符原样保留
		token := template[open+1 : end]
		if v, ok := args.value(token); ok {
			buf.WriteString(fmt.Sprint(v))
		} else {
			buf.WriteString(template[open : end+1])
		}
		i = end + 1
	}

	return buf.String()
}

// PlaceholderNames returns the distinct placeholder tokens of template in
// order of first appearance. Tokens are the raw text between a '{' and the
// next '}', matching what Format would try to substitute; empty tokens are
// skipped.
func PlaceholderNames(template string) []string {
	var names []string
	seen := make(map[string]struct{})

	i := 0
	for i < len(template) {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			break
		}
		open += i
		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			break
		}
		end += open

		token := template[open+1 : end]
		if token != "" {
			if _, ok := seen[token]; !ok {
				seen[token] = struct{}{}
				names = append(names, token)
			}
		}
		i = end + 1
	}

	return names
}
