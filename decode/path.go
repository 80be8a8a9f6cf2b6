package decode

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// FormatPath renders keys as a path such as $.items[0].name. Names which
// are not plain identifiers are quoted.
func FormatPath(keys []Key) string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, k := range keys {
		if k.IsPosition() {
			fmt.Fprintf(buf, "[%d]", k.Int())
			continue
		}
		name := k.String()
		if name != "" && strings.IndexAny(name, "'.[]$ \\") == -1 {
			buf.WriteString("." + name)
			continue
		}
		buf.WriteString(".'" + quoteEscaper.Replace(name) + "'")
	}
	return buf.String()
}

// ParsePath parses a path in the form FormatPath produces. The leading '$'
// is optional, so "$.a[1]", ".a[1]" and "a[1]" are the same path.
func ParsePath(p string) ([]Key, error) {
	p = strings.TrimPrefix(p, "$")
	if p == "" {
		return nil, nil
	}
	if p[0] != '.' && p[0] != '[' {
		p = "." + p
	}
	var res []Key
	for len(p) > 0 {
		switch p[0] {
		case '.':
			field, rest, err := parseField(p[1:])
			if err != nil {
				return nil, err
			}
			res = append(res, Name(field))
			p = rest
		case '[':
			i := strings.IndexByte(p, ']')
			if i == -1 {
				return nil, fmt.Errorf("expected '[' <index> ']' in %q", p)
			}
			u64, err := strconv.ParseUint(p[1:i], 10, 31)
			if err != nil {
				return nil, fmt.Errorf("bad index %q: %w", p[1:i], err)
			}
			res = append(res, Position(int(u64)))
			p = p[i+1:]
		default:
			return nil, fmt.Errorf("expected '.' or '[' at %q", p)
		}
	}
	return res, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field before %q", frag)
		}
		return frag[:i], frag[i:], nil
	}
	var b strings.Builder
	esc := false
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case esc:
			b.WriteByte(c)
			esc = false
		case c == '\\':
			esc = true
		case c == '\'':
			return b.String(), frag[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field %q", frag)
}
