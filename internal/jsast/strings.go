package jsast

import (
	"strconv"
	"strings"
)

// StringValue decodes the runtime value of a string or substitution-free
// template literal. Returns false for any node whose value is not a
// compile-time constant.
func (t *Tree) StringValue(id NodeID) (string, bool) {
	switch t.Kind(id) {
	case KindString:
		return decodeStringLiteral(t.Text(id))
	case KindTemplateString:
		for _, child := range t.nodes[id].Children {
			if t.Kind(child) == KindTemplateSubstitution {
				return "", false
			}
		}

		return decodeStringLiteral(t.Text(id))
	default:
		return "", false
	}
}

// decodeStringLiteral strips the surrounding quotes (or backticks) and
// resolves JavaScript escape sequences.
func decodeStringLiteral(raw string) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}

	quote := raw[0]
	if quote != '"' && quote != '\'' && quote != '`' {
		return "", false
	}

	if raw[len(raw)-1] != quote {
		return "", false
	}

	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, true
	}

	var sb strings.Builder

	sb.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)

			continue
		}

		i++
		if i >= len(body) {
			return "", false
		}

		consumed, ok := decodeEscape(&sb, body[i:])
		if !ok {
			return "", false
		}

		i += consumed - 1
	}

	return sb.String(), true
}

// decodeEscape writes the expansion of one escape sequence (rest starts
// just past the backslash) and returns how many bytes it consumed.
func decodeEscape(sb *strings.Builder, rest string) (int, bool) {
	switch rest[0] {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		sb.WriteByte(0)
	case 'x':
		return decodeHexEscape(sb, rest, 2)
	case 'u':
		if len(rest) > 1 && rest[1] == '{' {
			return decodeCodePointEscape(sb, rest)
		}

		return decodeHexEscape(sb, rest, 4)
	case '\n':
		// Line continuation expands to nothing.
	default:
		sb.WriteByte(rest[0])
	}

	return 1, true
}

func decodeHexEscape(sb *strings.Builder, rest string, digits int) (int, bool) {
	if len(rest) < 1+digits {
		return 0, false
	}

	value, err := strconv.ParseUint(rest[1:1+digits], 16, 32)
	if err != nil {
		return 0, false
	}

	sb.WriteRune(rune(value))

	return 1 + digits, true
}

func decodeCodePointEscape(sb *strings.Builder, rest string) (int, bool) {
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return 0, false
	}

	value, err := strconv.ParseUint(rest[2:end], 16, 32)
	if err != nil {
		return 0, false
	}

	sb.WriteRune(rune(value))

	return end + 1, true
}
