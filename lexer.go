package llgram

import "strings"

// tokenizeGrammar is the grammar tokenizer of spec.md §4.3. It scans the
// (macro-expanded) grammar text left to right, maintaining a rolling start
// cursor s and current cursor c, and reacts to the event characters
// ':', '{', ';', '|'. Tokens with an empty lexeme are dropped at the end.
func tokenizeGrammar(source string) ([]gtoken, error) {
	var tokens []gtoken
	s, c, n := 0, 0, len(source)

	for c < n {
		switch source[c] {
		case ':':
			tokens = append(tokens, gtoken{tokLeftSide, strings.TrimSpace(source[s:c])})
			tokens = append(tokens, gtoken{tokColon, ":"})
			c++
			s = c
		case '{':
			tokens = append(tokens, gtoken{tokRightSide, strings.TrimSpace(source[s:c])})
			interior, next, err := extractActionBlock(source, c)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, gtoken{tokReturn, interior})
			c = next
			s = c
		case ';':
			if s != c {
				tokens = append(tokens, gtoken{tokRightSide, strings.TrimSpace(source[s:c])})
			}
			tokens = append(tokens, gtoken{tokSemicolon, ";"})
			c++
			s = c
		case '|':
			if s != c {
				tokens = append(tokens, gtoken{tokRightSide, strings.TrimSpace(source[s:c])})
			}
			c++
			s = c
		default:
			c++
		}
	}

	filtered := tokens[:0]
	for _, t := range tokens {
		if t.lexeme != "" {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// extractActionBlock extracts a balanced-brace action block starting at the
// '{' found at position start, tracking nesting depth. It returns the
// trimmed interior text and the cursor position just past the matching '}'.
// Running off the end of input without closing the block is fatal.
func extractActionBlock(content string, start int) (string, int, error) {
	depth := 1
	cursor := start + 1
	for depth != 0 {
		if cursor >= len(content) {
			return "", 0, errf(UnbalancedActionBlock, content[start:])
		}
		switch content[cursor] {
		case '{':
			depth++
		case '}':
			depth--
		}
		cursor++
	}
	return strings.TrimSpace(content[start+1 : cursor-1]), cursor, nil
}
