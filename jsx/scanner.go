package jsx

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner splits component source into tokens. It is driven by the parser:
// regular expressions, template continuations and JSX text are context
// dependent and are scanned on request.
type Scanner struct {
	src []byte
	pos int
}

func NewScanner(src []byte) *Scanner {
	s := &Scanner{src: src}
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		s.pos = 3
	}
	// hashbang line
	if strings.HasPrefix(string(src[s.pos:min(len(src), s.pos+2)]), "#!") {
		for s.pos < len(src) && src[s.pos] != '\n' {
			s.pos++
		}
	}
	return s
}

func (s *Scanner) peek() byte {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return 0
}

func (s *Scanner) peekAt(off int) byte {
	if s.pos+off < len(s.src) {
		return s.src[s.pos+off]
	}
	return 0
}

func (s *Scanner) eof() bool {
	return s.pos >= len(s.src)
}

func illegal(pos, end int, msg string) Token {
	return Token{Kind: Illegal, Value: msg, Pos: pos, End: end}
}

// skipTrivia skips whitespace and comments, reports whether a line
// terminator was seen. Unterminated block comment is returned as illegal
// token.
func (s *Scanner) skipTrivia() (bool, *Token) {
	newline := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n' || c == '\r':
			newline = true
			s.pos++
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			s.pos++
		case c == '/' && s.peekAt(1) == '/':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' && s.src[s.pos] != '\r' {
				s.pos++
			}
		case c == '/' && s.peekAt(1) == '*':
			start := s.pos
			end := strings.Index(string(s.src[s.pos+2:]), "*/")
			if end < 0 {
				t := illegal(start, len(s.src), "unterminated comment")
				s.pos = len(s.src)
				return newline, &t
			}
			if strings.ContainsAny(string(s.src[s.pos:s.pos+2+end]), "\n\r") {
				newline = true
			}
			s.pos += 2 + end + 2
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(s.src[s.pos:])
			if r == '\u2028' || r == '\u2029' {
				newline = true
			} else if !unicode.IsSpace(r) && r != '\ufeff' {
				return newline, nil
			}
			s.pos += size
		default:
			return newline, nil
		}
	}
	return newline, nil
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= utf8.RuneSelf && unicode.IsLetter(r))
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '\u200c' || r == '\u200d' ||
		(r >= utf8.RuneSelf && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Next scans next token in regular (non-JSX) context. Slash is always
// returned as punctuator, parser rescans it with Regex when needed.
func (s *Scanner) Next() Token {
	newline, bad := s.skipTrivia()
	if bad != nil {
		bad.NewlineBefore = newline
		return *bad
	}
	t := s.scan()
	t.NewlineBefore = newline
	return t
}

func (s *Scanner) scan() Token {
	start := s.pos
	if s.eof() {
		return Token{Kind: EOF, Pos: start, End: start}
	}

	c := s.src[s.pos]
	switch {
	case c == '"' || c == '\'':
		return s.scanString(c)
	case c == '`':
		s.pos++
		return s.scanTemplate(start, true)
	case isDigit(c) || (c == '.' && isDigit(s.peekAt(1))):
		return s.scanNumber()
	case c == '#':
		s.pos++
		name := s.scanIdentName()
		if name == "" {
			return illegal(start, s.pos, "unexpected character '#'")
		}
		return Token{Kind: PrivateName, Value: "#" + name, Pos: start, End: s.pos}
	}

	r, _ := utf8.DecodeRune(s.src[s.pos:])
	if isIdentStart(r) || r == '\\' {
		name := s.scanIdentName()
		if name == "" {
			return illegal(start, s.pos+1, "invalid identifier escape")
		}
		return Token{Kind: Identifier, Value: name, Pos: start, End: s.pos}
	}

	rest := s.src[s.pos:]
	for _, p := range punctuators {
		if len(rest) >= len(p) && string(rest[:len(p)]) == p {
			// "?." followed by digit is conditional operator and number
			if p == "?." && len(rest) > 2 && isDigit(rest[2]) {
				continue
			}
			s.pos += len(p)
			return Token{Kind: Punct, Value: p, Pos: start, End: s.pos}
		}
	}

	_, size := utf8.DecodeRune(rest)
	s.pos += size
	return illegal(start, s.pos, "unexpected character "+strconv.QuoteRune(r))
}

func (s *Scanner) scanIdentName() string {
	var sb strings.Builder
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRune(s.src[s.pos:])
		if r == '\\' {
			// \uXXXX or \u{X...}
			if s.peekAt(1) != 'u' {
				return ""
			}
			s.pos += 2
			v, ok := s.scanUnicodeEscape()
			if !ok {
				return ""
			}
			sb.WriteRune(v)
			continue
		}
		if sb.Len() == 0 && !isIdentStart(r) || sb.Len() > 0 && !isIdentPart(r) {
			break
		}
		sb.WriteRune(r)
		s.pos += size
	}
	return sb.String()
}

// scanUnicodeEscape reads hex part of \u escape, position is after "\u".
func (s *Scanner) scanUnicodeEscape() (rune, bool) {
	var digits string
	if s.peek() == '{' {
		end := strings.IndexByte(string(s.src[s.pos:]), '}')
		if end < 0 {
			return 0, false
		}
		digits = string(s.src[s.pos+1 : s.pos+end])
		s.pos += end + 1
	} else {
		if s.pos+4 > len(s.src) {
			return 0, false
		}
		digits = string(s.src[s.pos : s.pos+4])
		s.pos += 4
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > unicode.MaxRune {
		return 0, false
	}
	return rune(v), true
}

func (s *Scanner) scanNumber() Token {
	start := s.pos
	if s.peek() == '0' && strings.ContainsRune("xXoObB", rune(s.peekAt(1))) {
		s.pos += 2
		for s.pos < len(s.src) && (isHex(s.src[s.pos]) || s.src[s.pos] == '_') {
			s.pos++
		}
	} else {
		s.digits()
		if s.peek() == '.' {
			s.pos++
			s.digits()
		}
		if c := s.peek(); c == 'e' || c == 'E' {
			s.pos++
			if c := s.peek(); c == '+' || c == '-' {
				s.pos++
			}
			if !isDigit(s.peek()) {
				return illegal(start, s.pos, "invalid number exponent")
			}
			s.digits()
		}
	}
	if s.peek() == 'n' {
		s.pos++
	}
	if r, _ := utf8.DecodeRune(s.src[s.pos:]); s.pos < len(s.src) && isIdentStart(r) {
		return illegal(start, s.pos, "identifier starts immediately after numeric literal")
	}
	return Token{Kind: Number, Value: string(s.src[start:s.pos]), Pos: start, End: s.pos}
}

func (s *Scanner) digits() {
	for s.pos < len(s.src) && (isDigit(s.src[s.pos]) || s.src[s.pos] == '_') {
		s.pos++
	}
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (s *Scanner) scanString(quote byte) Token {
	start := s.pos
	s.pos++
	var sb strings.Builder
	for {
		if s.eof() {
			return illegal(start, s.pos, "unterminated string constant")
		}
		c := s.src[s.pos]
		switch c {
		case quote:
			s.pos++
			return Token{Kind: String, Value: sb.String(), Pos: start, End: s.pos}
		case '\n', '\r':
			return illegal(start, s.pos, "unterminated string constant")
		case '\\':
			s.pos++
			if !s.scanEscape(&sb) {
				return illegal(start, s.pos, "invalid escape sequence")
			}
		default:
			sb.WriteByte(c)
			s.pos++
		}
	}
}

// scanEscape cooks escape sequence, position is after backslash.
func (s *Scanner) scanEscape(sb *strings.Builder) bool {
	if s.eof() {
		return false
	}
	c := s.src[s.pos]
	s.pos++
	switch c {
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
	case '\r':
		// line continuation
		if s.peek() == '\n' {
			s.pos++
		}
	case '\n':
	case 'x':
		if s.pos+2 > len(s.src) {
			return false
		}
		v, err := strconv.ParseUint(string(s.src[s.pos:s.pos+2]), 16, 8)
		if err != nil {
			return false
		}
		sb.WriteRune(rune(v))
		s.pos += 2
	case 'u':
		r, ok := s.scanUnicodeEscape()
		if !ok {
			return false
		}
		sb.WriteRune(r)
	default:
		s.pos--
		r, size := utf8.DecodeRune(s.src[s.pos:])
		sb.WriteRune(r)
		s.pos += size
	}
	return true
}

// scanTemplate scans template characters up to closing backtick or "${",
// position is after opening backtick (head) or closing brace (continuation).
func (s *Scanner) scanTemplate(start int, head bool) Token {
	var sb strings.Builder
	for {
		if s.eof() {
			return illegal(start, s.pos, "unterminated template")
		}
		c := s.src[s.pos]
		switch {
		case c == '`':
			s.pos++
			kind := TemplateTail
			if head {
				kind = Template
			}
			return Token{Kind: kind, Value: sb.String(), Pos: start, End: s.pos}
		case c == '$' && s.peekAt(1) == '{':
			s.pos += 2
			kind := TemplateMiddle
			if head {
				kind = TemplateHead
			}
			return Token{Kind: kind, Value: sb.String(), Pos: start, End: s.pos}
		case c == '\\':
			s.pos++
			if !s.scanEscape(&sb) {
				return illegal(start, s.pos, "invalid escape sequence in template")
			}
		default:
			sb.WriteByte(c)
			s.pos++
		}
	}
}

// ContinueTemplate rescans template after substitution, pos points at the
// closing brace of substitution.
func (s *Scanner) ContinueTemplate(pos int) Token {
	s.pos = pos + 1
	return s.scanTemplate(pos, false)
}

// Regex rescans regular expression literal starting at pos.
func (s *Scanner) Regex(pos int) Token {
	s.pos = pos + 1
	inClass := false
	for {
		if s.eof() {
			return illegal(pos, s.pos, "unterminated regular expression")
		}
		c := s.src[s.pos]
		switch {
		case c == '\n' || c == '\r':
			return illegal(pos, s.pos, "unterminated regular expression")
		case c == '\\':
			s.pos += 2
			continue
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			s.pos++
			for s.pos < len(s.src) {
				r, size := utf8.DecodeRune(s.src[s.pos:])
				if !isIdentPart(r) {
					break
				}
				s.pos += size
			}
			return Token{Kind: Regex, Value: string(s.src[pos:s.pos]), Pos: pos, End: s.pos}
		}
		s.pos++
	}
}

// JSX specific scanning, all functions work on raw position.

// jsxName reads element or attribute name: identifier characters plus dash,
// member (a.b) and namespace (a:b) separators.
func (s *Scanner) jsxName() string {
	start := s.pos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRune(s.src[s.pos:])
		if s.pos == start {
			if !isIdentStart(r) {
				break
			}
		} else if !isIdentPart(r) && r != '-' && r != '.' && r != ':' {
			break
		}
		s.pos += size
	}
	return string(s.src[start:s.pos])
}

// jsxString reads quoted attribute value, JSX strings have no escapes.
func (s *Scanner) jsxString() (Token, bool) {
	start := s.pos
	quote := s.src[s.pos]
	end := strings.IndexByte(string(s.src[s.pos+1:]), quote)
	if end < 0 {
		s.pos = len(s.src)
		return illegal(start, s.pos, "unterminated string constant"), false
	}
	s.pos += end + 2
	return Token{Kind: String, Value: decodeEntities(string(s.src[start+1 : s.pos-1])), Pos: start, End: s.pos}, true
}

// jsxText reads element text up to next '{' or '<'.
func (s *Scanner) jsxText() string {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '{' && s.src[s.pos] != '<' {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

var entities = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&nbsp;", "\u00a0")

func decodeEntities(in string) string {
	if !strings.ContainsRune(in, '&') {
		return in
	}
	return entities.Replace(in)
}
