package token

// Stream is a token source backed by a fixed slice of tokens. Once the slice
// is exhausted it yields EOF on every call.
type Stream struct {
	toks []Token
	pos  int
}

// NewStream returns a Stream over the given tokens. The tokens are copied.
func NewStream(toks ...Token) *Stream {
	return &Stream{toks: append([]Token(nil), toks...)}
}

// Next returns the next token. It never fails.
func (s *Stream) Next() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{Type: EOF}, nil
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok, nil
}

// Remaining returns the number of tokens not yet returned by Next.
func (s *Stream) Remaining() int {
	return len(s.toks) - s.pos
}
