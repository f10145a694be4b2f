package ast

// StringSink is a reusable, exported Sink that accumulates printed
// source text into a string. Grounded on print_test.go's private
// stringSink, promoted here so the CLI, REPL, and module packages have
// a concrete Sink to print against without duplicating it per package.
type StringSink struct {
	buf           []rune
	line          int
	maxLineLength int
}

// NewStringSink returns an empty StringSink. A maxLineLength of 0
// means no line-length limit (ShouldHalt never reports true).
func NewStringSink(maxLineLength int) *StringSink {
	return &StringSink{maxLineLength: maxLineLength}
}

func (s *StringSink) Push(r rune) {
	s.buf = append(s.buf, r)
	if r == '\n' {
		s.line = 0
	} else {
		s.line++
	}
}

func (s *StringSink) PushString(str string) {
	for _, r := range str {
		s.Push(r)
	}
}

func (s *StringSink) PushNewLine() { s.Push('\n') }

func (s *StringSink) CharactersOnCurrentLine() int { return s.line }

func (s *StringSink) ShouldHalt() bool {
	return s.maxLineLength > 0 && s.line > s.maxLineLength
}

func (s *StringSink) String() string { return string(s.buf) }
