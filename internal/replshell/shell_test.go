package replshell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsxcheck/tsxcheck/internal/parser"
)

func TestShellEvalBindsAcrossCalls(t *testing.T) {
	s := New(parser.DefaultParseOptions())
	var out bytes.Buffer

	s.Eval("const x = 1;", &out)
	_, ok := s.env.LookupVariable("x")
	assert.True(t, ok, "declaring x should persist in the shell's running context")

	out.Reset()
	s.Eval("let y;", &out)
	_, ok = s.env.LookupVariable("y")
	assert.True(t, ok)
}

func TestShellEvalReportsParseErrors(t *testing.T) {
	s := New(parser.DefaultParseOptions())
	var out bytes.Buffer

	s.Eval("(", &out)
	assert.Contains(t, out.String(), "error")
}
