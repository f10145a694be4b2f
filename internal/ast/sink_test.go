package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSinkAccumulatesText(t *testing.T) {
	sink := NewStringSink(0)
	sink.PushString("abc")
	sink.PushNewLine()
	sink.PushString("d")
	assert.Equal(t, "abc\nd", sink.String())
	assert.Equal(t, 1, sink.CharactersOnCurrentLine())
	assert.False(t, sink.ShouldHalt())
}

func TestStringSinkHaltsPastMaxLineLength(t *testing.T) {
	sink := NewStringSink(3)
	sink.PushString("abc")
	assert.False(t, sink.ShouldHalt())
	sink.Push('d')
	assert.True(t, sink.ShouldHalt())
}
