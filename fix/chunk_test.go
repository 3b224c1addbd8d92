package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileChunk(t *testing.T) {
	chunk := CompileChunk([]byte("8"), []byte("FIX.4.4"))

	assert.Equal(t, []byte("8=FIX.4.4"), chunk[:9])
	assert.Equal(t, soh, chunk[9])
	assert.Len(t, chunk, 10)
}

func TestCompileChunkEmptyValue(t *testing.T) {
	assert.Equal(t, []byte("49=\x01"), CompileChunk([]byte("49"), nil))
}

func TestDisplayString(t *testing.T) {
	input := framed("8=FIX.4.4", "9=75", "35=A")

	assert.Equal(t, "8=FIX.4.4|9=75|35=A|", DisplayString(input))
}

func TestDisplayStringLeavesOtherBytesAlone(t *testing.T) {
	assert.Equal(t, "49=A=B|", DisplayString([]byte("49=A=B\x01")))
}
