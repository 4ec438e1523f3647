package source

import (
	"testing"

	"github.com/dnaka91/mabo/pkg/util/assert"
)

func TestNew_NormalizesCRLF(t *testing.T) {
	f, err := New("mem", []byte("struct X {\r\n  a: u8 @1\r\n}\r\n"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "struct X {\n  a: u8 @1\n}\n", string(f.Contents()))
}

func TestNew_RejectsInvalidUTF8(t *testing.T) {
	_, err := New("mem", []byte{0xff, 0xfe, 0x00})
	if err == nil {
		t.Fatalf("expected an error for invalid UTF-8 input")
	}
}

func TestPositionOf(t *testing.T) {
	f, err := New("mem", []byte("abc\ndef\nghi"))
	assert.Equal(t, nil, err)

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{0, 1, 1}},
		{3, Position{3, 1, 4}},
		{4, Position{4, 2, 1}},
		{8, Position{8, 3, 1}},
	}

	for _, tt := range tests {
		got := f.PositionOf(tt.offset)
		assert.Equal(t, tt.want, got)
	}
}

func TestEnclosingLine(t *testing.T) {
	f, err := New("mem", []byte("abc\ndef\nghi"))
	assert.Equal(t, nil, err)

	line := f.EnclosingLine(NewSpan(4, 5))
	assert.Equal(t, 2, line.Number)
	assert.Equal(t, "def", line.String())
}

func TestSpanJoin(t *testing.T) {
	a := NewSpan(2, 5)
	b := NewSpan(4, 9)
	joined := a.Join(b)
	assert.Equal(t, 2, joined.Start())
	assert.Equal(t, 9, joined.End())
}
