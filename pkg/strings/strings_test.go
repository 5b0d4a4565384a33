package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToStringAndStringToBytes(t *testing.T) {
	b := []byte("hello")
	assert.Equal(t, "hello", BytesToString(b))
	assert.Equal(t, []byte("hello"), StringToBytes("hello"))
	assert.Equal(t, "", BytesToString(nil))
	assert.Nil(t, StringToBytes(""))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(8)
	n, err := b.Write([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", b.String())

	b.Reset()
	assert.Equal(t, "", b.String())
}

func TestClone(t *testing.T) {
	assert.Equal(t, "", Clone(""))
	assert.Equal(t, "hello", Clone("hello"))
}

func TestGetPutBuilder(t *testing.T) {
	for _, size := range []BuilderSize{Small, Medium, Large} {
		b := GetBuilder(size)
		assert.Equal(t, "", b.String())
		b.Write([]byte("x"))
		PutBuilder(b, size)
	}
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "no args", Sprintf("no args"))
	assert.Equal(t, "invalid_row: empty column name", Sprintf("%s: %s", "invalid_row", "empty column name"))
	assert.Equal(t, "n=42", Sprintf("n=%d", 42))
}

func TestSprintf_LargeArgumentOutgrowsSmallBuilder(t *testing.T) {
	big := make([]byte, 20*1024)
	for i := range big {
		big[i] = 'a'
	}
	got := Sprintf("%s-%d", string(big), 1)
	assert.Equal(t, string(big)+"-1", got)
}
