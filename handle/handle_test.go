package handle_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/partite-ai/handlego/handle"
)

type thing struct {
	number int
}

func (t thing) Clone() thing {
	return t
}

type buffer struct {
	data []byte
}

func (b buffer) Clone() buffer {
	d := make([]byte, len(b.data))
	copy(d, b.data)
	return buffer{data: d}
}

type flags struct {
	ready bool
}

// panicky asserts that its duplication logic is never reached.
type panicky struct {
	number int
}

func (p panicky) Clone() panicky {
	panic("duplication logic invoked")
}

func TestNewPreservesValue(t *testing.T) {
	for num := 0; num < 128; num++ {
		h := handle.New(thing{number: num})
		require.Equal(t, num, h.Instance().number)
	}
}

func TestInstanceMutates(t *testing.T) {
	h := handle.New(thing{number: 3})
	h.Instance().number = 15
	require.Equal(t, 15, h.Instance().number)
	require.Equal(t, 15, h.Unwrap().number)
}

func TestCloneIsIndependent(t *testing.T) {
	orig := handle.New(thing{number: 7})
	dup := handle.Clone(orig)
	require.Equal(t, 7, dup.Instance().number)

	orig.Instance().number = 8
	require.Equal(t, 7, dup.Instance().number)

	dup.Instance().number = 9
	require.Equal(t, 8, orig.Instance().number)
}

func TestCloneCopiesReferenceFields(t *testing.T) {
	orig := handle.New(buffer{data: []byte("abc")})
	dup := handle.Clone(orig)

	orig.Instance().data[0] = 'x'
	require.Equal(t, []byte("abc"), dup.Instance().data)
	require.Equal(t, []byte("xbc"), orig.Instance().data)
}

func TestReplaceSwaps(t *testing.T) {
	h := handle.New(thing{number: 1})
	other := thing{number: 2}
	h.Replace(&other)
	require.Equal(t, 2, h.Instance().number)
	require.Equal(t, 1, other.number)
}

func TestUnwrapReturnsValue(t *testing.T) {
	h := handle.New(thing{number: 42})
	require.Equal(t, thing{number: 42}, h.Unwrap())
}

func TestEqualComparesValues(t *testing.T) {
	a := handle.New(thing{number: 5})
	b := handle.New(thing{number: 5})
	c := handle.New(thing{number: 6})
	require.True(t, handle.Equal(a, b))
	require.False(t, handle.Equal(a, c))
}

func TestFromRefViewsStorage(t *testing.T) {
	v := thing{number: 10}
	h := handle.FromRef(&v)
	require.Equal(t, 10, h.Instance().number)

	h.Instance().number = 11
	require.Equal(t, 11, v.number)

	v.number = 12
	require.Equal(t, 12, h.Instance().number)
}

func TestFromRefNilPanics(t *testing.T) {
	require.Panics(t, func() {
		handle.FromRef[thing](nil)
	})
}

func TestHandleLayoutMatchesWrappedType(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(thing{}), unsafe.Sizeof(handle.Handle[thing]{}))
	require.Equal(t, unsafe.Sizeof(buffer{}), unsafe.Sizeof(handle.Handle[buffer]{}))
}
