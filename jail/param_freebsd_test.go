package jail

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringParam(t *testing.T) {
	p := stringParam("name", "www1")
	assert.Equal(t, []byte("name\x00"), p.key)
	assert.Equal(t, []byte("www1\x00"), p.value)
	assert.Equal(t, "www1", p.cstring())
}

func TestIntParamRoundtrip(t *testing.T) {
	p := intParam("lastjid", 1234)
	require.Len(t, p.value, 4)
	assert.Equal(t, int32(1234), *(*int32)(unsafe.Pointer(&p.value[0])))
}

func TestOutParamCString(t *testing.T) {
	p := outParam("host.hostname", 16)
	copy(p.value, "box\x00garbage")
	assert.Equal(t, "box", p.cstring())

	t.Run("no NUL returns whole buffer", func(t *testing.T) {
		p := param{value: []byte("abc")}
		assert.Equal(t, "abc", p.cstring())
	})
}

func TestIovecs(t *testing.T) {
	params := []param{
		intParam("lastjid", 0),
		outParam("name", maxNameLen),
		{key: append([]byte("persist"), 0)}, // boolean, no value
	}
	iovs := iovecs(params)
	require.Len(t, iovs, 6)
	// key iovecs include the trailing NUL
	assert.Equal(t, uint64(len("lastjid")+1), iovs[0].Len)
	assert.Same(t, &params[0].key[0], iovs[0].Base)
	assert.Equal(t, uint64(4), iovs[1].Len)
	assert.Equal(t, uint64(maxNameLen), iovs[3].Len)
	// a valueless parameter gets a zero iovec
	assert.Nil(t, iovs[5].Base)
	assert.Zero(t, iovs[5].Len)
}
