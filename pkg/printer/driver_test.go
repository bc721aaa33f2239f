package printer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTransport collects written bytes and can be told to fail after a number
// of writes.
type memTransport struct {
	open       bool
	buf        []byte
	writes     int
	failAfter  int // -1 never fails
	openErr    error
	closeCalls int
}

func newMemTransport() *memTransport {
	return &memTransport{failAfter: -1}
}

func (t *memTransport) Open() error {
	if t.openErr != nil {
		return t.openErr
	}
	t.open = true
	return nil
}

func (t *memTransport) Write(data []byte) (int, error) {
	if t.failAfter >= 0 && t.writes >= t.failAfter {
		return 0, errors.New("paper out")
	}
	t.writes++
	t.buf = append(t.buf, data...)
	return len(data), nil
}

func (t *memTransport) Close() error {
	t.closeCalls++
	t.open = false
	return nil
}

func (t *memTransport) IsOpen() bool {
	return t.open
}

func TestDriverInitSendsEscAt(t *testing.T) {
	transport := newMemTransport()
	d := NewDriver(transport)

	require.NoError(t, d.Init())

	assert.True(t, transport.open)
	assert.Equal(t, []byte{ESC, '@'}, transport.buf)
}

func TestDriverWriteTextAppendsLineFeed(t *testing.T) {
	transport := newMemTransport()
	d := NewDriver(transport)

	require.NoError(t, d.WriteText("Espresso"))

	assert.Equal(t, append([]byte("Espresso"), LF), transport.buf)
}

func TestDriverFontSizeBytes(t *testing.T) {
	tests := []struct {
		width, height int
		arg           byte
	}{
		{1, 1, 0x00},
		{2, 2, 0x11},
		{3, 3, 0x22},
		{8, 8, 0x77},
		// values are clamped into 1..8
		{0, 9, 0x07},
	}
	for _, tt := range tests {
		transport := newMemTransport()
		d := NewDriver(transport)

		require.NoError(t, d.SetFontSize(tt.width, tt.height))
		assert.Equal(t, []byte{GS, '!', tt.arg}, transport.buf, "%dx%d", tt.width, tt.height)
	}
}

func TestDriverJustifyBytes(t *testing.T) {
	for _, align := range []int{AlignLeft, AlignCenter, AlignRight} {
		transport := newMemTransport()
		d := NewDriver(transport)

		require.NoError(t, d.SetJustify(align))
		assert.Equal(t, []byte{ESC, 'a', byte(align)}, transport.buf)
	}
}

func TestDriverCutBytes(t *testing.T) {
	transport := newMemTransport()
	d := NewDriver(transport)

	require.NoError(t, d.Cut())

	assert.Equal(t, []byte{GS, 'V', 0x00}, transport.buf)
}

func TestDriverOpensTransportLazily(t *testing.T) {
	transport := newMemTransport()
	d := NewDriver(transport)

	assert.False(t, d.Connected())
	require.NoError(t, d.Feed())
	assert.True(t, d.Connected())
}

func TestDriverSurfacesOpenFailure(t *testing.T) {
	transport := newMemTransport()
	transport.openErr = errors.New("no such device")
	d := NewDriver(transport)

	assert.Error(t, d.Init())
	assert.Error(t, d.WriteText("Espresso"))
}

func TestDispatchExecutesInOrder(t *testing.T) {
	transport := newMemTransport()
	d := NewDriver(transport)

	ops := []Op{
		SetJustifyOp(AlignCenter),
		SetFontOp(2, 2),
		WriteOp("Espresso"),
		FeedOp(),
		CutOp(),
	}

	require.NoError(t, Dispatch(d, ops))

	var want []byte
	want = append(want, ESC, '@')
	want = append(want, ESC, 'a', byte(AlignCenter))
	want = append(want, GS, '!', 0x11)
	want = append(want, []byte("Espresso")...)
	want = append(want, LF)
	want = append(want, LF)
	want = append(want, GS, 'V', 0x00)
	assert.Equal(t, want, transport.buf)
}

func TestDispatchAbortsOnFirstFailure(t *testing.T) {
	transport := newMemTransport()
	// init write succeeds, second op fails
	transport.failAfter = 2
	d := NewDriver(transport)

	ops := []Op{
		WriteOp("first"),
		WriteOp("second"),
		WriteOp("third"),
	}

	err := Dispatch(d, ops)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation 1 (write)")
	// Only init and the first op reached the transport
	assert.Equal(t, 2, transport.writes)
}

func TestDispatchInitFailure(t *testing.T) {
	transport := newMemTransport()
	transport.openErr = errors.New("no such device")
	d := NewDriver(transport)

	err := Dispatch(d, []Op{WriteOp("Espresso")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "init failed")
	assert.Zero(t, transport.writes)
}
