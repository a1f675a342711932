package edns

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/wire"
)

func TestExpire_ParseAbsent(t *testing.T) {
	e, err := ParseExpire(wire.NewCursor(nil), 0)
	require.NoError(t, err)
	require.False(t, e.Present)
}

func TestExpire_ParsePresent(t *testing.T) {
	e, err := ParseExpire(wire.NewCursor([]byte{0x00, 0x00, 0x0E, 0x10}), 4)
	require.NoError(t, err)
	require.True(t, e.Present)
	require.Equal(t, uint32(3600), e.Value)
}

func TestExpire_ParseBadLength(t *testing.T) {
	_, err := ParseExpire(wire.NewCursor([]byte{0x00, 0x01}), 2)
	require.Error(t, err)
}

func TestExpire_ComposeAbsent(t *testing.T) {
	b := wire.NewBuilder(8)
	require.NoError(t, NewExpireRequest().Compose(b))
	require.Equal(t, 0, b.Len())
}

func TestExpire_ComposePresent(t *testing.T) {
	b := wire.NewBuilder(8)
	require.NoError(t, NewExpire(3600).Compose(b))
	require.Equal(t, []byte{0x00, 0x00, 0x0E, 0x10}, b.Bytes())
}

func TestExpire_Skip(t *testing.T) {
	c := wire.NewCursor([]byte{0x00, 0x00, 0x0E, 0x10})
	require.NoError(t, SkipExpire(c, 0))
	require.Equal(t, 0, c.Pos())
	require.NoError(t, SkipExpire(c, 4))
	require.Equal(t, 4, c.Pos())
}

func TestExpire_Code(t *testing.T) {
	require.Equal(t, OptionCodeExpire, NewExpire(1).Code())
	require.Equal(t, OptionCodeExpire, NewExpireRequest().Code())
}
