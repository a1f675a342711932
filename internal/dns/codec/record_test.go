package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/edns"
	"github.com/haukened/rr-wire/internal/dns/rdata"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

func mustA(t *testing.T, addr string) rdata.A {
	t.Helper()
	a, err := rdata.NewA(addr)
	require.NoError(t, err)
	return a
}

func TestRecord_ComposeParse_RoundTrip(t *testing.T) {
	aaaa, err := rdata.NewAAAA("2001:db8::1")
	require.NoError(t, err)

	tests := []struct {
		name string
		rec  Record
	}{
		{"A", Record{Name: "host.example.com", Class: domain.RRClassIN, TTL: 300, Data: mustA(t, "192.0.2.1")}},
		{"AAAA", Record{Name: "host.example.com", Class: domain.RRClassIN, TTL: 300, Data: aaaa}},
		{"NS", Record{Name: "example.com", Class: domain.RRClassIN, TTL: 86400, Data: rdata.NS{Host: "ns1.example.com"}}},
		{"CNAME", Record{Name: "www.example.com", Class: domain.RRClassIN, TTL: 60, Data: rdata.CNAME{Target: "example.com"}}},
		{"SOA", Record{Name: "example.com", Class: domain.RRClassIN, TTL: 3600, Data: rdata.SOA{
			MName: "ns1.example.com", RName: "hostmaster.example.com",
			Serial: 2024060100, Refresh: 7200, Retry: 600, Expire: 86400, Minimum: 300,
		}}},
		{"PTR", Record{Name: "1.2.0.192.in-addr.arpa", Class: domain.RRClassIN, TTL: 300, Data: rdata.PTR{Target: "host.example.com"}}},
		{"MX", Record{Name: "example.com", Class: domain.RRClassIN, TTL: 3600, Data: rdata.MX{Preference: 10, Exchange: "mail.example.com"}}},
		{"TXT", Record{Name: "example.com", Class: domain.RRClassIN, TTL: 60, Data: rdata.TXT{Strings: []string{"v=spf1 -all", "second"}}}},
		{"SRV", Record{Name: "_sip._tcp.example.com", Class: domain.RRClassIN, TTL: 120, Data: rdata.SRV{
			Priority: 1, Weight: 5, Port: 5060, Target: "sip.example.com",
		}}},
		{"CAA", Record{Name: "example.com", Class: domain.RRClassIN, TTL: 3600, Data: rdata.CAA{
			Flags: 0, Tag: "issue", Value: "ca.example.net",
		}}},
		{"OPT", Record{Name: "", Class: domain.RRClass(4096), TTL: 0, Data: rdata.OPT{Options: []edns.Option{
			edns.NewExpire(3600),
			edns.NewTcpKeepalive(150),
			edns.UnknownOption{OptCode: edns.OptionCode(65001), Data: []byte{0xAB, 0xCD}},
		}}}},
		{"Opaque", Record{Name: "example.com", Class: domain.RRClassIN, TTL: 0, Data: rdata.Opaque{
			Code: domain.RRType(4711), Octets: []byte{1, 2, 3, 4, 5},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := wire.NewBuilder(512)
			require.NoError(t, ComposeRecord(b, tt.rec))
			got, err := ParseRecord(wire.NewCursor(b.Bytes()))
			require.NoError(t, err)
			require.Equal(t, tt.rec, got)
			require.Equal(t, tt.rec.Type(), got.Type())
		})
	}
}

func TestRecord_ParseCompose_ByteExact(t *testing.T) {
	// "host.example.com" A IN 300 -> 192.0.2.1
	msg := []byte{
		4, 'h', 'o', 's', 't', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		0x00, 0x01,
		0x00, 0x01,
		0x00, 0x00, 0x01, 0x2C,
		0x00, 0x04,
		192, 0, 2, 1,
	}
	rec, err := ParseRecord(wire.NewCursor(msg))
	require.NoError(t, err)

	b := wire.NewBuilder(64)
	require.NoError(t, ComposeRecord(b, rec))
	require.Equal(t, msg, b.Bytes())
}

func TestRecord_UnknownType_KeepsFraming(t *testing.T) {
	b := wire.NewBuilder(128)
	// record of an unassigned type with rdlen = 5
	require.NoError(t, RecordHeader{
		Name: "weird.example.com", Type: domain.RRType(1234),
		Class: domain.RRClassIN, TTL: 30, RDLen: 5,
	}.Compose(b))
	b.Append([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42})
	// followed by an ordinary A record
	require.NoError(t, ComposeRecord(b, Record{
		Name: "host.example.com", Class: domain.RRClassIN, TTL: 300,
		Data: mustA(t, "192.0.2.1"),
	}))

	c := wire.NewCursor(b.Bytes())

	first, err := ParseRecord(c)
	require.NoError(t, err)
	opaque, ok := first.Data.(rdata.Opaque)
	require.True(t, ok)
	require.Equal(t, domain.RRType(1234), first.Type())
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42}, opaque.Octets)

	second, err := ParseRecord(c)
	require.NoError(t, err)
	require.Equal(t, "host.example.com", second.Name)
	require.Equal(t, domain.RRTypeA, second.Type())
	require.Equal(t, 0, c.Remaining())
}

func TestRecord_MalformedPayload_ResyncsToNextRecord(t *testing.T) {
	b := wire.NewBuilder(128)
	// A record claiming 3 bytes of address
	require.NoError(t, RecordHeader{
		Name: "bad.example.com", Type: domain.RRTypeA,
		Class: domain.RRClassIN, TTL: 30, RDLen: 3,
	}.Compose(b))
	b.Append([]byte{192, 0, 2})
	require.NoError(t, ComposeRecord(b, Record{
		Name: "good.example.com", Class: domain.RRClassIN, TTL: 300,
		Data: mustA(t, "192.0.2.2"),
	}))

	c := wire.NewCursor(b.Bytes())

	_, err := ParseRecord(c)
	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	require.Equal(t, domain.RRTypeA, dataErr.RRType)

	// the cursor is at the record boundary, the next record is intact
	second, err := ParseRecord(c)
	require.NoError(t, err)
	require.Equal(t, "good.example.com", second.Name)
	require.Equal(t, 0, c.Remaining())
}

func TestRecord_UnderConsumption_IsAnError(t *testing.T) {
	b := wire.NewBuilder(128)
	// A record with one trailing junk byte inside its declared RDATA
	require.NoError(t, RecordHeader{
		Name: "pad.example.com", Type: domain.RRTypeA,
		Class: domain.RRClassIN, TTL: 30, RDLen: 5,
	}.Compose(b))
	b.Append([]byte{192, 0, 2, 1, 0xFF})

	c := wire.NewCursor(b.Bytes())
	_, err := ParseRecord(c)
	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	require.Equal(t, 0, c.Remaining())
}

func TestRecord_ReservedTTL_ResyncsToNextRecord(t *testing.T) {
	b := wire.NewBuilder(128)
	require.NoError(t, RecordHeader{
		Name: "old.example.com", Type: domain.RRTypeA,
		Class: domain.RRClassIN, TTL: 0x80000001, RDLen: 4,
	}.Compose(b))
	b.Append([]byte{192, 0, 2, 1})
	require.NoError(t, ComposeRecord(b, Record{
		Name: "good.example.com", Class: domain.RRClassIN, TTL: 300,
		Data: mustA(t, "192.0.2.2"),
	}))

	c := wire.NewCursor(b.Bytes())

	_, err := ParseRecord(c)
	require.ErrorIs(t, err, ErrTTL)

	second, err := ParseRecord(c)
	require.NoError(t, err)
	require.Equal(t, "good.example.com", second.Name)
}

func TestRecord_TruncatedPayload(t *testing.T) {
	b := wire.NewBuilder(64)
	require.NoError(t, RecordHeader{
		Name: "cut.example.com", Type: domain.RRType(1234),
		Class: domain.RRClassIN, TTL: 30, RDLen: 10,
	}.Compose(b))
	b.Append([]byte{1, 2, 3}) // 3 of 10 declared bytes

	_, err := ParseRecord(wire.NewCursor(b.Bytes()))
	require.ErrorIs(t, err, wire.ErrShortBuf)
}

func TestRecord_ZeroLengthPayload_Backpatch(t *testing.T) {
	b := wire.NewBuilder(64)
	require.NoError(t, ComposeRecord(b, Record{
		Name: "x", Class: domain.RRClassIN, TTL: 0,
		Data: rdata.Opaque{Code: domain.RRType(999)},
	}))
	out := b.Bytes()
	// name "x" is 3 bytes; RDLENGTH is the last 2 bytes of the record
	require.Equal(t, 3+10, len(out))
	require.Equal(t, []byte{0x00, 0x00}, out[len(out)-2:])
}

func TestRecord_PayloadTooLong(t *testing.T) {
	b := wire.NewBuilder(128)
	err := ComposeRecord(b, Record{
		Name: "big.example.com", Class: domain.RRClassIN, TTL: 0,
		Data: rdata.Opaque{Code: domain.RRType(999), Octets: make([]byte, 0x10000)},
	})
	require.ErrorIs(t, err, ErrRDataTooLong)
}
