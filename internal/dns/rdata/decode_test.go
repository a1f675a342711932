package rdata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

func TestDecode_SwitchCoverage(t *testing.T) {
	tests := []struct {
		name    string
		rrType  domain.RRType
		wireIn  []byte
		want    string // expected presentation form
		wantErr bool
	}{
		{"A", domain.RRTypeA, []byte{192, 0, 2, 1}, "192.0.2.1", false},
		{"NS", domain.RRTypeNS, []byte{2, 'n', 's', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}, "ns.example.com", false},
		{"CNAME", domain.RRTypeCNAME, []byte{5, 'a', 'l', 'i', 'a', 's', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}, "alias.example.com", false},
		{"PTR", domain.RRTypePTR, []byte{3, 'p', 't', 'r', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}, "ptr.example.com", false},
		{"MX", domain.RRTypeMX, append([]byte{0, 10}, []byte{4, 'm', 'a', 'i', 'l', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}...), "10 mail.example.com", false},
		{"TXT", domain.RRTypeTXT, append([]byte{11}, []byte("hello world")...), `"hello world"`, false},
		{"AAAA", domain.RRTypeAAAA, []byte{0x20, 0x01, 0x0D, 0xB8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, "2001:db8::1", false},
		{"SRV", domain.RRTypeSRV, append([]byte{0, 1, 0, 2, 0, 80}, []byte{6, 't', 'a', 'r', 'g', 'e', 't', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}...), "1 2 80 target.example.com", false},
		{"CAA", domain.RRTypeCAA, append([]byte{0, 5}, append([]byte("issue"), []byte("ca.example.net")...)...), `0 issue "ca.example.net"`, false},
		{"unassigned type passthrough", domain.RRType(9999), []byte{0xDE, 0xAD}, `\# 2 DEAD`, false},
		{"A truncated", domain.RRTypeA, []byte{192, 0}, "", true},
		{"AAAA truncated", domain.RRTypeAAAA, []byte{0x20, 0x01}, "", true},
		{"NS bad name", domain.RRTypeNS, []byte{9, 'n'}, "", true},
		{"SOA truncated", domain.RRTypeSOA, []byte{2, 'n', 's', 0, 0, 0, 0, 1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := wire.NewCursor(tt.wireIn)
			got, err := Decode(tt.rrType, c, len(tt.wireIn))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.rrType, got.Type())
			require.Equal(t, tt.want, got.String())
			require.Equal(t, 0, c.Remaining())
		})
	}
}

func TestDecode_RoundTripBytes(t *testing.T) {
	// compose(parse(bytes)) == bytes for every implemented type
	tests := []struct {
		name   string
		rrType domain.RRType
		wireIn []byte
	}{
		{"A", domain.RRTypeA, []byte{192, 0, 2, 1}},
		{"NS", domain.RRTypeNS, []byte{2, 'n', 's', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}},
		{"CNAME", domain.RRTypeCNAME, []byte{3, 'w', 'w', 'w', 0}},
		{"SOA", domain.RRTypeSOA, append(
			append([]byte{2, 'n', 's', 0}, []byte{4, 'h', 'o', 's', 't', 0}...),
			0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4, 0, 0, 0, 5),
		},
		{"PTR", domain.RRTypePTR, []byte{4, 'h', 'o', 's', 't', 0}},
		{"MX", domain.RRTypeMX, []byte{0, 10, 4, 'm', 'a', 'i', 'l', 0}},
		{"TXT", domain.RRTypeTXT, []byte{2, 'h', 'i', 0, 3, 'y', 'o', 'u'}},
		{"AAAA", domain.RRTypeAAAA, []byte{0x20, 0x01, 0x0D, 0xB8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}},
		{"SRV", domain.RRTypeSRV, []byte{0, 1, 0, 2, 0, 80, 3, 's', 'i', 'p', 0}},
		{"OPT", domain.RRTypeOPT, []byte{0x00, 0x09, 0x00, 0x04, 0x00, 0x00, 0x0E, 0x10, 0x00, 0x0B, 0x00, 0x02, 0x00, 0x96}},
		{"CAA", domain.RRTypeCAA, append([]byte{0, 5}, append([]byte("issue"), []byte("ca.example.net")...)...)},
		{"unassigned", domain.RRType(4711), []byte{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rd, err := Decode(tt.rrType, wire.NewCursor(tt.wireIn), len(tt.wireIn))
			require.NoError(t, err)
			b := wire.NewBuilder(len(tt.wireIn))
			require.NoError(t, rd.Compose(b))
			require.Equal(t, tt.wireIn, b.Bytes())
		})
	}
}
