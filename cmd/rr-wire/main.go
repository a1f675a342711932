// rr-wire is a DNS wire-format inspector. It reads a hex-encoded DNS
// message from the command line or stdin, decodes the records in it, and
// prints them in zone-file column order. Malformed records are reported
// and skipped, so one bad record never hides the rest of the message.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/codec"
	"github.com/haukened/rr-wire/internal/dns/common/log"
	"github.com/haukened/rr-wire/internal/dns/config"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

const (
	version = "0.1.0-dev"
	appName = "rr-wire"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"app":     appName,
		"version": version,
		"max":     cfg.MaxMessageSize,
		"strict":  cfg.Strict,
	}, "Starting inspector")

	data, err := readInput(os.Args[1:], os.Stdin)
	if err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "Failed to read input")
	}
	if len(data) > cfg.MaxMessageSize {
		log.Fatal(map[string]any{
			"size": len(data),
			"max":  cfg.MaxMessageSize,
		}, "Message exceeds configured size")
	}

	if err := inspect(os.Stdout, data, cfg.Strict); err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "Failed to decode message")
	}
}

// readInput hex-decodes the message from the first argument, or from stdin
// when no argument is given. Whitespace is ignored so dumps can be pasted
// as-is.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		raw = string(b)
	}
	raw = strings.Join(strings.Fields(raw), "")
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex input")
	}
	return hex.DecodeString(raw)
}

// inspect walks a full DNS message, printing each record to w. Record
// parse errors are logged and skipped unless strict is set; structural
// errors (header, question section) are always fatal.
func inspect(w io.Writer, data []byte, strict bool) error {
	c := wire.NewCursor(data)

	h, err := codec.ParseMessageHeader(c)
	if err != nil {
		return fmt.Errorf("message header: %w", err)
	}
	log.Debug(map[string]any{
		"id": h.ID,
		"qd": h.QDCount,
		"an": h.ANCount,
		"ns": h.NSCount,
		"ar": h.ARCount,
	}, "Parsed message header")

	for i := 0; i < int(h.QDCount); i++ {
		if err := codec.SkipQuestion(c); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}

	for i := 0; i < h.RecordCount(); i++ {
		rec, err := codec.ParseRecord(c)
		if err != nil {
			// Payload and TTL errors leave the cursor at the record
			// boundary, so the walk can continue. Anything else lost
			// framing and has to stop.
			var dataErr *codec.DataError
			recoverable := errors.As(err, &dataErr) || errors.Is(err, codec.ErrTTL)
			if strict || !recoverable {
				return fmt.Errorf("record %d: %w", i, err)
			}
			log.Warn(map[string]any{
				"record": i,
				"error":  err.Error(),
			}, "Skipping malformed record")
			continue
		}
		fmt.Fprintln(w, rec)
	}
	return nil
}
