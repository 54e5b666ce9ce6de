package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/mikhailwahib/sstable"
)

// parseScalar interprets raw per the requested kind: "text" (default),
// "uint64", or "hex" (byte string given as hex digits).
func parseScalar(kind, raw string) (sstable.Scalar, error) {
	switch kind {
	case "", "text":
		return sstable.NewText(raw), nil
	case "uint64":
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return sstable.Scalar{}, fmt.Errorf("invalid uint64 %q: %w", raw, err)
		}
		return sstable.NewUint64(v), nil
	case "hex":
		b, err := hex.DecodeString(raw)
		if err != nil {
			return sstable.Scalar{}, fmt.Errorf("invalid hex %q: %w", raw, err)
		}
		return sstable.NewBytes(b), nil
	default:
		return sstable.Scalar{}, fmt.Errorf("unknown kind %q: want text, uint64, or hex", kind)
	}
}

// formatScalar renders a decoded scalar for human-readable CLI output.
func formatScalar(s sstable.Scalar) string {
	switch s.Kind.String() {
	case "bytes":
		return hex.EncodeToString(s.Bytes)
	case "uint64":
		return strconv.FormatUint(s.U64, 10)
	default:
		return s.Text
	}
}
