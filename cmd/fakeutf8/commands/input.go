package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/fakeutf8/transcoder"
)

var stdinIsTerminal int32 = -1 // -1 = unchecked, 0 = no, 1 = yes

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// readText returns the joined arguments, or stdin when there are none and
// stdin is not a terminal. One trailing newline is dropped.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd()), &stdinIsTerminal) {
		return "", fmt.Errorf("no input: pass text as an argument or pipe it on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// parseUnits parses "102,111,111" (decimal, or 0x-prefixed hex) into units.
func parseUnits(s string) ([]uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []uint16{}, nil
	}
	fields := splitFields(s)
	units := make([]uint16, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("unit %d (%q): %w", i, f, err)
		}
		units[i] = uint16(v)
	}
	return units, nil
}

// parseCarrier reads a carrier written as a byte unit list or as hex digits.
//
// The input is a unit list when units is set, when it contains a comma or
// when any field is 0x-prefixed. Otherwise it is hex if the digits form whole
// bytes, and a decimal unit list if every field is decimal.
func parseCarrier(s string, units bool) (transcoder.Carrier, error) {
	fields := splitFields(s)
	if !units && !strings.Contains(s, ",") && !anyHexPrefixed(fields) {
		b, err := hex.DecodeString(strings.Join(fields, ""))
		if err == nil {
			return transcoder.Carrier(b), nil
		}
		if !allDecimal(fields) {
			return nil, fmt.Errorf("parse hex carrier: %w", err)
		}
	}

	list, err := parseUnits(s)
	if err != nil {
		return nil, err
	}
	c := make(transcoder.Carrier, len(list))
	for i, u := range list {
		if u > 0xFF {
			return nil, fmt.Errorf("unit %d (0x%04x) is not a byte", i, u)
		}
		c[i] = byte(u)
	}
	return c, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func anyHexPrefixed(fields []string) bool {
	for _, f := range fields {
		if strings.HasPrefix(f, "0x") || strings.HasPrefix(f, "0X") {
			return true
		}
	}
	return false
}

func allDecimal(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseUint(f, 10, 16); err != nil {
			return false
		}
	}
	return len(fields) > 0
}

func formatCarrier(c transcoder.Carrier, format string) string {
	switch format {
	case formatHex:
		return fmt.Sprintf("% x", []byte(c))
	case formatLatin1:
		return c.Latin1()
	default:
		return formatUnitList(c.Units())
	}
}

func formatUnitList(units []uint16) string {
	var b strings.Builder
	for i, u := range units {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(u), 10))
	}
	return b.String()
}
