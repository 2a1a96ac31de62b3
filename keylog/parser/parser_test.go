package parser_test

import (
	"testing"

	"github.com/dasdy/keylayout/keylog/parser"
	"github.com/dasdy/keylayout/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefix = "[23:09:36.886,444] <dbg> zmk: zmk_kscan_process_msgq: "

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected *model.KeyEvent
	}{
		{
			"correct full line",
			prefix + "Row: 2, col: 1, position: 23, pressed: false",
			&model.KeyEvent{Row: 2, Col: 1, Position: 23, Pressed: false},
		},
		{
			"trims escape code at end",
			prefix + "Row: 2, col: 1, position: 23, pressed: false\x1b[0m",
			&model.KeyEvent{Row: 2, Col: 1, Position: 23, Pressed: false},
		},
		{
			"pressed=true",
			prefix + "Row: 2, col: 1, position: 23, pressed: true",
			&model.KeyEvent{Row: 2, Col: 1, Position: 23, Pressed: true},
		},
		{
			"trailing carriage return",
			prefix + "Row: 0, col: 5, position: 5, pressed: true\r",
			&model.KeyEvent{Row: 0, Col: 5, Position: 5, Pressed: true},
		},
	}

	for _, item := range testCases {
		t.Run("parses "+item.name, func(t *testing.T) {
			res, err := parser.ParseLine(item.line)

			require.NoError(t, err)
			assert.Equal(t, item.expected, res)
		})
	}

	ignored := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"unrelated", "[00:00:00.004,000] <inf> usb_cdc_acm: Device suspended"},
		{"partial", prefix + "Row: 2, col: 1"},
	}

	for _, item := range ignored {
		t.Run("ignores "+item.name, func(t *testing.T) {
			res, err := parser.ParseLine(item.line)

			require.NoError(t, err)
			assert.Nil(t, res)
		})
	}

	errorTestCases := []struct {
		name string
		line string
	}{
		{"pressed=gobble", prefix + "Row: 2, col: 1, position: 23, pressed: t"},
		{"row malformed", prefix + "Row: , col: 1, position: 23, pressed: true"},
		{"col malformed", prefix + "Row: 2, col: k, position: 23, pressed: true"},
		{"pos malformed", prefix + "Row: 2, col: 1, position: :, pressed: true"},
	}

	for _, item := range errorTestCases {
		t.Run("does not parse "+item.name, func(t *testing.T) {
			res, err := parser.ParseLine(item.line)

			require.Error(t, err)
			assert.Nil(t, res)
		})
	}
}

func BenchmarkParseLine(b *testing.B) {
	lines := []string{
		prefix + "Row: 2, col: 5, position: 27, pressed: true",
		"[23:09:36.886,444] <inf> usb_cdc_acm: unrelated line",
		prefix + "Row: 2, col: 5, position: 27, pressed: false",
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = parser.ParseLine(lines[i%len(lines)])
	}
}
