package bigint

import (
	"errors"
	"strings"
	"testing"
)

func TestFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  BigInt
	}{
		{"4", fromLimbs(4)},
		{"", Zero()},
		{"0", Zero()},
		{"00000000000000000000", Zero()},
		{"4294967295", fromLimbs(4294967295)},
		// Exactly 2^32: the base boundary rolls into a second limb.
		{"4294967296", fromLimbs(0, 1)},
		{"922337203685477580", fromLimbs(3435973836, 214748364)},
		{"9223372036854775803949", fromLimbs(4294963245, 4294967295, 499)},
		{"42949672963434342343243324343232890890", fromLimbs(3461744650, 2330743505, 1228788904, 542101086)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run("input="+tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := FromString(tt.input)
			if err != nil {
				t.Fatalf("FromString(%q) error = %v", tt.input, err)
			}
			if !got.Eq(tt.want) {
				t.Errorf("FromString(%q) = %v, want %v", tt.input, got.limbs, tt.want.limbs)
			}
		})
	}
}

func TestFromString_EmptyEqualsZero(t *testing.T) {
	t.Parallel()

	got, err := FromString("")
	if err != nil {
		t.Fatalf("FromString(\"\") error = %v", err)
	}
	// The division loop always runs at least once, so the empty input is
	// represented as one zero limb rather than an empty sequence. The
	// representations differ in length but must compare equal.
	if len(got.limbs) != 1 {
		t.Errorf("FromString(\"\") has %d limbs, want 1", len(got.limbs))
	}
	if !got.Eq(Zero()) {
		t.Error("FromString(\"\") must equal Zero()")
	}
}

// TestFromString_ChunkAlignedLength exercises inputs whose digit count is an
// exact multiple of the 8-digit chunk size. The carry scaling for the final
// chunk must still use its full original width; getting this wrong only
// shows up on chunk-aligned lengths, and silently, as a wrong value rather
// than an error.
func TestFromString_ChunkAlignedLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  BigInt
	}{
		// 10^15, 16 digits: the second chunk is all zeros, so every carry
		// into it must be scaled by the full chunk width.
		{"1000000000000000", fromLimbs(2764472320, 232830)},
		// 10^23, 24 digits, three full chunks.
		{"100000000000000000000000", fromLimbs(4135583744, 46653770, 5421)},
		{strings.Repeat("12345678", 6), fromLimbs(1941303118, 4041182589, 2017223221, 1201919293, 362806872)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run("input="+tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := FromString(tt.input)
			if err != nil {
				t.Fatalf("FromString(%q) error = %v", tt.input, err)
			}
			if !got.Eq(tt.want) {
				t.Errorf("FromString(%q) = %v, want %v", tt.input, got.limbs, tt.want.limbs)
			}
		})
	}
}

func TestFromString_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantOffset int
		wantByte   byte
	}{
		{"letter inside digits", "12a3", 2, 'a'},
		{"leading sign", "-42", 0, '-'},
		{"space", "4 2", 1, ' '},
		{"decimal point", "3.14", 1, '.'},
		{"non-digit in later chunk", "123456789x", 9, 'x'},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromString(tt.input)
			if err == nil {
				t.Fatalf("FromString(%q) = %v, want error", tt.input, got.limbs)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("FromString(%q) error = %v, want *ParseError", tt.input, err)
			}
			if perr.Offset != tt.wantOffset || perr.Byte != tt.wantByte {
				t.Errorf("ParseError = {Offset: %d, Byte: %q}, want {Offset: %d, Byte: %q}",
					perr.Offset, perr.Byte, tt.wantOffset, tt.wantByte)
			}
			// No partial value may escape a failed parse.
			if len(got.limbs) != 0 {
				t.Errorf("failed parse returned %d limbs, want none", len(got.limbs))
			}
		})
	}
}

func TestMustFromString_PanicsOnMalformed(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustFromString(\"12a3\") did not panic")
		}
	}()
	MustFromString("12a3")
}
