package telescan

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *ConfigSpace
		wantErr bool
		errMsg  string
	}{
		{
			name:  "minimal capture",
			input: "<data><config><bytes>86801013</bytes></config></data>",
			want:  &ConfigSpace{Data: []byte{0x86, 0x80, 0x10, 0x13}},
		},
		{
			name:  "two dwords",
			input: "<data><bytes>0000000100000002</bytes></data>",
			want: &ConfigSpace{Data: []byte{
				0x00, 0x00, 0x00, 0x01,
				0x00, 0x00, 0x00, 0x02,
			}},
		},
		{
			name:  "deeply nested bytes element",
			input: "<a><b><c><bytes>DEADBEEF</bytes></c></b></a>",
			want:  &ConfigSpace{Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "<data><bytes>\n  cafef00d  \n</bytes></data>",
			want:  &ConfigSpace{Data: []byte{0xCA, 0xFE, 0xF0, 0x0D}},
		},
		{
			name:  "mixed case hex",
			input: "<data><bytes>AbCdEf01</bytes></data>",
			want:  &ConfigSpace{Data: []byte{0xAB, 0xCD, 0xEF, 0x01}},
		},
		{
			name: "xml declaration and attributes",
			input: `<?xml version="1.0" encoding="utf-8"?>` +
				`<data version="2"><bytes>00000000</bytes></data>`,
			want: &ConfigSpace{Data: []byte{0x00, 0x00, 0x00, 0x00}},
		},
		{
			name:  "empty bytes element",
			input: "<data><bytes></bytes></data>",
			want:  &ConfigSpace{Data: []byte{}},
		},
		{
			name:    "missing bytes element",
			input:   "<data><config></config></data>",
			wantErr: true,
			errMsg:  "missing <bytes> element",
		},
		{
			name:    "empty document",
			input:   "",
			wantErr: true,
			errMsg:  "missing <bytes> element",
		},
		{
			// bare text is valid XML character data, so the decoder
			// reaches EOF without finding any element
			name:    "bare hex with no xml wrapper",
			input:   "86801013",
			wantErr: true,
			errMsg:  "missing <bytes> element",
		},
		{
			name:    "malformed xml",
			input:   "<data><<bytes>86801013</bytes></data>",
			wantErr: true,
			errMsg:  "failed to parse capture XML",
		},
		{
			name:    "truncated xml",
			input:   "<data><bytes>86801013",
			wantErr: true,
			errMsg:  "failed to read <bytes> element",
		},
		{
			name:    "invalid hex character",
			input:   "<data><bytes>8680101Z</bytes></data>",
			wantErr: true,
			errMsg:  "invalid hex character",
		},
		{
			name:    "interior whitespace rejected",
			input:   "<data><bytes>8680 1013</bytes></data>",
			wantErr: true,
			errMsg:  "invalid hex character",
		},
		{
			name:    "odd hex length",
			input:   "<data><bytes>8680101</bytes></data>",
			wantErr: true,
			errMsg:  "not dword-aligned",
		},
		{
			name:    "partial trailing dword",
			input:   "<data><bytes>86801013de10</bytes></data>",
			wantErr: true,
			errMsg:  "not dword-aligned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReader(strings.NewReader(tt.input))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Fatalf("error %q should contain %q", err.Error(), tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("capture mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseReaderFullCapture(t *testing.T) {
	hexData := strings.Repeat("a5", ConfigSpaceSize)
	input := "<data><bytes>" + hexData + "</bytes></data>"

	cs, err := ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cs.Complete() {
		t.Errorf("capture of %d bytes should be complete", cs.Len())
	}
	if cs.Len() != ConfigSpaceSize {
		t.Errorf("got %d bytes, want %d", cs.Len(), ConfigSpaceSize)
	}
}

func TestParseRaw(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    *ConfigSpace
		wantErr bool
		errMsg  string
	}{
		{
			name:  "aligned dump",
			input: []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02},
			want: &ConfigSpace{Data: []byte{
				0x00, 0x00, 0x00, 0x01,
				0x00, 0x00, 0x00, 0x02,
			}},
		},
		{
			name:  "empty dump",
			input: []byte{},
			want:  &ConfigSpace{Data: []byte{}},
		},
		{
			name:    "partial trailing dword",
			input:   []byte{0x00, 0x00, 0x00, 0x01, 0x02},
			wantErr: true,
			errMsg:  "not dword-aligned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRaw(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Fatalf("error %q should contain %q", err.Error(), tt.errMsg)
				}
				var alignErr *AlignmentError
				if !errors.As(err, &alignErr) {
					t.Fatalf("expected *AlignmentError, got %T", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("capture mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRawCopiesInput(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04}
	cs, err := ParseRaw(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input[0] = 0xFF
	if cs.Data[0] != 0x01 {
		t.Error("ParseRaw should copy the input, not alias it")
	}
}

func TestDwords(t *testing.T) {
	cs := &ConfigSpace{Data: []byte{
		0x86, 0x80, 0x10, 0x13,
		0x00, 0x00, 0x00, 0x02,
	}}

	want := []uint32{0x86801013, 0x00000002}
	if diff := cmp.Diff(want, cs.Dwords()); diff != "" {
		t.Errorf("dwords mismatch (-want +got):\n%s", diff)
	}
}
