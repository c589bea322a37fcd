package legacy

import "testing"

func TestDecodeWindows1252(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{0x80}, "€"},
		{[]byte{0x92}, "’"},
		{[]byte{'A', 0x00, 'B'}, "A"},
	}
	for _, tt := range tests {
		if got := DecodeWindows1252(tt.in); got != tt.want {
			t.Errorf("DecodeWindows1252(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	in := []byte{'H', 0x00, 'i', 0x00, 0x00, 0x00, '!', 0x00}
	want := "Hi"
	if got := DecodeUTF16LE(in); got != want {
		t.Errorf("DecodeUTF16LE(%v) = %q, want %q", in, got, want)
	}
}

func TestDecodeUTF16LEOddLength(t *testing.T) {
	in := []byte{'H', 0x00, 'i'}
	if got := DecodeUTF16LE(in); got != "Hi" {
		t.Errorf("DecodeUTF16LE with trailing odd byte = %q, want %q", got, "Hi")
	}
}
