package converter

import "testing"

// TestDecodeText tests UTF-8 decoding with the ISO-8859-1 fallback.
func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain ascii", []byte("hello"), "hello"},
		{"valid utf-8", []byte("caf\xc3\xa9"), "café"},
		{"latin-1 fallback", []byte("caf\xe9"), "café"},
		{"latin-1 symbols", []byte("\xa9 2024"), "© 2024"},
		{"empty", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeText(tt.in)
			if err != nil {
				t.Fatalf("decodeText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("decodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
