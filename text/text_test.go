package text

import "testing"

func TestSlice(t *testing.T) {
	var txt = FromString("hello world")

	var tests = []struct {
		start, length int
		want          string
	}{
		{0, 5, "hello"},
		{6, 5, "world"},
		{0, 0, ""},
		{6, 100, "world"}, // length clamped
		{100, 5, ""},      // start clamped
	}
	for _, test := range tests {
		var s = txt.Slice(test.start, test.length)
		if s.String() != test.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", test.start, test.length, s.String(), test.want)
		}
	}
}

func TestSliceCopy(t *testing.T) {
	var txt = FromString("hello world")
	var copied = txt.Slice(0, 5).Copy()
	if copied.String() != "hello" || copied.Len() != 5 {
		t.Errorf("copy: got %q (%d)", copied.String(), copied.Len())
	}
}

func TestNewCopies(t *testing.T) {
	var data = []byte("abc")
	var txt = New(data)
	data[0] = 'x'
	if txt.String() != "abc" {
		t.Errorf("text must not alias its input: got %q", txt.String())
	}
}

func TestLeadWidth(t *testing.T) {
	var tests = []struct {
		ch   byte
		want int
	}{
		{'a', 1},
		{0x7F, 1},
		{0xC3, 2}, // é
		{0xE2, 3}, // €
		{0xF0, 4}, // emoji
		{0x80, 1}, // continuation byte
	}
	for _, test := range tests {
		if got := LeadWidth(test.ch); got != test.want {
			t.Errorf("LeadWidth(%#x) = %d, want %d", test.ch, got, test.want)
		}
	}
}

func TestEffectiveLen(t *testing.T) {
	var tests = []struct {
		input string
		want  int
	}{
		{"abc", 3},
		{"héllo", 6},
		{"abc\xC3", 3},     // truncated two-byte sequence
		{"abc\xF0\x9F", 3}, // truncated four-byte sequence
		{"", 0},
	}
	for _, test := range tests {
		if got := FromString(test.input).EffectiveLen(); got != test.want {
			t.Errorf("EffectiveLen(%q) = %d, want %d", test.input, got, test.want)
		}
	}
}
