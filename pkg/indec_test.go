package pkg_test

import (
	"errors"
	"testing"

	"onebrc/pkg"
)

func TestParseIndec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int32
	}{
		{"3.4", 34},
		{"-3.4", -34},
		{"23.4", 234},
		{"-23.4", -234},
		{"0.0", 0},
		{"-0.0", 0},
		{"99.9", 999},
		{"-99.9", -999},
		{"05.1", 51},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := pkg.ParseIndec([]byte(tt.in))
			if err != nil {
				t.Fatalf("ParseIndec(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseIndec(%q) = %d, want %d", tt.in, got, tt.want)
			}
			if back := pkg.PrintIndec(int64(got)); tt.in[0] != '0' && tt.in != "-0.0" && back != tt.in {
				t.Errorf("PrintIndec(%d) = %q, want %q", got, back, tt.in)
			}
		})
	}
}

func TestParseIndec_Rejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"", "-", "3", "34", "3.", ".4", "-.4", "3.45", "123.4", "-123.4",
		"3,4", "a.4", "3.a", "+3.4", "--3.4", "3.4 ", " 3.4", "3.4\r", "1e1",
	} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			got, err := pkg.ParseIndec([]byte(in))
			if !errors.Is(err, pkg.ErrFormat) {
				t.Errorf("ParseIndec(%q) = %d, %v; want ErrFormat", in, got, err)
			}
		})
	}
}

func TestPrintIndec(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:     "0.0",
		5:     "0.5",
		-5:    "-0.5",
		34:    "3.4",
		-234:  "-23.4",
		999:   "99.9",
		12345: "1234.5",
	}
	for in, want := range tests {
		if got := pkg.PrintIndec(in); got != want {
			t.Errorf("PrintIndec(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitParse(t *testing.T) {
	t.Parallel()

	key, val, err := pkg.SplitParse([]byte("Hamburg;12.0"))
	if err != nil {
		t.Fatal(err)
	}
	if string(key) != "Hamburg" || val != 120 {
		t.Errorf("SplitParse = %q, %d; want Hamburg, 120", key, val)
	}

	key, val, err = pkg.SplitParse([]byte("São Paulo;-3.4"))
	if err != nil {
		t.Fatal(err)
	}
	if string(key) != "São Paulo" || val != -34 {
		t.Errorf("SplitParse = %q, %d; want São Paulo, -34", key, val)
	}
}

func TestSplitParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"no separator", "Hamburg 12.0"},
		{"empty key", ";12.0"},
		{"empty value", "Hamburg;"},
		{"second separator", "Ham;burg;12.0"},
		{"three integer digits", "Hamburg;120.0"},
		{"no fraction", "Hamburg;12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := pkg.SplitParse([]byte(tt.line))
			var fe *pkg.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("SplitParse(%q) error = %v, want *FormatError", tt.line, err)
			}
			if fe.Line != tt.line {
				t.Errorf("FormatError.Line = %q, want %q", fe.Line, tt.line)
			}
		})
	}
}
