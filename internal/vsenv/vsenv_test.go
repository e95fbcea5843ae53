package vsenv

import (
	"strings"
	"testing"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want map[string]string
	}{
		{
			name: "plain variables",
			out:  "PATH=C:\\Windows\nTEMP=C:\\Temp\n",
			want: map[string]string{"PATH": "C:\\Windows", "TEMP": "C:\\Temp"},
		},
		{
			name: "lines without equals are skipped",
			out:  "Microsoft Visual Studio 2019\nPATH=C:\\Windows\n** banner **\n",
			want: map[string]string{"PATH": "C:\\Windows"},
		},
		{
			name: "split only on first equals",
			out:  "FOO=bar=baz\n",
			want: map[string]string{"FOO": "bar=baz"},
		},
		{
			name: "crlf line endings",
			out:  "INCLUDE=C:\\VC\\include\r\nLIB=C:\\VC\\lib\r\n",
			want: map[string]string{"INCLUDE": "C:\\VC\\include", "LIB": "C:\\VC\\lib"},
		},
		{
			name: "empty value",
			out:  "EMPTY=\n",
			want: map[string]string{"EMPTY": ""},
		},
		{
			name: "empty output",
			out:  "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSet([]byte(tt.out))
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSet() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("ParseSet()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestEnviron(t *testing.T) {
	got := Environ(map[string]string{
		"PATH": "C:\\Windows",
		"LIB":  "C:\\VC\\lib",
		"FOO":  "bar=baz",
	})
	want := "FOO=bar=baz LIB=C:\\VC\\lib PATH=C:\\Windows"
	if strings.Join(got, " ") != want {
		t.Errorf("Environ() = %q, want %q", strings.Join(got, " "), want)
	}
}

func TestEnvironEmpty(t *testing.T) {
	if got := Environ(nil); len(got) != 0 {
		t.Errorf("Environ(nil) = %v, want empty", got)
	}
}
