package hints

// Notes:
// - ForDocumentNotFound tests cannot use t.Parallel() because they replace
//   the package-level LookupFile variable.
// These are acceptable gaps: we test observable behavior through the lookup seam.

import (
	"strings"
	"testing"
)

func TestForDocumentNotFound_SuggestsHTM(t *testing.T) {
	orig := LookupFile
	defer func() { LookupFile = orig }()
	LookupFile = func(path string) bool { return path == "index.htm" }

	hint := ForDocumentNotFound("index.html")

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "--document index.htm") {
		t.Errorf("expected index.htm suggestion, got %q", hint)
	}
}

func TestForDocumentNotFound_NoAlternative(t *testing.T) {
	orig := LookupFile
	defer func() { LookupFile = orig }()
	LookupFile = func(string) bool { return false }

	hint := ForDocumentNotFound("site/index.html")

	if !strings.Contains(hint, "directory containing index.html") {
		t.Errorf("expected directory suggestion, got %q", hint)
	}
	if !strings.Contains(hint, "--document") {
		t.Errorf("expected --document suggestion, got %q", hint)
	}
}

func TestForDocumentNotFound_HTMInput(t *testing.T) {
	orig := LookupFile
	defer func() { LookupFile = orig }()
	LookupFile = func(string) bool { return true }

	hint := ForDocumentNotFound("index.htm")

	if strings.Contains(hint, "found index.htm") {
		t.Errorf("should not suggest the same path, got %q", hint)
	}
}

func TestForDocumentWrite(t *testing.T) {
	t.Parallel()

	hint := ForDocumentWrite("site/index.html")
	if !strings.Contains(hint, "site") || !strings.Contains(hint, "writable") {
		t.Errorf("unexpected hint %q", hint)
	}
}

func TestForImageDelete(t *testing.T) {
	t.Parallel()

	hint := ForImageDelete("logo.png")
	if !strings.Contains(hint, "remove logo.png manually") {
		t.Errorf("expected manual removal hint, got %q", hint)
	}
	if !strings.Contains(hint, "--keep-image") {
		t.Errorf("expected --keep-image hint, got %q", hint)
	}
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("hints should be joined on one line, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     string
		notWant  string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"site.yaml", "/home/u/.config/go-embedlogo/site.yaml"},
			want:     "or create /home/u/.config/go-embedlogo/site.yaml",
		},
		{
			name:     "no user path",
			searched: []string{"site.yaml"},
			want:     "use --config",
			notWant:  "or create",
		},
		{
			name:     "nil paths",
			searched: nil,
			want:     "use --config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.searched)
			if !strings.Contains(hint, tt.want) {
				t.Errorf("hint %q should contain %q", hint, tt.want)
			}
			if tt.notWant != "" && strings.Contains(hint, tt.notWant) {
				t.Errorf("hint %q should not contain %q", hint, tt.notWant)
			}
		})
	}
}

func TestForNoReplacements(t *testing.T) {
	t.Parallel()

	hint := ForNoReplacements("logo.png")
	if !strings.Contains(hint, `src="logo.png"`) {
		t.Errorf("expected src pattern in hint, got %q", hint)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints = %q, want %q", got, "\n  hint: a; b")
	}
}
