package embedlogo

// Notes:
// - Reference/ReferenceKind: we test the console labels only.
// - Options: invalid arguments panic at construction time (programmer
//   error); valid ones are exercised through Run in inliner_test.go.

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestReference_String - Console formatting
// ---------------------------------------------------------------------------

func TestReference_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  Reference
		want string
	}{
		{Reference{Kind: ReferenceAttribute, Tag: "a", Attr: "href", Line: 4}, "line 4: <a href>"},
		{Reference{Kind: ReferenceComment, Line: 2}, "line 2: comment"},
		{Reference{Kind: ReferenceText, Tag: "script", Line: 9}, "line 9: text in <script>"},
		{Reference{Kind: ReferenceText, Line: 1}, "line 1: text"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.ref.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReferenceKind_String(t *testing.T) {
	t.Parallel()

	if ReferenceAttribute.String() != "attribute" ||
		ReferenceComment.String() != "comment" ||
		ReferenceText.String() != "text" ||
		ReferenceKind(42).String() != "unknown" {
		t.Error("unexpected ReferenceKind labels")
	}
}

// ---------------------------------------------------------------------------
// TestOptions_Panics - Invalid option arguments
// ---------------------------------------------------------------------------

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"empty image path", func() { WithImagePath("") }},
		{"empty document path", func() { WithDocumentPath("") }},
		{"empty src value", func() { WithSrcValue("") }},
		{"quoted src value", func() { WithSrcValue(`a"b`) }},
		{"mime without slash", func() { WithMIMEType("png") }},
		{"mime with parameters", func() { WithMIMEType("image/png;charset=x") }},
		{"empty mime subtype", func() { WithMIMEType("image/") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}
