package deliveries

import "testing"

func TestSanitizeStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"delivery\":\"yes\",\"order_id\":\"12345\"}\n```"
	got := Sanitize(raw)
	want := `{"delivery":"yes","order_id":"12345"}`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSanitizeStripsBareFences(t *testing.T) {
	raw := "```\n{\"delivery\":\"no\"}\n```"
	if got := Sanitize(raw); got != `{"delivery":"no"}` {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestSanitizeExtractsObjectFromProse(t *testing.T) {
	raw := "Here is the extracted record:\n{\"delivery\":\"yes\",\"store\":\"Acme\"}\nLet me know if you need anything else."
	want := `{"delivery":"yes","store":"Acme"}`
	if got := Sanitize(raw); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSanitizeHandlesBracesInsideStrings(t *testing.T) {
	raw := `{"description":"box marked {fragile}","delivery":"yes"}`
	if got := Sanitize(raw); got != raw {
		t.Fatalf("expected object intact, got %q", got)
	}
}

func TestSanitizeHandlesNestedObjects(t *testing.T) {
	raw := `prefix {"a":{"b":"c"},"d":"e"} suffix`
	want := `{"a":{"b":"c"},"d":"e"}`
	if got := Sanitize(raw); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSanitizeReturnsTrimmedInputWhenNoBraces(t *testing.T) {
	raw := "  Sorry, I cannot help with that.  "
	if got := Sanitize(raw); got != "Sorry, I cannot help with that." {
		t.Fatalf("expected trimmed passthrough, got %q", got)
	}
}

func TestSanitizeReturnsTrimmedInputWhenUnbalanced(t *testing.T) {
	raw := `{"delivery":"yes"`
	if got := Sanitize(raw); got != raw {
		t.Fatalf("expected passthrough for unbalanced object, got %q", got)
	}
}

func TestSanitizeEscapedQuotesInStrings(t *testing.T) {
	raw := `{"description":"a \"quoted\" {value}","delivery":"no"}`
	if got := Sanitize(raw); got != raw {
		t.Fatalf("expected object intact, got %q", got)
	}
}
