package model

import "testing"

func TestCatalog_Buckets(t *testing.T) {
	t.Parallel()

	want := map[Language]int{Python: 4, SQL: 3, JavaScript: 3, R: 3}
	c := Catalog()
	for lang, n := range want {
		if got := len(c[lang]); got != n {
			t.Fatalf("%s variants = %d, want %d", lang, got, n)
		}
		for _, s := range c[lang] {
			if s.Language != lang {
				t.Fatalf("snippet in %s bucket tagged %s", lang, s.Language)
			}
		}
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Catalog()
	c[Python][0].Code = "mutated"
	if got := Catalog()[Python][0].Code; got == "mutated" {
		t.Fatal("catalog template was mutated through returned copy")
	}
}

func TestSnippetPrefix(t *testing.T) {
	t.Parallel()

	s := Snippet{Language: R, Code: "lm(y)"}
	cases := map[int]string{-1: "", 0: "", 2: "lm", 5: "lm(y)", 9: "lm(y)"}
	for n, want := range cases {
		if got := s.Prefix(n); got != want {
			t.Fatalf("Prefix(%d) = %q, want %q", n, got, want)
		}
	}
	if got := s.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	if l, err := ParseLanguage("sql"); err != nil || l != SQL {
		t.Fatalf("ParseLanguage(sql) = %q, %v", l, err)
	}
	if _, err := ParseLanguage("cobol"); err == nil {
		t.Fatal("expected error for unknown language")
	}
}
