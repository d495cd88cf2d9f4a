package i18n

import (
	"slices"
	"testing"
)

// translator is how the screen code sees a catalog: keys are looked up
// without format arguments.
type translator interface {
	Get(str string, vars ...interface{}) string
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	for _, want := range []string{"de", "en"} {
		if !slices.Contains(langs, want) {
			t.Errorf("Languages() = %v, missing %q", langs, want)
		}
	}
}

func TestLoad(t *testing.T) {
	cases := []struct {
		lang, key, want string
	}{
		{"en", "MENU_GAME", "Game"},
		{"en", "WIN_BODY", "You win,\ncongratulations!"},
		{"de", "MENU_GAME", "Spiel"},
		{"en", "NOT_A_KEY", "NOT_A_KEY"},
	}
	for _, tc := range cases {
		po, err := Load(tc.lang)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", tc.lang, err)
		}
		var tr translator = po
		if got := tr.Get(tc.key); got != tc.want {
			t.Errorf("Load(%q).Get(%q) = %q, want %q", tc.lang, tc.key, got, tc.want)
		}
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("xx"); err == nil {
		t.Error("Load(\"xx\") error = nil, want an error")
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	de, err := Load("de")
	if err != nil {
		t.Fatal(err)
	}
	catalogs := map[string]translator{"en": MustDefault(), "de": de}
	for lang, tr := range catalogs {
		for _, key := range []string{"TITLE", "NEW_GAME", "EXIT_BODY", "ABOUT_BODY", "CUSTOM_ELLIPSIS"} {
			if tr.Get(key) == key {
				t.Errorf("%s has no entry for %q", lang, key)
			}
		}
	}
}
