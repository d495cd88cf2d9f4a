// Package i18n loads the user-facing strings. Code asks for upper-case keys
// such as "MENU_GAME"; a key with no translation comes back unchanged.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

// Languages lists the bundled catalogs.
func Languages() []string {
	entries, _ := locales.ReadDir("locales")
	var out []string
	for _, e := range entries {
		if lang, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			out = append(out, lang)
		}
	}
	sort.Strings(out)
	return out
}

// Load parses the catalog for lang.
func Load(lang string) (*gotext.Po, error) {
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return nil, fmt.Errorf("no catalog for language %q (have %s)", lang, strings.Join(Languages(), ", "))
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

// MustDefault loads the English catalog, which is always bundled.
func MustDefault() *gotext.Po {
	po, err := Load(DefaultLanguage)
	if err != nil {
		panic(err)
	}
	return po
}
