package diag

import (
	"io"

	"github.com/robfig/gettext/po"
	"golang.org/x/text/language"
)

// Catalog translates diagnostic message templates.  Entries are keyed by
// the untranslated template (the PO msgid).
type Catalog struct {
	templates map[string]string
}

// FileOpener opens the PO file for a locale.  It returns a nil ReadCloser
// when no file exists for that locale.
type FileOpener interface {
	Open(locale string) (io.ReadCloser, error)
}

// LoadCatalog reads the PO file for locale, trying progressively broader
// fallback locales when the exact one is missing.  It returns nil (and no
// error) when none of the fallbacks exist.
func LoadCatalog(opener FileOpener, locale string) (*Catalog, error) {
	var tag, err = language.Parse(locale)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	for _, fb := range fallbacks(tag) {
		r, err = opener.Open(fb.String())
		if err != nil {
			return nil, err
		}
		if r != nil {
			break
		}
	}
	if r == nil {
		return nil, nil
	}
	pofile, err := po.Parse(r)
	r.Close()
	if err != nil {
		return nil, err
	}

	var c = &Catalog{templates: make(map[string]string)}
	for _, msg := range pofile.Messages {
		if msg.Id == "" || len(msg.Str) == 0 || msg.Str[0] == "" {
			continue
		}
		c.templates[msg.Id] = msg.Str[0]
	}
	return c, nil
}

// fallbacks returns the locales to try, most specific first.
func fallbacks(tag language.Tag) []language.Tag {
	var result []language.Tag
	var lang, script, region = tag.Raw()
	// The language package reports ZZ and Zzzz for unspecified parts.
	if region.String() != "ZZ" {
		t, _ := language.Compose(lang, script, region)
		result = append(result, t)
	}
	if script.String() != "Zzzz" {
		t, _ := language.Compose(lang, script)
		result = append(result, t)
	}
	t, _ := language.Compose(lang)
	return append(result, t)
}

// catalog is the installed catalog, nil when messages are untranslated.
var catalog *Catalog

// SetCatalog installs c for subsequent message rendering.  A nil c
// restores the built-in templates.
func SetCatalog(c *Catalog) {
	catalog = c
}

func translate(template string) (string, bool) {
	if catalog == nil {
		return "", false
	}
	var t, ok = catalog.templates[template]
	return t, ok
}
