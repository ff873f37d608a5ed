// Package l10n resolves per-language translation records and builds the
// flattened, language-specific projections served to callers.
package l10n

// Translated is any per-language record attached to a parent entity.
type Translated interface {
	LanguageTag() string
}

// Pick selects the best translation for language: an exact match first,
// then each fallback language in order, then the first element of the
// input in its supplied order. Returns false only for an empty input.
// Pure function; callers supply default literals when nothing resolves.
func Pick[T Translated](translations []T, language string, fallbacks ...string) (T, bool) {
	var zero T
	if len(translations) == 0 {
		return zero, false
	}

	for _, t := range translations {
		if t.LanguageTag() == language {
			return t, true
		}
	}

	for _, lang := range fallbacks {
		for _, t := range translations {
			if t.LanguageTag() == lang {
				return t, true
			}
		}
	}

	return translations[0], true
}
