// Package i18n is the translation hook for Plume's built-in prompt
// strings, such as the default menu prompt and the yes/no words.
//
// The lookup function is process-wide and defaults to identity. Wire a
// real catalog in once at startup:
//
//	i18n.SetTranslator(func(msg string) string {
//	    return catalog.Lookup(locale, msg)
//	})
package i18n

var translate = func(msg string) string { return msg }

// SetTranslator installs a lookup function for built-in messages.
// Passing nil restores the identity lookup.
func SetTranslator(f func(string) string) {
	if f == nil {
		translate = func(msg string) string { return msg }
		return
	}
	translate = f
}

// T renders msg through the installed lookup function.
func T(msg string) string {
	return translate(msg)
}
