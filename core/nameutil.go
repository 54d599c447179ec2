package core

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/igorsobreira/titlecase"
)

var slugifyRegex1 = regexp.MustCompile(`\(.*\)`)
var slugifyRegex2 = regexp.MustCompile(` - .+`)
var slugifyRegex3 = regexp.MustCompile(`[^a-z\d]`)
var slugifyRegex4 = regexp.MustCompile(`-+`)
var slugifyRegex5 = regexp.MustCompile(`^-|-$`)

var versionSuffixRegex = regexp.MustCompile(`[-_. ]v?\d[\w.+-]*$`)

// SlugifyName converts a display name to a stable lowercase identifier.
func SlugifyName(name string) string {
	lower := strings.ToLower(name)
	noBrackets := slugifyRegex1.ReplaceAllString(lower, "")
	noSuffix := slugifyRegex2.ReplaceAllString(noBrackets, "")
	limitedChars := slugifyRegex3.ReplaceAllString(noSuffix, "-")
	noDuplicateDashes := slugifyRegex4.ReplaceAllString(limitedChars, "-")
	return slugifyRegex5.ReplaceAllString(noDuplicateDashes, "")
}

// GuessNameFromFile derives a readable title from a mod archive file name,
// e.g. "TestMod-1.0.0.zip" becomes "Test Mod". Trailing version fragments
// are stripped before splitting camel case words.
func GuessNameFromFile(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	base = versionSuffixRegex.ReplaceAllString(base, "")
	name := strings.Join(camelcase.Split(base), " ")
	name = strings.ReplaceAll(strings.ReplaceAll(name, " - ", " "), " _ ", " ")
	return titlecase.Title(strings.TrimSpace(name))
}
