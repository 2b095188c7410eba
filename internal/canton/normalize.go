package canton

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining marks after NFD decomposition, so
// "Genève" folds to "Geneve" and "Zürich" to "Zurich".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold canonicalizes a raw area name for lookup and matching:
// whitespace-trimmed, accent-stripped, lowercased. Fold is total and
// deterministic; folding an already folded string is a no-op.
func Fold(s string) string {
	folded, _, _ := transform.String(stripAccents, strings.ToLower(strings.TrimSpace(s)))
	return folded
}

// aliasTable maps folded alias strings to cantons. Populated in init
// from the static alias lists; read-only after startup except for
// explicit Register calls during configuration loading.
var aliasTable = make(map[string]Canton)

func init() {
	for c, inf := range infos {
		for _, alias := range append([]string{inf.name}, inf.aliases...) {
			key := Fold(alias)
			if prev, dup := aliasTable[key]; dup && prev != c {
				panic(fmt.Sprintf("canton: alias %q maps to both %s and %s", alias, prev, c))
			}
			aliasTable[key] = c
		}
	}
}

// Normalize resolves a raw area name to a canton.
// It reports false when the name matches no known alias, which usually
// means the row describes a district or municipality rather than a
// canton. Normalize never fails; unknown input is a legitimate outcome.
func Normalize(raw string) (Canton, bool) {
	c, ok := aliasTable[Fold(raw)]
	return c, ok
}

// Register adds an extra alias for a canton, typically sourced from the
// configuration file for datasets with unusual spellings. It must be
// called during startup, before the table is used concurrently.
// Registering an alias that already resolves to a different canton is
// rejected so the table stays disjoint.
func Register(alias string, c Canton) error {
	if _, ok := infos[c]; !ok {
		return fmt.Errorf("canton: cannot register alias %q for unknown canton %d", alias, int(c))
	}
	key := Fold(alias)
	if key == "" {
		return fmt.Errorf("canton: empty alias for %s", c)
	}
	if prev, dup := aliasTable[key]; dup && prev != c {
		return fmt.Errorf("canton: alias %q already maps to %s", alias, prev)
	}
	aliasTable[key] = c
	return nil
}

// RecoveryPrefix returns the folded search key used when reconstructing
// a missing canton from sub-area rows: the first four characters of the
// folded canonical name, or the whole folded name if shorter.
func (c Canton) RecoveryPrefix() string {
	folded := Fold(c.Name())
	if len(folded) <= 4 {
		return folded
	}
	return folded[:4]
}
