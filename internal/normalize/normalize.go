// Package normalize canonicalizes user-submitted names before they are
// compared or persisted. Case is preserved, usernames are case-sensitive.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

func Name(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
