// Package tags implements tag-name validation for the scope-level tag
// registry.
//
// Valid names start with an ASCII letter, continue with ASCII letters,
// digits, underscores, or hyphens, never end with a hyphen, and never
// contain consecutive hyphens.
package tags

import "fmt"

// ValidateName checks a tag name against the registry grammar.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("tag name cannot be empty")
	}

	first := name[0]
	if !isASCIILetter(first) {
		return fmt.Errorf("tag name must start with a letter, found %q", rune(first))
	}

	if name[len(name)-1] == '-' {
		return fmt.Errorf("tag name cannot end with a hyphen")
	}

	prevWasHyphen := false
	for _, ch := range name {
		if !isValidTagChar(ch) {
			return fmt.Errorf("tag name contains invalid character %q (only alphanumeric, underscore, and hyphen allowed)", ch)
		}
		if ch == '-' {
			if prevWasHyphen {
				return fmt.Errorf("tag name cannot contain consecutive hyphens")
			}
			prevWasHyphen = true
		} else {
			prevWasHyphen = false
		}
	}

	return nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isValidTagChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch == '_' || ch == '-'
}
