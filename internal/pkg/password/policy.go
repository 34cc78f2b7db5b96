package password

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinLength is the minimum accepted credential length, in characters.
	MinLength = 8
	// MaxLength is the maximum accepted credential length, in characters.
	MaxLength = 20
	// SpecialCharacters lists the symbols that satisfy the special-character rule.
	SpecialCharacters = "$#@!*"
)

// Rule identifies a single composition rule of the policy.
type Rule int

const (
	RuleLength Rule = iota + 1
	RuleNoDigit
	RuleNoLower
	RuleNoUpper
	RuleNoSpecial
)

func (r Rule) String() string {
	switch r {
	case RuleLength:
		return "LENGTH"
	case RuleNoDigit:
		return "NO_DIGIT"
	case RuleNoLower:
		return "NO_LOWER"
	case RuleNoUpper:
		return "NO_UPPER"
	case RuleNoSpecial:
		return "NO_SPECIAL"
	default:
		return "UNKNOWN"
	}
}

// Violation is returned by Validate when a candidate breaks a rule.
type Violation struct {
	Rule Rule
}

func (v *Violation) Error() string {
	return "password: policy violation " + v.Rule.String()
}

// Validate checks candidate against the rules in fixed order and reports the
// first one that fails. It returns nil when every rule passes.
func Validate(candidate string) error {
	if n := utf8.RuneCountInString(candidate); n < MinLength || n > MaxLength {
		return &Violation{Rule: RuleLength}
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range candidate {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(SpecialCharacters, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasDigit:
		return &Violation{Rule: RuleNoDigit}
	case !hasLower:
		return &Violation{Rule: RuleNoLower}
	case !hasUpper:
		return &Violation{Rule: RuleNoUpper}
	case !hasSpecial:
		return &Violation{Rule: RuleNoSpecial}
	}

	return nil
}
