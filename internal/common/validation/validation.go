package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength           = 200
	MaxDescriptionLength     = 2000
	MaxCreatorNameLength     = 64
	MaxParticipantNameLength = 64
	MaxRedditNameLength      = 64
	MaxRedditLinkLength      = 256
	MaxSecretLength          = 72 // bcrypt ignores anything past 72 bytes
	MaxCurrencyQuantity      = 1_000_000
)

// Reddit profile URL: http(s), optional www./old. host prefix, /u/ or /user/,
// word characters or dashes, optional trailing slash.
var redditProfileRegex = regexp.MustCompile(`(?i)^https?://(www\.)?(reddit\.com|old\.reddit\.com)/(u|user)/[\w-]+/?$`)

func requireText(value, field string, max int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%s cannot exceed %d characters", field, max)
	}
	return nil
}

// ValidateTitle checks a giveaway title
func ValidateTitle(title string) error {
	return requireText(title, "title", MaxTitleLength)
}

// ValidateDescription checks an optional description; empty is allowed.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(strings.TrimSpace(description)) > MaxDescriptionLength {
		return fmt.Errorf("description cannot exceed %d characters", MaxDescriptionLength)
	}
	return nil
}

func ValidateCreatorName(name string) error {
	return requireText(name, "creator name", MaxCreatorNameLength)
}

func ValidateCreatorSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(secret) > MaxSecretLength {
		return fmt.Errorf("password cannot exceed %d bytes", MaxSecretLength)
	}
	return nil
}

func ValidateParticipantName(name string) error {
	return requireText(name, "participant name", MaxParticipantNameLength)
}

func ValidateRedditName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) > MaxRedditNameLength {
		return fmt.Errorf("reddit name cannot exceed %d characters", MaxRedditNameLength)
	}
	return nil
}

// ValidateRedditProfileLink checks a non-empty profile link against the
// reddit profile URL pattern.
func ValidateRedditProfileLink(link string) error {
	link = strings.TrimSpace(link)
	if len(link) > MaxRedditLinkLength {
		return fmt.Errorf("reddit profile link cannot exceed %d characters", MaxRedditLinkLength)
	}
	if !IsValidRedditProfileLink(link) {
		return fmt.Errorf("must be a valid Reddit profile URL (e.g., https://reddit.com/u/username)")
	}
	return nil
}

func IsValidRedditProfileLink(link string) bool {
	return redditProfileRegex.MatchString(link)
}

// ValidateNonNegativeInt checks value >= 0
func ValidateNonNegativeInt(value int64, fieldName string) error {
	if value < 0 {
		return fmt.Errorf("%s cannot be negative", fieldName)
	}
	return nil
}

// ValidateQuantity checks a currency quantity bound.
func ValidateQuantity(value int, fieldName string) error {
	if err := ValidateNonNegativeInt(int64(value), fieldName); err != nil {
		return err
	}
	if value > MaxCurrencyQuantity {
		return fmt.Errorf("%s cannot exceed %d", fieldName, MaxCurrencyQuantity)
	}
	return nil
}
