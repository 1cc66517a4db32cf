package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateTweet checks tweet text after trimming. The length limit counts
// characters, not bytes, so multibyte text is not penalized.
func ValidateTweet(p Policy, text string) []string {
	var errs []string
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		errs = append(errs, "Tweet cannot be empty")
	} else if utf8.RuneCountInString(trimmed) > p.tweetMax() {
		errs = append(errs, fmt.Sprintf("Tweet cannot exceed %d characters", p.tweetMax()))
	}
	return errs
}
