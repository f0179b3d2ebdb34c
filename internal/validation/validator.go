package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kgyujin/ksnu-portfolio/internal/models"
)

var (
	scriptTagRegex    = regexp.MustCompile(`(?is)<script[\s\S]*?>[\s\S]*?</script>`)
	iframeTagRegex    = regexp.MustCompile(`(?is)<iframe[\s\S]*?>`)
	embedTagRegex     = regexp.MustCompile(`(?is)<embed[\s\S]*?>`)
	objectTagRegex    = regexp.MustCompile(`(?is)<object[\s\S]*?>`)
	javascriptURI     = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=`)

	dangerousPatterns = []*regexp.Regexp{
		scriptTagRegex,
		iframeTagRegex,
		embedTagRegex,
		objectTagRegex,
		javascriptURI,
		eventHandlerRegex,
	}

	httpURLRegex = regexp.MustCompile(`^https?://`)
)

// entityReplacer encodes the HTML-significant characters so stored text
// re-renders as inert markup.
var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// ValidationError represents a single field-level validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateTextField checks a user-supplied text field: non-empty after
// trimming, within [minLength, maxLength], and free of dangerous content.
func ValidateTextField(field, value string, minLength, maxLength int) *ValidationError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &ValidationError{Field: field, Message: field + " is required"}
	}
	n := len([]rune(trimmed))
	if n < minLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters", field, minLength),
		}
	}
	if n > maxLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be %d characters or fewer", field, maxLength),
		}
	}
	if ContainsDangerousContent(value) {
		return &ValidationError{Field: field, Message: "HTML tags and scripts are not allowed"}
	}
	return nil
}

// ValidatePassword checks the comment password length bounds
func ValidatePassword(password string) *ValidationError {
	if n := len([]rune(password)); n < models.MinCommentPasswordLen || n > models.MaxCommentPasswordLen {
		return &ValidationError{
			Field: "password",
			Message: fmt.Sprintf("password must be between %d and %d characters",
				models.MinCommentPasswordLen, models.MaxCommentPasswordLen),
		}
	}
	return nil
}

// ValidateOptionalURL checks that a non-empty value is an http(s) URL
func ValidateOptionalURL(field, value string) *ValidationError {
	if value == "" {
		return nil
	}
	if !httpURLRegex.MatchString(value) {
		return &ValidationError{Field: field, Message: field + " must be an http(s) URL"}
	}
	return nil
}

// ContainsDangerousContent reports whether the input matches any of the
// script/iframe/embed/object/javascript-URI/event-handler patterns.
func ContainsDangerousContent(input string) bool {
	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}

// Sanitize trims the input and HTML-entity-encodes & < > " ' /.
// Applied after the dangerous-content check as defense in depth.
func Sanitize(input string) string {
	return entityReplacer.Replace(strings.TrimSpace(input))
}
