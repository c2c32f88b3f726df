package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raushankrgupta/product-scraper/models"
)

// ValidationError reports a scraped record that failed its required-field
// contract. Either MissingFields or Reason is set.
type ValidationError struct {
	FileName      string
	MissingFields []string
	Reason        string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("[%s] Missing required field(s): %s", e.FileName, strings.Join(e.MissingFields, ", "))
	}
	return fmt.Sprintf("[%s] Validation failed: %s", e.FileName, e.Reason)
}

// IsEmpty reports whether v counts as a missing value: nil, a blank string
// or an empty collection.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *string:
		return x == nil || strings.TrimSpace(*x) == ""
	case string:
		return strings.TrimSpace(x) == ""
	case []string:
		return len(x) == 0
	case map[string]string:
		return len(x) == 0
	}
	return false
}

// Validate checks every required field of p and returns a *ValidationError
// listing all that are empty. label names the caller in the message and is
// reduced to its base name.
func Validate(p *models.Product, required []string, label string) error {
	fileName := filepath.Base(label)

	if p == nil {
		return &ValidationError{FileName: fileName, Reason: "data is nil"}
	}

	var missing []string
	for _, name := range required {
		v, _ := p.Field(name)
		if IsEmpty(v) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{FileName: fileName, MissingFields: missing}
	}
	return nil
}
