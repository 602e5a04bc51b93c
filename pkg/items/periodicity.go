package items

import (
	"fmt"
	"strings"

	"github.com/agentstation/libris/pkg/errors"
)

// Periodicity is the publication schedule of a Magazine.
type Periodicity string

// Known periodicities.
const (
	Weekly     Periodicity = "WEEKLY"
	Monthly    Periodicity = "MONTHLY"
	SemiAnnual Periodicity = "SEMI_ANNUAL"
)

// Periodicities lists every valid Periodicity.
func Periodicities() []Periodicity {
	return []Periodicity{Weekly, Monthly, SemiAnnual}
}

// String returns the string representation of a Periodicity.
func (p Periodicity) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known periodicities.
func (p Periodicity) IsValid() bool {
	switch p {
	case Weekly, Monthly, SemiAnnual:
		return true
	}
	return false
}

// ParsePeriodicity reads user input such as "weekly" or "semi-annual".
func ParsePeriodicity(s string) (Periodicity, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	p := Periodicity(normalized)
	if !p.IsValid() {
		return "", errors.NewValidationError("periodicity", s,
			fmt.Sprintf("must be one of %s, %s, %s", Weekly, Monthly, SemiAnnual))
	}
	return p, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Periodicity) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the exact
// stored names are accepted.
func (p *Periodicity) UnmarshalText(text []byte) error {
	v := Periodicity(text)
	if !v.IsValid() {
		return errors.NewValidationError("periodicity", string(text),
			fmt.Sprintf("unknown periodicity %q", string(text)))
	}
	*p = v
	return nil
}
