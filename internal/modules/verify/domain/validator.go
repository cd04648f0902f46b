package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultMinLength = 6
	DefaultMaxLength = 20
)

// Format failure reasons.
const (
	ReasonEmpty    = "empty"
	ReasonTooShort = "too_short"
	ReasonTooLong  = "too_long"
	ReasonCharset  = "charset"
)

// FormatError describes why a code was rejected before classification.
type FormatError struct {
	Reason string
	Min    int
	Max    int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid product code: %s (%d-%d alphanumeric characters)", e.Reason, e.Min, e.Max)
}

// ValidatorConfig is fixed for the lifetime of a Validator.
type ValidatorConfig struct {
	FreshCodes   []string
	ExpiredCodes []string
	MinLength    int
	MaxLength    int
}

// Validator checks code syntax and classifies codes against the lists.
// It is safe for concurrent use; nothing in it changes after construction.
type Validator struct {
	min     int
	max     int
	tag     string
	fresh   map[string]struct{}
	expired map[string]struct{}
	check   *validator.Validate
}

func NewValidator(cfg ValidatorConfig) *Validator {
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	if cfg.MaxLength < cfg.MinLength {
		cfg.MaxLength = max(cfg.MinLength, DefaultMaxLength)
	}
	return &Validator{
		min:     cfg.MinLength,
		max:     cfg.MaxLength,
		tag:     fmt.Sprintf("required,min=%d,max=%d,alphanum", cfg.MinLength, cfg.MaxLength),
		fresh:   codeSet(cfg.FreshCodes),
		expired: codeSet(cfg.ExpiredCodes),
		check:   validator.New(),
	}
}

func codeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = canonical(c)
		if c == "" {
			continue
		}
		set[c] = struct{}{}
	}
	return set
}

func canonical(code string) string {
	return strings.ToUpper(TrimCode(code))
}

// TrimCode strips leading and trailing whitespace, including the U+FEFF
// byte order mark that pasted text often carries.
func TrimCode(code string) string {
	return strings.TrimFunc(code, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

func (v *Validator) MinLength() int { return v.min }
func (v *Validator) MaxLength() int { return v.max }

// ValidateFormat reports whether the trimmed code is non-empty, within the
// length bounds and made of ASCII letters and digits only.
func (v *Validator) ValidateFormat(code string) bool {
	return v.FormatError(code) == nil
}

// FormatError returns nil for a well-formed code and a *FormatError otherwise.
func (v *Validator) FormatError(code string) error {
	err := v.check.Var(TrimCode(code), v.tag)
	if err == nil {
		return nil
	}
	fe := &FormatError{Reason: ReasonCharset, Min: v.min, Max: v.max}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			fe.Reason = ReasonEmpty
		case "min":
			fe.Reason = ReasonTooShort
		case "max":
			fe.Reason = ReasonTooLong
		}
	}
	return fe
}

// Classify looks the code up in the fresh list, then the expired list.
// Callers must gate on ValidateFormat first.
func (v *Validator) Classify(code string) Result {
	trimmed := TrimCode(code)
	key := strings.ToUpper(trimmed)
	status := StatusInvalid
	if _, ok := v.fresh[key]; ok {
		status = StatusFresh
	} else if _, ok := v.expired[key]; ok {
		status = StatusExpired
	}
	return Result{Code: trimmed, Status: status}
}

// Sanitize strips everything but ASCII letters and digits and uppercases
// the rest. It backs the live input filter and is never applied implicitly
// before ValidateFormat.
func Sanitize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			b.WriteByte(c)
		}
	}
	return b.String()
}
