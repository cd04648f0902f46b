package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testValidator() *Validator {
	return NewValidator(ValidatorConfig{
		FreshCodes:   []string{"abc123", "valid456", "fresh789", "new2024", "authentic1", "verified2025"},
		ExpiredCodes: []string{"4526580", "exp123", "old456", "invalid1", "bad999", "expired2024"},
		MinLength:    6,
		MaxLength:    20,
	})
}

func TestValidateFormat(t *testing.T) {
	v := testValidator()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"six chars", "ABC123", true},
		{"twenty chars", strings.Repeat("a1", 10), true},
		{"padded", "  abc123\t\n", true},
		{"empty", "", false},
		{"only spaces", "      ", false},
		{"too short", "ab1", false},
		{"five chars", "abc12", false},
		{"too long", strings.Repeat("x", 21), false},
		{"inner space", "abc 123", false},
		{"dash", "abc-123", false},
		{"underscore", "abc_123", false},
		{"non ascii letter", "abcdé1", false},
		{"full width digit", "abc12３", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.ValidateFormat(tc.in))
		})
	}
}

func TestValidateFormat_LengthBoundsProperty(t *testing.T) {
	v := testValidator()
	for n := 0; n <= 30; n++ {
		s := strings.Repeat("Z", n)
		want := n >= 6 && n <= 20
		assert.Equalf(t, want, v.ValidateFormat(s), "length %d", n)
	}
}

func TestValidateFormat_CharsetProperty(t *testing.T) {
	v := testValidator()
	for c := 0; c < 128; c++ {
		ch := byte(c)
		s := "abc12" + string(ch)
		alnum := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
		if !alnum && strings.TrimSpace(s) != s {
			// trailing whitespace is trimmed, leaving five characters
			assert.False(t, v.ValidateFormat(s))
			continue
		}
		assert.Equalf(t, alnum, v.ValidateFormat(s), "char %q", ch)
	}
}

func TestFormatError_Reasons(t *testing.T) {
	v := testValidator()

	cases := map[string]string{
		"":                      ReasonEmpty,
		"   ":                   ReasonEmpty,
		"ab1":                   ReasonTooShort,
		strings.Repeat("a", 21): ReasonTooLong,
		"abc 123":               ReasonCharset,
		"abc!23":                ReasonCharset,
	}
	for in, reason := range cases {
		err := v.FormatError(in)
		require.Error(t, err, "input %q", in)
		var fe *FormatError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, reason, fe.Reason, "input %q", in)
		assert.Equal(t, 6, fe.Min)
		assert.Equal(t, 20, fe.Max)
	}
	assert.NoError(t, v.FormatError("abc123"))
}

func TestNewValidator_DefaultBounds(t *testing.T) {
	v := NewValidator(ValidatorConfig{MinLength: 0, MaxLength: -1})
	assert.Equal(t, DefaultMinLength, v.MinLength())
	assert.Equal(t, DefaultMaxLength, v.MaxLength())

	custom := NewValidator(ValidatorConfig{MinLength: 3, MaxLength: 4})
	assert.True(t, custom.ValidateFormat("ab1"))
	assert.False(t, custom.ValidateFormat("abc12"))
}

func TestNewValidator_MaxNeverBelowMin(t *testing.T) {
	v := NewValidator(ValidatorConfig{MinLength: 25, MaxLength: 0})
	assert.Equal(t, 25, v.MinLength())
	assert.Equal(t, 25, v.MaxLength())
	assert.True(t, v.ValidateFormat(strings.Repeat("A", 25)))
	assert.False(t, v.ValidateFormat(strings.Repeat("A", 26)))

	v = NewValidator(ValidatorConfig{MinLength: 8, MaxLength: 3})
	assert.Equal(t, 8, v.MinLength())
	assert.Equal(t, DefaultMaxLength, v.MaxLength())
}

func TestTrimCode_ByteOrderMark(t *testing.T) {
	v := testValidator()

	assert.Equal(t, "abc123", TrimCode("\ufeffabc123"))
	assert.Equal(t, "abc123", TrimCode(" \ufeff abc123\u00a0\n"))
	assert.Equal(t, "abc\ufeff123", TrimCode("abc\ufeff123"))

	assert.True(t, v.ValidateFormat("\ufeffabc123"))
	assert.NoError(t, v.FormatError("\ufeffABC123\ufeff"))
	assert.Equal(t, Result{Code: "abc123", Status: StatusFresh}, v.Classify("\ufeffabc123"))
	assert.False(t, v.ValidateFormat("abc\ufeff123"))
}

func TestClassify(t *testing.T) {
	v := testValidator()

	cases := []struct {
		in   string
		want Status
	}{
		{"ABC123", StatusFresh},
		{"abc123", StatusFresh},
		{"AbC123", StatusFresh},
		{"Verified2025", StatusFresh},
		{"4526580", StatusExpired},
		{"EXP123", StatusExpired},
		{"expired2024", StatusExpired},
		{"zzz999", StatusInvalid},
		{"abc1234", StatusInvalid},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, v.Classify(tc.in).Status, "code %q", tc.in)
	}
}

func TestClassify_PreservesTrimmedCode(t *testing.T) {
	v := testValidator()
	r := v.Classify("  aBc123 ")
	assert.Equal(t, Result{Code: "aBc123", Status: StatusFresh}, r)
}

func TestClassify_FreshWinsOverExpired(t *testing.T) {
	v := NewValidator(ValidatorConfig{
		FreshCodes:   []string{"DUAL01"},
		ExpiredCodes: []string{"dual01", "gone01"},
	})
	assert.Equal(t, StatusFresh, v.Classify("Dual01").Status)
	assert.Equal(t, StatusExpired, v.Classify("GONE01").Status)
}

func TestClassify_IsPure(t *testing.T) {
	v := testValidator()
	first := v.Classify("fresh789")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, v.Classify("fresh789"))
	}
}

func TestScenarios(t *testing.T) {
	v := testValidator()

	// A
	require.True(t, v.ValidateFormat("ABC123"))
	assert.Equal(t, StatusFresh, v.Classify("ABC123").Status)
	// B
	require.True(t, v.ValidateFormat("4526580"))
	assert.Equal(t, StatusExpired, v.Classify("4526580").Status)
	// C
	require.True(t, v.ValidateFormat("zzz999"))
	assert.Equal(t, StatusInvalid, v.Classify("zzz999").Status)
	// D
	assert.False(t, v.ValidateFormat("ab1"))
	// E
	assert.False(t, v.ValidateFormat("abc 123"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "ABC123", Sanitize("abc-123"))
	assert.Equal(t, "ABC123", Sanitize(" a b c 1 2 3 "))
	assert.Equal(t, "AB", Sanitize("aé€b"))
	assert.Equal(t, "", Sanitize("!@#$"))
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusFresh.Recognized())
	assert.True(t, StatusExpired.Recognized())
	assert.False(t, StatusInvalid.Recognized())

	for _, s := range []Status{StatusFresh, StatusExpired, StatusInvalid} {
		assert.Equal(t, s, ParseWireStatus(s.Wire()))
	}
	assert.Equal(t, StatusInvalid, ParseWireStatus(""))
	assert.Equal(t, StatusInvalid, ParseWireStatus("bogus"))
}
