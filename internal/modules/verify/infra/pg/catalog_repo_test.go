package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prodcheck/internal/modules/verify/domain"
)

func TestAppendByState(t *testing.T) {
	rows := []struct {
		code, state string
	}{
		{"ABC123", "fresh"},
		{"4526580", "expired"},
		{"VALID456", " Fresh "},
		{"EXP123", "EXPIRED\n"},
		{"GONE01", "consumed"},
		{"BLANK1", ""},
	}

	out := domain.CodeLists{Fresh: []string{}, Expired: []string{}}
	for _, r := range rows {
		appendByState(&out, r.code, r.state)
	}

	assert.Equal(t, []string{"ABC123", "VALID456"}, out.Fresh)
	assert.Equal(t, []string{"4526580", "EXP123"}, out.Expired)
}

func TestAppendByState_NilLists(t *testing.T) {
	var out domain.CodeLists
	appendByState(&out, "abc123", "fresh")
	appendByState(&out, "old456", "nope")

	assert.Equal(t, []string{"abc123"}, out.Fresh)
	assert.Nil(t, out.Expired)
}
