package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var policyNumberPattern = regexp.MustCompile(`^[A-Z]{3}-\d{8}$`)

func TestNewPolicyNumber(t *testing.T) {
	for _, insurer := range Insurers() {
		number := NewPolicyNumber(insurer.Code)
		assert.Regexp(t, policyNumberPattern, number)
		assert.Equal(t, insurer.Code, number[:3])
	}
}

func TestNewPolicyNumber_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[NewPolicyNumber("GEI")] = struct{}{}
	}

	// 100 draws over 10^8 identifiers should essentially never all collide.
	assert.Greater(t, len(seen), 1)
}
