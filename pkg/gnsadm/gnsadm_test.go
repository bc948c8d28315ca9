package gnsadm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gnsadm/pkg/gnsadm"
)

func TestIsAdminLevel(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"ADM1", true},
		{"ADM2", true},
		{"ADM3", true},
		{"ADM4", true},
		{"ADMD", true},
		{"ADM1H", true},
		{"ADMDH", true},
		{"PPL", false},
		{"ADM", false},
		{"adm1", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, gnsadm.IsAdminLevel(tt.code), tt.code)
	}
}
