package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusMenunggu, StatusDiproses, true},
		{StatusMenunggu, StatusDibatalkan, true},
		{StatusMenunggu, StatusDikirim, false},
		{StatusMenunggu, StatusSelesai, false},
		{StatusDiproses, StatusDikirim, true},
		{StatusDiproses, StatusDibatalkan, true},
		{StatusDiproses, StatusMenunggu, false},
		{StatusDikirim, StatusSelesai, true},
		{StatusDikirim, StatusDibatalkan, true},
		{StatusDikirim, StatusDiproses, false},
		{StatusSelesai, StatusDibatalkan, false},
		{StatusDibatalkan, StatusMenunggu, false},
		{Status("ngawur"), StatusDiproses, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusMenunggu, StatusDiproses, StatusDikirim, StatusSelesai, StatusDibatalkan} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus(Status("ngawur")))
	assert.False(t, ValidStatus(Status("")))
}
