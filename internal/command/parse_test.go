package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{name: "plain", msg: MsgUsageStash},
		{name: "percent sign", msg: "Say how much, like \"drink 50% of the water\"."},
		{name: "verb-like sequence", msg: "Use %s and %d literally."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usage(tt.msg)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tt.msg, domain.PlayerMessage(err))
		})
	}
}
