package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

func TestPorts_Validate(t *testing.T) {
	factory := func(*domain.Snapshot) driving.ConversationService { return nil }

	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:  "complete",
			ports: NewPorts(&mockLoader{}, &instantRevealer{}, factory),
		},
		{
			name:    "missing loader",
			ports:   NewPorts(nil, &instantRevealer{}, factory),
			wantErr: ErrMissingLoader,
		},
		{
			name:    "missing revealer",
			ports:   NewPorts(&mockLoader{}, nil, factory),
			wantErr: ErrMissingRevealer,
		},
		{
			name:    "missing factory",
			ports:   NewPorts(&mockLoader{}, &instantRevealer{}, nil),
			wantErr: ErrMissingConversationFactory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrMissingLoader,
		ErrMissingRevealer,
		ErrMissingConversationFactory,
	}

	seen := make(map[string]bool)
	for _, err := range errs {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}
