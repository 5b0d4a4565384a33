package rowbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.FixSB16NullCountBug)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{ArenaChunkBytes: 1024, MaxArenas: 1}, false},
		{"zero chunk bytes", Config{ArenaChunkBytes: 0, MaxArenas: 1}, true},
		{"negative chunk bytes", Config{ArenaChunkBytes: -1, MaxArenas: 1}, true},
		{"zero max arenas", Config{ArenaChunkBytes: 1024, MaxArenas: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
