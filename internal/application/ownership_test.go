package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnedBy(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		ownerID string
		want    bool
	}{
		{"same uuid", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", true},
		{"different uuid", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", "00000000-0000-4000-8000-000000000000", false},
		{"case differs", "9D2C3B1A-0F6E-4A7B-9C8D-112233445566", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", true},
		{"urn prefix", "urn:uuid:9d2c3b1a-0f6e-4a7b-9c8d-112233445566", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", true},
		{"braced form", "{9d2c3b1a-0f6e-4a7b-9c8d-112233445566}", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", true},
		{"non-uuid equal strings", "legacy-id-7", "legacy-id-7", true},
		{"non-uuid different strings", "legacy-id-7", "legacy-id-8", false},
		{"empty actor", "", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", false},
		{"empty owner", "9d2c3b1a-0f6e-4a7b-9c8d-112233445566", "", false},
		{"both empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnedBy(tt.actorID, tt.ownerID))
		})
	}
}
