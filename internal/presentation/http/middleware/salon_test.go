package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSalonFromHost(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		want    string
		wantErr bool
	}{
		{name: "subdomain", host: "glow-studio.glowdesk.com", want: "glow-studio"},
		{name: "subdomain with port", host: "glow-studio.glowdesk.com:8080", want: "glow-studio"},
		{name: "nested subdomain", host: "glow-studio.staging.glowdesk.com", want: "glow-studio"},
		{name: "bare domain", host: "glowdesk.com", wantErr: true},
		{name: "localhost", host: "localhost:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSalonFromHost(tt.host)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
