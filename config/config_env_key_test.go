package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mongo": map[string]any{
			"uri": "",
		},
		"proximity": map[string]any{
			"notifyRadiusKm":      10,
			"lostListingRadiusKm": 5,
		},
		"fanout": map[string]any{
			"linkPrefix": "/posts/",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "PROXIMITY_NOTIFYRADIUSKM", want: "proximity.notifyRadiusKm"},
		{envKey: "PROXIMITY_LOSTLISTINGRADIUSKM", want: "proximity.lostListingRadiusKm"},
		{envKey: "FANOUT_LINKPREFIX", want: "fanout.linkPrefix"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
