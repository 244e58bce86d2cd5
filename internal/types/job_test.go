package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	v := Allow()

	assert.False(t, v.Blocked)
	assert.Empty(t, v.Reason)
}

func TestBlock(t *testing.T) {
	v := Block("requires onsite or hybrid presence")

	assert.True(t, v.Blocked)
	assert.Equal(t, "requires onsite or hybrid presence", v.Reason)
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		input string
		want  Profile
	}{
		{"core", ProfileCore},
		{"backend", ProfileBackend},
		{"csharp-azure-no-frontend", ProfileCSharpAzure},
		{"legacy-web", ProfileLegacyWeb},
		{"  Core  ", ProfileCore},
		{"CSHARP-AZURE-NO-FRONTEND", ProfileCSharpAzure},
		{"", ProfileUnknown},
		{"frontend", ProfileUnknown},
		{"azure", ProfileUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseProfile(tt.input))
		})
	}
}

func TestProfileKnown(t *testing.T) {
	assert.True(t, ProfileCore.Known())
	assert.True(t, ProfileLegacyWeb.Known())
	assert.False(t, ProfileUnknown.Known())
	assert.False(t, Profile("made-up").Known())
}

func TestValidCanonicalKey(t *testing.T) {
	for _, key := range AllCanonicalKeys {
		assert.True(t, ValidCanonicalKey(string(key)), "expected %q to be valid", key)
	}

	assert.True(t, ValidCanonicalKey("unknown"))
	assert.False(t, ValidCanonicalKey(""))
	assert.False(t, ValidCanonicalKey("favorite_color"))
}
