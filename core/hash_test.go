package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashImpl(t *testing.T) {
	tests := []struct {
		name     string
		hashType string
		wantErr  bool
	}{
		{"SHA1", "sha1", false},
		{"SHA1 uppercase", "SHA1", false},
		{"SHA256", "sha256", false},
		{"MD5", "md5", false},
		{"Murmur2", "murmur2", false},
		{"Invalid hash", "invalid-hash", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetHashImpl(tt.hashType)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
		})
	}
}

func TestHexStringerEmptyInput(t *testing.T) {
	tests := []struct {
		hashType string
		want     string
	}{
		{"md5", "d41d8cd98f00b204e9800998ecf8427e"},
		{"sha1", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"sha256", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}

	for _, tt := range tests {
		t.Run(tt.hashType, func(t *testing.T) {
			hasher, err := GetHashImpl(tt.hashType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hasher.String())
		})
	}
}

func TestMurmur2StringerIsDecimal(t *testing.T) {
	hasher, err := GetHashImpl("murmur2")
	require.NoError(t, err)

	_, err = hasher.Write([]byte("some archive bytes"))
	require.NoError(t, err)

	digest := hasher.String()
	assert.Regexp(t, `^\d+$`, digest)
}
