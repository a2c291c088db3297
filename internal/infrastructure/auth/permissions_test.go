package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermission_KnownValues(t *testing.T) {
	for _, s := range []string{
		"get:movies", "get:actors", "post:movies", "post:actors",
		"patch:movies", "patch:actors", "delete:movies", "delete:actors",
	} {
		p, err := ParsePermission(s)
		require.NoError(t, err)
		assert.Equal(t, Permission(s), p)
	}
}

func TestParsePermission_RejectsUnknown(t *testing.T) {
	for _, s := range []string{
		"",
		"get:directors",
		"GET:movies",
		"patch:actors ", // trailing space is not a member of the set
		" get:movies",
	} {
		_, err := ParsePermission(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}
