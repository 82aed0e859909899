//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON form of a request before it is sent.
type Mutation func(map[string]any)

// JSONMap round-trips v through JSON so tests can send payloads the typed
// request struct could not express.
func JSONMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

func Unset(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}
