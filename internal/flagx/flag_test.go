package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "http://localhost:8080/api", "-x", "junk", "-t", "5"}
	got := FilterArgs(args, []string{"-a", "-t"})
	require.Equal(t, []string{"-a", "http://localhost:8080/api", "-t", "5"}, got)
}

func TestFilterArgs_CombinedValue(t *testing.T) {
	args := []string{"--addr=http://h/api", "-other=1", "-t=3"}
	got := FilterArgs(args, []string{"--addr", "-t"})
	require.Equal(t, []string{"--addr=http://h/api", "-t=3"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// -a has no value here; the following token is another flag and must not
	// be swallowed as a value.
	args := []string{"-a", "-t", "5"}
	got := FilterArgs(args, []string{"-a", "-t"})
	require.Equal(t, []string{"-a", "-t", "5"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	require.NotNil(t, got)
	require.Len(t, got, 0)
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cli", "-a", "http://h/api", "-c", "conf.json"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"cli", "--config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"cli", "-a", "http://h/api"}
	require.Equal(t, "", JsonConfigFlags())
}
