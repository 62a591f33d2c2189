package util

import (
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCapacityArg(t *testing.T) {
	assert := assert.New(t)

	_, given, err := ParseCapacityArg("urstack", []string{})
	assert.Nil(err)
	assert.False(given)

	capacity, given, err := ParseCapacityArg("urstack", []string{"5"})
	assert.Nil(err)
	assert.True(given)
	assert.Equal(5, capacity)

	_, _, err = ParseCapacityArg("urstack", []string{"five"})
	assert.NotNil(err)

	_, _, err = ParseCapacityArg("urstack", []string{"1", "2"})
	assert.EqualError(err, "Usage: urstack [CAPACITY]")
}

func TestMinMaxMod(t *testing.T) {
	assert.Equal(t, 3, Max(1, 3))
	assert.Equal(t, 1, Min(1, 3))
	assert.Equal(t, "b", Max("a", "b"))
	assert.Equal(t, 2, Mod(-1, 3))
	assert.Equal(t, 0, Mod(3, 3))
}

func TestExpandPath(t *testing.T) {
	u, err := user.Current()
	if err != nil {
		t.Skip("no current user")
	}

	expanded, err := ExpandPath("~/config.yaml")
	assert.Nil(t, err)
	assert.Equal(t, filepath.Join(u.HomeDir, "config.yaml"), expanded)

	expanded, err = ExpandPath("/etc/urstack.yaml")
	assert.Nil(t, err)
	assert.Equal(t, "/etc/urstack.yaml", expanded)

	_, err = ExpandPath("~other/file")
	assert.NotNil(t, err)
}
