package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fastcat.org/go/jrun/config"
)

func TestExpandAlias(t *testing.T) {
	cfg := &config.Config{Aliases: map[string][]string{
		"psql": {"psql", "-U", "app"},
	}}
	assert.Equal(t,
		[]string{"psql", "-U", "app", "-c", "select 1"},
		expandAlias(cfg, []string{"psql", "-c", "select 1"}))
	assert.Equal(t,
		[]string{"/bin/sh"},
		expandAlias(cfg, []string{"/bin/sh"}))
}
