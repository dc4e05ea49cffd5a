/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/core"
)

func TestConfigDefaultsWithoutDocument(t *testing.T) {
	core.ResetConfig()
	assert.Equal(t, 8, core.GetConfigIntDefault("codec.max_depth", 8))
	assert.Equal(t, "INFO", core.GetConfigStringDefault("core.log_level", "INFO"))
	assert.False(t, core.GetConfigBoolDefault("codec.reject_unknown_messages", false))
	assert.Equal(t, uint16(8805), core.GetConfigUint16Default("capture.port", 8805))
}

func TestConfigParse(t *testing.T) {
	defer core.ResetConfig()
	require.NoError(t, core.ParseConfig(`
[core]
log_level = "DEBUG"

[codec]
max_depth = 4
reject_unknown_messages = true

[capture]
port = 9000
`))
	assert.Equal(t, 4, core.GetConfigIntDefault("codec.max_depth", 8))
	assert.Equal(t, "DEBUG", core.GetConfigStringDefault("core.log_level", "INFO"))
	assert.True(t, core.GetConfigBoolDefault("codec.reject_unknown_messages", false))
	assert.Equal(t, uint16(9000), core.GetConfigUint16Default("capture.port", 8805))

	// Wrong types fall back to the default
	assert.Equal(t, "x", core.GetConfigStringDefault("codec.max_depth", "x"))
	assert.Equal(t, 3, core.GetConfigIntDefault("core.log_level", 3))
}

func TestConfigParseInvalid(t *testing.T) {
	defer core.ResetConfig()
	assert.Error(t, core.ParseConfig("[codec\nmax_depth = "))
}
