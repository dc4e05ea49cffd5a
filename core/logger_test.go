/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapfcp/yapfcp/core"
)

func TestLoggerTraceLevel(t *testing.T) {
	defer core.ResetConfig()
	require.NoError(t, core.ParseConfig("[core]\nlog_level = \"TRACE\"\n"))

	logFile := filepath.Join(t.TempDir(), "yapfcp.log")
	core.InitializeLogger(logFile)
	assert.True(t, core.TraceEnabled())

	core.LogTrace("Decoder", "trace line ", uint16(19))
	core.LogDebug("Decoder", "debug line")
	core.ShutdownLogger()

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(contents), "[Decoder] trace line 19"))
	assert.True(t, strings.Contains(string(contents), "[Decoder] debug line"))
}

func TestLoggerInfoSuppressesDebug(t *testing.T) {
	core.ResetConfig()
	logFile := filepath.Join(t.TempDir(), "yapfcp.log")
	core.InitializeLogger(logFile)
	assert.False(t, core.TraceEnabled())

	core.LogDebug("Decoder", "hidden")
	core.LogInfo("Decoder", "shown")
	core.ShutdownLogger()

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(contents), "hidden"))
	assert.True(t, strings.Contains(string(contents), "shown"))
}
