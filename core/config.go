/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"

	"github.com/pelletier/go-toml"
)

var config *toml.Tree

// LoadConfig loads the configuration from the specified configuration file.
func LoadConfig(file string) {
	var err error
	config, err = toml.LoadFile(file)
	if err != nil {
		LogFatal("Config", "Unable to load configuration file: ", err)
	}
}

// ParseConfig loads the configuration from a TOML document held in memory.
func ParseConfig(document string) error {
	tree, err := toml.Load(document)
	if err != nil {
		return err
	}
	config = tree
	return nil
}

// ResetConfig discards any loaded configuration, so that every key falls back to its default.
func ResetConfig() {
	config = nil
}

func getConfigValue(key string) interface{} {
	if config == nil {
		return nil
	}
	return config.Get(key)
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	valRaw := getConfigValue(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	valRaw := getConfigValue(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// GetConfigBoolDefault returns the boolean configuration value at the specified key or the specified default value if it does not exist.
func GetConfigBoolDefault(key string, def bool) bool {
	valRaw := getConfigValue(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(bool)
	if ok {
		return val
	}
	return def
}

// GetConfigUint16Default returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigUint16Default(key string, def uint16) uint16 {
	valRaw := getConfigValue(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val > 0 && val <= math.MaxUint16 {
		return uint16(val)
	}
	return def
}
