//go:build tools
// +build tools

// Package tools pins code-generation dependencies to go.mod.
// See https://go.dev/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module
package tools

import (
	// swag generates the OpenAPI document served at /swagger from the
	// handler annotations.
	_ "github.com/swaggo/swag"
)
