package main

import "embed"

// configFS holds the default game configuration.
//
//go:embed configs
var configFS embed.FS
