package main

import "embed"

// configFS holds the stock tuning file and level descriptions.
//
//go:embed configs
var configFS embed.FS
