// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

// version is set at build time via ldflags.
var version = "dev"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("danb {{.Version}}\n")
}
