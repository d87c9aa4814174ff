// Paletta - a colour quantization and palette analysis toolkit
//
// Paletta extracts deterministic colour palettes from images and provides
// colour-science tooling around them.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/paletta/internal/cli"

func main() {
	cli.Execute()
}
