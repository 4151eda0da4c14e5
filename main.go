package main

import (
	"github.com/scanopy/scanopy/cmd"
	"github.com/scanopy/scanopy/internal/config"
)

func main() {
	config.LoadConfig()
	cmd.Execute()
}
