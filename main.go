package main

import (
	"github.com/ytget/yt-mp3/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
