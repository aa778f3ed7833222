package main

import (
	"github.com/webmux/wacloud/cmd"
)

func main() {
	cmd.Run()
}
