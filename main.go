package main

import (
	"github.com/indexo-dev/indexo/cmd"
	"github.com/indexo-dev/indexo/utils"
)

func main() {
	utils.LoadEnv()
	cmd.Execute()
}
