package main

import (
	"github.com/flixstream/flixstream/cmd"
	"github.com/flixstream/flixstream/config"
	"github.com/flixstream/flixstream/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
