package main

import (
	"flag"

	"becomebetter/internal/server"
)

func main() {
	// glog registers its flags on the default FlagSet.
	flag.Parse()

	server.Start()
}
