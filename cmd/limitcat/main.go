package main

import (
	"os"

	"github.com/streamguard/lengthlimit/cmd/lib/limitcat"
)

func main() {
	os.Exit(limitcat.Run())
}
