package main

import (
	"github.com/neuronlabs/xgraph/cmd/xgraph/cmd"
)

func main() {
	cmd.Execute()
}
