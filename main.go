package main

import "github.com/stocklab/restock/cmd"

func main() {
	cmd.Execute()
}
