package main

import "github.com/hugohenrick/moneywise/internal/cmd"

func main() {
	cmd.Execute()
}
