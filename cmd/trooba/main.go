package main

import "github.com/vikas-techsprout/Trooba-poc-1/internal/cmd"

func main() {
	cmd.Execute()
}
