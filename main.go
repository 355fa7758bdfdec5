package main

import "github.com/drvaldez/consultorio_backend/cmd"

func main() {
	cmd.Execute()
}
