package main

import "github.com/cellbuild/cellbuild/cmd/cellbuild/internal"

func main() {
	internal.Execute()
}
