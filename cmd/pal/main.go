package main

import "planetpal/cmd/pal/root"

func main() {
	root.Execute()
}
