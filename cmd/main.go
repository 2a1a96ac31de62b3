package main

import "github.com/dasdy/keylayout/cmd/keylayout"

func main() {
	keylayout.Execute()
}
