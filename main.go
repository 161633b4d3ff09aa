package main

import "github.com/rfind/rfind/cmd/rfind"

func main() { rfind.Execute() }
