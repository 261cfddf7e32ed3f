package main

import "github.com/blogem/goodhome/cli"

func main() {
	cli.Execute()
}
