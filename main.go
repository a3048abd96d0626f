package main

import "github.com/ValentinKolb/jstr/cmd"

func main() {
	cmd.Execute()
}
