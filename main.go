package main

import "campus-parking/cmd"

func main() {
	cmd.Execute()
}
