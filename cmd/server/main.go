package main

import "payday/internal/app/server"

func main() {
	server.Run()
}
