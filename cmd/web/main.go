package main

import "vinolog_backend/internal/app"

func main() {
	app.Run()
}
