package main

import "autobuy_backend/internal/app"

func main() {
	app.Run()
}
