package main

import "crewboard_backend/internal/app"

func main() {
	app.Run()
}
