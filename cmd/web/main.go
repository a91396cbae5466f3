package main

import "talentcast_backend/internal/app"

func main() {
	app.Run()
}
