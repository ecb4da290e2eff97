package main

import "foodshare_backend/internal/app"

func main() {
	app.Run()
}
