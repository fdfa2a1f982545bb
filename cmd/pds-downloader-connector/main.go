package main

import (
	"github.com/venafi/pds-downloader-connector/cmd/pds-downloader-connector/app"
)

func main() {
	app.New().Run()
}
