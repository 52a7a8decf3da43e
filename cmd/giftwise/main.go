package main

import "github.com/ribslabs/giftwise/internal/app"

func main() {
	err := app.NewGiftwiseApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
