package main

import "github.com/cleitonmarx/symbiont-snippet-canvas/internal/app"

func main() {
	err := app.NewSnippetCanvasApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
