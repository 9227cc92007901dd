// cmd/kclust/main.go
package main

import (
	"kclust/internal/app"
	"kclust/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
