package cmd

import (
	"fmt"
	"runtime"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the chartmotion version, build time and Go runtime.",
		Usage: "chartmotion version",
		Run: func([]string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Printf("chartmotion version %s (built %s, %s %s/%s)\n",
		Version, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
