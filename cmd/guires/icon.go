package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/guires/resources"
)

func init() {
	iconCmd.Flags().StringVar(&iconBaseDir, `resources`, ``,
		`resource base directory (default "./resources")`)
	rootCmd.AddCommand(iconCmd)
}

var iconCmd = &cobra.Command{
	Use:   "icon <name>",
	Short: "load a window icon from the resource directory",
	Long:  `load a window icon from the resource directory`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return icon(args[0]) })
	},
}

var iconBaseDir string

func icon(name string) error {
	loader := resources.NewLoader(resources.Config{BaseDir: iconBaseDir})
	ico := loader.Icon(name)
	if ico == nil {
		fmt.Printf("%s: no icon\n", name)
		return nil
	}
	fmt.Printf("%s: %dx%d, %d bytes rgba\n", name, ico.Width, ico.Height, len(ico.RGBA))
	return nil
}
