package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/guires"
	"github.com/srlehn/guires/resources"
)

func init() { rootCmd.AddCommand(infoCmd) }

var infoCmd = &cobra.Command{
	Use:   "info /path/to/image",
	Short: "print decoded image dimensions",
	Long:  `print decoded image dimensions`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return info(args[0]) })
	},
}

func info(fileName string) error {
	img, err := guires.Loader().LoadImage(fileName, resources.PathDirect)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d, %d pixels, rgba8 unmultiplied\n",
		fileName, img.Width, img.Height, len(img.Pixels))
	return nil
}
