package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/srlehn/guires"
	"github.com/srlehn/guires/pix"
	"github.com/srlehn/guires/resources"
)

func init() {
	fillCmd.Flags().StringVar(&fillFilter, `filter`, pix.FilterLanczos3.String(),
		`sampling kernel: nearest, linear, cubic, gaussian, lanczos3`)
	rootCmd.AddCommand(fillCmd)
}

var fillCmd = &cobra.Command{
	Use:   "fill /path/to/image <w>x<h> /path/to/out.rgba",
	Short: "crop+scale an image to fill the given size, write raw RGBA8",
	Long: `Crop+scale an image to fill the given size, write raw RGBA8.

The source is cropped (centered) to the target aspect ratio and scaled
to exactly <w>x<h>. The output file holds width*height*4 bytes of
row-major unmultiplied RGBA.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return fill(args[0], args[1], args[2]) })
	},
}

var fillFilter string

func fill(fileName, sizeArg, outName string) error {
	w, h, err := splitSizeArg(sizeArg)
	if err != nil {
		return err
	}
	filter, err := pix.ParseFilter(fillFilter)
	if err != nil {
		return err
	}
	img, err := guires.Loader().LoadImage(fileName, resources.PathDirect)
	if err != nil {
		return err
	}
	filled, err := guires.ResizeToFill(img, w, h, filter)
	if err != nil {
		return err
	}
	raw, err := filled.Raw()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outName, raw.Bytes, 0o644); err != nil {
		return errorsGo.New(err)
	}
	fmt.Printf("%s: %dx%d %s -> %s (%d bytes)\n",
		fileName, w, h, filter, outName, len(raw.Bytes))
	return nil
}

func splitSizeArg(s string) (w, h int, _ error) {
	parts := strings.SplitN(s, `x`, 2)
	if len(parts) != 2 {
		return 0, 0, errorsGo.Errorf(`size %q not in <w>x<h> form`, s)
	}
	w64, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, errorsGo.New(err)
	}
	h64, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, errorsGo.New(err)
	}
	return int(w64), int(h64), nil
}
