package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/pipeline"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Transform raw RGB8/RGBA8 pixel data (raw RGBA8 output + JSON sidecar)",
	Args:  cobra.NoArgs,
	RunE:  runRaw,
}

func init() {
	rawCmd.Flags().StringP("input", "i", "", "Input raw pixel file")
	rawCmd.Flags().StringP("output", "o", "", "Output raw RGBA8 file")
	rawCmd.Flags().Int("width", 0, "Image width")
	rawCmd.Flags().Int("height", 0, "Image height")
	rawCmd.Flags().Int("channels", 4, "Channels per input pixel (3 = RGB8, 4 = RGBA8)")
	addCipherFlags(rawCmd, true)
	rawCmd.MarkFlagRequired("input")
	rawCmd.MarkFlagRequired("output")
	rawCmd.MarkFlagRequired("width")
	rawCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(rawCmd)
}

func runRaw(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	channels, _ := cmd.Flags().GetInt("channels")

	params, err := cipherParams(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.RunRaw(pipeline.RawOptions{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Width:      width,
		Height:     height,
		Channels:   channels,
		Params:     params,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Transformed %dx%d → raw RGBA8 (%d bytes)\n", width, height, result.Bytes)
	fmt.Fprintf(out, "Successfully wrote %s\n", result.OutputPath)
	fmt.Fprintf(out, "Sidecar: %s\n", result.MetaPath)
	return nil
}
