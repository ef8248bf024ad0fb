package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/pipeline"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Encrypt or decrypt an image file",
	Example: `  imgcipher apply -i photo.png -o locked.png -m encrypt --op xor -k 37
  imgcipher apply -i locked.png -o photo.png -m decrypt --op xor -k 37
  imgcipher apply -i photo.png -o swapped.png -m encrypt --op swap -s rb`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "Input image path")
	applyCmd.Flags().StringP("output", "o", "", "Output image path (format from extension)")
	applyCmd.Flags().Int("quality", imageio.DefaultQuality, "JPEG quality (1-100)")
	addCipherFlags(applyCmd, true)
	applyCmd.MarkFlagRequired("input")
	applyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	quality, _ := cmd.Flags().GetInt("quality")

	params, err := cipherParams(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(pipeline.Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Params:     params,
		Quality:    quality,
	})
	if err != nil {
		return err
	}

	if result.AlphaDropped {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s has no alpha channel; transparency was dropped\n", result.OutputFormat)
	}
	if result.Lossy {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s is lossy for this image; applying the inverse will not restore the input exactly\n", result.OutputFormat)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote %s\n", result.OutputPath)
	return nil
}
