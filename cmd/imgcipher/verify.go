package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/imageio"
	"github.com/ritikkr220-wq/SCT-CS-2/internal/pipeline"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that decrypt(encrypt(image)) reproduces the image",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringP("input", "i", "", "Input image path")
	verifyCmd.Flags().String("format", "", "Also round-trip the encrypted image through this format (png, jpeg, gif, bmp, tiff)")
	verifyCmd.Flags().Int("quality", imageio.DefaultQuality, "JPEG quality (1-100)")
	addCipherFlags(verifyCmd, false)
	verifyCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	formatStr, _ := cmd.Flags().GetString("format")
	quality, _ := cmd.Flags().GetInt("quality")

	params, err := cipherParams(cmd)
	if err != nil {
		return err
	}

	var format imageio.Format
	if formatStr != "" {
		format, err = imageio.FormatFromPath("." + formatStr)
		if err != nil {
			return err
		}
	}

	res, err := pipeline.Verify(pipeline.VerifyOptions{
		InputPath: inputPath,
		Params:    params,
		Format:    format,
		Quality:   quality,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pixels:     %d\n", res.Pixels)
	fmt.Fprintf(out, "In memory:  %d mismatched\n", res.Mismatches)
	if res.Format != "" {
		fmt.Fprintf(out, "Via %s: %d mismatched\n", res.Format, res.FormatMismatches)
		if !res.FormatLossless {
			fmt.Fprintf(out, "Note: %s cannot store this image exactly\n", res.Format)
		}
	}
	if !res.OK() {
		return fmt.Errorf("round trip is not lossless")
	}
	fmt.Fprintln(out, "Round trip OK")
	return nil
}
