package main

import (
	"github.com/spf13/cobra"

	"github.com/ritikkr220-wq/SCT-CS-2/internal/cipher"
)

// addCipherFlags registers the operation flags shared by every transforming
// command. withMode is false for commands that pick the direction themselves.
func addCipherFlags(cmd *cobra.Command, withMode bool) {
	if withMode {
		cmd.Flags().StringP("mode", "m", "", "Whether to encrypt or decrypt")
		cmd.MarkFlagRequired("mode")
	}
	cmd.Flags().String("op", "", "Type of transformation (xor/add/sub/swap)")
	cmd.Flags().StringP("key", "k", "", "Numeric key for math operations (0-255)")
	cmd.Flags().StringP("swap", "s", "", "Channel swap configuration (rg/rb/gb)")
	cmd.Flags().Int("workers", 0, "Parallel workers (0 = GOMAXPROCS, 1 = sequential)")
	cmd.MarkFlagRequired("op")
}

// cipherParams reads the flags registered by addCipherFlags.
func cipherParams(cmd *cobra.Command) (cipher.Params, error) {
	opStr, _ := cmd.Flags().GetString("op")
	keyStr, _ := cmd.Flags().GetString("key")
	swapStr, _ := cmd.Flags().GetString("swap")
	workers, _ := cmd.Flags().GetInt("workers")

	op, err := cipher.ParseOperation(opStr)
	if err != nil {
		return cipher.Params{}, err
	}
	key, err := cipher.ParseKey(keyStr)
	if err != nil {
		return cipher.Params{}, err
	}
	swap, err := cipher.ParseSwapPair(swapStr)
	if err != nil {
		return cipher.Params{}, err
	}

	p := cipher.Params{Op: op, Key: key, Swap: swap, Workers: workers}
	if cmd.Flags().Lookup("mode") != nil {
		modeStr, _ := cmd.Flags().GetString("mode")
		if p.Mode, err = cipher.ParseMode(modeStr); err != nil {
			return cipher.Params{}, err
		}
	}
	return p, nil
}
