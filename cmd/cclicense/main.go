// Package main provides the cclicense binary entry point.
// cclicense parses Creative Commons license URLs and scans HTML
// documents for license declarations.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cclicense "github.com/albertocavalcante/go-cclicense"
	"github.com/albertocavalcante/go-cclicense/htmlscan"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:          "cclicense",
		Short:        "Creative Commons license URL tool",
		Long:         "cclicense parses Creative Commons license URLs into their canonical\nnames and scans HTML documents for license declarations.",
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json, or yaml")

	cmd.AddCommand(parseCmd(&format))
	cmd.AddCommand(scanCmd(&format))
	cmd.AddCommand(listCmd(&format))
	return cmd
}

func parseCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <url>...",
		Short: "Parse license URLs into their canonical forms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []record
			failed := 0
			for _, url := range args {
				license, err := cclicense.Parse(url)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", url, err)
					failed++
					continue
				}
				records = append(records, newRecord(url, license))
			}
			if err := emit(cmd.OutOrStdout(), *format, records); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed", failed, len(args))
			}
			return nil
		},
	}
}

func scanCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>",
		Short: "Scan an HTML document for license declarations",
		Long:  "Scan reads an HTML file (or stdin with \"-\") and prints every\nCreative Commons license link found in it, in document order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			matches, err := htmlscan.Scan(in)
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}
			records := make([]record, 0, len(matches))
			for _, m := range matches {
				records = append(records, newRecord(m.Href, m.License))
			}
			return emit(cmd.OutOrStdout(), *format, records)
		},
	}
}

func listCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every recognized Creative Commons license",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := cclicense.AllLicenses()
			records := make([]record, 0, len(all))
			for _, license := range all {
				records = append(records, newRecord(license.URL(), license))
			}
			return emit(cmd.OutOrStdout(), *format, records)
		},
	}
}
