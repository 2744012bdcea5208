package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/code-extractor/internal/classify"
	"github.com/pdiddy/code-extractor/internal/document"
	"github.com/pdiddy/code-extractor/internal/extract"
	"github.com/pdiddy/code-extractor/internal/identify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Print the language label of a snippet or the blocks of a document",
	Long: `Classify reads a file (or stdin when no file is given) and prints the
language label and file extension the extractor would assign to it.

With --blocks the input is treated as a document: every detected code block
is listed with its start line, language and file name, and nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Bool("blocks", false, "list the code blocks of a document instead of classifying it whole")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	var (
		name = "stdin"
		text string
	)

	if len(args) == 1 {
		doc, err := document.NewFileReader(extractConfig().Input).Read(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		name, text = doc.Name, doc.Text
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text, err = document.Decode(data)
		if err != nil {
			return fmt.Errorf("decoding stdin: %w", err)
		}
	}

	out := cmd.OutOrStdout()

	blocksMode, _ := cmd.Flags().GetBool("blocks")
	if !blocksMode {
		lang := classify.Classify(text)
		fmt.Fprintf(out, "%s\t%s\n", lang, classify.Extension(lang))
		return nil
	}

	blocks := extract.Blocks(text)
	if len(blocks) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: no code blocks found\n", name)
		return nil
	}

	fmt.Fprintf(out, "topic: %s\n", identify.Topic(name, text))
	for i, b := range blocks {
		fmt.Fprintf(out, "%4d  %-10s  %s\n", b.StartLine, b.Language, identify.FileName(i+1, b))
	}
	return nil
}
