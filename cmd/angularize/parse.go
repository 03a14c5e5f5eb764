package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/angularize/pkg/estree"
	"github.com/Sumatoshi-tech/angularize/pkg/jsparser"
)

func parseCmd() *cobra.Command {
	var output string

	var compact bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a component file and dump its syntax tree as JSON",
		Long: `Parse a React component file into the generic syntax tree and print it
as ESTree-shaped JSON.

Examples:
  angularize parse Counter.jsx
  cat Counter.jsx | angularize parse -
  angularize parse -o tree.json Counter.jsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], output, compact, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "single-line JSON output")

	return cmd
}

func runParse(input, output string, compact bool, writer io.Writer) error {
	source, filename, err := readInput(input)
	if err != nil {
		return err
	}

	root, err := jsparser.New().Parse(context.Background(), filename, source)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	encoded, err := estree.Marshal(root)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}

	if !compact {
		var pretty bytes.Buffer

		indentErr := json.Indent(&pretty, encoded, "", "  ")
		if indentErr != nil {
			return fmt.Errorf("indent output: %w", indentErr)
		}

		encoded = pretty.Bytes()
	}

	if output != "" {
		writeErr := os.WriteFile(output, append(encoded, '\n'), artifactFileMode)
		if writeErr != nil {
			return fmt.Errorf("write %s: %w", output, writeErr)
		}

		return nil
	}

	_, err = fmt.Fprintf(writer, "%s\n", encoded)

	return err
}

func readInput(input string) (source []byte, filename string, err error) {
	if input == "-" {
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}

		return source, "stdin.jsx", nil
	}

	source, err = os.ReadFile(input)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", input, err)
	}

	return source, input, nil
}
