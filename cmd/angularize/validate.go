package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/angularize/pkg/estree/spec"
)

// ErrInvalidTree indicates the document does not conform to the input schema.
var ErrInvalidTree = errors.New("syntax tree does not match the input schema")

func validateCmd() *cobra.Command {
	var schemaPath string

	var nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate an ESTree JSON document against the input schema",
		Long: `Validate a pre-parsed syntax tree document against the embedded ESTree
input schema before feeding it to transpile.

Examples:
  angularize validate tree.json
  angularize validate - < tree.json
  angularize validate --schema custom-schema.json tree.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], schemaPath, nocolor, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "path to a JSON schema overriding the embedded one")
	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath, schemaPath string, nocolor bool, out io.Writer) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	inputReader, inputLabel, err := openInput(inputPath)
	if err != nil {
		return err
	}

	var inputData any

	dec := json.NewDecoder(inputReader)
	dec.UseNumber()

	decodeErr := dec.Decode(&inputData)
	if decodeErr != nil {
		return fmt.Errorf("invalid JSON in %s: %w", inputLabel, decodeErr)
	}

	schemaLoader, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(inputData))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		color.New(color.FgGreen).Fprintf(out, "tree is valid (%s)\n", inputLabel)

		return nil
	}

	color.New(color.FgRed).Fprintf(out, "validation failed (%s)\n", inputLabel)

	for _, verr := range result.Errors() {
		color.New(color.FgRed).Fprintf(out, "  - %s: %s\n", verr.Field(), verr.Description())
	}

	return fmt.Errorf("%w: %d errors in %s", ErrInvalidTree, len(result.Errors()), inputLabel)
}

func openInput(inputPath string) (io.Reader, string, error) {
	if inputPath == "-" {
		return os.Stdin, "stdin", nil
	}

	inputFile, err := os.Open(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}

	return inputFile, inputPath, nil
}

func loadSchema(schemaPath string) (gojsonschema.JSONLoader, error) {
	if schemaPath == "" {
		schemaBytes, err := spec.SchemaFS.ReadFile(spec.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("read embedded schema: %w", err)
		}

		return gojsonschema.NewBytesLoader(schemaBytes), nil
	}

	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	return gojsonschema.NewBytesLoader(schemaBytes), nil
}
