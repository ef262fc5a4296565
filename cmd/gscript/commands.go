package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/gscript"
)

// errLintFailed is returned when lint finds error-level issues.
var errLintFailed = errors.New("lint failed")

// document is the parse command output.
type document struct {
	File        string                `json:"file,omitempty" yaml:"file,omitempty"`
	Assignments []*gscript.Assignment `json:"assignments" yaml:"assignments"`
}

func newParseCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a script and print its assignments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, name, err := a.parseInput(cmd, args)
			if err != nil {
				return err
			}

			format := a.cfg.Output
			if cmd.Flags().Changed("output") || format == "" {
				format = output
			}

			return writeDocument(cmd.OutOrStdout(), document{File: name, Assignments: script}, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	return cmd
}

// writeDocument encodes the parse result.
func writeDocument(w io.Writer, doc document, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newFmtCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Print a script in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && (len(args) == 0 || args[0] == "-") {
				return errors.New("--write requires a file argument")
			}

			script, name, err := a.parseInput(cmd, args)
			if err != nil {
				return err
			}

			if write {
				if err := gscript.EncodeFile(name, script, a.cfg.formatOptions()); err != nil {
					return fmt.Errorf("failed to write %s: %w", name, err)
				}
				a.logger.Info("formatted", "file", name, "assignments", len(script))
				return nil
			}

			return gscript.Encode(cmd.OutOrStdout(), script, a.cfg.formatOptions())
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result to the source file")
	return cmd
}

func newLintCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [file|-]",
		Short: "Report suspicious assignments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, name, err := a.parseInput(cmd, args)
			if err != nil {
				return err
			}

			issues := gscript.Validate(script, a.cfg.validateOptions())
			failed := false
			for _, it := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%s [%s]\n", name, it, it.Code)
				if it.Level == gscript.IssueError {
					failed = true
				}
			}

			if failed {
				return fmt.Errorf("%s: %w", name, errLintFailed)
			}
			return nil
		},
	}

	return cmd
}
