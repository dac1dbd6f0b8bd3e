package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pact-cli/pact/internal/registry"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	listJSON bool
	listYAML bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configured languages and project types",
	Long:  `List the language and project type aliases accepted by -l and -t.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the machine-readable form of the registries.
type listOutput struct {
	Languages  []registry.Language `json:"languages" yaml:"languages"`
	Categories []registry.Category `json:"categories" yaml:"categories"`
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	reg := a.cfg.Registry()
	out := listOutput{Languages: reg.Languages(), Categories: reg.Categories()}

	switch {
	case listJSON:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling registries: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	case listYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding registries: %w", err)
		}
		return enc.Close()
	}
	return printListTable(cmd.OutOrStdout(), out)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printListTable(w io.Writer, out listOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tDIRECTORY\tTEMPLATES\tINIT COMMAND")
	for _, l := range out.Languages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Alias, l.FullName, dash(l.TemplateDir), dash(l.InitCommand))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "TYPE\tDIRECTORY")
	for _, c := range out.Categories {
		fmt.Fprintf(tw, "%s\t%s\n", c.Alias, c.FullName)
	}
	return tw.Flush()
}
