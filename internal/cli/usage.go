package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pact-cli/pact/internal/branding"
	"github.com/pact-cli/pact/internal/registry"
	"github.com/pact-cli/pact/internal/request"
)

func printUsage(w io.Writer, reg *registry.Registry) {
	name := branding.CLIName()
	banner := strings.Repeat("=", len(branding.DisplayName())+10)
	fmt.Fprintf(w, "%s\n  %s CLI\n%s\n\n", banner, branding.DisplayName(), banner)
	fmt.Fprintf(w, "Usage:\n  %s <command> [options]\n\n", name)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  new      Create a new project")
	fmt.Fprintln(w, "  clone    Clone a repository")
	fmt.Fprintln(w, "  list     Show configured languages and project types")
	fmt.Fprintln(w, "  config   Read and write settings")
	fmt.Fprintln(w, "  doctor   Check git, tmux, the shell and template directories")
	fmt.Fprintln(w, "  version  Print version information")
	if reg != nil {
		fmt.Fprintln(w)
		printOptions(w, reg)
	}
}

func printOptions(w io.Writer, reg *registry.Registry) {
	fmt.Fprintln(w, "Options:")
	fmt.Fprintf(w, "  -%s <type_alias> [%s]\n", request.FlagTypeShort, quoteList(reg.CategoryAliases()))
	fmt.Fprintf(w, "  -%s <language>   [%s]\n", request.FlagLanguageShort, quoteList(reg.LanguageAliases()))
}

func printCommandUsage(w io.Writer, cmd request.Command, reg *registry.Registry) {
	name := branding.CLIName()
	lang, typ := "c", "p"
	if l := reg.LanguageAliases(); len(l) > 0 {
		lang = l[0]
	}
	if c := reg.CategoryAliases(); len(c) > 0 {
		typ = c[0]
	}

	switch cmd {
	case request.CommandNew:
		fmt.Fprintf(w, "Usage: %s new -t <type> -l <lang> <project_name>\n\n", name)
		printOptions(w, reg)
		fmt.Fprintln(w, "  <project_name>  Name of the new project dir")
		fmt.Fprintf(w, "\nExample:\n  %s new -l %s -t %s my_project_name\n", name, lang, typ)
	case request.CommandClone:
		fmt.Fprintf(w, "Usage: %s clone -t <type> -l <language> <git_url> [<new_name>]\n\n", name)
		printOptions(w, reg)
		fmt.Fprintln(w, "  <git_url>       URL of the repository to clone")
		fmt.Fprintln(w, "  <new_name>      Optional rename of the repo")
		fmt.Fprintf(w, "\nExample:\n  %s clone -l %s -t %s https://github.com/example/repo.git\n", name, lang, typ)
	default:
		printUsage(w, reg)
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return strings.Join(quoted, ", ")
}
