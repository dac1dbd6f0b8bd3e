package request

import (
	"errors"
	"fmt"
	"io"

	"github.com/pact-cli/pact/internal/registry"
	"github.com/spf13/pflag"
)

// Command identifies what pact was asked to do.
type Command int

const (
	CommandUnknown Command = iota
	CommandNew
	CommandClone
)

// ParseCommand maps the first CLI token to a Command.
func ParseCommand(s string) Command {
	switch s {
	case "new":
		return CommandNew
	case "clone":
		return CommandClone
	default:
		return CommandUnknown
	}
}

// String returns the CLI spelling of the command.
func (c Command) String() string {
	switch c {
	case CommandNew:
		return "new"
	case CommandClone:
		return "clone"
	default:
		return "unknown"
	}
}

// Request is a parsed new/clone invocation. Language and Category are nil
// until resolved.
type Request struct {
	Command  Command
	Language *registry.Language
	Category *registry.Category
	// Name is the project name. For clone it is optional and derived from
	// URL when empty.
	Name string
	// URL is only set for clone.
	URL string
}

// Flag names shared with the usage text.
const (
	FlagLanguage      = "language"
	FlagLanguageShort = "l"
	FlagType          = "type"
	FlagTypeShort     = "t"
)

// aliasValue resolves a flag value against the registry as soon as the flag
// is seen, so the first bad alias on the command line is the one reported.
type aliasValue struct {
	raw     string
	resolve func(string) error
	err     error
}

func (v *aliasValue) String() string { return v.raw }
func (v *aliasValue) Type() string   { return "alias" }

func (v *aliasValue) Set(s string) error {
	v.raw = s
	if err := v.resolve(s); err != nil {
		v.err = err
		return err
	}
	return nil
}

// Parse reads the -l and -t flags and the positional arguments for cmd.
// Flags may appear anywhere among the positionals. Extra positionals are
// ignored. Missing required fields are not reported here; see Validate.
//
// Flags in extra (the CLI's global flags) are accepted alongside -l and -t
// and set as a side effect.
func Parse(cmd Command, args []string, reg *registry.Registry, extra ...*pflag.FlagSet) (*Request, error) {
	if cmd != CommandNew && cmd != CommandClone {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownCommand, cmd)
	}

	req := &Request{Command: cmd}

	lang := &aliasValue{resolve: func(alias string) error {
		l, ok := reg.FindLanguage(alias)
		if !ok {
			return fmt.Errorf("%w '-%s %s'", ErrInvalidLanguage, FlagLanguageShort, alias)
		}
		req.Language = &l
		return nil
	}}
	cat := &aliasValue{resolve: func(alias string) error {
		c, ok := reg.FindCategory(alias)
		if !ok {
			return fmt.Errorf("%w '-%s %s'", ErrInvalidProjectCategory, FlagTypeShort, alias)
		}
		req.Category = &c
		return nil
	}}

	fs := pflag.NewFlagSet(cmd.String(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.VarP(lang, FlagLanguage, FlagLanguageShort, "language alias")
	fs.VarP(cat, FlagType, FlagTypeShort, "project type alias")
	for _, e := range extra {
		fs.AddFlagSet(e)
	}

	if err := fs.Parse(args); err != nil {
		switch {
		case lang.err != nil:
			return nil, lang.err
		case cat.err != nil:
			return nil, cat.err
		case errors.Is(err, pflag.ErrHelp):
			return nil, ErrHelp
		}
		var notExist *pflag.NotExistError
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w '%s'", ErrUnknownOption, flagSpelling(notExist))
		}
		return nil, fmt.Errorf("%w: %v", ErrOptionValue, err)
	}

	rest := fs.Args()
	switch cmd {
	case CommandNew:
		if len(rest) > 0 {
			req.Name = rest[0]
		}
	case CommandClone:
		if len(rest) > 0 {
			req.URL = rest[0]
		}
		if len(rest) > 1 {
			req.Name = rest[1]
		}
	}
	return req, nil
}

func flagSpelling(e *pflag.NotExistError) string {
	if e.GetSpecifiedShortnames() != "" {
		return "-" + e.GetSpecifiedName()
	}
	return "--" + e.GetSpecifiedName()
}

// Validate checks that everything the command needs is present, in the
// order language, project type, then name (new) or URL (clone).
func Validate(req *Request) error {
	if req.Language == nil {
		return ErrMissingLanguage
	}
	if req.Category == nil {
		return ErrMissingProjectCategory
	}
	switch req.Command {
	case CommandNew:
		if req.Name == "" {
			return ErrMissingName
		}
	case CommandClone:
		if req.URL == "" {
			return ErrMissingURL
		}
	default:
		return fmt.Errorf("%w '%s'", ErrUnknownCommand, req.Command)
	}
	return nil
}

// ParseAndValidate runs Parse followed by Validate.
func ParseAndValidate(cmd Command, args []string, reg *registry.Registry, extra ...*pflag.FlagSet) (*Request, error) {
	req, err := Parse(cmd, args, reg, extra...)
	if err != nil {
		return nil, err
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
