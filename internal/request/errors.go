package request

import (
	"errors"

	"github.com/spf13/pflag"
)

// Parse and validation failures. Returned errors wrap one of these and name
// the offending token; test with errors.Is.
var (
	ErrUnknownCommand         = errors.New("unknown command")
	ErrUnknownOption          = errors.New("unknown option")
	ErrOptionValue            = errors.New("bad option")
	ErrInvalidLanguage        = errors.New("invalid language")
	ErrInvalidProjectCategory = errors.New("invalid project type")
	ErrMissingLanguage        = errors.New("language is required")
	ErrMissingProjectCategory = errors.New("project type is required")
	ErrMissingName            = errors.New("project name is required for 'new'")
	ErrMissingURL             = errors.New("URL is required for 'clone'")

	// ErrHelp is returned by Parse when -h or --help is given.
	ErrHelp = pflag.ErrHelp
)

// IsUsageError reports whether err should be followed by command usage.
func IsUsageError(err error) bool {
	for _, target := range []error{
		ErrUnknownOption, ErrOptionValue, ErrInvalidLanguage, ErrInvalidProjectCategory,
		ErrMissingLanguage, ErrMissingProjectCategory, ErrMissingName, ErrMissingURL,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
