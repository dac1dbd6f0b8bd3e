package registry

// Language describes a language a project can be created for.
type Language struct {
	// Alias is the short CLI identifier, e.g. "rs".
	Alias string `mapstructure:"alias" yaml:"alias" json:"alias"`
	// FullName is the directory segment and display name, e.g. "rust".
	FullName string `mapstructure:"full_name" yaml:"full_name" json:"full_name"`
	// TemplateDir is relative to the templates root. Empty means no
	// language-specific copy step.
	TemplateDir string `mapstructure:"template_dir" yaml:"template_dir,omitempty" json:"template_dir,omitempty"`
	// InitCommand is run through the user's shell inside a new project root.
	InitCommand string `mapstructure:"init_command" yaml:"init_command,omitempty" json:"init_command,omitempty"`
	// SessionCommand is typed into a freshly created multiplexer session.
	SessionCommand string `mapstructure:"session_command" yaml:"session_command,omitempty" json:"session_command,omitempty"`
	// SessionRequires, when set, is a path relative to the project root that
	// must exist for SessionCommand to be sent (e.g. "venv").
	SessionRequires string `mapstructure:"session_requires" yaml:"session_requires,omitempty" json:"session_requires,omitempty"`
}

// HasTemplates reports whether the language has its own template directory.
func (l Language) HasTemplates() bool { return l.TemplateDir != "" }

// HasInitCommand reports whether the language runs an init command.
func (l Language) HasInitCommand() bool { return l.InitCommand != "" }

// Category describes what a project is for (personal, work, ...).
type Category struct {
	Alias    string `mapstructure:"alias" yaml:"alias" json:"alias"`
	FullName string `mapstructure:"full_name" yaml:"full_name" json:"full_name"`
}
