package registry

import "fmt"

// Registry is an immutable pair of lookup tables.
type Registry struct {
	languages  []Language
	categories []Category
}

// New builds a Registry from the given tables. The slices are copied so
// later changes by the caller do not leak into the registry.
func New(languages []Language, categories []Category) *Registry {
	return &Registry{
		languages:  append([]Language(nil), languages...),
		categories: append([]Category(nil), categories...),
	}
}

// FindLanguage returns the first language whose alias equals alias.
func (r *Registry) FindLanguage(alias string) (Language, bool) {
	for _, l := range r.languages {
		if l.Alias == alias {
			return l, true
		}
	}
	return Language{}, false
}

// FindCategory returns the first category whose alias equals alias.
func (r *Registry) FindCategory(alias string) (Category, bool) {
	for _, c := range r.categories {
		if c.Alias == alias {
			return c, true
		}
	}
	return Category{}, false
}

// Languages returns a copy of the language table in declaration order.
func (r *Registry) Languages() []Language {
	return append([]Language(nil), r.languages...)
}

// Categories returns a copy of the category table in declaration order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

// LanguageAliases returns the language aliases in declaration order.
func (r *Registry) LanguageAliases() []string {
	out := make([]string, 0, len(r.languages))
	for _, l := range r.languages {
		out = append(out, l.Alias)
	}
	return out
}

// CategoryAliases returns the category aliases in declaration order.
func (r *Registry) CategoryAliases() []string {
	out := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c.Alias)
	}
	return out
}

// Duplicates describes every alias declared more than once. Duplicates are
// not an error: lookups still resolve to the first declaration, so a
// shadowed entry is unreachable.
func (r *Registry) Duplicates() []string {
	var out []string
	out = append(out, duplicates("language", r.LanguageAliases())...)
	out = append(out, duplicates("category", r.CategoryAliases())...)
	return out
}

func duplicates(kind string, aliases []string) []string {
	counts := make(map[string]int, len(aliases))
	var order []string
	for _, a := range aliases {
		if counts[a] == 0 {
			order = append(order, a)
		}
		counts[a]++
	}
	var out []string
	for _, a := range order {
		if counts[a] > 1 {
			out = append(out, fmt.Sprintf("%s alias %q is declared %d times; only the first is reachable", kind, a, counts[a]))
		}
	}
	return out
}
