// Package prompts содержит статический каталог prompt-шаблонов.
// Каталог собирается один раз при загрузке пакета; содержимое отдается
// клиентам без изменений.
package prompts

// Prompt описывает один шаблон каталога.
type Prompt struct {
	Name        string
	Description string
	Category    string
	Text        string
}

var catalog []Prompt

var byName map[string]Prompt

func init() {
	catalog = append(catalog, developmentPrompts...)
	catalog = append(catalog, architecturePrompts...)
	catalog = append(catalog, specializationPrompts...)
	byName = make(map[string]Prompt, len(catalog))
	for _, p := range catalog {
		byName[p.Name] = p
	}
}

// Catalog возвращает все prompt-шаблоны в стабильном порядке.
func Catalog() []Prompt {
	out := make([]Prompt, len(catalog))
	copy(out, catalog)
	return out
}

// Get возвращает шаблон по имени.
func Get(name string) (Prompt, bool) {
	p, ok := byName[name]
	return p, ok
}
