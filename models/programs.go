package models

// ProgramEntry is one launch target. An empty Path means the program has
// not been configured yet.
type ProgramEntry struct {
	Category string `json:"category"`
	Program  string `json:"program"`
	Path     string `json:"path"`
}

// Configured reports whether the entry has a path
func (e ProgramEntry) Configured() bool {
	return e.Path != ""
}

// category keeps the programs of one column in their stored order
type category struct {
	name     string
	programs []string
	paths    map[string]string
}

// Programs maps category -> program -> path and remembers the order in which
// categories and programs were added.
type Programs struct {
	categories []*category
	index      map[string]*category
}

// NewPrograms creates an empty mapping
func NewPrograms() *Programs {
	return &Programs{index: make(map[string]*category)}
}

// DefaultPrograms returns the built-in mapping used on first run
func DefaultPrograms() *Programs {
	p := NewPrograms()
	defaults := []struct {
		category string
		programs []string
	}{
		{"Games", []string{"Any%", "51TE", "Mul-Ty-Player Client", "Mul-Ty-Player", "Any%PM", "100%PM"}},
		{"Tools", []string{"Key2Joy", "OutbackMovement", "Ty1CollectibleTracker",
			"Mul-Ty-Player Updater", "Ty Memory Leak Manager", "Tracker", "rkvMT", "TyPos"}},
		{"Other", []string{"OBS", "VDO Ninja", "NohBoard", "LiveSplit"}},
	}
	for _, d := range defaults {
		p.AddCategory(d.category)
		for _, name := range d.programs {
			p.Add(d.category, name, "")
		}
	}
	return p
}

// AddCategory appends an empty category. Adding an existing one is a no-op.
func (p *Programs) AddCategory(name string) {
	if _, ok := p.index[name]; ok {
		return
	}
	c := &category{name: name, paths: make(map[string]string)}
	p.categories = append(p.categories, c)
	p.index[name] = c
}

// Add sets the path of a program, creating the category and program as
// needed. New programs are appended after the existing ones.
func (p *Programs) Add(categoryName, program, path string) {
	p.AddCategory(categoryName)
	c := p.index[categoryName]
	if _, ok := c.paths[program]; !ok {
		c.programs = append(c.programs, program)
	}
	c.paths[program] = path
}

// Categories returns the category names in stored order
func (p *Programs) Categories() []string {
	names := make([]string, 0, len(p.categories))
	for _, c := range p.categories {
		names = append(names, c.name)
	}
	return names
}

// Entries returns the programs of a category in stored order
func (p *Programs) Entries(categoryName string) []ProgramEntry {
	c, ok := p.index[categoryName]
	if !ok {
		return nil
	}
	entries := make([]ProgramEntry, 0, len(c.programs))
	for _, name := range c.programs {
		entries = append(entries, ProgramEntry{Category: c.name, Program: name, Path: c.paths[name]})
	}
	return entries
}

// All returns every entry, category by category
func (p *Programs) All() []ProgramEntry {
	var entries []ProgramEntry
	for _, c := range p.categories {
		entries = append(entries, p.Entries(c.name)...)
	}
	return entries
}

// Path looks up the path of a program. The second result is false when the
// category or program is unknown.
func (p *Programs) Path(categoryName, program string) (string, bool) {
	c, ok := p.index[categoryName]
	if !ok {
		return "", false
	}
	path, ok := c.paths[program]
	return path, ok
}

// SetPath changes the path of an existing program. Unknown keys are left
// alone and false is returned.
func (p *Programs) SetPath(categoryName, program, path string) bool {
	c, ok := p.index[categoryName]
	if !ok {
		return false
	}
	if _, ok := c.paths[program]; !ok {
		return false
	}
	c.paths[program] = path
	return true
}

// Len returns the number of programs across all categories
func (p *Programs) Len() int {
	n := 0
	for _, c := range p.categories {
		n += len(c.programs)
	}
	return n
}

// Clone returns a deep copy
func (p *Programs) Clone() *Programs {
	out := NewPrograms()
	for _, c := range p.categories {
		out.AddCategory(c.name)
		for _, name := range c.programs {
			out.Add(c.name, name, c.paths[name])
		}
	}
	return out
}
