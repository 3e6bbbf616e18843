// Package workspace manages named note collections driven by in-document
// %% directives. Workspaces live as YAML files under workspaces/ inside
// the vault.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/wynn/internal/vault"
)

// Directive commands.
const (
	CmdNew        = "nw"  // create a workspace
	CmdAddTo      = "atw" // add the current note to a workspace
	CmdDeleteFrom = "dfw" // remove the current note from a workspace
)

var directiveRe = regexp.MustCompile(`^%%(nw|atw|dfw)\s+(\S+)$`)

// Directive is one parsed %% command line.
type Directive struct {
	Cmd  string
	Name string
}

// ParseDirective parses a single line. The line must contain nothing but
// the directive.
func ParseDirective(line string) (Directive, bool) {
	m := directiveRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Directive{}, false
	}
	return Directive{Cmd: m[1], Name: m[2]}, true
}

// Strip removes directive lines from text and returns them in document
// order.
func Strip(text string) (string, []Directive) {
	var directives []Directive
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if d, ok := ParseDirective(line); ok {
			directives = append(directives, d)
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), directives
}

// file is the on-disk YAML shape of a workspace.
type file struct {
	Name  string   `yaml:"name"`
	Notes []string `yaml:"notes"`
}

// Manager persists workspaces through the vault store.
type Manager struct {
	store  vault.Provider
	logger *slog.Logger
}

func NewManager(store vault.Provider, logger *slog.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

func wsPath(name string) string {
	return "workspaces/" + name + ".yaml"
}

func (m *Manager) load(name string) (*file, error) {
	data, err := m.store.Read(wsPath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("workspace %s: %w", name, err)
	}
	if f.Name == "" {
		f.Name = name
	}
	return &f, nil
}

func (m *Manager) save(f *file) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("workspace %s: %w", f.Name, err)
	}
	if err := m.store.Write(wsPath(f.Name), data); err != nil {
		return err
	}
	m.logger.Debug("workspace: saved", slog.String("name", f.Name), slog.Int("notes", len(f.Notes)))
	return nil
}

// Create writes a new workspace seeded with the note that requested it.
// Creating an existing workspace is a no-op.
func (m *Manager) Create(name, note string) error {
	if _, err := m.load(name); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return m.save(&file{Name: name, Notes: []string{note}})
}

// Append adds a note to a workspace, creating the workspace if needed.
func (m *Manager) Append(name, note string) error {
	f, err := m.load(name)
	if errors.Is(err, fs.ErrNotExist) {
		f = &file{Name: name}
	} else if err != nil {
		return err
	}
	for _, n := range f.Notes {
		if n == note {
			return nil
		}
	}
	f.Notes = append(f.Notes, note)
	return m.save(f)
}

// Remove drops a note from a workspace. A missing workspace is a no-op.
func (m *Manager) Remove(name, note string) error {
	f, err := m.load(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	kept := f.Notes[:0]
	for _, n := range f.Notes {
		if n != note {
			kept = append(kept, n)
		}
	}
	f.Notes = kept
	return m.save(f)
}

// Notes returns the members of a workspace.
func (m *Manager) Notes(name string) ([]string, error) {
	f, err := m.load(name)
	if err != nil {
		return nil, err
	}
	return f.Notes, nil
}

// Execute applies one directive on behalf of the note that carried it.
func (m *Manager) Execute(d Directive, note string) error {
	switch d.Cmd {
	case CmdNew:
		return m.Create(d.Name, note)
	case CmdAddTo:
		return m.Append(d.Name, note)
	case CmdDeleteFrom:
		return m.Remove(d.Name, note)
	default:
		return fmt.Errorf("workspace: unknown directive %q", d.Cmd)
	}
}
