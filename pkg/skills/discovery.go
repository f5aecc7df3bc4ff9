package skills

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const skillFileName = "SKILL.md"

// Definition is a discovered custom skill: the skill itself, its entity
// requirement, and where it was loaded from.
type Definition struct {
	Skill       *Skill
	Requirement *Requirement
	Directory   string
}

// Discovery finds custom skill definitions in configured directories.
// Each skill lives in its own directory containing a SKILL.md whose YAML
// frontmatter carries command, display-name, keywords, requires, and
// optional fields; the markdown body is free-form usage notes.
type Discovery struct {
	skillDirs []string
}

// Option is a function that configures a Discovery.
type Option func(*Discovery) error

// WithSkillDirs sets custom skill directories.
func WithSkillDirs(dirs ...string) Option {
	return func(d *Discovery) error {
		d.skillDirs = dirs
		return nil
	}
}

// WithDefaultDirs initializes with the default skill directories.
func WithDefaultDirs() Option {
	return func(d *Discovery) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		d.skillDirs = []string{
			"./.copilot/skills",                          // Repo-local (highest precedence)
			filepath.Join(homeDir, ".copilot", "skills"), // User-global
		}
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		opts = []Option{WithDefaultDirs()}
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Discover loads all custom skill definitions from the configured
// directories. Directories that do not exist and definitions that fail
// to parse are skipped; the first definition of a command wins.
func (d *Discovery) Discover() []*Definition {
	var defs []*Definition
	seen := make(map[string]bool)

	for _, dir := range d.skillDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			entryPath := filepath.Join(dir, entry.Name())

			info, err := os.Stat(entryPath)
			if err != nil || !info.IsDir() {
				continue
			}

			def, err := loadDefinition(filepath.Join(entryPath, skillFileName))
			if err != nil {
				continue
			}

			if seen[def.Skill.Command] {
				continue
			}
			seen[def.Skill.Command] = true
			def.Directory = entryPath
			defs = append(defs, def)
		}
	}

	return defs
}

// Extend registers every discovered definition onto reg. Definitions
// whose command is already registered (builtin or earlier custom) are
// skipped, so builtins cannot be shadowed.
func (d *Discovery) Extend(reg *Registry) {
	for _, def := range d.Discover() {
		if _, exists := reg.Lookup(def.Skill.Command); exists {
			continue
		}
		_ = reg.Register(def.Skill, def.Requirement)
	}
}

// loadDefinition parses a single SKILL.md file.
func loadDefinition(path string) (*Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	entry := skillEntry{
		Command:     stringField(metaData, "command"),
		DisplayName: stringField(metaData, "display-name"),
		Description: stringField(metaData, "description"),
		Keywords:    stringListField(metaData, "keywords"),
		Requires:    stringListField(metaData, "requires"),
		Optional:    stringListField(metaData, "optional"),
	}
	if entry.Command == "" {
		return nil, errors.New("skill command is required in frontmatter")
	}
	if entry.DisplayName == "" {
		return nil, errors.New("skill display-name is required in frontmatter")
	}

	skill, req, err := entry.toSkill()
	if err != nil {
		return nil, err
	}

	return &Definition{Skill: skill, Requirement: req}, nil
}

func stringField(metaData map[string]interface{}, key string) string {
	s, _ := metaData[key].(string)
	return s
}

func stringListField(metaData map[string]interface{}, key string) []string {
	raw, ok := metaData[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
