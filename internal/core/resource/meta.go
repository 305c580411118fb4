package resource

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SkillFileName is the manifest file every skill directory carries.
const SkillFileName = "SKILL.md"

// SkillMeta is the YAML frontmatter at the top of a SKILL.md file.
type SkillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseSkillMeta reads the SKILL.md frontmatter for the skill directory
// at skillDir.
func ParseSkillMeta(skillDir string) (*SkillMeta, error) {
	path := filepath.Join(skillDir, SkillFileName)
	fm, err := readFrontmatter(path)
	if err != nil {
		return nil, err
	}

	var meta SkillMeta
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}
	if meta.Name == "" {
		meta.Name = filepath.Base(skillDir)
	}
	return &meta, nil
}

// RuleTitle extracts a one-line description from a rule document: the
// frontmatter description when present, otherwise the first markdown
// heading. Returns "" when neither is found or the file is unreadable.
func RuleTitle(path string) string {
	if fm, err := readFrontmatter(path); err == nil {
		var meta struct {
			Description string `yaml:"description"`
		}
		if yaml.Unmarshal([]byte(fm), &meta) == nil && meta.Description != "" {
			return meta.Description
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

// readFrontmatter returns the raw YAML between the opening and closing
// --- markers of a markdown file.
func readFrontmatter(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", fmt.Errorf("empty file: %s", path)
	}
	if strings.TrimSpace(scanner.Text()) != "---" {
		return "", fmt.Errorf("no frontmatter in %s", path)
	}

	var fm strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		fm.WriteString(line)
		fm.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return fm.String(), nil
}
