package core

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/avoronin/loadout/internal/core/assistant"
	"github.com/avoronin/loadout/internal/core/resource"
)

// seedInstallCatalog builds a catalog with two skills and two rules.
func seedInstallCatalog(t *testing.T) CatalogPaths {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"code-detector", "schema"} {
		dir := filepath.Join(root, "skills", name)
		os.MkdirAll(dir, 0o755)
		os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("---\nname: "+name+"\ndescription: Test skill\n---\n"), 0o644)
	}
	os.MkdirAll(filepath.Join(root, "rules"), 0o755)
	os.WriteFile(filepath.Join(root, "rules", "code-style.md"), []byte("# Code style\n"), 0o644)
	os.WriteFile(filepath.Join(root, "rules", "testing.md"), []byte("# Testing\n"), 0o644)
	return NewCatalogPaths(root)
}

func newTestInstaller(t *testing.T) *Installer {
	t.Helper()
	logger := log.New(io.Discard)
	paths := seedInstallCatalog(t)
	copier := NewCopier(paths, NewDirCatalog(paths, logger), logger)
	return NewInstaller(copier, logger)
}

func TestInstaller_SingleSkillForClaude(t *testing.T) {
	inst := newTestInstaller(t)
	targetDir := t.TempDir()

	results, err := inst.Install([]assistant.Type{assistant.Claude}, resource.KindSkill, targetDir, InstallOptions{Skills: []string{"schema"}})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	res := results[assistant.Claude]
	if res == nil {
		t.Fatal("no result for claude")
	}
	if res.Err != nil {
		t.Fatalf("result error: %v", res.Err)
	}
	if !reflect.DeepEqual(res.SkillsCopied, []string{"schema"}) {
		t.Errorf("SkillsCopied = %v, want [schema]", res.SkillsCopied)
	}
	if len(res.RulesCopied) != 0 {
		t.Errorf("RulesCopied = %v, want none", res.RulesCopied)
	}

	if !fileExists(filepath.Join(targetDir, ".claude", "skills", "schema", "SKILL.md")) {
		t.Error("SKILL.md not copied into .claude/skills/schema")
	}
	if entries, err := os.ReadDir(filepath.Join(targetDir, ".claude", "rules")); err == nil && len(entries) > 0 {
		t.Errorf("rules directory should be absent or empty, has %d entries", len(entries))
	}
}

func TestInstaller_FullCatalogBothKinds(t *testing.T) {
	inst := newTestInstaller(t)
	targetDir := t.TempDir()
	targets := []assistant.Type{assistant.Claude, assistant.Cursor}

	results, err := inst.Install(targets, resource.KindBoth, targetDir, InstallOptions{})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	for _, a := range targets {
		res := results[a]
		if res.Err != nil {
			t.Fatalf("%s: result error: %v", a, res.Err)
		}
		if !reflect.DeepEqual(res.SkillsCopied, []string{"code-detector", "schema"}) {
			t.Errorf("%s: SkillsCopied = %v", a, res.SkillsCopied)
		}
		if !reflect.DeepEqual(res.RulesCopied, []string{"code-style", "testing"}) {
			t.Errorf("%s: RulesCopied = %v", a, res.RulesCopied)
		}
		if res.Copied() != 4 {
			t.Errorf("%s: Copied() = %d, want 4", a, res.Copied())
		}
	}

	if !fileExists(filepath.Join(targetDir, ".cursor", "rules", "testing.md")) {
		t.Error("testing.md not copied into .cursor/rules")
	}
}

func TestInstaller_SecondPassSkipsExisting(t *testing.T) {
	inst := newTestInstaller(t)
	targetDir := t.TempDir()
	sel := []assistant.Type{assistant.Claude}

	if _, err := inst.Install(sel, resource.KindBoth, targetDir, InstallOptions{}); err != nil {
		t.Fatalf("first Install() error: %v", err)
	}
	results, err := inst.Install(sel, resource.KindBoth, targetDir, InstallOptions{})
	if err != nil {
		t.Fatalf("second Install() error: %v", err)
	}

	res := results[assistant.Claude]
	if res.Err != nil {
		t.Fatalf("second pass result error: %v", res.Err)
	}
	if len(res.SkillsCopied) != 0 || len(res.RulesCopied) != 0 {
		t.Errorf("second pass copied skills=%v rules=%v, want none", res.SkillsCopied, res.RulesCopied)
	}
}

func TestInstaller_ForceOverwrites(t *testing.T) {
	inst := newTestInstaller(t)
	targetDir := t.TempDir()
	sel := []assistant.Type{assistant.Claude}

	if _, err := inst.Install(sel, resource.KindRule, targetDir, InstallOptions{Rules: []string{"testing"}}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	installed := filepath.Join(targetDir, ".claude", "rules", "testing.md")
	os.WriteFile(installed, []byte("edited locally"), 0o644)

	results, err := inst.Install(sel, resource.KindRule, targetDir, InstallOptions{Rules: []string{"testing"}, Force: true})
	if err != nil {
		t.Fatalf("forced Install() error: %v", err)
	}
	if got := results[assistant.Claude].RulesCopied; !reflect.DeepEqual(got, []string{"testing"}) {
		t.Errorf("RulesCopied = %v, want [testing]", got)
	}

	data, err := os.ReadFile(installed)
	if err != nil {
		t.Fatalf("reading rule after force: %v", err)
	}
	if string(data) != "# Testing\n" {
		t.Errorf("rule content = %q, want catalog content", data)
	}
}

func TestInstaller_AssistantFailureIsolated(t *testing.T) {
	inst := newTestInstaller(t)
	targetDir := t.TempDir()

	// A regular file at .cursor blocks that assistant's directory.
	os.WriteFile(filepath.Join(targetDir, ".cursor"), []byte("not a directory"), 0o644)

	results, err := inst.Install([]assistant.Type{assistant.Claude, assistant.Cursor}, resource.KindSkill, targetDir, InstallOptions{})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	cursor := results[assistant.Cursor]
	if cursor.Err == nil {
		t.Error("expected error recorded for cursor")
	}
	if len(cursor.SkillsCopied) != 0 {
		t.Errorf("cursor copied %v despite failure", cursor.SkillsCopied)
	}

	claude := results[assistant.Claude]
	if claude.Err != nil {
		t.Fatalf("claude result error: %v", claude.Err)
	}
	if len(claude.SkillsCopied) != 2 {
		t.Errorf("claude SkillsCopied = %v, want both skills", claude.SkillsCopied)
	}
}

func TestInstaller_RejectsSelectionValue(t *testing.T) {
	inst := newTestInstaller(t)

	if _, err := inst.Install([]assistant.Type{assistant.All}, resource.KindSkill, t.TempDir(), InstallOptions{}); err == nil {
		t.Error("expected error for non-concrete assistant")
	}
}

func TestInstaller_RequiresTargetAndAssistants(t *testing.T) {
	inst := newTestInstaller(t)

	if _, err := inst.Install([]assistant.Type{assistant.Claude}, resource.KindSkill, "", InstallOptions{}); err == nil {
		t.Error("expected error for empty target directory")
	}
	if _, err := inst.Install(nil, resource.KindSkill, t.TempDir(), InstallOptions{}); err == nil {
		t.Error("expected error for empty assistant list")
	}
}

func TestInstaller_MissingNameDoesNotAbort(t *testing.T) {
	inst := newTestInstaller(t)
	targetDir := t.TempDir()

	results, err := inst.Install([]assistant.Type{assistant.Claude}, resource.KindSkill, targetDir, InstallOptions{Skills: []string{"schema", "no-such-skill"}})
	if err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	res := results[assistant.Claude]
	if res.Err != nil {
		t.Fatalf("result error: %v", res.Err)
	}
	if !reflect.DeepEqual(res.SkillsCopied, []string{"schema"}) {
		t.Errorf("SkillsCopied = %v, want [schema]", res.SkillsCopied)
	}
}

func TestInstalledResources(t *testing.T) {
	inst := newTestInstaller(t)
	targetDir := t.TempDir()

	skills, rules := InstalledResources(assistant.Claude, targetDir)
	if len(skills) != 0 || len(rules) != 0 {
		t.Fatalf("fresh target reads skills=%v rules=%v, want empty", skills, rules)
	}

	if _, err := inst.Install([]assistant.Type{assistant.Claude}, resource.KindBoth, targetDir, InstallOptions{}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	skills, rules = InstalledResources(assistant.Claude, targetDir)
	if !reflect.DeepEqual(skills, []string{"code-detector", "schema"}) {
		t.Errorf("skills = %v", skills)
	}
	if !reflect.DeepEqual(rules, []string{"code-style", "testing"}) {
		t.Errorf("rules = %v", rules)
	}
}
