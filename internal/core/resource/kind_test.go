package resource

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "skill", input: "skill", want: KindSkill},
		{name: "rule", input: "rule", want: KindRule},
		{name: "both", input: "both", want: KindBoth},
		{name: "uppercase", input: "SKILL", want: KindSkill},
		{name: "padded", input: "  rule  ", want: KindRule},
		{name: "plural rejected", input: "skills", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindIncludes(t *testing.T) {
	if !KindBoth.Includes(KindSkill) || !KindBoth.Includes(KindRule) {
		t.Error("KindBoth should include both concrete kinds")
	}
	if !KindSkill.Includes(KindSkill) {
		t.Error("KindSkill should include itself")
	}
	if KindSkill.Includes(KindRule) {
		t.Error("KindSkill should not include KindRule")
	}
	if KindRule.Includes(KindSkill) {
		t.Error("KindRule should not include KindSkill")
	}
}

func TestKindSubdir(t *testing.T) {
	if got := KindSkill.Subdir(); got != "skills" {
		t.Errorf("KindSkill.Subdir() = %q, want %q", got, "skills")
	}
	if got := KindRule.Subdir(); got != "rules" {
		t.Errorf("KindRule.Subdir() = %q, want %q", got, "rules")
	}
}
