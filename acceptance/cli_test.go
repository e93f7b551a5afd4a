package acceptance_test

import (
	"strings"
	"testing"
)

func TestCheck_CleanDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "# Title\n\nSome text\n")

	stdout, stderr, exitCode := runMdvet(t, dir, "check", "doc.md")

	if exitCode != 0 {
		t.Errorf("exit = %d, want 0\nstderr: %s", exitCode, stderr)
	}
	if stdout != "" {
		t.Errorf("clean check should print nothing, got:\n%s", stdout)
	}
}

func TestCheck_HeadingLevelSkip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "## Title\n\nSome text")

	stdout, _, exitCode := runMdvet(t, dir, "check", "doc.md")

	if exitCode != 2 {
		t.Errorf("exit = %d, want 2", exitCode)
	}
	if !strings.Contains(stdout, "doc.md:1: [warning] heading-level-skip:") {
		t.Errorf("missing heading-level-skip warning:\n%s", stdout)
	}
	if !strings.Contains(stdout, "0 error(s), 1 warning(s), 0 info") {
		t.Errorf("missing summary:\n%s", stdout)
	}
}

func TestCheck_UnbalancedLink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "[broken link(")

	stdout, _, exitCode := runMdvet(t, dir, "check", "doc.md")

	if exitCode != 2 {
		t.Errorf("exit = %d, want 2", exitCode)
	}
	if !strings.Contains(stdout, "doc.md:1: [error] unbalanced-link-syntax:") {
		t.Errorf("missing unbalanced-link-syntax error:\n%s", stdout)
	}
}

func TestCheck_InfoOnlyExitsZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "Line with trailing space \nNext line")

	stdout, stderr, exitCode := runMdvet(t, dir, "check", "doc.md")

	if exitCode != 0 {
		t.Errorf("exit = %d, want 0 (info issues are not blocking)\nstderr: %s", exitCode, stderr)
	}
	if !strings.Contains(stdout, "doc.md:1: [info] trailing-whitespace:") {
		t.Errorf("missing trailing-whitespace info:\n%s", stdout)
	}
	if !strings.Contains(stdout, "0 error(s), 0 warning(s), 1 info") {
		t.Errorf("missing summary:\n%s", stdout)
	}
}

func TestCheck_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "## Title\n\nSome text")
	writeFile(t, dir, "b.md", "[broken link(")

	stdout, _, exitCode := runMdvet(t, dir, "check", "a.md", "b.md")

	if exitCode != 2 {
		t.Errorf("exit = %d, want 2", exitCode)
	}
	if !strings.Contains(stdout, "a.md:1:") || !strings.Contains(stdout, "b.md:1:") {
		t.Errorf("both files should be reported:\n%s", stdout)
	}
	if !strings.Contains(stdout, "1 error(s), 1 warning(s), 0 info") {
		t.Errorf("missing combined summary:\n%s", stdout)
	}
}

func TestCheck_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "## Title\n\nSome text")

	stdout, _, exitCode := runMdvet(t, dir, "check", "--json", "doc.md")

	if exitCode != 2 {
		t.Errorf("exit = %d, want 2", exitCode)
	}

	result := parseJSON(t, stdout)
	files, ok := result["files"].([]interface{})
	if !ok || len(files) != 1 {
		t.Fatalf("files = %v, want one entry", result["files"])
	}
	file := files[0].(map[string]interface{})
	if file["path"] != "doc.md" {
		t.Errorf("path = %v, want doc.md", file["path"])
	}
	issues := file["issues"].([]interface{})
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want exactly one", issues)
	}
	issue := issues[0].(map[string]interface{})
	if issue["rule_id"] != "heading-level-skip" {
		t.Errorf("rule_id = %v, want heading-level-skip", issue["rule_id"])
	}
	if issue["severity"] != "warning" {
		t.Errorf("severity = %v, want warning", issue["severity"])
	}
	if issue["line_number"] != float64(1) {
		t.Errorf("line_number = %v, want 1", issue["line_number"])
	}
	summary := result["summary"].(map[string]interface{})
	if summary["warnings"] != float64(1) {
		t.Errorf("summary warnings = %v, want 1", summary["warnings"])
	}
}

func TestCheck_Stdin(t *testing.T) {
	dir := t.TempDir()

	stdout, _, exitCode := runMdvetStdin(t, dir, strings.NewReader("## Title\n\nSome text"), "check")

	if exitCode != 2 {
		t.Errorf("exit = %d, want 2", exitCode)
	}
	if !strings.Contains(stdout, "<stdin>:1: [warning] heading-level-skip:") {
		t.Errorf("stdin content should be validated:\n%s", stdout)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, stderr, exitCode := runMdvet(t, dir, "check", "missing.md")

	if exitCode != 1 {
		t.Errorf("exit = %d, want 1 for operational failure", exitCode)
	}
	if !strings.Contains(stderr, "mdvet:") {
		t.Errorf("stderr should carry the mdvet prefix:\n%s", stderr)
	}
}

func TestCheck_BinaryInputFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "before\x00after")

	_, stderr, exitCode := runMdvet(t, dir, "check", "doc.md")

	if exitCode != 1 {
		t.Errorf("exit = %d, want 1 for non-text input", exitCode)
	}
	if !strings.Contains(stderr, "doc.md") {
		t.Errorf("stderr should name the offending file:\n%s", stderr)
	}
}

func TestCheck_ConfigDisablesRule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".mdvet.yml", "rules:\n  trailing-whitespace: false\n")
	writeFile(t, dir, "doc.md", "Line with trailing space \nNext line")

	stdout, stderr, exitCode := runMdvet(t, dir, "check", "doc.md")

	if exitCode != 0 {
		t.Errorf("exit = %d, want 0\nstderr: %s", exitCode, stderr)
	}
	if stdout != "" {
		t.Errorf("disabled rule should not report:\n%s", stdout)
	}
}

func TestCheck_InvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".mdvet.yml", "rules:\n  no-such-rule: false\n")
	writeFile(t, dir, "doc.md", "# Title\n\nSome text\n")

	_, stderr, exitCode := runMdvet(t, dir, "check", "doc.md")

	if exitCode != 1 {
		t.Errorf("exit = %d, want 1 for config error", exitCode)
	}
	if !strings.Contains(stderr, "no-such-rule") {
		t.Errorf("stderr should name the unknown rule:\n%s", stderr)
	}
}

func TestCheck_ProbeLinksFindsMissingTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "See [the guide](guide.md) for details.\n")

	// Without probing the relative link is not checked.
	_, _, exitCode := runMdvet(t, dir, "check", "doc.md")
	if exitCode != 0 {
		t.Fatalf("exit = %d, want 0 without probing", exitCode)
	}

	stdout, _, exitCode := runMdvet(t, dir, "check", "--probe-links", "doc.md")
	if exitCode != 2 {
		t.Errorf("exit = %d, want 2 with probing", exitCode)
	}
	if !strings.Contains(stdout, "broken-local-link") {
		t.Errorf("missing broken-local-link error:\n%s", stdout)
	}

	// Creating the target clears the finding.
	writeFile(t, dir, "guide.md", "# Guide\n")
	_, _, exitCode = runMdvet(t, dir, "check", "--probe-links", "doc.md")
	if exitCode != 0 {
		t.Errorf("exit = %d, want 0 once target exists", exitCode)
	}
}

func TestFix_PlanThenApply(t *testing.T) {
	dir := t.TempDir()
	original := "#Title\n\nText with trailing space \n"
	writeFile(t, dir, "doc.md", original)

	stdout := runMdvetSuccess(t, dir, "fix", "doc.md")
	if !strings.Contains(stdout, "doc.md: would fix heading-missing-space (line 1)") {
		t.Errorf("missing heading plan line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "doc.md: would fix trailing-whitespace (line 3)") {
		t.Errorf("missing whitespace plan line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "1 file(s) would change") {
		t.Errorf("missing plan summary:\n%s", stdout)
	}
	if readFile(t, dir, "doc.md") != original {
		t.Fatal("plan run must not modify the file")
	}

	stdout = runMdvetSuccess(t, dir, "fix", "--apply", "doc.md")
	if !strings.Contains(stdout, "1 file(s) fixed") {
		t.Errorf("missing apply summary:\n%s", stdout)
	}
	if got := readFile(t, dir, "doc.md"); got != "# Title\n\nText with trailing space\n" {
		t.Errorf("fixed content = %q", got)
	}

	// The fixed document now checks clean.
	_, _, exitCode := runMdvet(t, dir, "check", "doc.md")
	if exitCode != 0 {
		t.Errorf("fixed document should check clean, exit = %d", exitCode)
	}
}

func TestFix_ApplyIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "has\ttab\n")

	runMdvetSuccess(t, dir, "fix", "--apply", "doc.md")
	stdout := runMdvetSuccess(t, dir, "fix", "--apply", "doc.md")

	if !strings.Contains(stdout, "doc.md: clean") {
		t.Errorf("second run should report clean:\n%s", stdout)
	}
	if !strings.Contains(stdout, "0 file(s) fixed") {
		t.Errorf("second run should fix nothing:\n%s", stdout)
	}
}

func TestFix_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "has\ttab\n")

	stdout := runMdvetSuccess(t, dir, "fix", "--json", "doc.md")

	result := parseJSON(t, stdout)
	if result["applied"] != false {
		t.Errorf("applied = %v, want false", result["applied"])
	}
	files := result["files"].([]interface{})
	if len(files) != 1 {
		t.Fatalf("files = %v, want one entry", files)
	}
	file := files[0].(map[string]interface{})
	if file["changed"] != true {
		t.Errorf("changed = %v, want true", file["changed"])
	}
}

func TestFix_RequiresPaths(t *testing.T) {
	dir := t.TempDir()

	_, _, exitCode := runMdvet(t, dir, "fix")
	if exitCode != 1 {
		t.Errorf("exit = %d, want 1 when no paths given", exitCode)
	}
}

func TestRules_HumanAndJSON(t *testing.T) {
	dir := t.TempDir()

	stdout := runMdvetSuccess(t, dir, "rules")
	for _, id := range []string{"heading-level-skip", "unbalanced-link-syntax", "trailing-whitespace", "broken-local-link"} {
		if !strings.Contains(stdout, id) {
			t.Errorf("rules output missing %s:\n%s", id, stdout)
		}
	}

	jsonOut := runMdvetSuccess(t, dir, "rules", "--json")
	result := parseJSON(t, jsonOut)
	rules, ok := result["rules"].([]interface{})
	if !ok || len(rules) == 0 {
		t.Fatalf("rules = %v, want a non-empty list", result["rules"])
	}
}

func TestInit_WritesConfigOnce(t *testing.T) {
	dir := t.TempDir()

	stdout := runMdvetSuccess(t, dir, "init")
	if !strings.Contains(stdout, ".mdvet.yml") {
		t.Errorf("init should name the written file:\n%s", stdout)
	}
	content := readFile(t, dir, ".mdvet.yml")
	if !strings.Contains(content, "disabled-by-default") {
		t.Errorf("starter config missing expected key:\n%s", content)
	}

	// A second init refuses to overwrite.
	_, stderr, exitCode := runMdvet(t, dir, "init")
	if exitCode != 1 {
		t.Errorf("exit = %d, want 1 on second init", exitCode)
	}
	if !strings.Contains(stderr, "refusing to overwrite") {
		t.Errorf("stderr should explain the refusal:\n%s", stderr)
	}
}

func TestInit_StarterConfigIsUsable(t *testing.T) {
	dir := t.TempDir()
	runMdvetSuccess(t, dir, "init")
	writeFile(t, dir, "doc.md", "# Title\n\nSome text\n")

	// Checking with the starter config in place behaves like no config.
	_, stderr, exitCode := runMdvet(t, dir, "check", "doc.md")
	if exitCode != 0 {
		t.Errorf("exit = %d, want 0\nstderr: %s", exitCode, stderr)
	}
}

func TestVersionFlag(t *testing.T) {
	dir := t.TempDir()

	stdout := runMdvetSuccess(t, dir, "--version")
	if !strings.Contains(stdout, "mdvet") {
		t.Errorf("version output = %q", stdout)
	}
}
