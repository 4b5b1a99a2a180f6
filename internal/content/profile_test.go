package content

import (
	"strings"
	"testing"
)

func TestSystemPromptContainsProfileData(t *testing.T) {
	prompt := Default().SystemPrompt()

	mustContain := []string{
		"Miliyon Ayalew",
		"Full-Stack Developer and AI Enthusiast",
		"Addis Ababa, Ethiopia",
		"miliayalew@gmail.com",
		"Haramaya University",
		"10 Academy",
		"Hotel Reservation System",
		"PROJECTS:",
		"WORK EXPERIENCE:",
		"EDUCATION:",
	}

	for _, want := range mustContain {
		if !strings.Contains(prompt, want) {
			t.Errorf("System prompt missing %q", want)
		}
	}
}

func TestSystemPromptProjectsAreNumbered(t *testing.T) {
	p := Default()
	prompt := p.SystemPrompt()

	for i, project := range p.Projects {
		line := strings.Split(project.Title, "\n")[0]
		if !strings.Contains(prompt, line) {
			t.Errorf("Project %d (%s) missing from prompt", i+1, project.Title)
		}
	}

	if !strings.Contains(prompt, "1. Hotel Reservation System") {
		t.Error("Projects are not numbered in insertion order")
	}
}

func TestSystemPromptLimitsAchievements(t *testing.T) {
	p := &Profile{
		Name: "Test Person",
		CurrentRole: Role{
			Title:   "Engineer",
			Company: "Acme",
			Achievements: []string{
				"first",
				"second",
				"third should be omitted",
			},
		},
	}

	prompt := p.SystemPrompt()
	if strings.Contains(prompt, "third should be omitted") {
		t.Error("Expected only the first two achievements in the prompt")
	}
	if !strings.Contains(prompt, "first, second") {
		t.Error("Expected the first two achievements joined in the prompt")
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		full     string
		expected string
	}{
		{"Miliyon Ayalew", "Miliyon"},
		{"Single", "Single"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := firstName(tc.full); got != tc.expected {
			t.Errorf("firstName(%q): expected %q, got %q", tc.full, tc.expected, got)
		}
	}
}
