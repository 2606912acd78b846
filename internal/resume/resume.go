// Package resume builds a plain markdown resume from a profile and records
// resume files the user attaches. Attached files are never read.
package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhisek/careerwise/internal/profile"
)

// BuiltName is the artifact name of a generated resume.
const BuiltName = "resume.md"

// Markdown renders p as a resume. Empty sections are left out.
func Markdown(p profile.UserProfile) string {
	var b strings.Builder

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "Resume"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)

	if contact := join(" · ", p.Email, p.Phone, p.Location); contact != "" {
		b.WriteString(contact + "\n\n")
	}

	var edu []string
	for _, e := range p.EducationHistory {
		line := join(", ", e.Level, e.Field, e.Specialization)
		if line == "" {
			continue
		}
		if e.Institution != "" {
			line = "**" + line + "**, " + e.Institution
		} else {
			line = "**" + line + "**"
		}
		if years := join(" – ", e.StartYear, e.EndYear); years != "" {
			line += " (" + years + ")"
		}
		if e.Grade != "" {
			line += ". Grade: " + e.Grade
		}
		edu = append(edu, line)
	}
	if s := join(", ", p.Education12th, p.Education12thStream, p.Education12thSchool); s != "" {
		edu = append(edu, "Class 12: "+s)
	}
	if s := join(", ", p.Education10th, p.Education10thSchool); s != "" {
		edu = append(edu, "Class 10: "+s)
	}
	section(&b, "Education", edu)

	section(&b, "Skills", labelled(
		"Technical", p.HardSkills,
		"Interpersonal", p.SoftSkills,
		"Tools", p.ToolsAndSoftware,
		"Languages", p.Languages,
	))

	if len(p.SubjectProficiency) > 0 {
		subjects := make([]string, 0, len(p.SubjectProficiency))
		for s, lvl := range p.SubjectProficiency {
			if lvl != "" {
				subjects = append(subjects, s+": "+lvl)
			}
		}
		sort.Strings(subjects)
		section(&b, "Subjects", subjects)
	}

	section(&b, "Experience", labelled(
		"Internships", p.Internships,
		"Projects", p.Projects,
		"Certifications", p.Certifications,
	))

	section(&b, "Goals", labelled(
		"Target roles", p.DreamJobRoles,
		"Industries", p.PreferredIndustries,
		"Work preferences", p.WorkPreferences,
		"Further study", p.HigherStudies,
	))

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Built returns the artifact for a resume generated from p.
func Built(p profile.UserProfile) *profile.ResumeArtifact {
	md := Markdown(p)
	return &profile.ResumeArtifact{Name: BuiltName, Size: int64(len(md)), Markdown: md}
}

// ErrNotAFile is returned by Attach for directories and other non-regular
// files.
var ErrNotAFile = errors.New("not a regular file")

// Attach records the file at path as the user's resume. Only the name,
// absolute path and size are kept. A leading ~/ is expanded to the home
// directory.
func Attach(path string) (*profile.ResumeArtifact, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("no file path given")
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		path = filepath.Join(home, rest)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("attach resume: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("attach resume %s: %w", abs, ErrNotAFile)
	}
	return &profile.ResumeArtifact{Name: info.Name(), Path: abs, Size: info.Size()}, nil
}

func section(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, l := range lines {
		fmt.Fprintf(b, "- %s\n", l)
	}
	b.WriteString("\n")
}

// labelled takes label/value pairs and returns "**label:** value" for the
// non-empty values.
func labelled(pairs ...string) []string {
	var out []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if v := strings.TrimSpace(pairs[i+1]); v != "" {
			out = append(out, "**"+pairs[i]+":** "+v)
		}
	}
	return out
}

func join(sep string, parts ...string) string {
	var keep []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keep = append(keep, p)
		}
	}
	return strings.Join(keep, sep)
}
