package content

import "github.com/sophiafu/portfolio/internal/scrollspy"

// Case study section groups.
const (
	GroupProcess        = "process"
	GroupImplementation = "implementation"
	GroupResults        = "results"
)

// GroupLabels are the navigation labels of the case study groups.
var GroupLabels = map[string]string{
	GroupProcess:        "Process",
	GroupImplementation: "Implementation",
	GroupResults:        "Results",
}

// CaseStudySections lists the scroll-spy sections of a project page. Absent
// optional groups produce no section.
func CaseStudySections(p Project) []scrollspy.Section {
	sections := []scrollspy.Section{
		{ID: "overview", Label: "Overview"},
		{ID: "problem-goals", Label: "Problem & Goals", Group: GroupProcess},
	}
	add := func(present bool, id, label, group string) {
		if present {
			sections = append(sections, scrollspy.Section{ID: id, Label: label, Group: group})
		}
	}

	add(p.Research != nil, "research-ideation", "Research", GroupProcess)
	add(p.Design != nil, "design-process", "Design", GroupProcess)

	add(p.Architecture != nil, "technical-architecture", "Architecture", GroupImplementation)
	add(p.Implementation != nil, "implementation", "Implementation", GroupImplementation)
	add(p.Challenges != nil, "challenges", "Challenges", GroupImplementation)

	add(p.Results != nil, "results", "Results", GroupResults)
	add(p.Lessons != nil, "lessons-learned", "Lessons", GroupResults)
	add(p.NextSteps != nil, "next-steps", "Next Steps", GroupResults)

	return sections
}

// HomeSections are the scroll-spy sections of the landing page.
var HomeSections = []scrollspy.Section{
	{ID: "hero", Label: "Home"},
	{ID: "work", Label: "Work"},
	{ID: "about", Label: "About"},
	{ID: "contact", Label: "Contact"},
}
