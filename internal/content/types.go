// Package content holds the site's static data: projects, experience,
// artwork and skills. Everything here is read-only once built.
package content

// Profile is the site owner.
type Profile struct {
	Name       string   `yaml:"name"`
	Role       string   `yaml:"role"`
	Tagline    string   `yaml:"tagline"`
	About      []string `yaml:"about"`
	Email      string   `yaml:"email"`
	GitHub     string   `yaml:"github"`
	LinkedIn   string   `yaml:"linkedin"`
	ResumeFile string   `yaml:"resume_file"`
}

// Experience is one entry of the about/resume timeline.
type Experience struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	Period       string   `yaml:"period"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
}

type Research struct {
	CompetitiveAnalysis string   `yaml:"competitive_analysis"`
	KeyInsights         []string `yaml:"key_insights"`
	IdeasExplored       []string `yaml:"ideas_explored"`
}

type Design struct {
	UserFlows        string   `yaml:"user_flows"`
	Wireframes       []string `yaml:"wireframes"`
	Iterations       []string `yaml:"iterations"`
	UXConsiderations []string `yaml:"ux_considerations"`
	VisualDecisions  []string `yaml:"visual_decisions"`
}

type Architecture struct {
	StackRationale string `yaml:"stack_rationale"`
	SystemOverview string `yaml:"system_overview"`
	DataModels     string `yaml:"data_models"`
	APIDesign      string `yaml:"api_design"`
}

type Feature struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	TechnicalDetails string `yaml:"technical_details"`
}

type Implementation struct {
	KeyFeatures               []Feature `yaml:"key_features"`
	Algorithms                []string  `yaml:"algorithms"`
	StateManagement           string    `yaml:"state_management"`
	PerformanceConsiderations []string  `yaml:"performance_considerations"`
	EdgeCases                 []string  `yaml:"edge_cases"`
}

type Tradeoff struct {
	Decision  string `yaml:"decision"`
	Rationale string `yaml:"rationale"`
}

type Challenges struct {
	Technical []string   `yaml:"technical"`
	Design    []string   `yaml:"design"`
	Tradeoffs []Tradeoff `yaml:"tradeoffs"`
}

type Results struct {
	Metrics                []string `yaml:"metrics"`
	Performance            []string `yaml:"performance"`
	Outcomes               []string `yaml:"outcomes"`
	TechnicalDemonstration []string `yaml:"technical_demonstration"`
}

type Lessons struct {
	SkillsDeveloped []string `yaml:"skills_developed"`
	WhatWouldChange []string `yaml:"what_would_change"`
}

type NextSteps struct {
	PlannedFeatures []string `yaml:"planned_features"`
	LearningGoals   []string `yaml:"learning_goals"`
}

type Links struct {
	LiveDemo string `yaml:"live_demo"`
	GitHub   string `yaml:"github"`
}

// Image is a case study figure. Section names the page section it belongs
// to.
type Image struct {
	Src     string `yaml:"src"`
	Caption string `yaml:"caption"`
	Section string `yaml:"section"`
}

// Project is a portfolio entry. The pointer groups are optional; nil means
// the section is absent and is not rendered.
type Project struct {
	ID               string   `yaml:"id"`
	Title            string   `yaml:"title"`
	ShortDescription string   `yaml:"short_description"`
	FullDescription  string   `yaml:"full_description"`
	Thumbnail        string   `yaml:"thumbnail"`
	GIFPreview       string   `yaml:"gif_preview"`
	Tags             []string `yaml:"tags"`
	Role             string   `yaml:"role"`
	Scope            string   `yaml:"scope"`
	Highlights       []string `yaml:"highlights"`

	ValueProposition string   `yaml:"value_proposition"`
	ProblemStatement string   `yaml:"problem_statement"`
	TargetUsers      string   `yaml:"target_users"`
	SuccessCriteria  []string `yaml:"success_criteria"`
	Constraints      []string `yaml:"constraints"`

	Research       *Research       `yaml:"research"`
	Design         *Design         `yaml:"design"`
	Architecture   *Architecture   `yaml:"architecture"`
	Implementation *Implementation `yaml:"implementation"`
	Challenges     *Challenges     `yaml:"challenges"`
	Results        *Results        `yaml:"results"`
	Lessons        *Lessons        `yaml:"lessons"`
	NextSteps      *NextSteps      `yaml:"next_steps"`

	Links  *Links  `yaml:"links"`
	Images []Image `yaml:"images"`
}

// ImagesFor returns the figures placed in section.
func (p Project) ImagesFor(section string) []Image {
	var out []Image
	for _, img := range p.Images {
		if img.Section == section {
			out = append(out, img)
		}
	}
	return out
}

// Auction records a sale of an artwork.
type Auction struct {
	Event    string `yaml:"event"`
	FinalBid string `yaml:"final_bid"`
}

// Artwork is a gallery piece.
type Artwork struct {
	Title   string   `yaml:"title"`
	Year    string   `yaml:"year"`
	Medium  string   `yaml:"medium"`
	Image   string   `yaml:"image"`
	Award   string   `yaml:"award"`
	Auction *Auction `yaml:"auction"`
}

// SkillCategory groups technologies for the technologies dialog and the
// resume.
type SkillCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

// Catalog is everything the site renders.
type Catalog struct {
	Profile     Profile         `yaml:"profile"`
	Projects    []Project       `yaml:"projects"`
	Experiences []Experience    `yaml:"experiences"`
	Artworks    []Artwork       `yaml:"artworks"`
	Skills      []SkillCategory `yaml:"skills"`
}
