package content

// Default returns the built-in site content.
func Default() *Catalog {
	return &Catalog{
		Profile:     profile,
		Projects:    projects,
		Experiences: experiences,
		Artworks:    artworks,
		Skills:      skills,
	}
}

var (
	profile = Profile{
		Name:    "sophia fu",
		Role:    "software developer",
		Tagline: "I build products where careful engineering meets thoughtful design.",
		About: []string{
			`I'm a software developer who likes building products that matter. My approach combines
			technical care with an eye for design: every line of code should serve a purpose.`,
			`When I'm not coding, I explore abstract art and digital illustration. That practice
			informs my development work and brings a different angle to problem-solving.`,
			`Currently open to full-time roles and select freelance projects.`,
		},
		Email:      "hello@sophiafu.dev",
		GitHub:     "https://github.com/sf0628",
		LinkedIn:   "https://www.linkedin.com/in/sophiafu",
		ResumeFile: "resume.pdf",
	}

	projects = []Project{
		{
			ID:               "prosperous",
			Title:            "ProsperouSSS",
			ShortDescription: "AI-powered financial digital twin platform built for Finhacks 2025. Won 1st place & $1000.",
			FullDescription: `ProsperouSSS creates digital twins of demographics to simulate financial behaviors,
			offering insights, visualizations and scenario analysis for businesses and financial professionals.
			GPT-4o turns natural language persona descriptions into structured demographic data.`,
			Thumbnail:  "/images/prosperous/title_card.png",
			Tags:       []string{"Next.js", "TypeScript", "TailwindCSS", "Shadcn/UI", "Plotly Dash", "GPT-4o", "Framer Motion"},
			Role:       "Full-Stack Developer & Co-Creator",
			Scope:      "Hackathon project, two-person team, AI / Diversity / Start Up tracks",
			Highlights: []string{"Won 1st place & $1000 at Finhacks 2025", "LLM-powered natural language demographic fetching", "Scenario analysis and reporting"},
			ValueProposition: "Empower individuals and organizations to make data-driven financial decisions " +
				"through AI-powered financial digital twins.",
			ProblemStatement: "Demographic-specific financial data is hard to access and interpret, and there are few tools " +
				"to predict consumer behavior or run scenario analysis for specific personas.",
			TargetUsers: "Financial analysts, marketers, fintech companies, small businesses and governments.",
			SuccessCriteria: []string{
				"Generate accurate digital twins from natural language queries",
				"Provide meaningful predictions and interactive visualizations",
				"Enable scenario modeling and what-if analysis",
			},
			Constraints: []string{
				"Time: hackathon timeframe",
				"Performance: real-time LLM calls with responsive visualizations",
				"Team: two-person collaboration",
			},
			Research: &Research{
				KeyInsights: []string{
					"Natural language input makes demographic data accessible to non-technical users",
					"Visualizations are essential for understanding financial relationships",
				},
				IdeasExplored: []string{
					"Real-time data streaming (deferred: beyond hackathon scope)",
					"Mobile app version",
				},
			},
			Design: &Design{
				UXConsiderations: []string{"Natural language input for demographic queries", "Clear scenario modeling interface"},
				VisualDecisions:  []string{"Clean interface focused on financial visualizations", "Dark mode support for extended use"},
			},
			Architecture: &Architecture{
				StackRationale: "Next.js for full-stack development, TypeScript for type safety, GPT-4o for AI capabilities, Plotly Dash for visualizations.",
				SystemOverview: "Next.js application with API routes for LLM integration, client-side visualization components and report generation.",
				APIDesign:      "REST routes for demographic fetching, digital twin generation and report export/import.",
			},
			Implementation: &Implementation{
				KeyFeatures: []Feature{
					{
						Title:            "LLM-Powered Demographic Analysis",
						Description:      "Users type a persona description and get a structured financial profile.",
						TechnicalDetails: "Prompted GPT-4o extraction with validation of the returned structure.",
					},
					{
						Title:       "Scenario Analysis",
						Description: "What-if modeling with immediate visual feedback as parameters change.",
					},
				},
				StateManagement: "React context for scenario parameters, local state for component interactions.",
				EdgeCases:       []string{"LLM API failures and timeouts", "Invalid demographic input"},
			},
			Challenges: &Challenges{
				Technical: []string{"Integrating several APIs reliably within a hackathon"},
				Design:    []string{"Making complex financial concepts approachable"},
				Tradeoffs: []Tradeoff{{
					Decision:  "Comprehensive features vs. deep polish",
					Rationale: "A complete product demonstrated the full vision to the judges.",
				}},
			},
			Results: &Results{
				Metrics:  []string{"1st place at Finhacks 2025", "$1000 prize"},
				Outcomes: []string{"Validated the concept with technical and business judges"},
				TechnicalDemonstration: []string{
					"Full-stack Next.js with TypeScript",
					"LLM integration and prompt engineering",
				},
			},
			Lessons: &Lessons{
				SkillsDeveloped: []string{"Prompt engineering for structured output", "Rapid prototyping under pressure"},
				WhatWouldChange: []string{"More robust error handling for API failures", "A real test suite"},
			},
			NextSteps: &NextSteps{
				PlannedFeatures: []string{"Authentication and role-based permissions", "Global data support"},
				LearningGoals:   []string{"LLM fine-tuning for financial tasks"},
			},
			Links: &Links{GitHub: "https://github.com/Tetraslam/finhacks"},
			Images: []Image{
				{Src: "/images/prosperous/create_twin.png", Caption: "Generating a financial digital twin from natural language", Section: "overview"},
				{Src: "/images/prosperous/what_if_scenarios.png", Caption: "Scenario analysis on a digital twin", Section: "implementation"},
			},
		},
		{
			ID:               "stock-manager",
			Title:            "Stock Manager",
			ShortDescription: "A Java application for managing stock portfolios with real-time data integration and performance analysis.",
			FullDescription: `A Java application for managing stock portfolios and performance, with real-time data from
			the Alpha Vantage API, XML persistence and more than 150 JUnit tests.`,
			Thumbnail:        "/images/stock-manager/title_card.png",
			Tags:             []string{"Java", "Java Swing", "JUnit", "XML"},
			Role:             "Solo Developer",
			Scope:            "Desktop application with MVC architecture",
			Highlights:       []string{"150+ unit and integration tests", "Real-time stock data via API", "XML persistence"},
			ValueProposition: "Portfolio management with real-time market data and comprehensive testing.",
			ProblemStatement: "Existing portfolio tools are either too complex for casual investors or lack proper testing and data persistence.",
			TargetUsers:      "Individual investors and students learning about portfolio management",
			SuccessCriteria:  []string{"Support multiple portfolios", "Real-time data updates", "Reliable persistence and recovery"},
			Constraints:      []string{"Tech: Java Swing", "Data: XML persistence, no database"},
			Architecture: &Architecture{
				StackRationale: "Java Swing for a self-contained desktop UI, JUnit for the test suite.",
				SystemOverview: "Model-view-controller with an API integration layer and XML persistence.",
			},
			Implementation: &Implementation{
				KeyFeatures: []Feature{
					{Title: "Portfolio Management Algorithms", Description: "Cost basis, valuation and performance over time."},
					{Title: "XML Persistence System", Description: "Portfolios saved and restored from XML."},
				},
			},
			Results: &Results{
				Outcomes: []string{"Reliable portfolio tracking backed by a comprehensive test suite"},
			},
			Links: &Links{GitHub: "https://github.com/sf0628/stock-manager"},
		},
		{
			ID:               "wardrobe-wizard",
			Title:            "Wardrobe Wizard",
			ShortDescription: "A full-stack web application that virtualizes and curates your wardrobe with intelligent recommendations.",
			FullDescription:  "Upload your clothing, filter it, and get outfit recommendations from a digital copy of your wardrobe.",
			Thumbnail:        "/images/wardrobe-wizard/title_card.png",
			Tags:             []string{"React", "Node.js", "HTML", "CSS", "JavaScript", "Supabase"},
			Role:             "Full-Stack Developer",
			Scope:            "Solo project, end-to-end development",
			ValueProposition: "Transform your physical wardrobe into a digital styling assistant.",
			ProblemStatement: "People struggle to visualize wardrobe combinations, leading to underused clothing and decision fatigue.",
			TargetUsers:      "Fashion-conscious individuals and minimalists",
			SuccessCriteria:  []string{"Fast image upload", "Useful filtering", "Secure accounts"},
			Design: &Design{
				UXConsiderations: []string{"Upload flow that works on phones"},
			},
			Implementation: &Implementation{
				KeyFeatures: []Feature{
					{Title: "Image Upload & Processing", Description: "Clothing photos stored in Supabase storage."},
					{Title: "Dynamic Filtering System", Description: "Filter by category, color and season."},
					{Title: "Authentication Flow", Description: "Supabase auth with protected routes."},
				},
			},
			Lessons: &Lessons{
				SkillsDeveloped: []string{"Supabase auth and storage", "React component design"},
			},
			Links: &Links{GitHub: "https://github.com/sf0628/s24-group4-wardrobe-wizard"},
		},
		{
			ID:               "edushare-hub",
			Title:            "EduShare Hub",
			ShortDescription: "An educational resource sharing platform enabling collaborative learning and resource management.",
			FullDescription:  "A four-person team platform for sharing and discovering educational resources, with a Flask API and MySQL backend.",
			Thumbnail:        "/images/edushare-hub/title_card.png",
			Tags:             []string{"Python", "Flask", "AppSmith", "MySQL", "Docker"},
			Role:             "Team Lead & Full-Stack Developer",
			Scope:            "4-person team project, full-stack web application",
			ValueProposition: "Streamline educational resource sharing with collaborative features and a robust backend.",
			ProblemStatement: "Educators and students struggle to share and discover quality resources efficiently.",
			TargetUsers:      "Educators, students and educational institutions",
			Research: &Research{
				KeyInsights: []string{"Search and organization matter more than volume of resources"},
			},
			Implementation: &Implementation{
				KeyFeatures: []Feature{
					{Title: "Comprehensive CRUD Operations", Description: "Flask REST endpoints for every entity."},
					{Title: "Docker Containerization", Description: "One command brings up the API and database."},
				},
			},
			Challenges: &Challenges{
				Technical: []string{"Keeping the schema and the AppSmith UI in step"},
			},
			NextSteps: &NextSteps{
				PlannedFeatures: []string{"Resource ratings and recommendations"},
			},
			Links: &Links{GitHub: "https://github.com/sf0628/EduExchange-AppSmith-UI"},
		},
	}

	experiences = []Experience{
		{
			Title:        "Senior Developer",
			Organization: "Acme Studios",
			Period:       "2021–Present",
			Description:  "Leading frontend architecture and mentoring a team of 5 developers.",
			Achievements: []string{
				"Reduced bundle size by 40% through code splitting",
				"Implemented CI/CD pipeline reducing deploy time by 60%",
				"Led accessibility initiative achieving WCAG 2.1 AA compliance",
			},
			Technologies: []string{"TypeScript", "React", "Go", "AWS"},
		},
		{
			Title:        "Full-Stack Developer",
			Organization: "StartupXYZ",
			Period:       "2018–2021",
			Description:  "Built and scaled the core product from MVP to serving 100k+ users.",
			Achievements: []string{
				"Architected real-time collaboration features",
				"Optimized database queries improving response time by 3x",
			},
			Technologies: []string{"Node.js", "PostgreSQL", "Redis"},
		},
		{
			Title:        "Junior Developer",
			Organization: "Digital Agency Co",
			Period:       "2016–2018",
			Description:  "Developed responsive websites and web applications for diverse clients.",
			Achievements: []string{
				"Delivered 20+ client projects on time and budget",
				"Built internal tools that saved 10 hours/week",
			},
			Technologies: []string{"JavaScript", "HTML/CSS", "PHP"},
		},
	}

	artworks = []Artwork{
		{Title: "Fragments I", Year: "2024", Medium: "Digital", Image: "/images/art/fragments.jpg"},
		{Title: "Resonance", Year: "2024", Medium: "Acrylic on Canvas", Image: "/images/art/resonance.jpg",
			Award: "Best in Show: Regional Art Competition (2024)"},
		{Title: "Dissolution", Year: "2023", Medium: "Mixed Media", Image: "/images/art/dissolution.jpg"},
		{Title: "Echoes", Year: "2023", Medium: "Oil on Canvas", Image: "/images/art/echoes.jpg",
			Auction: &Auction{Event: "Annual Student Art Auction", FinalBid: "$2,400"}},
		{Title: "Liminal Space", Year: "2022", Medium: "Digital Collage", Image: "",
			Award: "Honorable Mention: Digital Arts Exhibition (2022)"},
	}

	skills = []SkillCategory{
		{Name: "Languages", Skills: []string{"TypeScript", "JavaScript", "Go", "Python", "Java", "SQL", "HTML/CSS"}},
		{Name: "Frameworks", Skills: []string{"React", "Next.js", "Node.js", "Express", "Flask"}},
		{Name: "Tools", Skills: []string{"Git", "Docker", "AWS", "PostgreSQL", "Redis", "Figma"}},
	}
)
