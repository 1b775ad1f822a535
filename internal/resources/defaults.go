package resources

import "github.com/jonathan/career-agent/internal/types"

// Default reference tables, written to disk on first run so users can edit
// them in place. Keywords are single lowercase tokens because resume
// matching is exact-token equality.

func defaultKeywordTable() *types.KeywordTable {
	return &types.KeywordTable{
		Categories: []types.KeywordCategory{
			{
				Name: "software engineer",
				Keywords: []string{
					"python", "go", "java", "javascript", "api", "rest",
					"docker", "kubernetes", "sql", "git", "testing",
					"microservices", "cloud", "linux",
				},
			},
			{
				Name: "data scientist",
				Keywords: []string{
					"python", "sql", "statistics", "pandas", "numpy",
					"tensorflow", "regression", "visualization", "tableau",
					"modeling",
				},
			},
			{
				Name: "project manager",
				Keywords: []string{
					"agile", "scrum", "stakeholder", "roadmap", "budget",
					"risk", "jira", "kanban", "delivery", "planning",
				},
			},
			{
				Name: "marketing",
				Keywords: []string{
					"seo", "campaign", "analytics", "branding", "content",
					"social", "email", "conversion", "engagement",
				},
			},
			{
				Name: "general",
				Keywords: []string{
					"experienced", "skilled", "proficient", "managed",
					"led", "developed", "improved",
				},
			},
		},
	}
}

func defaultRoleBundles() []types.RoleBundle {
	commonQuestions := []string{
		"Tell me about yourself",
		"Why are you interested in this position?",
		"What are your strengths and weaknesses?",
		"Describe a challenge you faced and how you overcame it",
		"Where do you see yourself in 5 years?",
		"Why should we hire you?",
	}
	commonTips := []string{
		"Research the company thoroughly",
		"Practice your answers out loud",
		"Prepare questions to ask the interviewer",
		"Plan your outfit and travel route in advance",
		"Bring extra copies of your resume",
	}

	return []types.RoleBundle{
		{
			Role: "software engineer",
			Questions: []string{
				"Walk me through a system you designed end to end",
				"How do you approach debugging a production incident?",
				"Describe a tradeoff you made between speed and quality",
			},
			Tips: []string{
				"Practice coding problems on a whiteboard or shared editor",
				"Be ready to discuss projects from your resume in depth",
			},
			Topics: []string{
				"Data structures", "Algorithms", "System design",
				"Problem-solving process",
			},
		},
		{
			Role: "project manager",
			Questions: []string{
				"How do you handle a project that is falling behind schedule?",
				"Describe how you manage conflicting stakeholder priorities",
			},
			Tips: []string{
				"Prepare concrete examples of delivered projects with outcomes",
			},
			Topics: []string{
				"Risk management", "Agile methodologies",
				"Stakeholder communication",
			},
		},
		{
			Role: "marketing",
			Questions: []string{
				"Tell me about a campaign you ran and how you measured it",
				"How do you decide which channels to invest in?",
			},
			Tips: []string{
				"Bring metrics from past campaigns you can speak to",
			},
			Topics: []string{
				"Campaign analytics", "SEO knowledge",
				"Social media strategy",
			},
		},
		{
			Role: "data scientist",
			Questions: []string{
				"Walk me through a model you built and how you validated it",
				"How do you communicate findings to non-technical stakeholders?",
			},
			Tips: []string{
				"Be ready to explain your feature engineering decisions",
			},
			Topics: []string{
				"Statistics", "Experiment design", "Model evaluation",
			},
		},
		{
			Role:      "general",
			Questions: commonQuestions,
			Tips:      commonTips,
			Topics:    []string{},
		},
	}
}

func defaultCareerPaths() []types.CareerPath {
	return []types.CareerPath{
		{
			Name:     "Software Engineer",
			Keywords: []string{"coding", "programming", "software", "computer", "technology", "development"},
			NextSteps: []string{
				"Build a portfolio of projects on GitHub",
				"Contribute to an open source project",
				"Connect with engineers for informational interviews",
			},
		},
		{
			Name:     "Data Scientist",
			Keywords: []string{"data", "statistics", "analysis", "mathematics", "programming", "research"},
			NextSteps: []string{
				"Complete an end-to-end analysis project on a public dataset",
				"Learn SQL and one visualization tool well",
				"Join a local data science meetup",
			},
		},
		{
			Name:     "Product Manager",
			Keywords: []string{"product", "strategy", "technology", "communication", "leadership"},
			NextSteps: []string{
				"Write a product teardown of an app you use daily",
				"Practice prioritization frameworks on a side project",
				"Talk to working product managers about their day to day",
			},
		},
		{
			Name:     "UX Designer",
			Keywords: []string{"design", "creativity", "usability", "research", "visual"},
			NextSteps: []string{
				"Redesign a flow you find frustrating and document the process",
				"Learn one prototyping tool well",
				"Assemble a small case-study portfolio",
			},
		},
		{
			Name:     "DevOps Engineer",
			Keywords: []string{"infrastructure", "automation", "cloud", "linux", "operations"},
			NextSteps: []string{
				"Automate the deployment of a personal project",
				"Get comfortable with one major cloud provider",
				"Study container orchestration basics",
			},
		},
		{
			Name:     "Business Analyst",
			Keywords: []string{"business", "analysis", "requirements", "process", "data"},
			NextSteps: []string{
				"Map and document a real business process end to end",
				"Strengthen spreadsheet and SQL skills",
				"Research the industry you want to analyze",
			},
		},
		{
			Name:     "Financial Analyst",
			Keywords: []string{"finance", "accounting", "excel", "modeling", "investment"},
			NextSteps: []string{
				"Build a valuation model for a public company",
				"Follow earnings reports in your target sector",
				"Consider a foundational finance certification",
			},
		},
		{
			Name:     "Marketing Specialist",
			Keywords: []string{"marketing", "sales", "branding", "social", "content"},
			NextSteps: []string{
				"Run a small campaign for a local business or side project",
				"Learn one analytics platform well",
				"Build a writing portfolio",
			},
		},
		{
			Name:     "Nurse",
			Keywords: []string{"health", "care", "patient", "medicine", "compassion"},
			NextSteps: []string{
				"Research accredited nursing programs in your area",
				"Volunteer in a healthcare setting",
				"Shadow a working nurse for a day",
			},
		},
		{
			Name:     "Health Informatics Specialist",
			Keywords: []string{"health", "data", "technology", "records", "informatics"},
			NextSteps: []string{
				"Learn the basics of electronic health record systems",
				"Take an introductory health data standards course",
				"Connect with informatics professionals",
			},
		},
	}
}

func defaultPlanBook() *types.PlanBook {
	return &types.PlanBook{
		TimelineWeeks: 4,
		Timeline: []string{
			"Research companies hiring {job_title} roles and update your resume",
			"Begin applications and networking in {location}",
			"Follow up on applications and continue applying",
			"Begin interview preparation while continuing applications",
		},
		Base: types.PlanTemplate{
			DailyTasks: []string{
				"Check new {job_title} postings on 2-3 job boards",
				"Send follow-ups on pending applications",
				"Connect with 1-2 professionals working in {location}",
			},
			WeeklyTasks: []string{
				"Apply to 5-10 relevant {job_title} positions",
				"Attend one networking event in {location} (virtual or in-person)",
				"Update your job search tracking document",
			},
			Resources: []string{
				"LinkedIn", "Indeed", "Glassdoor", "Monster",
				"Company career pages", "Industry-specific boards",
			},
		},
		Levels: []types.LevelOverlay{
			{
				Level:      "entry",
				DailyTasks: []string{"Spend 30 minutes on skill development"},
				Resources:  []string{"Entry-level job fairs", "University career services"},
			},
			{
				Level:       "mid",
				WeeklyTasks: []string{"Research industry trends to mention in interviews"},
				Resources:   []string{"Professional associations", "Industry conferences"},
			},
			{
				Level:       "senior",
				WeeklyTasks: []string{"Schedule informational interviews with target companies"},
				Resources:   []string{"Executive recruiters", "Industry speaking opportunities"},
			},
		},
	}
}
