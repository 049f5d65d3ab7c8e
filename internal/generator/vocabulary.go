package generator

// Vocabulary holds the fixed pools that synthetic listings are drawn from.
type Vocabulary struct {
	Titles      []string
	Companies   []string
	Locations   []string
	SkillGroups [][]string
	SalaryBases []int
	// SalarySpread is added to the base for the top of the salary range.
	SalarySpread int
	// MaxPostedAgeDays is the inclusive upper bound for the posted date offset.
	MaxPostedAgeDays int
}

// DefaultVocabulary returns a fresh copy of the built-in pools.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Titles: []string{
			"Software Engineer", "Senior Software Engineer", "Frontend Developer",
			"Backend Developer", "Full Stack Developer", "DevOps Engineer",
			"Data Scientist", "Data Analyst", "Machine Learning Engineer",
			"Product Manager", "UX Designer", "UI/UX Designer",
			"Python Developer", "Java Developer", "JavaScript Developer",
			"Cloud Engineer", "Site Reliability Engineer", "Security Engineer",
			"Mobile Developer", "iOS Developer", "Android Developer",
			"QA Engineer", "Solutions Architect", "Technical Lead",
		},
		Companies: []string{
			"Google", "Amazon", "Microsoft", "Apple", "Meta",
			"Netflix", "Spotify", "Airbnb", "Uber", "Lyft",
			"Shopify", "Salesforce", "Adobe", "Oracle", "IBM",
			"Twitter", "LinkedIn", "Dropbox", "Slack", "Zoom",
			"Square", "Stripe", "PayPal", "Coinbase", "Robinhood",
			"Atlassian", "ServiceNow", "Workday", "HubSpot", "Zendesk",
			"GitHub", "GitLab", "Docker", "Red Hat", "VMware",
		},
		Locations: []string{
			"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
			"Boston, MA", "Los Angeles, CA", "Chicago, IL", "Denver, CO",
			"Portland, OR", "Atlanta, GA", "Remote", "Remote (US)",
			"Remote (Global)", "Toronto, Canada", "London, UK", "Berlin, Germany",
			"Amsterdam, Netherlands", "Singapore", "Sydney, Australia", "Tokyo, Japan",
		},
		SkillGroups: [][]string{
			{"Python", "Django", "Flask", "PostgreSQL"},
			{"JavaScript", "React", "Node.js", "MongoDB"},
			{"Java", "Spring Boot", "MySQL", "AWS"},
			{"Python", "Machine Learning", "TensorFlow", "scikit-learn"},
			{"Go", "Kubernetes", "Docker", "AWS"},
			{"TypeScript", "Angular", "Vue.js", "GraphQL"},
			{"C++", "Linux", "Git", "Jenkins"},
			{"React Native", "iOS", "Android", "Firebase"},
			{"SQL", "Tableau", "Power BI", "Excel"},
			{"AWS", "Azure", "GCP", "Terraform"},
		},
		SalaryBases:      []int{60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160, 180, 200},
		SalarySpread:     30,
		MaxPostedAgeDays: 30,
	}
}
