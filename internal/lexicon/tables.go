package lexicon

var skillCategories = []Category{
	{
		Key:         "programming_languages",
		DisplayName: "Programming Languages",
		Keywords: []string{
			"Python", "JavaScript", "Java", "C++", "C#", "TypeScript", "Go", "Rust",
			"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl",
			"Objective-C", "Dart", "Elixir", "Haskell", "Lua", "Shell", "Bash",
		},
	},
	{
		Key:         "frameworks",
		DisplayName: "Frameworks & Libraries",
		Keywords: []string{
			"React", "Angular", "Vue", "Django", "Flask", "FastAPI", "Express",
			"Spring", "Spring Boot", "Rails", "Laravel", "ASP.NET", ".NET", "jQuery",
			"Bootstrap", "Tailwind", "Next.js", "Nuxt", "Svelte", "Ember",
			"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas", "NumPy",
		},
	},
	{
		Key:         "databases",
		DisplayName: "Databases",
		Keywords: []string{
			"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
			"SQL Server", "MariaDB", "Cassandra", "DynamoDB", "Elasticsearch",
			"Neo4j", "CouchDB", "Firebase", "Firestore", "InfluxDB",
		},
	},
	{
		Key:         "tools",
		DisplayName: "Tools & Technologies",
		Keywords: []string{
			"Git", "GitHub", "GitLab", "Bitbucket", "Docker", "Kubernetes",
			"Jenkins", "CircleCI", "Travis CI", "Webpack", "Babel", "npm", "yarn",
			"Gradle", "Maven", "Ansible", "Terraform", "Vagrant", "Nginx",
			"Apache", "VS Code", "IntelliJ", "Postman", "Jira", "Confluence",
		},
	},
	{
		Key:         "cloud",
		DisplayName: "Cloud Platforms",
		Keywords: []string{
			"AWS", "Azure", "Google Cloud", "GCP", "Heroku", "DigitalOcean",
			"Vercel", "Netlify", "CloudFlare", "EC2", "S3", "Lambda",
			"Cloud Functions", "Cloud Run", "ECS", "EKS", "RDS", "Route53",
		},
	},
	{
		Key:         "soft_skills",
		DisplayName: "Soft Skills",
		Keywords: []string{
			"Leadership", "Communication", "Teamwork", "Problem Solving",
			"Critical Thinking", "Time Management", "Adaptability", "Creativity",
			"Collaboration", "Presentation", "Mentoring", "Project Management",
			"Agile", "Scrum", "Analytical", "Strategic Planning",
		},
	},
	{
		Key:         "methodologies",
		DisplayName: "Methodologies",
		Keywords: []string{
			"Agile", "Scrum", "Kanban", "DevOps", "CI/CD", "TDD", "BDD",
			"Microservices", "REST", "GraphQL", "SOAP", "MVC", "MVVM",
			"Serverless", "Event-Driven", "Domain-Driven Design",
		},
	},
}

var actionVerbs = []string{
	// Leadership
	"led", "directed", "managed", "supervised", "coordinated", "spearheaded",
	"orchestrated", "mentored", "guided", "facilitated",
	// Achievement
	"achieved", "accomplished", "delivered", "exceeded", "surpassed", "attained",
	"earned", "won", "completed", "executed",
	// Improvement
	"improved", "enhanced", "optimized", "streamlined", "upgraded", "modernized",
	"transformed", "revitalized", "refined", "strengthened",
	// Creation
	"created", "developed", "designed", "built", "established", "founded",
	"launched", "initiated", "introduced", "pioneered",
	// Analysis
	"analyzed", "evaluated", "assessed", "identified", "researched", "investigated",
	"diagnosed", "examined", "measured", "reviewed",
	// Communication
	"presented", "communicated", "authored", "published", "reported", "documented",
	"articulated", "conveyed", "negotiated", "collaborated",
	// Technical
	"implemented", "deployed", "configured", "automated", "integrated", "architected",
	"engineered", "programmed", "debugged", "troubleshot",
	// Growth
	"grew", "increased", "expanded", "scaled", "accelerated", "boosted",
	"maximized", "elevated", "multiplied", "doubled",
	// Reduction
	"reduced", "decreased", "minimized", "eliminated", "cut", "saved",
	"consolidated", "simplified", "lowered",
}

var weakVerbs = []string{
	"responsible for", "worked on", "helped with", "assisted with",
	"participated in", "involved in", "contributed to", "handled",
	"dealt with", "did", "made", "got",
}

var jobTitles = []string{
	// Software Engineering
	"Software Engineer", "Senior Software Engineer", "Staff Software Engineer",
	"Principal Engineer", "Engineering Manager", "Technical Lead", "Tech Lead",
	"Full Stack Developer", "Frontend Developer", "Backend Developer",
	"Mobile Developer", "iOS Developer", "Android Developer",
	// Data & AI
	"Data Scientist", "Data Analyst", "Data Engineer", "Machine Learning Engineer",
	"AI Engineer", "Research Scientist", "Analytics Manager",
	// DevOps & Infrastructure
	"DevOps Engineer", "Site Reliability Engineer", "SRE", "Cloud Engineer",
	"Infrastructure Engineer", "Platform Engineer", "Systems Engineer",
	// Product & Design
	"Product Manager", "Senior Product Manager", "Product Owner",
	"UX Designer", "UI Designer", "Product Designer", "UX Researcher",
	// Leadership
	"CTO", "VP Engineering", "Director of Engineering", "Engineering Director",
	"Technical Director", "Chief Architect", "Solutions Architect",
}

var degreeTypes = []string{
	"Associate's", "Associate", "AS", "AA", "AAS",
	"Bachelor's", "Bachelor", "BS", "BA", "BSc", "BEng", "BFA",
	"Master's", "Master", "MS", "MA", "MSc", "MEng", "MBA", "MFA",
	"PhD", "Ph.D.", "Doctorate", "Doctoral",
	"Certificate", "Certification", "Diploma",
}

var educationFields = []string{
	"Computer Science", "Software Engineering", "Information Technology",
	"Data Science", "Artificial Intelligence", "Machine Learning",
	"Electrical Engineering", "Mechanical Engineering", "Civil Engineering",
	"Business Administration", "Marketing", "Finance", "Accounting",
	"Psychology", "Mathematics", "Statistics", "Physics", "Chemistry",
	"Biology", "Communications", "Graphic Design", "Web Development",
}

var atsKeywords = []string{
	"experience", "leadership", "management", "development", "analysis",
	"project", "team", "technical", "business", "communication",
	"problem solving", "strategic", "innovation", "collaboration",
	"results-driven", "detail-oriented", "self-motivated",
}

var datePatterns = DatePatterns{
	Full:      `(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b`,
	MonthYear: `\b\d{1,2}/\d{4}\b`,
	YearOnly:  `\b(?:19|20)\d{2}\b`,
	Present:   `(?i)\b(present|current|now)\b`,
}

var scoreThresholds = ScoreThresholds{
	Excellent: 90,
	Good:      75,
	Fair:      60,
	NeedsWork: 0,
}
