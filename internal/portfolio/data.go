package portfolio

import "slices"

// The collections below are built once at package init and never written
// again. Accessors hand out copies.

var projects = []Project{
	{
		ID:        "1",
		Title:     "Predictive Customer Churn Analysis",
		Category:  CategoryML,
		Problem:   "Subscription-based service losing 15% revenue annually due to unknown churn factors.",
		Tools:     []string{"Python", "Scikit-Learn", "Pandas", "XGBoost"},
		Approach:  "Engineered 40+ features from user behavior logs and trained a gradient-boosted classifier with cross-validation.",
		Insights:  "Longer support response times were the primary predictor of churn for high-value accounts.",
		Impact:    "Reduced churn rate by 12% through targeted retention campaigns.",
		GithubURL: "https://github.com",
		ImageURL:  "https://picsum.photos/seed/churn/600/400",
	},
	{
		ID:        "2",
		Title:     "Real-time Sales Dashboard",
		Category:  CategoryDashboard,
		Problem:   "Leadership lacked visibility into regional sales performance variations.",
		Tools:     []string{"Power BI", "SQL Server", "DAX"},
		Approach:  "Developed an automated ETL pipeline and designed interactive multi-page dashboards.",
		Insights:  "Identified a 20% untapped growth opportunity in the Southeast region during Q3.",
		Impact:    "Streamlined weekly reporting from 10 hours to 5 minutes for the executive team.",
		GithubURL: "https://github.com",
		DemoURL:   "#",
		ImageURL:  "https://picsum.photos/seed/sales/600/400",
	},
	{
		ID:        "3",
		Title:     "Sentiment Analysis for Product Reviews",
		Category:  CategoryNLP,
		Problem:   "Processing 10,000+ daily reviews manually was impossible for the CS team.",
		Tools:     []string{"PyTorch", "HuggingFace", "FastAPI"},
		Approach:  "Fine-tuned a DistilBERT model on domain-specific review data.",
		Insights:  "Negative sentiment spikes often preceded hardware failures reported 2 weeks later.",
		Impact:    "94% accuracy in identifying critical complaints, allowing for proactive customer outreach.",
		GithubURL: "https://github.com",
		ImageURL:  "https://picsum.photos/seed/nlp/600/400",
	},
}

var skillCategories = []SkillCategory{
	{
		Title: "Programming",
		Skills: []Skill{
			{Name: "Python", Level: 95},
			{Name: "SQL", Level: 90},
			{Name: "R", Level: 75},
			{Name: "JavaScript", Level: 70},
		},
	},
	{
		Title: "Machine Learning",
		Skills: []Skill{
			{Name: "Regression/Classification", Level: 95},
			{Name: "Deep Learning", Level: 85},
			{Name: "NLP", Level: 80},
			{Name: "Reinforcement Learning", Level: 65},
		},
	},
	{
		Title: "Visualization & Tools",
		Skills: []Skill{
			{Name: "Tableau/Power BI", Level: 90},
			{Name: "Matplotlib/Seaborn", Level: 95},
			{Name: "Git/Docker", Level: 85},
			{Name: "AWS/Azure", Level: 70},
		},
	},
}

var experiences = []Experience{
	{
		Role:     "Senior Data Scientist",
		Company:  "TechFlow Systems",
		Duration: "2021 - Present",
		Responsibilities: []string{
			"Led a team of 3 junior analysts in developing predictive maintenance models.",
			"Optimized marketing spend using multi-touch attribution modeling.",
		},
		Achievements: []string{
			"Saved $2M in annual costs by reducing false positives in fraud detection.",
			"Implemented a robust A/B testing framework that increased conversion by 5%.",
		},
	},
	{
		Role:     "Data Analyst Intern",
		Company:  "Insight Analytics",
		Duration: "2020 - 2021",
		Responsibilities: []string{
			"Cleaned and pre-processed large-scale healthcare datasets.",
			"Created automated reports for stakeholder presentations.",
		},
		Achievements: []string{
			"Identified data quality issues that improved reporting accuracy by 25%.",
			"Developed a Python script to automate data cleaning tasks.",
		},
	},
}

var certifications = []Certification{
	{Name: "Professional Data Engineer", Issuer: "Google Cloud", Date: "2023", Link: "#"},
	{Name: "Machine Learning Specialization", Issuer: "Coursera / Stanford", Date: "2022", Link: "#"},
}

var blogPosts = []BlogPost{
	{
		ID:       "b1",
		Title:    "Why XAI is the Future of Business Decisions",
		Date:     "Oct 12, 2023",
		Excerpt:  "Deep diving into explainable AI and how it builds trust with stakeholders...",
		ReadTime: "5 min read",
	},
	{
		ID:       "b2",
		Title:    "My Favorite Python Libraries for 2024",
		Date:     "Sep 28, 2023",
		Excerpt:  "Beyond Pandas and Scikit-Learn: Exploring the next generation of DS tools...",
		ReadTime: "8 min read",
	},
}

func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tools = slices.Clone(p.Tools)
		out[i] = p
	}
	return out
}

func SkillCategories() []SkillCategory {
	out := make([]SkillCategory, len(skillCategories))
	for i, c := range skillCategories {
		c.Skills = slices.Clone(c.Skills)
		out[i] = c
	}
	return out
}

func Experiences() []Experience {
	out := make([]Experience, len(experiences))
	for i, e := range experiences {
		e.Responsibilities = slices.Clone(e.Responsibilities)
		e.Achievements = slices.Clone(e.Achievements)
		out[i] = e
	}
	return out
}

func Certifications() []Certification { return slices.Clone(certifications) }

func BlogPosts() []BlogPost { return slices.Clone(blogPosts) }

// Content bundles every collection, used by the export command.
type Content struct {
	Profile         Profile         `json:"profile" yaml:"profile"`
	Projects        []Project       `json:"projects" yaml:"projects"`
	SkillCategories []SkillCategory `json:"skillCategories" yaml:"skill_categories"`
	Experiences     []Experience    `json:"experiences" yaml:"experiences"`
	Certifications  []Certification `json:"certifications" yaml:"certifications"`
	BlogPosts       []BlogPost      `json:"blogPosts" yaml:"blog_posts"`
	SkillRadar      []RadarPoint    `json:"skillRadar" yaml:"skill_radar"`
	ImpactSeries    []SeriesPoint   `json:"impactSeries" yaml:"impact_series"`
}

func All() Content {
	return Content{
		Profile:         CurrentProfile(),
		Projects:        Projects(),
		SkillCategories: SkillCategories(),
		Experiences:     Experiences(),
		Certifications:  Certifications(),
		BlogPosts:       BlogPosts(),
		SkillRadar:      SkillRadar(),
		ImpactSeries:    ImpactSeries(),
	}
}
