package portfolio

import "slices"

var (
	AboutMe = `With over **4 years** of experience in the data space, I thrive at the
intersection of complex mathematics and business strategy. My mission is to turn
massive datasets into stories that drive multi-million dollar decisions.`

	Tagline = `a Data Scientist specialized in building scalable machine learning
systems and actionable business insights.`

	Availability = `I am currently open to high-impact Data Science roles and
interesting consulting opportunities.`
)

var profile = Profile{
	Brand:          "AlexData",
	Name:           "Alex Johnson",
	Role:           "Data Scientist",
	Greeting:       "Welcome to my portfolio",
	Headline:       "Bridging Data and",
	HeadlineAccent: "Decision Making",
	Tagline:        Tagline,
	AboutSubtitle:  "Data driven, impact focused.",
	About:          AboutMe,
	PortraitURL:    "https://picsum.photos/seed/alex/800/1000",
	Stats: []Stat{
		{Value: "4+", Label: "Years Experience"},
		{Value: "50+", Label: "Projects Completed"},
	},
	Strengths: []string{
		"Strategic Problem Solving",
		"Model Deployment & MLOps",
		"Executive Level Communication",
		"Cross-functional Collaboration",
	},
	Education: []Education{
		{
			Degree:      "M.S. in Data Science",
			Institution: "Georgia Institute of Technology",
			Period:      "2018 - 2020",
			Note:        "GPA: 3.9/4.0",
		},
		{
			Degree:      "B.S. in Applied Mathematics",
			Institution: "University of California, Berkeley",
			Period:      "2014 - 2018",
		},
	},
	Contacts: []ContactChannel{
		{Kind: ContactEmail, Label: "Email", Value: "hello@alexdata.com", Href: "mailto:hello@alexdata.com"},
		{Kind: ContactLinkedIn, Label: "LinkedIn", Value: "linkedin.com/in/alexdata", Href: "https://linkedin.com/in/alexdata"},
		{Kind: ContactGitHub, Label: "GitHub", Value: "github.com/alexdata", Href: "https://github.com/alexdata"},
	},
	Availability: Availability,
	Footer:       "Built with Precision & Data.",
}

func CurrentProfile() Profile {
	p := profile
	p.Stats = slices.Clone(p.Stats)
	p.Strengths = slices.Clone(p.Strengths)
	p.Education = slices.Clone(p.Education)
	p.Contacts = slices.Clone(p.Contacts)
	return p
}
