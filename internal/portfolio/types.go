package portfolio

// Category is the closed set of tags a project can carry.
type Category string

const (
	CategoryML           Category = "ML"
	CategoryEDA          Category = "EDA"
	CategoryDashboard    Category = "Dashboard"
	CategoryNLP          Category = "NLP"
	CategoryDeepLearning Category = "Deep Learning"
)

// Categories lists every declared category in declaration order.
var Categories = []Category{
	CategoryML,
	CategoryEDA,
	CategoryDashboard,
	CategoryNLP,
	CategoryDeepLearning,
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Project struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Category  Category `json:"category" yaml:"category"`
	Problem   string   `json:"problem" yaml:"problem"`
	Tools     []string `json:"tools" yaml:"tools"`
	Approach  string   `json:"approach" yaml:"approach"`
	Insights  string   `json:"insights" yaml:"insights"`
	Impact    string   `json:"impact" yaml:"impact"`
	GithubURL string   `json:"githubUrl" yaml:"github_url"`
	DemoURL   string   `json:"demoUrl,omitempty" yaml:"demo_url,omitempty"`
	ImageURL  string   `json:"imageUrl" yaml:"image_url"`
}

// Skill level is a percentage, 0 to 100.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type SkillCategory struct {
	Title  string  `json:"title" yaml:"title"`
	Skills []Skill `json:"skills" yaml:"skills"`
}

type Experience struct {
	Role             string   `json:"role" yaml:"role"`
	Company          string   `json:"company" yaml:"company"`
	Duration         string   `json:"duration" yaml:"duration"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	Achievements     []string `json:"achievements" yaml:"achievements"`
}

type Certification struct {
	Name   string `json:"name" yaml:"name"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Date   string `json:"date" yaml:"date"`
	Link   string `json:"link" yaml:"link"`
}

type BlogPost struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	ReadTime string `json:"readTime" yaml:"read_time"`
}

type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Period      string `json:"period" yaml:"period"`
	Note        string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Stat is a headline number shown in the about section.
type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactLinkedIn ContactKind = "linkedin"
	ContactGitHub   ContactKind = "github"
)

type ContactChannel struct {
	Kind  ContactKind `json:"kind" yaml:"kind"`
	Label string      `json:"label" yaml:"label"`
	Value string      `json:"value" yaml:"value"`
	Href  string      `json:"href" yaml:"href"`
}

// Profile holds the free-form copy of the page. About is markdown.
type Profile struct {
	Brand          string           `json:"brand" yaml:"brand"`
	Name           string           `json:"name" yaml:"name"`
	Role           string           `json:"role" yaml:"role"`
	Greeting       string           `json:"greeting" yaml:"greeting"`
	Headline       string           `json:"headline" yaml:"headline"`
	HeadlineAccent string           `json:"headlineAccent" yaml:"headline_accent"`
	Tagline        string           `json:"tagline" yaml:"tagline"`
	AboutSubtitle  string           `json:"aboutSubtitle" yaml:"about_subtitle"`
	About          string           `json:"about" yaml:"about"`
	PortraitURL    string           `json:"portraitUrl" yaml:"portrait_url"`
	Stats          []Stat           `json:"stats" yaml:"stats"`
	Strengths      []string         `json:"strengths" yaml:"strengths"`
	Education      []Education      `json:"education" yaml:"education"`
	Contacts       []ContactChannel `json:"contacts" yaml:"contacts"`
	Availability   string           `json:"availability" yaml:"availability"`
	Footer         string           `json:"footer" yaml:"footer"`
}

// RadarPoint is one axis of the expertise radar chart.
type RadarPoint struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
	Max   int    `json:"max" yaml:"max"`
}

// SeriesPoint is one sample of the impact area chart.
type SeriesPoint struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}
