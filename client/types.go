package client

// Wire shapes mirror the portfolio API responses. IDs are plain strings
// so callers never depend on the server's UUID library.

type PersonalInfo struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Location    string            `json:"location"`
	Avatar      string            `json:"avatar"`
	Resume      string            `json:"resume"`
	Social      map[string]string `json:"social"`
}

type Education struct {
	ID          string   `json:"id"`
	Degree      string   `json:"degree"`
	School      string   `json:"school"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type SkillItem struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SkillCategory struct {
	ID       string      `json:"id"`
	Category string      `json:"category"`
	Items    []SkillItem `json:"items"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Date         string   `json:"date"`
	Highlights   []string `json:"highlights"`
	GithubURL    *string  `json:"github_url,omitempty"`
	DemoURL      *string  `json:"demo_url,omitempty"`
}

type Experience struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

type Certification struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	CredentialURL *string `json:"credential_url,omitempty"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
}

type Procedure struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
}

// ProcedureDraft is the creation payload. Tags default to an empty
// list, never null.
type ProcedureDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type VeilleContent struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ProcedureCategories is the closed category set accepted on create.
var ProcedureCategories = []string{
	"System",
	"Network",
	"Security",
	"Virtualization",
	"Database",
	"Development",
	"Other",
}

func ValidProcedureCategory(category string) bool {
	for _, c := range ProcedureCategories {
		if c == category {
			return true
		}
	}
	return false
}
