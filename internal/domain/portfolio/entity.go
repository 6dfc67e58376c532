package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is a singleton record; the API exposes GET/PUT only.
type PersonalInfo struct {
	ID          uuid.UUID         `json:"id"`
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
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type Education struct {
	ID          uuid.UUID `json:"id"`
	Degree      string    `json:"degree"`
	School      string    `json:"school"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SkillItem struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SkillCategory struct {
	ID        uuid.UUID   `json:"id"`
	Category  string      `json:"category"`
	Items     []SkillItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	Date         string    `json:"date"`
	Highlights   []string  `json:"highlights"`
	GithubURL    *string   `json:"github_url,omitempty"`
	DemoURL      *string   `json:"demo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Experience struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Period           string    `json:"period"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Certification struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	CredentialURL *string   `json:"credential_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Content   string    `json:"content"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Procedure is a technical how-to document. It is the only entity with a
// full create/list/view/delete flow exposed to anonymous visitors.
type Procedure struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProcedureCategories is the closed set accepted on create/update.
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

// VeilleContent is a technology/legal watch article. Type is either
// "technologique" or "juridique".
type VeilleContent struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
