package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-api/internal/database"
	"portfolio-api/internal/domain/portfolio"
)

// PortfolioSeeder loads the demo dataset. It is a no-op when the
// personal_info table already has a row, so the server can run it at
// every start.
type PortfolioSeeder struct{}

func (PortfolioSeeder) Name() string { return "portfolio" }

func (PortfolioSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM personal_info`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := seedPersonalInfo(ctx, db); err != nil {
		return err
	}
	if err := seedEducation(ctx, db); err != nil {
		return err
	}
	if err := seedSkills(ctx, db); err != nil {
		return err
	}
	if err := seedProjects(ctx, db); err != nil {
		return err
	}
	if err := seedExperience(ctx, db); err != nil {
		return err
	}
	if err := seedCertifications(ctx, db); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, db); err != nil {
		return err
	}
	if err := seedProcedures(ctx, db); err != nil {
		return err
	}
	return seedVeille(ctx, db)
}

func jsonb(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("[]")
	}
	return b
}

func seedPersonalInfo(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx,
		`INSERT INTO personal_info (name, title, subtitle, description, email, phone, location, avatar, resume, social)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		"Hocine IRATNI",
		"Développeur Full Stack",
		"Spécialiste en développement web moderne",
		"Développeur passionné avec une expertise en technologies modernes comme React, Node.js, Python et les architectures cloud.",
		"hocine.iratni@example.com",
		"+33 6 12 34 56 78",
		"Paris, France",
		"",
		"https://example.com/resume.pdf",
		jsonb(map[string]string{
			"linkedin": "https://linkedin.com/in/hocine-iratni",
			"github":   "https://github.com/hocine-iratni",
			"twitter":  "https://twitter.com/hocine_iratni",
		}),
	)
	return err
}

func seedEducation(ctx context.Context, db database.DB) error {
	rows := []struct {
		degree, school, period, description string
		skills                              []string
	}{
		{
			"Master en Informatique", "Université Paris-Saclay", "2020-2022",
			"Spécialisation en développement logiciel et architectures distribuées",
			[]string{"Python", "Java", "Architecture logicielle", "Base de données"},
		},
		{
			"Licence en Informatique", "Université Paris-Sud", "2017-2020",
			"Fondamentaux de l'informatique et programmation",
			[]string{"C", "C++", "Algorithmes", "Mathématiques"},
		},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO education (degree, school, period, description, skills) VALUES ($1, $2, $3, $4, $5)`,
			r.degree, r.school, r.period, r.description, jsonb(r.skills),
		); err != nil {
			return err
		}
	}
	return nil
}

func seedSkills(ctx context.Context, db database.DB) error {
	rows := []struct {
		category string
		items    []portfolio.SkillItem
	}{
		{"Frontend", []portfolio.SkillItem{
			{Name: "React", Level: 90},
			{Name: "Vue.js", Level: 85},
			{Name: "TypeScript", Level: 88},
			{Name: "HTML/CSS", Level: 95},
			{Name: "Tailwind CSS", Level: 92},
		}},
		{"Backend", []portfolio.SkillItem{
			{Name: "Python", Level: 95},
			{Name: "FastAPI", Level: 90},
			{Name: "Node.js", Level: 85},
			{Name: "PostgreSQL", Level: 88},
			{Name: "MongoDB", Level: 82},
		}},
		{"DevOps", []portfolio.SkillItem{
			{Name: "Docker", Level: 85},
			{Name: "AWS", Level: 80},
			{Name: "CI/CD", Level: 83},
			{Name: "Kubernetes", Level: 75},
		}},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO skill_categories (category, items) VALUES ($1, $2)`,
			r.category, jsonb(r.items),
		); err != nil {
			return err
		}
	}
	return nil
}

func seedProjects(ctx context.Context, db database.DB) error {
	rows := []struct {
		title, description, image, category, date string
		technologies, highlights                  []string
		githubURL, demoURL                        string
	}{
		{
			"Plateforme E-commerce",
			"Développement d'une plateforme e-commerce complète avec React et FastAPI",
			"", "Web Development", "2024",
			[]string{"React", "FastAPI", "PostgreSQL", "Stripe", "AWS"},
			[]string{"Paiement sécurisé", "Interface responsive", "Panel d'administration", "API RESTful"},
			"https://github.com/hocine-iratni/ecommerce-platform",
			"https://demo-ecommerce.example.com",
		},
		{
			"Application de Gestion de Tâches",
			"Application collaborative pour la gestion de projets et tâches en équipe",
			"", "Application Web", "2023",
			[]string{"Vue.js", "Express.js", "MongoDB", "Socket.io"},
			[]string{"Collaboration temps réel", "Notifications push", "Dashboard analytique", "Export PDF"},
			"https://github.com/hocine-iratni/task-manager",
			"https://demo-tasks.example.com",
		},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO projects (title, description, technologies, image, category, date, highlights, github_url, demo_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			r.title, r.description, jsonb(r.technologies), r.image, r.category, r.date, jsonb(r.highlights), r.githubURL, r.demoURL,
		); err != nil {
			return err
		}
	}
	return nil
}

func seedExperience(ctx context.Context, db database.DB) error {
	rows := []struct {
		title, company, period, description string
		responsibilities                    []string
	}{
		{
			"Développeur Full Stack Senior", "TechCorp France", "2022 - Présent",
			"Développement d'applications web et mobiles pour des clients variés",
			[]string{
				"Développement d'applications React/Vue.js",
				"Conception d'APIs RESTful avec FastAPI",
				"Gestion de bases de données PostgreSQL",
				"Déploiement et maintenance sur AWS",
				"Encadrement d'équipe de 3 développeurs junior",
			},
		},
		{
			"Développeur Frontend", "WebAgency Paris", "2020 - 2022",
			"Création d'interfaces utilisateur modernes et responsives",
			[]string{
				"Développement d'interfaces React.js",
				"Intégration d'APIs tierces",
				"Optimisation des performances",
				"Tests unitaires et d'intégration",
			},
		},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO experience (title, company, period, description, responsibilities) VALUES ($1, $2, $3, $4, $5)`,
			r.title, r.company, r.period, r.description, jsonb(r.responsibilities),
		); err != nil {
			return err
		}
	}
	return nil
}

func seedCertifications(ctx context.Context, db database.DB) error {
	rows := []struct {
		name, issuer, status, date, description, credentialURL string
	}{
		{
			"AWS Solutions Architect", "Amazon Web Services", "Obtenu", "2023",
			"Certification en architecture cloud AWS",
			"https://aws.amazon.com/certification/certified-solutions-architect-associate/",
		},
		{
			"Python Professional", "Python Institute", "Obtenu", "2022",
			"Certification avancée en développement Python",
			"https://pythoninstitute.org/certification",
		},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO certifications (name, issuer, status, date, description, credential_url) VALUES ($1, $2, $3, $4, $5, $6)`,
			r.name, r.issuer, r.status, r.date, r.description, r.credentialURL,
		); err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, db database.DB) error {
	rows := []struct {
		name, role, company, content string
	}{
		{
			"Marie Dubois", "Chef de projet", "TechCorp France",
			"Hocine est un développeur exceptionnel. Sa capacité à résoudre des problèmes complexes et son approche collaborative font de lui un atout précieux pour toute équipe.",
		},
		{
			"Pierre Martin", "Directeur Technique", "WebAgency Paris",
			"Hocine a démontré des compétences techniques solides et une grande capacité d'adaptation. Son travail sur nos projets React a été remarquable.",
		},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO testimonials (name, role, company, content, avatar) VALUES ($1, $2, $3, $4, $5)`,
			r.name, r.role, r.company, r.content, "",
		); err != nil {
			return err
		}
	}
	return nil
}

func seedProcedures(ctx context.Context, db database.DB) error {
	rows := []struct {
		title, description, content, category string
		tags                                  []string
	}{
		{
			"Déploiement d'une application React",
			"Guide étape par étape pour déployer une application React sur AWS",
			"Build de l'application, configuration S3, distribution CloudFront, domaine et certificats SSL, puis vérifications finales sur le domaine.",
			"Development",
			[]string{"React", "AWS", "S3", "CloudFront", "Déploiement"},
		},
		{
			"Configuration d'une API FastAPI",
			"Configuration complète d'une API FastAPI avec authentification",
			"Installation des dépendances, structure du projet, middleware CORS, authentification JWT et tests avec pytest.",
			"Development",
			[]string{"FastAPI", "Python", "API", "JWT", "Authentification"},
		},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO procedures (title, description, content, category, tags) VALUES ($1, $2, $3, $4, $5)`,
			r.title, r.description, r.content, r.category, jsonb(r.tags),
		); err != nil {
			return err
		}
	}
	return nil
}

func seedVeille(ctx context.Context, db database.DB) error {
	rows := []struct {
		veilleType, title, content string
	}{
		{
			"technologique",
			"Nouvelles fonctionnalités React 19",
			"React 19 apporte des améliorations significatives en termes de performance et de développement. Les nouvelles fonctionnalités incluent les Server Components stables, les Actions pour la gestion des formulaires et les hooks useOptimistic et useFormStatus.",
		},
		{
			"juridique",
			"RGPD et développement web",
			"Le RGPD impose des obligations importantes pour les développeurs web. Les points clés incluent le consentement explicite pour les cookies, le droit à l'oubli, la portabilité des données et la notification des violations dans les 72 heures.",
		},
	}
	for _, r := range rows {
		if _, err := db.Exec(ctx,
			`INSERT INTO veille_content (type, title, content) VALUES ($1, $2, $3)`,
			r.veilleType, r.title, r.content,
		); err != nil {
			return err
		}
	}
	return nil
}
