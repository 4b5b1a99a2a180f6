// Package content holds the static portfolio profile the chatbot answers
// from, and assembles the system instruction sent with every upstream
// request.
package content

import (
	"fmt"
	"strings"
)

type Education struct {
	Degree      string
	Institution string
	Period      string
	Location    string
}

type Role struct {
	Title        string
	Company      string
	Period       string
	Location     string
	Achievements []string
}

type Project struct {
	Title       string
	Description string
	Tech        []string
}

type Skills struct {
	Frontend []string
	Backend  []string
	AI       []string
	Testing  []string
	Tools    []string
}

// Profile is the knowledge base for the portfolio chatbot.
type Profile struct {
	Name     string
	Title    string
	Location string
	Email    string
	Phone    string

	Education   []Education
	CurrentRole Role
	Skills      Skills
	Projects    []Project
	Experience  []Role
}

// Default returns the portfolio owner's profile.
func Default() *Profile {
	return &Profile{
		Name:     "Miliyon Ayalew",
		Title:    "Full-Stack Developer and AI Enthusiast",
		Location: "Addis Ababa, Ethiopia",
		Email:    "miliayalew@gmail.com",
		Phone:    "+251922765739",

		Education: []Education{
			{
				Degree:      "BSc in Software Engineering",
				Institution: "Haramaya University",
				Period:      "2017 - 2022",
				Location:    "Haramaya, Ethiopia",
			},
			{
				Degree:      "Full Stack Web Development Program",
				Institution: "Microverse",
				Period:      "2022 - 2023",
				Location:    "Remote - San Francisco, USA",
			},
		},

		CurrentRole: Role{
			Title:    "Front-end Developer",
			Company:  "10 Academy",
			Period:   "August 2023 - Present",
			Location: "Remote - Santa Clara, USA",
			Achievements: []string{
				"Integrated an AI-driven assignment system with chatbot and real-time analytics, cutting grading time by 50% and supporting 10k+ users efficiently",
				"Developed reusable UI components with Ant Design and TailwindCSS, speeding up development by 40% and ensuring accessibility across devices",
				"Built advanced content and performance tracking features with personalized learning paths, interactive dashboards, and automated end-to-end tests using Playwright",
			},
		},

		Skills: Skills{
			Frontend: []string{"JavaScript", "React", "Redux", "Vue", "CSS3", "TypeScript", "Vite", "TailwindCSS", "AntD"},
			Backend:  []string{"Ruby", "Ruby on Rails", "Strapi", "MongoDB", "MySQL", "PostgreSQL", "NodeJS", "Express", "GraphQL"},
			AI:       []string{"Machine Learning", "LLMs", "NLP"},
			Testing:  []string{"vitest", "Jest", "TDD", "Playwright", "Chrome Dev Tools"},
			Tools:    []string{"Git", "GitHub", "VS Code", "Cursor", "AWS"},
		},

		Projects: []Project{
			{
				Title:       "Hotel Reservation System",
				Description: "Built a hotel reservation web app with React/Redux frontend and Ruby on Rails backend API",
				Tech:        []string{"React", "TypeScript", "PostgreSQL", "RoR", "TailwindCSS"},
			},
			{
				Title:       "Space Traveler's Hub",
				Description: "Web application for space travel company using SpaceX API for booking rockets and missions",
				Tech:        []string{"React", "Redux", "CSS"},
			},
			{
				Title:       "Crypto-App",
				Description: "Track top 100 crypto values and prices through a web app for the cryptocurrency market",
				Tech:        []string{"React", "Redux", "Jest"},
			},
			{
				Title:       "TenxSaaS Apply",
				Description: "A SaaS application for Tenx to manage their applicants and their applications",
				Tech:        []string{"React", "Redux", "Strapi", "AntD", "PostgreSQL"},
			},
			{
				Title:       "Tenx E-Learning",
				Description: "A SaaS application for Tenx to manage their e-learning platform",
				Tech:        []string{"React", "Redux", "Strapi", "AntD", "PostgreSQL"},
			},
			{
				Title:       "Food Delivery App",
				Description: "A food delivery app built for mobile devices using a cross-platform framework and rapid development tools",
				Tech:        []string{"React Native", "Expo", "NodeJS", "Appwrite", "PostgreSQL"},
			},
		},

		Experience: []Role{
			{
				Title:    "Front-end Developer",
				Company:  "10 Academy",
				Period:   "August 2023 - Present",
				Location: "Remote - Santa Clara, USA",
			},
			{
				Title:    "Intern",
				Company:  "10 Academy",
				Period:   "July 2023 - August 2023",
				Location: "Remote - Santa Clara, USA",
			},
			{
				Title:    "Full Stack Developer",
				Company:  "Ibex Technology",
				Period:   "January 2023 - June 2023",
				Location: "Remote - Addis Ababa, Ethiopia",
			},
			{
				Title:    "Mentor",
				Company:  "MICROVERSE",
				Period:   "September 2022 - October 2022",
				Location: "Remote - San Francisco, USA",
			},
		},
	}
}

// SystemPrompt assembles the instruction that steers the model toward the
// portfolio persona. Recomputed per request; cheap string assembly.
func (p *Profile) SystemPrompt() string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a helpful AI assistant for %s's portfolio website. You should be friendly, professional, and knowledgeable about %s's background, skills, projects, and experience.\n\n", p.Name, firstName(p.Name))

	fmt.Fprintf(&b, "BACKGROUND:\n")
	fmt.Fprintf(&b, "- %s\n", p.Title)
	for _, edu := range p.Education {
		fmt.Fprintf(&b, "- %s, %s (%s)\n", edu.Degree, edu.Institution, edu.Period)
	}
	fmt.Fprintf(&b, "- Based in %s\n", p.Location)
	fmt.Fprintf(&b, "- Contact: %s, Phone: %s\n\n", p.Email, p.Phone)

	fmt.Fprintf(&b, "CURRENT ROLE:\n")
	fmt.Fprintf(&b, "- %s at %s (%s)\n", p.CurrentRole.Title, p.CurrentRole.Company, p.CurrentRole.Period)
	fmt.Fprintf(&b, "- %s\n", p.CurrentRole.Location)
	if len(p.CurrentRole.Achievements) > 0 {
		n := len(p.CurrentRole.Achievements)
		if n > 2 {
			n = 2
		}
		fmt.Fprintf(&b, "- Key achievements: %s\n", strings.Join(p.CurrentRole.Achievements[:n], ", "))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "TECHNICAL SKILLS:\n")
	fmt.Fprintf(&b, "Frontend: %s\n", strings.Join(p.Skills.Frontend, ", "))
	fmt.Fprintf(&b, "Backend: %s\n", strings.Join(p.Skills.Backend, ", "))
	fmt.Fprintf(&b, "AI/ML: %s\n", strings.Join(p.Skills.AI, ", "))
	fmt.Fprintf(&b, "Testing: %s\n", strings.Join(p.Skills.Testing, ", "))
	fmt.Fprintf(&b, "Tools: %s\n\n", strings.Join(p.Skills.Tools, ", "))

	fmt.Fprintf(&b, "PROJECTS:\n")
	for i, project := range p.Projects {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, project.Title, project.Description)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "WORK EXPERIENCE:\n")
	for _, exp := range p.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s)\n", exp.Title, exp.Company, exp.Period)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "EDUCATION:\n")
	for _, edu := range p.Education {
		fmt.Fprintf(&b, "- %s from %s (%s)\n", edu.Degree, edu.Institution, edu.Period)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Keep responses concise but informative. Be specific about %s's actual experience and projects when answering questions.", firstName(p.Name))

	return b.String()
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
