package config

import (
	"PortfolioBackend/internal/entity"
)

// NewProfile builds the portfolio owner's profile. The value is constructed
// once at startup and injected into the services that need it; nothing in the
// codebase reads profile data from package-level state.
func NewProfile() entity.Profile {
	return entity.Profile{
		Name:  "Meezab Momin",
		Title: "Full Stack & Application Developer",
		Tag:   "Building immersive web experiences, powerful AI tools, and modern applications",
		Skills: entity.SkillSet{
			Frontend: []string{
				"React", "Next.js", "TailwindCSS", "TypeScript", "JavaScript",
				"HTML5", "CSS3", "Styled Components", "Sass", "Less", "CSS Modules",
			},
			Backend: []string{
				"Node.js", "Express.js", "REST APIs", "SSR", "Full Stack Architecture",
			},
			AI: []string{
				"ChatGPT", "Claude", "Deepseek", "Gemini", "Kimi", "Workik",
				"Cody", "Firebase Studio AI", "Cursor IDE", "Windsurf IDE",
				"Trae IDE", "Void IDE", "Google AI Studio", "Google Labs",
				"Stitch", "Lovable", "Builder.io", "OpenRouter", "Vercel-V0",
			},
			Database: []string{
				"MongoDB", "Firebase", "Firestore", "LocalStorage",
			},
			Others: []string{
				"Git", "GitHub", "Vercel", "Netlify", "Postman", "Figma",
				"VS Code", "IntelliJ", "PWA", "Android Studio", "Unity", "Unreal Engine",
			},
		},
		Projects: []entity.Project{
			{
				Name:   "UniToolBox",
				Period: "2024/2–2024/10",
				Highlights: []string{
					"Full-stack toolkit with 30+ free tools",
					"Next.js + React + TypeScript + Tailwind",
					"AI features (summarizer, translator)",
					"SSR for SEO",
					"Deployed on Vercel",
					"Privacy & accessibility focused",
					"Ad-supported monetization",
				},
			},
			{
				Name:   "Anonymous Messenger",
				Period: "2022/9–2023/6",
				Highlights: []string{
					"Android chat app",
					"Java + XML",
					"Firebase Realtime DB",
					"Live messaging",
					"Clean responsive UI",
				},
			},
			{
				Name:   "Hustle Finder",
				Period: "2023/5–2023/11",
				Highlights: []string{
					"600+ side hustles",
					"Search + pagination",
					"Next.js, React, TailwindCSS",
					"Adsterra integration",
					"Bookmarks + theme system",
				},
			},
			{
				Name:   "Matty AI",
				Period: "2024/5–2024/8",
				Highlights: []string{
					"Chat-based AI companion",
					"Node.js + Express backend",
					"No login",
					"Voice input, file share, emoji support",
					"Anonymous, private experience",
				},
			},
		},
		About: []string{
			"50+ global client projects",
			"Web, mobile, and game development",
			"Expertise in React, Next.js, Node.js, MongoDB, and AI tools",
			"Strong UI/UX understanding",
			"Experience building portfolio sites, resume builders, and full-stack apps",
			"Built AI assistants, chat apps, and custom tools",
			"Fast learner with deep technical research skills",
			"Active collaborator on GitHub",
		},
		Contact: entity.Contact{
			Email:    "mmm045762s@gmail.com",
			Phone:    "+91 8983135250",
			Location: "Maharashtra, IN",
		},
	}
}
