package content

// Section anchors, in document order.
const (
	SectionHome       = "home"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionLeadership = "leadership"
)

const email = "pankaja.hewakaluge@mail.mcgill.ca"

// Default returns the literal portfolio. Every call builds a fresh value.
func Default() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:     "Pankaja Hewakaluge",
			Initials: "PH",
			Greeting: "Hello, I'm",
			Headline: "Mechanical Engineering Student",
			Summary:  HeroSummary,
			Phone:    "438-979-4432",
			Email:    email,
			Headshot: "/images/headshot.jpg",
			Socials: []SocialLink{
				{Name: "LinkedIn", Icon: "fa-brands fa-linkedin", Href: "https://www.linkedin.com/in/pankaja-hewakaluge/"},
				{Name: "GitHub", Icon: "fa-brands fa-github", Href: "https://github.com"},
				{Name: "Email", Icon: "fa-solid fa-envelope", Href: "mailto:" + email},
			},
		},
		Nav: []NavItem{
			{Name: "Home", Anchor: "#" + SectionHome},
			{Name: "Education", Anchor: "#" + SectionEducation},
			{Name: "Skills", Anchor: "#" + SectionSkills},
			{Name: "Experience", Anchor: "#" + SectionExperience},
			{Name: "Projects", Anchor: "#" + SectionProjects},
			{Name: "Leadership", Anchor: "#" + SectionLeadership},
		},
		Sections: []Section{
			{ID: SectionHome, Title: "Home"},
			{ID: SectionEducation, Title: "Education"},
			{ID: SectionSkills, Title: "Technical Skills", Intro: SkillsIntro},
			{ID: SectionExperience, Title: "Professional Experience", Intro: ExperienceIntro},
			{ID: SectionProjects, Title: "Projects", Intro: ProjectsIntro},
			{ID: SectionLeadership, Title: "Leadership & Extracurricular", Intro: LeadershipIntro},
		},
		Education: []Education{
			{
				Institution: "McGill University",
				Degree:      "Bachelor of Engineering in Mechanical Engineering",
				Period:      "Sep. 2022 – Present",
				Location:    "Montreal, Quebec",
				Highlights: []string{
					"GPA 3.9/4.0",
					"James McGill Scholarship, Rio Tinto-Evans award",
				},
				Coursework: []string{"CAD Design", "Material Science", "Fluid Mechanics", "Thermodynamics", "Programming"},
			},
		},
		Skills: []SkillCategory{
			{
				Name: "Software",
				Icon: "fa-solid fa-laptop-code",
				Skills: []string{
					"SolidWorks",
					"AutoCAD",
					"ABAQUS",
					"ANSYS",
					"MS Office (Excel etc)",
					"Finite Element Analysis",
					"MasterCAM (Gcode)",
				},
			},
			{
				Name: "Hands-on",
				Icon: "fa-solid fa-screwdriver-wrench",
				Skills: []string{
					"CNC turning and milling certification",
					"WHMIS certification",
					"Machine tools",
					"Composites Manufacturing",
					"Laser/Water Jet Cutting",
					"3D Printing",
				},
			},
			{
				Name: "Programming",
				Icon: "fa-solid fa-code",
				Skills: []string{
					"Python",
					"JavaScript",
					"Data Analysis Libraries",
					"Web Development",
				},
			},
		},
		FocusAreas: []FocusArea{
			{Name: "CAD Design", Icon: "fa-solid fa-gears"},
			{Name: "Composite Materials", Icon: "fa-solid fa-layer-group"},
			{Name: "3D Printing", Icon: "fa-solid fa-cubes"},
			{Name: "Manufacturing", Icon: "fa-solid fa-hammer"},
		},
		Experience: []Experience{
			{
				Organization: "Rolls-Royce Aerospace",
				Title:        "Mechanical Engineering Intern",
				Period:       "May 2025 – August 2025",
				Location:     "Montreal, Quebec",
				Icon:         "fa-solid fa-building",
				Color:        "#00539b",
				Skills:       []string{"AutoCAD", "CNC", "Technical Documentation", "Risk Assessment", "Manufacturing"},
				Achievements: []string{
					"Analyzed repair documentation and technical variance sheets, identifying cross-model efficiencies by evaluating materials and structural integrity.",
					"Conducted tool standardization projects, authored comprehensive documentation, and led risk assessments to ensure compliance with aerospace standards.",
					"Developed precise technical drawings in AutoCAD, enhancing clarity and operational efficiency in tooling processes.",
					"Initiated a project to streamline CNC machine operations by optimizing G-code generation, improving manufacturing throughput.",
				},
			},
			{
				Organization: "Composites Research Network – Boeing/UBC",
				Title:        "Trainee Engineer",
				Period:       "May 2024 – August 2024",
				Location:     "Vancouver, British Columbia",
				Icon:         "fa-solid fa-flask",
				Color:        "#ff4500",
				Skills:       []string{"Rheometer", "DMA", "TGA", "DSC", "TMA", "Instron", "ANSYS", "SolidWorks", "Python"},
				Achievements: []string{
					"Collaborated with Canadian SMEs on composites-focused projects, bridging industry and academic research.",
					"Evaluated the efficiency and performance of an industrial autoclave through ANSYS airflow modeling and physical testing with anemometers.",
					"Used Python libraries (matplotlib, pandas, NumPy) to analyze raw anemometer data.",
					"Designed and implemented thermocouple layouts using 3D modeling software to assess and optimize thermal characteristics in autoclaves and composite tooling.",
					"Conducted comprehensive material testing using advanced instruments including Rheometer, DMA, TGA, DSC, TMA, and Instron.",
					"Manufactured carbon fiber parts using various methods: Bladder molding, Pre-preg, wet layup, and vacuum infusion.",
				},
			},
			{
				Organization: "McGill Robotics – Drone Team",
				Title:        "Drone Mechanical Member",
				Period:       "September 2024 – April 2025",
				Location:     "Montreal, Canada",
				Icon:         "fa-solid fa-plane",
				Color:        "#ff7e47",
				Skills:       []string{"Fusion 360", "Laser Cutting", "Glass Fiber", "Wet Layup"},
				Achievements: []string{
					"Designed and modified NACA4412 airfoil profiles using Fusion 360 to fit foam block dimensions for drone.",
					"Generated DXF files from 3D models to enable precise laser cutting of wooden hot wire templates.",
					"Fabricated airfoil components using the wet layup method with glass fiber and resin.",
				},
			},
		},
		Projects: []Project{
			{
				ID:     "pipe-inspection-robot",
				Title:  "Pipe Inspection Robot",
				Period: "September 2023 – December 2023",
				Skills: []string{"SolidWorks", "DFM", "DFA", "Mechanical Design"},
				Description: []string{
					"Created 3D models of an inspection robot, ensuring practicality through DFM and DFA methods.",
					"Organized an iterative design process by collecting feedback and data analytics to enhance functionality, resulting in a 40% decrease in the total number of parts.",
					"Collaborated effectively in a team, contributing innovative ideas and design process insights.",
				},
				Links: []ProjectLink{
					{Label: "GitHub", Icon: "fa-brands fa-github", URL: "#"},
				},
			},
		},
		Leadership: []Role{
			{
				Organization: "McGill Association of Mechanical Engineers (MAME)",
				Title:        "U2 Mechanical Engineering Representative",
				Period:       "May 2024 – April 2025",
				Location:     "McGill University",
				Icon:         "fa-solid fa-users",
				Color:        "#ff4500",
				Achievements: []string{
					"Manage and organize events for engineering students to enhance engagement and community.",
					"Collaborate with representatives to improve student life, wellbeing, and culture.",
					"Provide academic support and guidance within the U2 Mechanical Engineering cohort.",
					"Organize various social, professional, and academic club events.",
				},
			},
			{
				Organization: "McGill Additive Manufacturing Lab",
				Title:        "Shop Technician",
				Period:       "Fall 2024 – Present",
				Location:     "McGill University",
				Icon:         "fa-solid fa-print",
				Color:        "#ff7e47",
				Achievements: []string{
					"Oversee 3D printing services for academic and personal projects, including group assignments like drone frames, ensuring timely production.",
					"Provide expertise on material selection, design file printability, and optimization to support users in achieving high-quality prints.",
					"Maintain and troubleshoot 3D printers, ensuring consistent operation and minimizing downtime.",
				},
			},
			{
				Organization: "Youth Advisory Delegation",
				Title:        "Delegate",
				Period:       "September 2022 – April 2023",
				Location:     "McGill University",
				Icon:         "fa-solid fa-globe",
				Color:        "#ff9f4a",
				Achievements: []string{
					"Formulated impactful youth policies for international discussions, collaborating with NGOs to gather information.",
					"Held consultative status with the UN ECOSOC, engaging in high-level dialogues.",
					"Advocated for youth issues with Permanent Missions (e.g., Japan, Germany).",
				},
			},
		},
	}
}
