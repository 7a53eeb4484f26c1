package content

var (
	HeroSummary = `I'm a mechanical engineering student at **McGill University** with a passion for
innovative design, composite materials, and advanced manufacturing. My expertise spans from CAD
modeling to experimental testing and programming for data analysis.`

	SkillsIntro = `My toolkit encompasses specialized software, hands-on manufacturing techniques,
and programming skills that I've developed throughout my engineering education and experience.`

	ExperienceIntro = `My professional journey has equipped me with hands-on experience in
engineering research, design, and manufacturing. Here's where I've applied my skills and gained
valuable industry insight.`

	ProjectsIntro = `A collection of my engineering projects, where I've applied my technical skills
to solve real-world problems. Each project demonstrates my approach to design, problem-solving,
and implementation.`

	LeadershipIntro = `Beyond academics and professional work, I've taken on leadership roles and
participated in activities that broaden my perspective and develop my collaborative abilities.`
)
