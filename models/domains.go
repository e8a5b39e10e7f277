package models

// AllDomains is the reference list of domain tags offered by the
// submission form's multi-select. Stored tags are drawn from this list
// but not strictly validated against it.
var AllDomains = []string{
	"Algorithms", "AI/ML", "Deep Learning", "NLP", "Computer Vision", "Robotics", "IoT", "Embedded Systems",
	"Blockchain", "Cybersecurity", "Data Science", "Databases", "Cloud Computing", "DevOps", "Mobile Apps",
	"Web Development", "Fullstack", "Frontend", "Backend", "AR/VR", "Game Dev", "Human-Computer Interaction",
	"Computer Graphics", "Operating Systems", "Distributed Systems", "Parallel Computing", "High Performance Computing",
	"Signal Processing", "Image Processing", "Optimization", "Reinforcement Learning", "Bioinformatics",
	"Natural Sciences", "Electronics", "VLSI", "Control Systems", "Power Systems", "CAD/CAE", "Automation",
	"Mechanical Design", "Civil/Infrastructure", "AgriTech", "FinTech", "HealthTech", "EdTech", "E-commerce",
	"Social Good", "Sustainability", "ClimateTech", "Other",
}
