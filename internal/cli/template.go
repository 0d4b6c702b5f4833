package cli

import (
	"fmt"

	"resumeflow/internal/common"

	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template [profile|job]",
	Short: "Create an example profile or job description file",
	Long: `Create an example input file to fill in with your own information.
"template profile" writes an example user profile; "template job" writes an
example job description.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"profile", "job"},
	RunE:      runTemplate,
}

var templateOutput string

func init() {
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output file path (default: example_profile.txt or example_job.txt)")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())
	fileProcessor := common.NewFileProcessor(logger)

	var content, defaultName, hint string
	switch args[0] {
	case "profile":
		content = profileTemplate
		defaultName = "example_profile.txt"
		hint = "Edit this file with your information and use it with the generate or coverletter command."
	case "job":
		content = jobTemplate
		defaultName = "example_job.txt"
		hint = "Edit this file with the actual job description and use it with the generate command."
	default:
		return fmt.Errorf("unknown template %q (must be 'profile' or 'job')", args[0])
	}

	output := templateOutput
	if output == "" {
		output = defaultName
	}

	if err := fileProcessor.WriteFile(output, content); err != nil {
		return err
	}

	fmt.Printf("Template created: %s\n", output)
	fmt.Println(hint)
	return nil
}

const profileTemplate = `John Doe
Software Engineer

Contact Information:
Email: john.doe@email.com
Phone: (555) 123-4567
LinkedIn: https://linkedin.com/in/johndoe
GitHub: https://github.com/johndoe
Location: San Francisco, CA

Professional Summary:
Experienced software engineer with 5+ years of experience in full-stack development.
Proficient in Python, JavaScript, and cloud technologies. Strong background in building
scalable web applications and working in agile environments.

Technical Skills:
- Programming Languages: Python, JavaScript, TypeScript, Java
- Frameworks: React, Node.js, Django, Flask
- Databases: PostgreSQL, MongoDB, Redis
- Cloud: AWS, Docker, Kubernetes
- Tools: Git, Jenkins, JIRA

Work Experience:

Senior Software Engineer | TechCorp Inc.
January 2022 - Present
- Led development of microservices architecture serving 1M+ users daily
- Implemented CI/CD pipelines reducing deployment time by 50%
- Mentored junior developers and conducted code reviews
- Technologies: Python, Django, AWS, Docker, PostgreSQL

Software Engineer | StartupXYZ
June 2020 - December 2021
- Developed React-based frontend applications
- Built RESTful APIs using Node.js and Express
- Collaborated with design team to implement responsive UI components
- Technologies: React, Node.js, MongoDB, JavaScript

Education:
Bachelor of Science in Computer Science
University of California, Berkeley
Graduated: May 2020
GPA: 3.7/4.0
Relevant Coursework: Data Structures, Algorithms, Database Systems, Software Engineering

Projects:
E-commerce Platform
- Built full-stack e-commerce application with React and Django
- Implemented payment processing with Stripe integration
- Deployed on AWS with auto-scaling capabilities
- Technologies: React, Django, PostgreSQL, AWS, Docker

Task Management App
- Developed real-time task management application
- Implemented WebSocket connections for live updates
- Used Redux for state management
- Technologies: React, Node.js, Socket.io, MongoDB

Certifications:
AWS Certified Solutions Architect - Associate | Amazon Web Services | 2023
Certified Kubernetes Administrator (CKA) | Cloud Native Computing Foundation | 2022

Languages:
English (Native), Spanish (Conversational)
`

const jobTemplate = `Senior Full-Stack Developer
TechInnovate Solutions

Location: Remote / San Francisco, CA
Job Type: Full-time
Salary: $120,000 - $160,000

About the Role:
We are seeking a highly skilled Senior Full-Stack Developer to join our growing engineering team.
You will be responsible for developing and maintaining our core web applications, working closely
with product managers and designers to deliver exceptional user experiences.

Key Responsibilities:
- Design and develop scalable web applications using modern frameworks
- Build and maintain RESTful APIs and microservices
- Collaborate with cross-functional teams in an agile environment
- Mentor junior developers and participate in code reviews
- Optimize application performance and ensure high availability
- Write comprehensive tests and maintain code quality standards

Required Qualifications:
- 5+ years of experience in full-stack web development
- Strong proficiency in JavaScript/TypeScript and at least one backend language (Python, Java, Node.js)
- Experience with modern frontend frameworks (React, Vue.js, or Angular)
- Solid understanding of database design and optimization (SQL and NoSQL)
- Experience with cloud platforms (AWS, GCP, or Azure)
- Knowledge of containerization technologies (Docker, Kubernetes)
- Familiarity with CI/CD pipelines and DevOps practices
- Strong problem-solving skills and attention to detail

Preferred Qualifications:
- Experience with microservices architecture
- Knowledge of message queues and event-driven systems
- Familiarity with monitoring and logging tools
- Experience with machine learning or data science libraries
- Contributions to open-source projects
- Experience in fintech or healthcare domains

Company Culture:
We foster a collaborative and inclusive environment where innovation thrives. Our team values
continuous learning, work-life balance, and making a positive impact through technology.

Benefits:
- Competitive salary and equity package
- Comprehensive health, dental, and vision insurance
- Flexible PTO and remote work options
- Professional development budget
- Modern equipment and home office stipend
- Team building events and company retreats
`
