package rubric

// Default returns the built-in product rubric. Thresholds and max scores are
// product-defined cut points and must not be recomputed or altered in code.
// The rubric can be replaced at startup with LoadFile.
func Default() Rubric {
	return Rubric{
		Junior: {
			Threshold: 60,
			Competencies: []Competency{
				{
					ID:       "technical_basics",
					Label:    "Technical Basics",
					MaxScore: 4,
					SampleQuestions: []Question{
						{
							Text:      "Can you explain what a variable is and give an example?",
							Rationale: "Variables are fundamental to programming. If a candidate can explain this clearly in their own words, they have basic conceptual understanding rather than just copying code from tutorials.",
						},
						{
							Text:      "Have you worked with version control like Git?",
							Rationale: "Git is essential for professional development. Junior candidates should at least have exposure to basic commands (commit, push, pull) which indicates they can work in team environments.",
						},
						{
							Text:      "Can you describe the difference between frontend and backend?",
							Rationale: "Understanding the web stack fundamentals shows architectural awareness. Even juniors should grasp where their code runs and how different parts of a system interact.",
						},
						{
							Text:      "Have you debugged code using console logs or a debugger?",
							Rationale: "Debugging is a core developer skill. Junior candidates should demonstrate basic troubleshooting ability beyond just trying random fixes until something works.",
						},
					},
				},
				{
					ID:       "learning_ability",
					Label:    "Learning Ability",
					MaxScore: 4,
					SampleQuestions: []Question{
						{
							Text:      "Tell me about a time you learned a new technology or framework",
							Rationale: "Technology changes constantly. A junior's ability to self-learn and adapt is often more important than current knowledge. Look for structured learning approaches, not just \"I watched YouTube.\"",
						},
						{
							Text:      "How do you approach learning something new in development?",
							Rationale: "This reveals learning methodology. Strong juniors have a process: read docs, build small projects, ask questions. Weak ones just copy-paste from Stack Overflow without understanding.",
						},
						{
							Text:      "Have you completed any online courses or bootcamps?",
							Rationale: "Formal learning shows commitment and structured knowledge. Bootcamp grads often have practical project experience, while self-taught developers show strong initiative and resourcefulness.",
						},
						{
							Text:      "Can you describe a problem you solved by researching online?",
							Rationale: "Modern development requires effective Googling and documentation reading. This tests whether they can find solutions independently rather than getting stuck on every obstacle.",
						},
					},
				},
				{
					ID:       "code_quality",
					Label:    "Code Quality Awareness",
					MaxScore: 3,
					SampleQuestions: []Question{
						{
							Text:      "Do you know what \"clean code\" means?",
							Rationale: "Awareness of code quality principles (readable naming, small functions, etc.) indicates they think beyond \"does it work\" to \"is it maintainable.\" Even basic awareness is valuable.",
						},
						{
							Text:      "Have you received code review feedback before?",
							Rationale: "Code reviews are how juniors grow. Experience receiving feedback shows they've worked in collaborative environments and can learn from others' expertise.",
						},
						{
							Text:      "Do you write comments in your code?",
							Rationale: "While over-commenting is bad, juniors who add helpful comments show they think about future readers (including their future self). It demonstrates consideration for maintainability.",
						},
						{
							Text:      "Have you heard of coding standards or style guides?",
							Rationale: "Awareness of standards (like Airbnb style guide) shows exposure to professional practices. Teams need developers who can follow established conventions, not just personal preferences.",
						},
					},
				},
				{
					ID:       "collaboration",
					Label:    "Team Collaboration",
					MaxScore: 3,
					SampleQuestions: []Question{
						{
							Text:      "Have you worked on a team project before?",
							Rationale: "Team experience reveals collaboration fundamentals: coordinating with others, handling merge conflicts, and integrating work. Solo developers often struggle when joining teams.",
						},
						{
							Text:      "How do you handle feedback on your code?",
							Rationale: "Ego can kill growth. Juniors who are defensive about feedback struggle to improve. Look for humility and willingness to learn from critique.",
						},
						{
							Text:      "Do you feel comfortable asking for help when stuck?",
							Rationale: "Juniors who stay stuck for hours hurt velocity. Those who know when to ask for help (after trying themselves) learn faster and integrate better into teams.",
						},
						{
							Text:      "Have you pair programmed with someone?",
							Rationale: "Pair programming teaches collaboration, communication, and real-time problem solving. Experience with it shows comfort working closely with others and thinking out loud.",
						},
					},
				},
			},
		},
		Mid: {
			Threshold: 70,
			Competencies: []Competency{
				{
					ID:       "technical_depth",
					Label:    "Technical Depth",
					MaxScore: 4,
					SampleQuestions: []Question{
						{
							Text:      "Can you explain how async/await works in JavaScript?",
							Rationale: "Asynchronous programming is crucial for modern web development. Mid-level developers should understand promises, event loops, and async patterns beyond just using the syntax.",
						},
						{
							Text:      "Have you optimized database queries before?",
							Rationale: "Database performance separates mid from junior developers. Real optimization experience (indexes, query planning, N+1 fixes) shows they handle production-scale data problems.",
						},
						{
							Text:      "Can you describe different types of API authentication?",
							Rationale: "Security awareness is essential at mid-level. Understanding OAuth, JWT, API keys, etc. shows they build production-ready features, not just prototypes.",
						},
						{
							Text:      "Have you worked with state management libraries?",
							Rationale: "Complex UIs require state management (Redux, Zustand, Context). Experience with these tools indicates they've built real applications beyond simple CRUD forms.",
						},
					},
				},
				{
					ID:       "problem_solving",
					Label:    "Problem Solving",
					MaxScore: 4,
					SampleQuestions: []Question{
						{
							Text:      "Describe a complex bug you debugged and how you approached it",
							Rationale: "Debugging methodology reveals problem-solving skills. Strong mid-level developers use systematic approaches (reproduction steps, hypothesis testing, tools) rather than random trial and error.",
						},
						{
							Text:      "Have you refactored legacy code? What was your process?",
							Rationale: "Most professional work is enhancing existing systems, not greenfield. Refactoring experience shows they can understand unfamiliar code, improve it safely, and manage technical debt.",
						},
						{
							Text:      "How do you break down a large feature into smaller tasks?",
							Rationale: "Task decomposition is critical for mid-level autonomy. Good developers break work into reviewable chunks, identify dependencies, and deliver incrementally rather than big-bang releases.",
						},
						{
							Text:      "Tell me about a technical trade-off you had to make",
							Rationale: "Engineering is about trade-offs, not perfect solutions. This reveals awareness of competing priorities (speed vs quality, simplicity vs flexibility) and mature decision-making.",
						},
					},
				},
				{
					ID:       "autonomy",
					Label:    "Autonomy & Ownership",
					MaxScore: 4,
					SampleQuestions: []Question{
						{
							Text:      "Have you owned a feature from start to finish?",
							Rationale: "End-to-end ownership demonstrates mid-level capability. This includes requirements, design, implementation, testing, deployment, and monitoring - the full development lifecycle.",
						},
						{
							Text:      "Do you take initiative to improve code or processes?",
							Rationale: "Mid-level developers don't just complete tickets. They proactively improve things: refactor messy code, update docs, suggest better tools. This shows ownership beyond assigned tasks.",
						},
						{
							Text:      "How do you prioritize your work when you have multiple tasks?",
							Rationale: "Prioritization is a mid-level responsibility. Strong candidates consider urgency, impact, dependencies, and stakeholder needs - not just what's easiest or most interesting.",
						},
						{
							Text:      "Have you made architectural decisions for a project?",
							Rationale: "Mid-level developers start influencing architecture: choosing libraries, designing data models, planning folder structure. This shows growing technical leadership beyond just coding.",
						},
					},
				},
				{
					ID:       "communication",
					Label:    "Communication",
					MaxScore: 3,
					SampleQuestions: []Question{
						{
							Text:      "How do you explain technical concepts to non-technical people?",
							Rationale: "Developers must communicate with PMs, designers, and stakeholders. Ability to translate technical details into business language is crucial for mid-level effectiveness.",
						},
						{
							Text:      "Have you written technical documentation?",
							Rationale: "Documentation multiplies impact. READMEs, API docs, architecture decisions - these help teams scale knowledge beyond the original author and reduce future support burden.",
						},
						{
							Text:      "Do you participate in code reviews?",
							Rationale: "Code reviews are two-way learning. Mid-level developers should both give and receive feedback, catching bugs, sharing knowledge, and maintaining code standards across the team.",
						},
						{
							Text:      "How do you handle disagreements about technical approaches?",
							Rationale: "Technical disagreements are normal. Strong communicators listen, present data, seek to understand, and find compromise - rather than digging into positions or deferring everything.",
						},
					},
				},
			},
		},
		Senior: {
			Threshold: 85,
			Competencies: []Competency{
				{
					ID:       "technical_depth",
					Label:    "Technical Depth",
					MaxScore: 5,
					SampleQuestions: []Question{
						{
							Text:      "Have you designed a system that handles 10M+ daily active users?",
							Rationale: "Scale experience reveals understanding of distributed systems, caching strategies, and performance optimization. Senior developers should have battle-tested knowledge from real production challenges.",
						},
						{
							Text:      "Can you explain database indexing trade-offs without looking it up?",
							Rationale: "Deep technical knowledge should be internalized, not just searchable. This tests whether they truly understand performance fundamentals or rely heavily on documentation.",
						},
						{
							Text:      "Have you fixed a live app that was slow because it was making too many database calls?",
							Rationale: "When an app queries the database once for a list, then queries again for each item in that list (called \"N+1 queries\"), it creates major slowdowns. Senior developers have encountered and fixed this common performance problem in real production environments.",
						},
						{
							Text:      "Do you regularly consider memory allocation patterns when writing code?",
							Rationale: "Senior developers think beyond \"does it work\" to \"does it work efficiently.\" Memory awareness separates those who write code from those who write production-grade systems.",
						},
					},
				},
				{
					ID:       "practical_judgment",
					Label:    "Practical Judgment",
					MaxScore: 5,
					SampleQuestions: []Question{
						{
							Text:      "Describe a time you chose a simpler solution over a \"clever\" one",
							Rationale: "Senior developers prioritize maintainability over cleverness. This reveals their ability to balance technical elegance with team velocity and long-term code health.",
						},
						{
							Text:      "How do you decide when to refactor vs ship as-is?",
							Rationale: "Perfect code ships never. This tests business judgment alongside technical skills - understanding trade-offs between quality, speed, and customer value delivery.",
						},
						{
							Text:      "Have you made build vs buy decisions for your team?",
							Rationale: "Senior engineers influence technology choices. This reveals strategic thinking, vendor evaluation skills, and understanding of total cost of ownership beyond just writing code.",
						},
						{
							Text:      "Can you give an example of technical debt you decided to take on strategically?",
							Rationale: "Not all technical debt is bad. Strategic debt can accelerate learning or time-to-market. This tests mature judgment about when to compromise and how to manage it.",
						},
					},
				},
				{
					ID:       "communication_leadership",
					Label:    "Communication & Leadership",
					MaxScore: 5,
					SampleQuestions: []Question{
						{
							Text:      "Have you mentored junior developers? What was your approach?",
							Rationale: "Senior developers multiply their impact through others. Mentoring experience shows they can grow talent, share knowledge effectively, and contribute beyond their individual output.",
						},
						{
							Text:      "Describe how you influence technical direction without formal authority",
							Rationale: "Leadership isn't about titles. This reveals ability to build consensus, communicate vision, and drive change through influence - critical for senior IC roles.",
						},
						{
							Text:      "Have you led technical discussions or design reviews?",
							Rationale: "Senior engineers facilitate technical decisions. Leading design reviews demonstrates ability to guide conversations, weigh options objectively, and build alignment across teams.",
						},
						{
							Text:      "How do you handle pushback on your technical recommendations?",
							Rationale: "Disagreement is inevitable. This tests emotional intelligence, ability to listen to other perspectives, and skill in finding collaborative solutions rather than winning arguments.",
						},
					},
				},
				{
					ID:       "experience_quality",
					Label:    "Experience Quality",
					MaxScore: 4,
					SampleQuestions: []Question{
						{
							Text:      "What's the most complex system you've designed from scratch?",
							Rationale: "System design from scratch reveals architectural thinking, component planning, and ability to handle ambiguity. Complexity of past work often predicts capability.",
						},
						{
							Text:      "Have you been on-call for production systems? Describe an incident",
							Rationale: "Production ownership builds accountability and systems thinking. On-call experience shows they understand real-world reliability, monitoring, and the full software lifecycle.",
						},
						{
							Text:      "Tell me about a project that failed and what you learned",
							Rationale: "Failure teaches better than success. Senior candidates should have perspective on what went wrong, ownership of mistakes, and demonstrate growth mindset.",
						},
						{
							Text:      "Have you worked on systems with compliance requirements (GDPR, SOC2, etc.)?",
							Rationale: "Enterprise-grade systems often have regulatory constraints. This experience shows ability to balance technical requirements with legal/compliance needs in real products.",
						},
					},
				},
			},
		},
	}
}
