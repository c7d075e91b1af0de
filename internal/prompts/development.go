package prompts

var developmentPrompts = []Prompt{
	{
		Name:        "code_review_prompt",
		Description: "Generate a comprehensive code review checklist and guidelines.",
		Category:    "development",
		Text:        codeReviewText,
	},
	{
		Name:        "debugging_prompt",
		Description: "Provide a systematic debugging approach and common troubleshooting steps.",
		Category:    "development",
		Text:        debuggingText,
	},
	{
		Name:        "quality_specialist_prompt",
		Description: "Code quality specialist focused on establishing and enforcing consistent development standards across teams.",
		Category:    "development",
		Text:        qualitySpecialistText,
	},
	{
		Name:        "git_workflow_prompt",
		Description: "Provide git workflow best practices and common commands.",
		Category:    "development",
		Text:        gitWorkflowText,
	},
	{
		Name:        "project_structure_prompt",
		Description: "Provide guidelines for organizing project structure and architecture.",
		Category:    "development",
		Text:        projectStructureText,
	},
}

const codeReviewText = `
# Code Review Checklist

## Functionality
- [ ] Does the code do what it's supposed to do?
- [ ] Are edge cases handled properly?
- [ ] Are error conditions handled gracefully?
- [ ] Is the logic clear and correct?

## Code Quality
- [ ] Is the code readable and well-structured?
- [ ] Are variable and function names descriptive?
- [ ] Is the code properly commented where necessary?
- [ ] Are there any code smells or anti-patterns?

## Performance
- [ ] Are there any obvious performance bottlenecks?
- [ ] Is memory usage appropriate?
- [ ] Are expensive operations optimized or cached?

## Security
- [ ] Are there any security vulnerabilities?
- [ ] Is user input properly validated and sanitized?
- [ ] Are secrets and sensitive data handled securely?

## Testing
- [ ] Is the code testable?
- [ ] Are there adequate tests covering the functionality?
- [ ] Do tests cover edge cases and error conditions?

## Documentation
- [ ] Is the code properly documented?
- [ ] Are API changes documented?
- [ ] Is the README updated if necessary?
`

const debuggingText = `
# Debugging Methodology

## 1. Understand the Problem
- What is the expected behavior?
- What is the actual behavior?
- When did the issue start occurring?
- Can you reproduce the issue consistently?

## 2. Gather Information
- Check error messages and logs
- Identify the scope of the issue
- Document the steps to reproduce
- Note any recent changes to the codebase

## 3. Form Hypotheses
- What could be causing this issue?
- List potential root causes
- Prioritize hypotheses by likelihood

## 4. Test Hypotheses
- Use debugging tools (debugger, print statements, logging)
- Test one hypothesis at a time
- Isolate variables and test components separately
- Use binary search to narrow down the problem area

## 5. Common Debugging Techniques
- Rubber duck debugging - explain the problem out loud
- Add logging and print statements strategically
- Use a debugger to step through code
- Check assumptions and validate inputs
- Review recent changes and git history
- Test with different inputs and edge cases

## 6. Verify the Fix
- Confirm the issue is resolved
- Test related functionality
- Add tests to prevent regression
- Document the solution
`

const qualitySpecialistText = `
# Code Quality Specialist

You are a code quality specialist focused on establishing and enforcing consistent development standards across teams and projects.

## Standards Enforcement Expertise

- Coding style guide creation and customization
- Linting and formatting tool configuration (ESLint, Prettier, SonarQube)
- Git hooks and pre-commit workflow automation
- Code review checklist development and automation
- Architectural decision record (ADR) template creation
- Documentation standards and API specification enforcement
- Performance benchmarking and quality gate establishment
- Dependency management and security policy enforcement

## Quality Assurance Framework

1. Automated code formatting on commit with Prettier/Black
2. Comprehensive linting rules for language-specific best practices
3. Architecture compliance checking with custom rules
4. Naming convention enforcement across codebase
5. Comment and documentation quality assessment
6. Test coverage thresholds and quality metrics
7. Performance regression detection in CI pipeline
8. Security policy compliance verification

## Enforceable Standards Categories

- Code formatting and indentation consistency
- Naming conventions for variables, functions, and classes
- File and folder structure organization patterns
- Import/export statement ordering and grouping
- Error handling and logging standardization
- Database query optimization and ORM usage patterns
- API design consistency and REST/GraphQL standards
- Component architecture and design pattern adherence
- Configuration management and environment variable handling

## Implementation Strategy

- Gradual rollout with team education and training
- IDE integration for real-time feedback and correction
- CI/CD pipeline integration with quality gates
- Custom rule development for organization-specific needs
- Metrics dashboard for code quality trend tracking
- Exception management for legacy code migration
- Team onboarding automation with standards documentation
- Regular standards review and community feedback integration
- Tool version management and configuration synchronization

Establish maintainable quality standards that enhance team productivity while ensuring consistent, professional codebase evolution. Focus on automation over manual enforcement to reduce friction and improve developer experience.
`

const gitWorkflowText = `
# Git Workflow Best Practices

## Basic Workflow
1. Pull latest changes: ` + "`git pull origin main`" + `
2. Create feature branch: ` + "`git checkout -b feature/your-feature-name`" + `
3. Make changes and commit frequently
4. Push to remote: ` + "`git push -u origin feature/your-feature-name`" + `
5. Create pull request for review
6. Merge after approval and delete feature branch

## Commit Best Practices
- Write clear, descriptive commit messages
- Use imperative mood: "Add feature" not "Added feature"
- Keep commits atomic (one logical change per commit)
- Commit frequently but push when ready

## Common Git Commands
` + "```bash" + `
# Status and information
git status                  # Show working tree status
git log --oneline          # Show commit history
git diff                   # Show unstaged changes
git diff --staged          # Show staged changes

# Staging and committing
git add .                  # Stage all changes
git add <file>             # Stage specific file
git commit -m "message"    # Commit with message
git commit --amend         # Modify last commit

# Branching
git branch                 # List branches
git checkout -b <branch>   # Create and switch to branch
git checkout <branch>      # Switch to existing branch
git branch -d <branch>     # Delete merged branch

# Remote operations
git push origin <branch>   # Push branch to remote
git pull                   # Fetch and merge from remote
git fetch                  # Fetch from remote without merging
` + "```" + `

## Merge Conflicts
1. Pull latest changes
2. Git will mark conflicted files
3. Edit files to resolve conflicts
4. Remove conflict markers (<<<<<<<, =======, >>>>>>>)
5. Stage resolved files: ` + "`git add <file>`" + `
6. Complete merge: ` + "`git commit`" + `
`

const projectStructureText = `
# Project Structure Guidelines

## Python Project Structure
` + "```" + `
project/
├── README.md
├── requirements.txt / pyproject.toml
├── .env / .env.example
├── .gitignore
├── setup.py / setup.cfg (if packaging)
├── src/
│   └── package_name/
│       ├── __init__.py
│       ├── main.py
│       ├── models/
│       ├── services/
│       ├── utils/
│       └── config/
├── tests/
│   ├── __init__.py
│   ├── test_main.py
│   └── fixtures/
├── docs/
├── scripts/
└── data/ (if needed)
` + "```" + `

## MCP Server Organization Strategies

### Option 1: Monolithic Structure
- Single server.py file with all tools/prompts/resources
- Good for: Small servers, rapid prototyping
- Pros: Simple, easy to understand
- Cons: Hard to maintain as it grows

### Option 2: Modular Structure
` + "```" + `
mcp-server/
├── server.py (main entry point)
├── tools/
│   ├── __init__.py
│   ├── file_tools.py
│   ├── system_tools.py
│   └── math_tools.py
├── prompts/
│   ├── __init__.py
│   ├── development.py
│   └── documentation.py
├── resources/
│   ├── __init__.py
│   └── system_resources.py
├── config/
│   ├── __init__.py
│   └── settings.py
└── utils/
    ├── __init__.py
    └── helpers.py
` + "```" + `

### Option 3: Feature-Based Structure
` + "```" + `
mcp-server/
├── server.py
├── features/
│   ├── development/
│   │   ├── tools.py
│   │   ├── prompts.py
│   │   └── resources.py
│   ├── system/
│   │   ├── tools.py
│   │   └── resources.py
│   └── documentation/
│       └── prompts.py
└── shared/
    ├── config.py
    └── utils.py
` + "```" + `

## Choosing the Right Structure
- **Size**: Larger projects benefit from more modular approaches
- **Team**: Multiple developers need clear separation
- **Features**: Related functionality should be grouped together
- **Maintenance**: Consider long-term maintainability
- **Testing**: Structure should support easy testing
`
