package vocabulary

// builtinSkills maps each category to its known skill tokens. This is the
// ground truth for matching when no database vocabulary is configured, and
// the fallback when a database load fails.
var builtinSkills = map[string][]string{
	CategoryLanguages: {
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "golang", "php",
		"swift", "kotlin", "rust", "scala", "perl", "r", "bash", "shell", "sql", "html", "css",
	},
	CategoryFrameworks: {
		"react", "angular", "vue", "django", "flask", "spring", "express", "node.js", "nodejs",
		"laravel", "rails", "asp.net", ".net", "tensorflow", "pytorch", "keras", "pandas",
		"numpy", "scikit-learn", "bootstrap", "jquery", "symfony", "fastapi",
	},
	CategoryDatabases: {
		"mysql", "postgresql", "postgres", "mongodb", "sqlite", "oracle", "sql server", "redis",
		"elasticsearch", "dynamodb", "cassandra", "mariadb", "neo4j", "couchdb", "firebase",
	},
	CategoryCloud: {
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean", "kubernetes", "docker",
		"terraform", "lambda", "ec2", "s3", "rds", "cloudfront", "route53", "ecs", "eks",
	},
	CategoryTools: {
		"git", "github", "gitlab", "bitbucket", "jira", "jenkins", "travis", "circleci", "ansible",
		"puppet", "chef", "kubernetes", "docker", "nginx", "apache", "linux", "unix", "windows",
		"macos", "agile", "scrum", "kanban", "ci/cd", "cicd",
	},
}

// Vocabulary categories.
const (
	CategoryLanguages  = "languages"
	CategoryFrameworks = "frameworks"
	CategoryDatabases  = "databases"
	CategoryCloud      = "cloud"
	CategoryTools      = "tools"
)

// Builtin returns the static vocabulary compiled into the binary.
func Builtin() *Vocabulary {
	return New(builtinSkills)
}
