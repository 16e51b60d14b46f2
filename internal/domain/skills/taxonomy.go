package skills

import (
	"regexp"
	"strings"
)

// The taxonomy is a static curated vocabulary. Declaration order is part of
// the contract: extracted sets preserve it, and the positional
// required/preferred fallback split in the matcher depends on it.

var technicalSkills = []string{
	// Programming languages
	"python", "java", "javascript", "c++", "c#", "r", "sql", "scala", "go", "rust",
	"typescript", "php", "swift", "kotlin", "ruby", "matlab", "julia", "perl", "bash",

	// Data science and ML core
	"machine learning", "ml", "deep learning", "nlp", "natural language processing",
	"computer vision", "data science", "data analysis", "statistics", "statistical analysis",
	"pandas", "numpy", "scikit-learn", "sklearn", "tensorflow", "pytorch", "keras",
	"lightgbm", "xgboost", "catboost", "scikit learn",

	// AI and generative AI
	"generative ai", "genai", "gen ai", "llm", "llms", "large language model",
	"large language models", "langchain", "hugging face", "huggingface", "openai",
	"vertex ai", "prompt engineering", "ai agents", "ai agent", "copilot", "copilots",
	"chatgpt", "gpt", "gpt-4", "gpt-3", "claude", "bedrock", "sagemaker",
	"fine-tuning", "rag", "retrieval augmented generation", "embedding", "embeddings",
	"transformer", "transformers", "bert", "attention mechanism",

	// Big data and cloud
	"aws", "amazon web services", "azure", "microsoft azure", "gcp", "google cloud",
	"google cloud platform", "spark", "pyspark", "hadoop", "kafka", "airflow",
	"apache airflow", "databricks", "snowflake", "bigquery", "redshift", "s3",
	"lambda", "ec2", "emr", "glue", "kinesis", "cloud computing",

	// Databases
	"mysql", "postgresql", "postgres", "mongodb", "redis", "cassandra", "dynamodb",
	"oracle", "sql server", "mariadb", "sqlite", "neo4j", "elasticsearch", "nosql",
	"database", "databases", "rdbms", "data modeling",

	// Tools and frameworks (web/API)
	"git", "github", "gitlab", "docker", "kubernetes", "k8s", "jenkins", "terraform",
	"ansible", "flask", "django", "fastapi", "react", "reactjs", "node.js", "nodejs",
	"spring boot", "express", "vue", "angular", "rest api", "restful", "graphql",
	"microservices", "api", "apis",

	// BI and visualization
	"tableau", "power bi", "powerbi", "looker", "qlik", "excel", "powerpoint",
	"google sheets", "data visualization", "dataviz", "dashboards", "reporting",
	"matplotlib", "seaborn", "plotly", "d3.js", "d3",

	// Data engineering and ETL
	"etl", "elt", "data pipeline", "data pipelines", "data warehouse", "data warehousing",
	"data lake", "data lakes", "dbt", "fivetran", "stitch", "talend", "informatica",
	"alteryx", "dataflow", "beam", "apache beam", "data integration",

	// MLOps and DevOps
	"mlops", "devops", "ci/cd", "continuous integration", "continuous deployment",
	"mlflow", "kubeflow", "github actions", "circleci", "travis ci", "gitlab ci",
	"monitoring", "logging", "observability", "prometheus", "grafana",

	// Testing and quality
	"pytest", "unittest", "testing", "test automation", "selenium", "junit",
	"integration testing", "unit testing", "tdd", "test driven development",

	// Collaboration and project management
	"jira", "confluence", "slack", "teams", "notion", "asana", "trello",
	"agile", "scrum", "kanban", "sprint", "version control",

	// Business and productivity
	"word", "microsoft office", "google workspace",
	"presentations", "documentation", "technical writing",

	// Automation and RPA
	"rpa", "robotic process automation", "uipath", "automation anywhere",
	"blue prism", "power automate", "automation", "workflow automation",

	// Security and compliance
	"security", "cybersecurity", "encryption", "authentication", "authorization",
	"oauth", "jwt", "ssl", "tls", "compliance", "gdpr", "hipaa", "soc2",

	// Networking and systems
	"networking", "tcp/ip", "http", "https", "dns", "load balancing",
	"linux", "unix", "windows", "macos", "system administration",

	// Specific tools and platforms
	"jupyter", "jupyter notebook", "colab", "google colab", "vscode", "pycharm",
	"intellij", "sublime", "vim", "emacs", "postman", "swagger",

	// Retrieval and agent tooling
	"mcp", "mcps", "model context protocol", "llamaindex",
	"semantic search", "vector database", "vector databases", "pinecone", "weaviate",
	"chromadb", "faiss", "annoy",

	// Methodologies and concepts
	"waterfall", "design patterns", "system design",
	"distributed systems", "scalability", "performance optimization",
	"data structures", "algorithms", "object oriented programming", "oop",
	"functional programming", "async", "asynchronous programming",
}

var educationLevels = []string{
	"phd", "ph.d", "doctorate", "doctoral", "master", "masters", "master's", "msc", "m.sc",
	"bachelor", "bachelors", "bachelor's", "bs", "b.s", "ba", "b.a", "ms", "m.s",
	"mba", "ma", "m.a", "undergraduate", "graduate", "postgraduate", "associate",
	"degree", "certification", "certificate", "certified",
}

var experienceLevels = []string{
	"intern", "internship", "entry level", "entry-level", "junior", "mid level",
	"mid-level", "senior", "sr", "lead", "principal", "staff", "architect",
	"years experience", "years of experience", "yoe",
}

// term is a taxonomy entry with its precompiled matching pattern.
type term struct {
	text string
	re   *regexp.Regexp
}

var (
	technicalTerms  = compile(technicalSkills, technicalPattern)
	educationTerms  = compile(educationLevels, boundedPattern)
	experienceTerms = compile(experienceLevels, literalPattern)
)

func compile(values []string, pattern func(string) string) []term {
	out := make([]term, len(values))
	for i, v := range values {
		out[i] = term{text: v, re: regexp.MustCompile(pattern(v))}
	}
	return out
}

// technicalPattern builds the lexical-variant pattern for one skill term.
// Terms ending in "s" also match their singular; other terms also match a
// trailing-"s" plural. Multi-word phrases match as plain substrings; single
// tokens are word-boundary anchored so terms like "r" or "go" do not match
// inside unrelated words.
func technicalPattern(t string) string {
	quoted := regexp.QuoteMeta(t)
	var alt string
	if strings.HasSuffix(t, "s") {
		alt = "(" + quoted + "|" + regexp.QuoteMeta(strings.TrimSuffix(t, "s")) + ")"
	} else {
		alt = "(" + quoted + "|" + quoted + "s)"
	}
	if strings.Contains(t, " ") {
		return alt
	}
	return `\b` + alt + `\b`
}

// boundedPattern matches the exact term at word boundaries.
func boundedPattern(t string) string {
	return `\b` + regexp.QuoteMeta(t) + `\b`
}

// literalPattern matches the exact term anywhere, so "internship" also
// triggers "intern".
func literalPattern(t string) string {
	return regexp.QuoteMeta(t)
}

// TechnicalVocabulary returns the technical taxonomy in declaration order.
func TechnicalVocabulary() []string {
	out := make([]string, len(technicalSkills))
	copy(out, technicalSkills)
	return out
}
