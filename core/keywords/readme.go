package keywords

// ReadmeCategories is the keyword dictionary scanned in documentation text.
var ReadmeCategories = []Category{
	{
		Name: "framework",
		Keywords: []string{
			"react", "vue", "angular", "django", "flask", "fastapi", "express", "spring",
			"laravel", "rails", "nextjs", "nuxt", "gatsby", "nest", "svelte", "ember",
			"backbone", "meteor", "koa", "hapi", "sails", "adonis", "strapi", "feathers",
			"loopback", "redux", "mobx", "vuex", "rxjs", "jquery", "bootstrap", "tailwind",
			"material-ui", "ant-design", "chakra-ui", "semantic-ui",
		},
	},
	{
		Name: "database",
		Keywords: []string{
			"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "cassandra", "dynamodb",
			"sqlite", "mariadb", "oracle", "mssql", "couchdb", "neo4j", "influxdb", "firebase",
			"supabase", "planetscale", "cockroachdb", "timescaledb",
		},
	},
	{
		Name: "tool",
		Keywords: []string{
			"docker", "kubernetes", "jenkins", "travis", "circleci", "github actions",
			"gitlab ci", "webpack", "babel", "eslint", "prettier", "jest", "pytest", "mocha",
			"chai", "cypress", "selenium", "playwright", "puppeteer", "vite", "rollup",
			"parcel", "grunt", "gulp", "terraform", "ansible", "vagrant", "nginx", "apache",
			"pm2", "nodemon",
		},
	},
	{
		Name: "language",
		Keywords: []string{
			"javascript", "typescript", "python", "java", "csharp", "cpp", "go", "rust", "php",
			"ruby", "swift", "kotlin", "scala", "dart", "elixir", "clojure", "haskell", "r",
			"matlab",
		},
	},
}

// Stopwords filters generic words out of package and import extraction.
var Stopwords = newSet(
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when", "at", "from", "into",
	"during", "including", "until", "against", "among", "throughout", "despite", "towards",
	"upon", "of", "for", "on", "in", "to", "as", "by", "with", "about", "like", "through",
	"over", "before", "after", "above", "below", "up", "down", "out", "off", "within", "is",
	"are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "should", "could", "may", "might", "must", "can", "shall", "get", "set",
	"make", "take", "use", "used", "using", "one", "two", "first", "last", "new", "old", "good",
	"bad", "requirements", "requirement", "install", "installation", "setup", "config",
	"configuration", "settings", "options", "example", "examples", "test", "tests", "testing",
	"build", "builds", "run", "running", "start", "stop", "restart", "dev", "development",
	"prod", "production", "env", "environment", "var", "variable", "path", "file", "files",
	"folder", "directory", "src", "source", "dist", "output", "input", "app", "application",
	"server", "client", "api", "endpoint", "route", "package", "packages", "module", "modules",
	"lib", "library", "libraries", "node", "npm", "pip", "gem", "cargo", "composer", "yarn",
	"pnpm", "version", "versions", "update", "upgrade", "latest", "stable", "foo", "bar", "baz",
	"qux", "temp", "tmp", "data", "value", "item", "obj", "object", "arr", "array", "list",
	"dict", "map", "key", "val", "readme", "license", "contributing", "changelog", "todo",
	"note", "notes", "docs", "documentation", "guide", "tutorial", "getting", "started",
	"quick", "quickstart", "introduction", "overview",
)
