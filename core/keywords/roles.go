package keywords

// Role is a primary role together with the roles a candidate also suits.
type Role struct {
	Primary  string
	Suitable []string
}

// FrameworkGroup maps a family of frameworks to a role.
type FrameworkGroup struct {
	Name       string
	Frameworks []string
	Role       Role
}

// LanguageRole maps a lowercase language name to a role.
type LanguageRole struct {
	Language string
	Role     Role
}

// DomainRole maps a business domain to a role.
type DomainRole struct {
	Domain string
	Role   Role
}

// GenericRole is the last-resort recommendation.
var GenericRole = Role{Primary: "Software Engineer", Suitable: []string{"Software Engineer", "Full-stack Developer"}}

// LanguageFallbackRole is returned by the language table when nothing matches.
var LanguageFallbackRole = Role{Primary: "Software Engineer", Suitable: []string{"Software Engineer", "Developer"}}

// FrameworkGroups are checked in order; the first group with a detected
// framework decides the role.
var FrameworkGroups = []FrameworkGroup{
	{
		Name: "mobile",
		Frameworks: []string{
			"react-native", "react native", "flutter", "ionic", "xamarin", "expo", "cordova",
			"capacitor", "nativescript",
		},
		Role: Role{"Mobile Developer", []string{
			"Mobile Developer", "React Native Developer", "Flutter Developer",
			"Cross-platform Developer", "Full-stack Developer",
		}},
	},
	{
		Name: "frontend",
		Frameworks: []string{
			"react", "vue", "angular", "svelte", "next.js", "nuxt", "gatsby", "preact", "solid",
			"qwik", "astro", "remix", "vite", "webpack", "parcel", "rollup", "esbuild", "tailwind",
			"bootstrap", "material-ui", "chakra", "styled-components", "emotion",
		},
		Role: Role{"Frontend Developer", []string{
			"Frontend Developer", "React Developer", "Vue Developer", "Full-stack Developer",
			"UI Developer", "Frontend Engineer",
		}},
	},
	{
		Name: "backend",
		Frameworks: []string{
			"django", "flask", "fastapi", "express", "nest.js", "nestjs", "koa", "spring",
			"spring boot", "laravel", "symfony", "rails", "ruby on rails", "asp.net", "dotnet",
			".net", "gin", "echo", "fiber", "actix", "rocket", "phoenix", "elixir", "play", "ktor",
			"micronaut", "quarkus", "grpc",
		},
		Role: Role{"Backend Developer", []string{
			"Backend Developer", "API Developer", "Backend Engineer", "Full-stack Developer",
			"Microservices Developer",
		}},
	},
	{
		Name:       "fullstack",
		Frameworks: []string{"next.js", "nuxt", "remix", "meteor", "sveltekit", "blitz"},
		Role: Role{"Full-stack Developer", []string{
			"Full-stack Developer", "Web Developer", "Frontend Developer", "Backend Developer",
		}},
	},
	{
		Name: "data-science",
		Frameworks: []string{
			"pandas", "numpy", "scipy", "matplotlib", "seaborn", "plotly", "scikit-learn",
			"sklearn", "statsmodels", "dask", "polars", "jupyter", "notebook", "spark", "pyspark",
			"airflow", "prefect",
		},
		Role: Role{"Data Scientist", []string{
			"Data Scientist", "Data Analyst", "Analytics Engineer", "Business Intelligence Developer",
		}},
	},
	{
		Name: "machine-learning",
		Frameworks: []string{
			"tensorflow", "pytorch", "keras", "jax", "mxnet", "caffe", "theano", "transformers",
			"hugging face", "openai", "langchain", "llamaindex", "mlflow", "wandb", "optuna", "ray",
			"xgboost", "lightgbm", "catboost",
		},
		Role: Role{"ML Engineer", []string{
			"ML Engineer", "Machine Learning Engineer", "AI Developer", "Research Engineer",
			"MLOps Engineer",
		}},
	},
	{
		Name: "devops",
		Frameworks: []string{
			"docker", "kubernetes", "k8s", "terraform", "ansible", "jenkins", "github actions",
			"gitlab ci", "circleci", "travis", "helm", "kustomize", "prometheus", "grafana",
			"datadog", "new relic", "vagrant", "packer", "consul", "vault", "nomad", "pulumi",
			"cloudformation", "aws cdk",
		},
		Role: Role{"DevOps Engineer", []string{
			"DevOps Engineer", "Cloud Engineer", "Platform Engineer", "SRE",
			"Infrastructure Engineer", "Kubernetes Engineer",
		}},
	},
	{
		Name: "game",
		Frameworks: []string{
			"unity", "unreal", "godot", "pygame", "phaser", "three.js", "babylon.js", "cocos2d",
			"libgdx", "monogame", "love2d", "raylib", "bevy", "amethyst",
		},
		Role: Role{"Game Developer", []string{
			"Game Developer", "Unity Developer", "Unreal Developer", "Game Engineer",
			"Graphics Programmer",
		}},
	},
	{
		Name: "blockchain",
		Frameworks: []string{
			"web3", "ethers", "web3.js", "truffle", "hardhat", "brownie", "solidity", "anchor",
			"solana", "ethereum", "polygon", "wagmi",
		},
		Role: Role{"Blockchain Developer", []string{
			"Blockchain Developer", "Web3 Developer", "Smart Contract Developer", "DeFi Developer",
		}},
	},
	{
		Name: "testing",
		Frameworks: []string{
			"jest", "pytest", "mocha", "chai", "jasmine", "karma", "vitest", "cypress",
			"playwright", "selenium", "puppeteer", "testcafe", "junit", "testng", "rspec",
			"minitest", "unittest", "nose",
		},
		Role: Role{"QA Engineer", []string{
			"QA Engineer", "Test Automation Engineer", "SDET", "Quality Assurance Engineer",
		}},
	},
	{
		Name: "database",
		Frameworks: []string{
			"mongodb", "postgres", "postgresql", "mysql", "redis", "elasticsearch", "cassandra",
			"dynamodb", "firestore", "supabase", "prisma", "sequelize", "typeorm", "mongoose",
			"sqlalchemy", "alembic", "knex", "drizzle",
		},
		Role: Role{"Data Engineer", []string{
			"Data Engineer", "Database Engineer", "Backend Developer", "Data Platform Engineer",
		}},
	},
	{
		Name: "embedded",
		Frameworks: []string{
			"arduino", "raspberry", "esp32", "micropython", "circuitpython", "freertos", "zephyr",
			"mbed", "platformio", "embedded",
		},
		Role: Role{"Embedded Systems Engineer", []string{
			"Embedded Systems Engineer", "IoT Developer", "Firmware Engineer", "Hardware Engineer",
		}},
	},
	{
		Name: "desktop",
		Frameworks: []string{
			"electron", "tauri", "qt", "pyqt", "tkinter", "wxpython", "kivy", "gtk", "winforms",
			"wpf", "javafx", "swing", "avalonia",
		},
		Role: Role{"Desktop Developer", []string{
			"Desktop Developer", "Application Developer", "Cross-platform Developer",
			"Software Engineer",
		}},
	},
	{
		Name: "api",
		Frameworks: []string{
			"graphql", "apollo", "prisma", "hasura", "postgraphile", "swagger", "openapi", "grpc",
			"protobuf", "kafka", "rabbitmq", "redis", "nats",
		},
		Role: Role{"API Developer", []string{
			"API Developer", "Backend Developer", "Microservices Developer", "Integration Engineer",
		}},
	},
}

// LanguageRoles maps the most used language to a role.
var LanguageRoles = []LanguageRole{
	{"python", Role{"Python Developer", []string{"Python Developer", "Backend Developer", "Data Engineer"}}},
	{"javascript", Role{"Full-stack Developer", []string{"Full-stack Developer", "Frontend Developer", "Backend Developer"}}},
	{"typescript", Role{"Full-stack Developer", []string{"Full-stack Developer", "Frontend Developer", "Backend Developer"}}},
	{"java", Role{"Backend Developer", []string{"Backend Developer", "Enterprise Developer", "Software Engineer"}}},
	{"kotlin", Role{"Android Developer", []string{"Android Developer", "Mobile Developer", "Backend Developer"}}},
	{"swift", Role{"iOS Developer", []string{"iOS Developer", "Mobile Developer"}}},
	{"dart", Role{"Flutter Developer", []string{"Flutter Developer", "Mobile Developer"}}},
	{"go", Role{"Backend Developer", []string{"Backend Developer", "Systems Engineer", "Cloud Engineer"}}},
	{"rust", Role{"Systems Engineer", []string{"Systems Engineer", "Backend Developer", "Performance Engineer"}}},
	{"c++", Role{"Systems Engineer", []string{"Systems Engineer", "Game Developer", "Performance Engineer"}}},
	{"c#", Role{"Full-stack Developer", []string{"Full-stack Developer", "Game Developer", ".NET Developer"}}},
	{"php", Role{"Backend Developer", []string{"Backend Developer", "Web Developer", "Full-stack Developer"}}},
	{"ruby", Role{"Backend Developer", []string{"Backend Developer", "Web Developer", "Full-stack Developer"}}},
	{"r", Role{"Data Scientist", []string{"Data Scientist", "Data Analyst", "Statistician"}}},
	{"scala", Role{"Backend Developer", []string{"Backend Developer", "Data Engineer", "Big Data Engineer"}}},
}

// DomainRoles maps every business domain, plus the generic fallback domain, to a role.
var DomainRoles = []DomainRole{
	{"AI & Machine Learning", Role{"AI/ML Engineer", []string{"AI/ML Engineer", "Machine Learning Engineer", "Data Scientist"}}},
	{"Computer Vision", Role{"Computer Vision Engineer", []string{"Computer Vision Engineer", "AI/ML Engineer", "Research Engineer"}}},
	{"Natural Language Processing", Role{"NLP Engineer", []string{"NLP Engineer", "AI/ML Engineer", "Research Scientist"}}},
	{"Data Science & Analytics", Role{"Data Scientist", []string{"Data Scientist", "Data Analyst", "ML Engineer"}}},
	{"Data Engineering", Role{"Data Engineer", []string{"Data Engineer", "Big Data Engineer", "ETL Developer"}}},
	{"Blockchain & Web3", Role{"Blockchain Developer", []string{"Blockchain Developer", "Smart Contract Developer", "Web3 Engineer"}}},
	{"Mobile Development", Role{"Mobile Developer", []string{"Mobile Developer", "iOS Developer", "Android Developer", "Flutter Developer"}}},
	{"Game Development", Role{"Game Developer", []string{"Game Developer", "Unity Developer", "Game Engineer", "Graphics Programmer"}}},
	{"DevOps & Cloud", Role{"DevOps Engineer", []string{"DevOps Engineer", "Cloud Engineer", "SRE", "Platform Engineer"}}},
	{"Cybersecurity", Role{"Security Engineer", []string{"Security Engineer", "Cybersecurity Analyst", "Penetration Tester", "Security Architect"}}},
	{"IoT & Embedded", Role{"Embedded Systems Engineer", []string{"Embedded Systems Engineer", "IoT Developer", "Firmware Engineer"}}},
	{"Frontend Development", Role{"Frontend Developer", []string{"Frontend Developer", "UI Developer", "React Developer", "Vue Developer"}}},
	{"Backend Development", Role{"Backend Developer", []string{"Backend Developer", "API Developer", "Microservices Developer"}}},
	{"Web Development", Role{"Full-stack Developer", []string{"Full-stack Developer", "Web Developer", "Software Engineer"}}},
	{"UI/UX Design", Role{"UI/UX Developer", []string{"UI/UX Developer", "Frontend Developer", "Design Engineer"}}},
	{"Finance (FinTech)", Role{"FinTech Developer", []string{"FinTech Developer", "Financial Software Engineer", "Backend Developer"}}},
	{"Healthcare", Role{"Healthcare Software Engineer", []string{"Healthcare Software Engineer", "Medical Software Developer", "Health Tech Developer"}}},
	{"E-commerce", Role{"E-commerce Developer", []string{"E-commerce Developer", "Full-stack Developer", "Platform Engineer"}}},
	{"Education (EdTech)", Role{"EdTech Developer", []string{"EdTech Developer", "Full-stack Developer", "LMS Developer"}}},
	{"Enterprise Software", Role{"Enterprise Software Engineer", []string{"Enterprise Software Engineer", "Backend Developer", "Solutions Architect"}}},
	{"Civil Engineering & Construction", Role{"Civil Engineering Software Developer", []string{"Civil Engineering Software Developer", "CAD/BIM Developer", "Construction Tech"}}},
	{"Architecture & Design", Role{"Architecture Software Developer", []string{"Architecture Software Developer", "CAD Developer", "3D Visualization Developer"}}},
	{"Accounting & Auditing", Role{"Accounting Software Developer", []string{"Accounting Software Developer", "Financial Software Engineer", "ERP Developer"}}},
	{"Legal & Compliance", Role{"Legal Tech Developer", []string{"Legal Tech Developer", "Compliance Software Engineer", "RegTech Developer"}}},
	{"Real Estate & Property", Role{"PropTech Developer", []string{"PropTech Developer", "Real Estate Platform Engineer", "Full-stack Developer"}}},
	{"Manufacturing & Supply Chain", Role{"Manufacturing Software Engineer", []string{"Manufacturing Software Engineer", "Supply Chain Developer", "MES Developer"}}},
	{"Logistics & Transportation", Role{"Logistics Software Engineer", []string{"Logistics Software Engineer", "Transportation Tech Developer", "Fleet Management Developer"}}},
	{"Hospitality & Tourism", Role{"Hospitality Tech Developer", []string{"Hospitality Tech Developer", "Booking Platform Engineer", "Travel Tech Developer"}}},
	{"Agriculture & Food Tech", Role{"AgTech Developer", []string{"AgTech Developer", "Agricultural Software Engineer", "Farm Management Developer"}}},
	{"Energy & Utilities", Role{"Energy Tech Developer", []string{"Energy Tech Developer", "Utilities Software Engineer", "Smart Grid Developer"}}},
	{"Telecommunications", Role{"Telecom Software Engineer", []string{"Telecom Software Engineer", "Network Software Developer", "5G Developer"}}},
	{"Media & Publishing", Role{"Media Tech Developer", []string{"Media Tech Developer", "Content Platform Engineer", "Publishing Platform Developer"}}},
	{"Human Resources & Recruitment", Role{"HR Tech Developer", []string{"HR Tech Developer", "Recruitment Platform Engineer", "ATS Developer"}}},
	{"Consulting & Professional Services", Role{"Consulting Tech Developer", []string{"Consulting Tech Developer", "Business Solutions Developer", "CRM Developer"}}},
	{"Insurance & Risk Management", Role{"InsurTech Developer", []string{"InsurTech Developer", "Insurance Software Engineer", "Risk Analytics Developer"}}},
	{"Retail & Point of Sale", Role{"Retail Tech Developer", []string{"Retail Tech Developer", "POS Developer", "Inventory Management Developer"}}},
	{"Non-Profit & NGO", Role{"Non-Profit Tech Developer", []string{"Non-Profit Tech Developer", "Social Impact Developer", "Donor Management Developer"}}},
	{"Marketing & SEO", Role{"Marketing Tech Developer", []string{"Marketing Tech Developer", "MarTech Engineer", "SEO Platform Developer"}}},
	{"Media & Entertainment", Role{"Entertainment Tech Developer", []string{"Entertainment Tech Developer", "Streaming Platform Engineer", "Media Developer"}}},
	{"Social & Communication", Role{"Social Platform Developer", []string{"Social Platform Developer", "Communication App Developer", "Community Platform Engineer"}}},
	{"Software Development", Role{"Software Engineer", []string{"Software Engineer", "Full-stack Developer", "Backend Developer"}}},
}

// LookupLanguageRole returns the role for a lowercase language name.
func LookupLanguageRole(language string) (Role, bool) {
	for _, lr := range LanguageRoles {
		if lr.Language == language {
			return lr.Role, true
		}
	}
	return LanguageFallbackRole, false
}

// LookupDomainRole returns the role for a business domain.
func LookupDomainRole(domain string) (Role, bool) {
	for _, dr := range DomainRoles {
		if dr.Domain == domain {
			return dr.Role, true
		}
	}
	return Role{}, false
}
