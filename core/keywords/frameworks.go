package keywords

// MajorFrameworks is the per-ecosystem allowlist of dependencies worth reporting.
var MajorFrameworks = []Ecosystem{
	{
		Name: "npm",
		Packages: []string{
			"react", "vue", "angular", "svelte", "preact", "solid-js", "@angular/core",
			"@vue/cli", "next", "nuxt", "gatsby", "remix", "astro", "sveltekit", "express",
			"koa", "hapi", "fastify", "nest", "@nestjs/core", "socket.io", "apollo-server",
			"graphql", "react-native", "expo", "ionic", "redux", "mobx", "zustand", "recoil",
			"pinia", "vuex", "ngrx", "mui", "@mui/material", "chakra-ui", "ant-design",
			"mantine", "tailwindcss", "bootstrap", "styled-components", "jest", "mocha", "chai",
			"cypress", "playwright", "vitest", "webpack", "vite", "rollup", "parcel", "esbuild",
			"mongoose", "sequelize", "typeorm", "prisma", "drizzle-orm", "passport",
			"next-auth", "auth0",
		},
	},
	{
		Name: "pypi",
		Packages: []string{
			"django", "flask", "fastapi", "tornado", "sanic", "aiohttp", "pyramid", "bottle",
			"falcon", "tensorflow", "pytorch", "keras", "scikit-learn", "xgboost", "lightgbm",
			"catboost", "transformers", "langchain", "pandas", "numpy", "scipy", "matplotlib",
			"seaborn", "plotly", "sqlalchemy", "peewee", "mongoengine", "redis", "psycopg2",
			"pytest", "unittest2", "nose", "celery", "asyncio", "aiofiles",
		},
	},
	{
		Name: "go",
		Packages: []string{
			"gin", "echo", "fiber", "chi", "beego", "iris", "revel", "gorm", "sqlx", "grpc",
			"gorilla/mux",
		},
	},
	{
		Name: "rubygems",
		Packages: []string{
			"rails", "sinatra", "hanami", "grape", "roda", "devise", "activerecord", "sequel",
		},
	},
	{
		Name: "packagist",
		Packages: []string{
			"laravel/framework", "symfony/symfony", "slim/slim", "codeigniter", "lumen",
			"doctrine/orm", "guzzlehttp/guzzle",
		},
	},
	{
		Name: "cargo",
		Packages: []string{
			"actix-web", "rocket", "axum", "warp", "tokio", "serde", "diesel", "sqlx",
		},
	},
}
