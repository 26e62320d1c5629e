package keywords

// TechCategories groups framework, library and tool keywords by category.
var TechCategories = []Category{
	{
		Name: "AI & Agents",
		Keywords: []string{
			"langchain", "langgraph", "llamaindex", "semantic kernel", "flowise", "n8n",
			"langflow", "dify", "autogpt", "babyagi", "crewai", "superagi", "agentgpt",
			"openai", "anthropic", "gemini", "mistral", "ollama", "cohere", "huggingface",
			"transformers", "sentence-transformers", "pinecone", "chromadb", "weaviate",
			"milvus", "qdrant", "faiss", "rag", "embeddings", "vector search",
		},
	},
	{
		Name: "Backend Framework",
		Keywords: []string{
			"nest.js", "nestjs", "nest", "@nestjs/core", "@nestjs/common", "express",
			"expressjs", "express.js", "fastify", "koa", "koajs", "hapi", "hapijs", "node.js",
			"nodejs", "sails", "sailsjs", "feathers", "feathersjs", "adonis", "adonisjs",
			"loopback", "restify", "django", "flask", "fastapi", "tornado", "litestar", "sanic",
			"aiohttp", "pyramid", "bottle", "falcon", "cherrypy", "web2py", "turbogears",
			"starlette", "quart", "spring boot", "spring", "springboot", "jakarta", "micronaut",
			"quarkus", "vert.x", "vertx", "play", "playframework", "dropwizard", "spark java",
			"grails", "struts", "vaadin", "gin", "gin-gonic", "echo", "fiber", "chi", "beego",
			"revel", "iris", "gorilla", "buffalo", "goji", "laravel", "symfony", "codeigniter",
			"slim", "lumen", "yii", "yii2", "cakephp", "zend", "phalcon", "fuelphp", "rails",
			"ruby on rails", "sinatra", "hanami", "grape", "roda", "padrino", "camping",
			"asp.net", "aspnet", "dotnet", "blazor", ".net core", "nancy", "servicestack",
			"actix", "actix-web", "rocket", "axum", "warp", "tide", "graphql", "apollo",
			"apollo-server", "grpc", "grpc-web", "rest api", "restful", "websocket",
			"socket.io", "socketio", "trpc", "t3-stack",
		},
	},
	{
		Name: "Frontend Framework",
		Keywords: []string{
			"react", "reactjs", "react.js", "vue", "vuejs", "vue.js", "angular", "angularjs",
			"svelte", "sveltekit", "preact", "solidjs", "solid-js", "qwik", "alpine.js",
			"alpinejs", "react-dom", "react-router", "react-router-dom", "react-query",
			"tanstack", "vue-router", "vue3", "composition-api", "lit", "lit-element",
			"stencil", "stenciljs", "petite-vue", "hyperapp", "jquery", "backbone",
			"backbonejs", "ember", "emberjs", "knockout", "knockoutjs", "polymer", "meteor",
			"meteorjs",
		},
	},
	{
		Name: "Meta Framework",
		Keywords: []string{
			"next.js", "nextjs", "remix", "gatsby", "nuxt", "nuxt.js", "gridsome", "sveltekit",
			"astro", "fresh", "analog",
		},
	},
	{
		Name: "Mobile Framework",
		Keywords: []string{
			"react native", "flutter", "expo", "ionic", "cordova", "capacitor", "xamarin",
			"maui", "nativescript", "tauri",
		},
	},
	{
		Name: "State Management",
		Keywords: []string{
			"redux", "mobx", "zustand", "recoil", "jotai", "xstate", "pinia", "vuex", "ngrx",
			"akita", "flux", "effector",
		},
	},
	{
		Name: "Styling & UI",
		Keywords: []string{
			"tailwind", "tailwindcss", "bootstrap", "bulma", "foundation", "material ui", "mui",
			"chakra", "mantine", "shadcn", "daisyui", "ant design", "semantic ui",
			"styled-components", "emotion", "styled-jsx", "sass", "scss", "less", "stylus",
			"postcss",
		},
	},
	{
		Name: "Database",
		Keywords: []string{
			"postgresql", "postgres", "mysql", "mariadb", "sqlite", "mssql", "mongodb",
			"couchdb", "cassandra", "scylla", "redis", "memcached", "neo4j", "arangodb",
			"dgraph", "dynamodb", "firestore", "firebase", "supabase", "convex", "pocketbase",
			"appwrite", "prisma", "typeorm", "sequelize", "mongoose", "sqlalchemy", "drizzle",
		},
	},
	{
		Name: "DevOps & Cloud",
		Keywords: []string{
			"docker", "podman", "kubernetes", "k8s", "helm", "rancher", "terraform", "ansible",
			"pulumi", "cloudformation", "jenkins", "gitlab ci", "github actions", "circleci",
			"travis ci", "azure devops", "prometheus", "grafana", "datadog", "new relic",
			"splunk", "elk", "aws", "azure", "gcp", "google cloud", "digitalocean", "linode",
			"vercel", "netlify", "heroku", "render", "railway", "fly.io",
		},
	},
	{
		Name: "Testing",
		Keywords: []string{
			"jest", "mocha", "chai", "jasmine", "vitest", "ava", "cypress", "playwright",
			"puppeteer", "selenium", "testcafe", "pytest", "unittest", "nose", "junit",
			"testng", "mockito", "testing library", "enzyme",
		},
	},
	{
		Name: "Build Tools",
		Keywords: []string{
			"webpack", "vite", "rollup", "parcel", "esbuild", "turbopack", "gulp", "grunt",
			"npm", "yarn", "pnpm", "bun",
		},
	},
	{
		Name: "CMS & Platforms",
		Keywords: []string{
			"wordpress", "strapi", "contentful", "sanity", "ghost", "drupal", "shopify",
			"woocommerce", "magento", "prestashop", "bigcommerce",
		},
	},
	{
		Name: "Payment Processing",
		Keywords: []string{
			"stripe", "paypal", "razorpay", "square", "braintree", "paddle", "checkout",
			"adyen",
		},
	},
	{
		Name: "Authentication",
		Keywords: []string{
			"auth0", "clerk", "supabase auth", "firebase auth", "okta", "keycloak", "passport",
			"next-auth", "lucia",
		},
	},
}
