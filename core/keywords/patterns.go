package keywords

// TechnicalPatterns maps technical trigger phrases to display names.
var TechnicalPatterns = []Pattern{
	{Trigger: "react", Display: "React"},
	{Trigger: "vue", Display: "Vue.js"},
	{Trigger: "angular", Display: "Angular"},
	{Trigger: "svelte", Display: "Svelte"},
	{Trigger: "next.js", Display: "Next.js"},
	{Trigger: "nextjs", Display: "Next.js"},
	{Trigger: "nuxt", Display: "Nuxt.js"},
	{Trigger: "django", Display: "Django"},
	{Trigger: "flask", Display: "Flask"},
	{Trigger: "fastapi", Display: "FastAPI"},
	{Trigger: "express", Display: "Express.js"},
	{Trigger: "nestjs", Display: "NestJS"},
	{Trigger: "spring boot", Display: "Spring Boot"},
	{Trigger: "spring", Display: "Spring"},
	{Trigger: "laravel", Display: "Laravel"},
	{Trigger: "ruby on rails", Display: "Ruby on Rails"},
	{Trigger: "rails", Display: "Rails"},
	{Trigger: "react native", Display: "React Native"},
	{Trigger: "flutter", Display: "Flutter"},
	{Trigger: "swift", Display: "Swift"},
	{Trigger: "kotlin", Display: "Kotlin"},
	{Trigger: "ios", Display: "iOS"},
	{Trigger: "android", Display: "Android"},
	{Trigger: "postgresql", Display: "PostgreSQL"},
	{Trigger: "postgres", Display: "PostgreSQL"},
	{Trigger: "mysql", Display: "MySQL"},
	{Trigger: "mongodb", Display: "MongoDB"},
	{Trigger: "redis", Display: "Redis"},
	{Trigger: "firebase", Display: "Firebase"},
	{Trigger: "supabase", Display: "Supabase"},
	{Trigger: "docker", Display: "Docker"},
	{Trigger: "kubernetes", Display: "Kubernetes"},
	{Trigger: "k8s", Display: "Kubernetes"},
	{Trigger: "aws", Display: "AWS"},
	{Trigger: "azure", Display: "Azure"},
	{Trigger: "gcp", Display: "Google Cloud"},
	{Trigger: "terraform", Display: "Terraform"},
	{Trigger: "jenkins", Display: "Jenkins"},
	{Trigger: "github actions", Display: "GitHub Actions"},
	{Trigger: "tensorflow", Display: "TensorFlow"},
	{Trigger: "pytorch", Display: "PyTorch"},
	{Trigger: "scikit-learn", Display: "Scikit-learn"},
	{Trigger: "sklearn", Display: "Scikit-learn"},
	{Trigger: "machine learning", Display: "Machine Learning"},
	{Trigger: "deep learning", Display: "Deep Learning"},
	{Trigger: "neural network", Display: "Neural Networks"},
	{Trigger: "langchain", Display: "LangChain"},
	{Trigger: "transformers", Display: "Transformers"},
	{Trigger: "jest", Display: "Jest"},
	{Trigger: "pytest", Display: "Pytest"},
	{Trigger: "cypress", Display: "Cypress"},
	{Trigger: "selenium", Display: "Selenium"},
	{Trigger: "graphql", Display: "GraphQL"},
	{Trigger: "rest api", Display: "REST API"},
	{Trigger: "websocket", Display: "WebSocket"},
	{Trigger: "microservices", Display: "Microservices"},
}

// DomainPatterns maps industry trigger phrases to display names.
var DomainPatterns = []Pattern{
	{Trigger: "ecommerce", Display: "E-commerce"},
	{Trigger: "e-commerce", Display: "E-commerce"},
	{Trigger: "shopping", Display: "E-commerce"},
	{Trigger: "retail", Display: "Retail"},
	{Trigger: "marketplace", Display: "Marketplace"},
	{Trigger: "healthcare", Display: "Healthcare"},
	{Trigger: "health", Display: "Healthcare"},
	{Trigger: "medical", Display: "Healthcare"},
	{Trigger: "hospital", Display: "Healthcare"},
	{Trigger: "patient", Display: "Healthcare"},
	{Trigger: "telemedicine", Display: "Telemedicine"},
	{Trigger: "fintech", Display: "FinTech"},
	{Trigger: "finance", Display: "Finance"},
	{Trigger: "banking", Display: "Banking"},
	{Trigger: "payment", Display: "Payments"},
	{Trigger: "crypto", Display: "Cryptocurrency"},
	{Trigger: "blockchain", Display: "Blockchain"},
	{Trigger: "trading", Display: "Trading"},
	{Trigger: "education", Display: "Education"},
	{Trigger: "edtech", Display: "EdTech"},
	{Trigger: "learning", Display: "E-Learning"},
	{Trigger: "course", Display: "Education"},
	{Trigger: "university", Display: "Education"},
	{Trigger: "real estate", Display: "Real Estate"},
	{Trigger: "property", Display: "Real Estate"},
	{Trigger: "rental", Display: "Real Estate"},
	{Trigger: "social network", Display: "Social Media"},
	{Trigger: "social media", Display: "Social Media"},
	{Trigger: "chat", Display: "Communication"},
	{Trigger: "messaging", Display: "Messaging"},
	{Trigger: "forum", Display: "Community"},
	{Trigger: "enterprise", Display: "Enterprise"},
	{Trigger: "saas", Display: "SaaS"},
	{Trigger: "crm", Display: "CRM"},
	{Trigger: "erp", Display: "ERP"},
	{Trigger: "streaming", Display: "Media Streaming"},
	{Trigger: "video", Display: "Video"},
	{Trigger: "music", Display: "Music"},
	{Trigger: "gaming", Display: "Gaming"},
	{Trigger: "game", Display: "Gaming"},
	{Trigger: "artificial intelligence", Display: "AI"},
	{Trigger: "data science", Display: "Data Science"},
	{Trigger: "analytics", Display: "Analytics"},
	{Trigger: "business intelligence", Display: "Business Intelligence"},
}

// FeaturePatterns maps feature trigger phrases to display names.
var FeaturePatterns = []Pattern{
	{Trigger: "authentication", Display: "Authentication"},
	{Trigger: "auth", Display: "Authentication"},
	{Trigger: "login", Display: "User Login"},
	{Trigger: "oauth", Display: "OAuth"},
	{Trigger: "jwt", Display: "JWT"},
	{Trigger: "security", Display: "Security"},
	{Trigger: "encryption", Display: "Encryption"},
	{Trigger: "payment", Display: "Payment Processing"},
	{Trigger: "stripe", Display: "Stripe Integration"},
	{Trigger: "paypal", Display: "PayPal"},
	{Trigger: "checkout", Display: "Checkout"},
	{Trigger: "real-time", Display: "Real-time"},
	{Trigger: "realtime", Display: "Real-time"},
	{Trigger: "live", Display: "Real-time"},
	{Trigger: "socket", Display: "Real-time Communication"},
	{Trigger: "api", Display: "API"},
	{Trigger: "rest", Display: "REST API"},
	{Trigger: "graphql", Display: "GraphQL API"},
	{Trigger: "dashboard", Display: "Dashboard"},
	{Trigger: "analytics", Display: "Analytics"},
	{Trigger: "reporting", Display: "Reporting"},
	{Trigger: "visualization", Display: "Data Visualization"},
	{Trigger: "collaboration", Display: "Collaboration"},
	{Trigger: "multi-user", Display: "Multi-user"},
	{Trigger: "team", Display: "Team Features"},
	{Trigger: "blog", Display: "Blog"},
	{Trigger: "cms", Display: "Content Management"},
	{Trigger: "editor", Display: "Editor"},
	{Trigger: "responsive", Display: "Responsive Design"},
	{Trigger: "mobile", Display: "Mobile-friendly"},
	{Trigger: "pwa", Display: "Progressive Web App"},
	{Trigger: "integration", Display: "Integration"},
	{Trigger: "webhook", Display: "Webhooks"},
	{Trigger: "notification", Display: "Notifications"},
	{Trigger: "email", Display: "Email"},
	{Trigger: "upload", Display: "File Upload"},
	{Trigger: "image", Display: "Image Processing"},
	{Trigger: "search", Display: "Search"},
	{Trigger: "filter", Display: "Filtering"},
}
