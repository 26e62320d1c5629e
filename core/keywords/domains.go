package keywords

// Domains lists every business domain in canonical tie-break order.
var Domains = []Domain{
	{
		Name:   "E-commerce",
		Weight: 1.3,
		Keywords: []string{
			"shop", "store", "cart", "payment", "checkout", "stripe", "paypal", "commerce",
			"inventory", "order", "magento", "shopify", "woocommerce", "pos", "billing",
			"merchant", "catalog", "product",
		},
	},
	{
		Name:   "Healthcare",
		Weight: 1.3,
		Keywords: []string{
			"health", "medical", "doctor", "patient", "clinic", "hospital", "bio", "pharmacy",
			"appointment", "ehr", "emr", "telemedicine", "hl7", "dicom", "fhir", "diagnosis",
			"prescription", "healthcare",
		},
	},
	{
		Name:   "Finance (FinTech)",
		Weight: 1.3,
		Keywords: []string{
			"finance", "stock", "trade", "crypto", "bitcoin", "wallet", "invoice", "bank",
			"ledger", "transaction", "defi", "nft", "blockchain", "forex", "trading", "quant",
			"accounting", "fintech", "payment gateway",
		},
	},
	{
		Name:   "Education (EdTech)",
		Weight: 1.3,
		Keywords: []string{
			"learn", "course", "school", "student", "class", "exam", "quiz", "edu", "lms",
			"university", "elearning", "teacher", "curriculum", "grade", "edtech", "mooc",
			"training",
		},
	},
	{
		Name:   "Marketing & SEO",
		Weight: 0.8,
		Keywords: []string{
			"marketing", "seo", "analytics", "ads", "campaign", "crm", "content", "social",
			"traffic", "conversion", "funnel", "landing page", "email", "newsletter", "sitemap",
			"crawler", "growth", "adwords", "sem",
		},
	},
	{
		Name:   "AI & Machine Learning",
		Weight: 2.0,
		Keywords: []string{
			"machine learning", "ml", "ai", "artificial intelligence", "deep learning",
			"neural network", "neural", "model training", "inference", "prediction",
			"tensorflow", "pytorch", "keras", "scikit-learn", "scikit", "sklearn", "xgboost",
			"lightgbm", "catboost", "gradient boosting", "cnn", "rnn", "lstm", "gru",
			"transformer", "attention", "bert", "gpt", "gan", "generative", "autoencoder",
			"resnet", "vgg", "inception", "langchain", "langgraph", "autogpt", "agent",
			"autonomous", "rag", "llm", "large language model", "chatbot", "conversational ai",
			"openai", "anthropic", "gemini", "ollama", "huggingface", "mlflow", "wandb",
			"tensorboard", "mlops", "model deployment", "model serving", "kubeflow",
			"sagemaker", "reinforcement learning", "supervised", "unsupervised",
			"semi-supervised", "feature engineering", "hyperparameter", "optimization",
			"ensemble",
		},
	},
	{
		Name:   "Computer Vision",
		Weight: 2.0,
		Keywords: []string{
			"computer vision", "vision", "opencv", "image processing", "cv2",
			"object detection", "yolo", "detectron", "mask rcnn", "faster rcnn",
			"image classification", "image recognition", "facial recognition", "segmentation",
			"semantic segmentation", "instance segmentation", "pose estimation", "tracking",
			"ocr", "optical character recognition", "image generation", "stable diffusion",
			"dall-e", "midjourney", "video analysis", "video processing", "frame extraction",
		},
	},
	{
		Name:   "Natural Language Processing",
		Weight: 2.0,
		Keywords: []string{
			"nlp", "natural language processing", "text analysis", "text mining",
			"sentiment analysis", "text classification", "named entity recognition", "ner",
			"tokenization", "lemmatization", "stemming", "pos tagging", "spacy", "nltk",
			"word2vec", "glove", "embeddings", "word embeddings", "language model",
			"text generation", "summarization", "translation", "question answering",
			"information extraction", "topic modeling", "semantic search", "vector search",
			"sentence transformers",
		},
	},
	{
		Name:   "Data Science & Analytics",
		Weight: 2.0,
		Keywords: []string{
			"data science", "data analysis", "analytics", "statistical analysis", "pandas",
			"numpy", "scipy", "matplotlib", "seaborn", "plotly", "visualization",
			"data visualization", "dashboard", "tableau", "jupyter", "notebook", "ipynb",
			"kaggle", "data exploration", "exploratory data analysis", "eda",
			"statistical modeling", "time series", "forecasting", "regression",
			"classification", "clustering", "dimensionality reduction", "pca", "t-sne",
		},
	},
	{
		Name:   "Data Engineering",
		Weight: 2.0,
		Keywords: []string{
			"data engineering", "etl", "data pipeline", "data warehouse", "data lake",
			"big data", "hadoop", "spark", "pyspark", "kafka", "airflow", "data processing",
			"batch processing", "stream processing", "data integration", "data transformation",
			"data quality", "snowflake", "redshift", "bigquery", "databricks", "dbt",
			"data modeling", "data architecture", "data orchestration",
		},
	},
	{
		Name:   "DevOps & Cloud",
		Weight: 1.5,
		Keywords: []string{
			"docker", "kubernetes", "aws", "cloud", "deploy", "server", "ci/cd", "pipeline",
			"terraform", "ansible", "monitor", "log", "scale", "microservice", "serverless",
			"devops", "infrastructure", "container",
		},
	},
	{
		Name:   "Cybersecurity",
		Weight: 1.5,
		Keywords: []string{
			"security", "hack", "penetration", "exploit", "cryptography", "auth", "oauth",
			"jwt", "vulnerability", "malware", "firewall", "ids", "ips", "cve", "audit",
			"encryption", "ssl", "tls",
		},
	},
	{
		Name:   "Blockchain & Web3",
		Weight: 1.5,
		Keywords: []string{
			"blockchain", "smart contract", "solidity", "ethereum", "web3", "token", "dapp",
			"ipfs", "consensus", "wallet", "mint", "dao", "polygon", "nft",
		},
	},
	{
		Name:   "IoT & Embedded",
		Weight: 1.5,
		Keywords: []string{
			"iot", "embedded", "arduino", "raspberry", "sensor", "firmware", "mqtt", "esp32",
			"robotics", "driver", "hardware", "microcontroller",
		},
	},
	{
		Name:   "Game Development",
		Weight: 1.5,
		Keywords: []string{
			"game", "unity", "unreal", "godot", "sprite", "physics", "render", "shader",
			"multiplayer", "fps", "rpg", "engine", "gaming",
		},
	},
	{
		Name:   "Web Development",
		Weight: 0.8,
		Keywords: []string{
			"web app", "web application", "website builder", "cms", "fullstack", "full-stack",
			"full stack", "mern", "mean", "lamp", "jamstack", "static site",
			"server-side rendering", "ssr",
		},
	},
	{
		Name:   "UI/UX Design",
		Weight: 1.0,
		Keywords: []string{
			"ui design", "ux design", "user interface", "user experience", "figma", "sketch",
			"adobe xd", "prototyping", "wireframe", "design system", "component library",
			"accessibility", "responsive design", "frontend design", "visual design",
			"interaction design",
		},
	},
	{
		Name:   "Frontend Development",
		Weight: 1.0,
		Keywords: []string{
			"frontend", "front-end", "spa", "single page application", "pwa",
			"progressive web app", "client-side", "browser", "dom manipulation", "responsive",
			"cross-browser",
		},
	},
	{
		Name:   "Backend Development",
		Weight: 1.0,
		Keywords: []string{
			"backend", "back-end", "api development", "api endpoint", "rest api", "graphql api",
			"microservices", "backend service", "database design", "authentication",
			"authorization", "backend logic",
		},
	},
	{
		Name:   "Mobile Development",
		Weight: 1.0,
		Keywords: []string{
			"mobile", "ios", "android", "flutter", "react native", "app", "swift", "kotlin",
			"tablet", "mobile app",
		},
	},
	{
		Name:   "Enterprise Software",
		Weight: 1.3,
		Keywords: []string{
			"erp", "crm", "hrm", "enterprise", "business", "saas", "b2b", "workflow",
			"management", "salesforce", "sap", "oracle",
		},
	},
	{
		Name:   "Media & Entertainment",
		Weight: 0.8,
		Keywords: []string{
			"video", "streaming", "media", "audio", "podcast", "music", "player", "youtube",
			"netflix", "twitch", "content",
		},
	},
	{
		Name:   "Social & Communication",
		Weight: 0.8,
		Keywords: []string{
			"social", "chat", "messaging", "forum", "community", "slack", "discord", "telegram",
			"whatsapp", "notification",
		},
	},
	{
		Name:   "Civil Engineering & Construction",
		Weight: 1.2,
		Keywords: []string{
			"civil engineering", "construction", "structural", "infrastructure", "building",
			"architecture", "cad", "autocad", "bim", "engineering", "surveying", "contractor",
			"project management", "site management", "concrete", "steel", "bridge", "road",
			"highway",
		},
	},
	{
		Name:   "Architecture & Design",
		Weight: 1.2,
		Keywords: []string{
			"architecture", "architectural", "interior design", "3d modeling", "rendering",
			"autocad", "revit", "sketchup", "blueprint", "floor plan", "building design",
			"urban planning", "landscape", "spatial design",
		},
	},
	{
		Name:   "Accounting & Auditing",
		Weight: 1.2,
		Keywords: []string{
			"accounting", "bookkeeping", "audit", "financial reporting", "tax", "payroll",
			"invoice", "expense", "ledger", "balance sheet", "quickbooks",
			"accounting software", "financial analysis", "compliance", "gaap", "ifrs",
			"tax filing", "accounts payable", "accounts receivable",
		},
	},
	{
		Name:   "Legal & Compliance",
		Weight: 1.2,
		Keywords: []string{
			"legal", "law", "compliance", "regulatory", "contract", "legal tech",
			"case management", "document management", "litigation", "paralegal",
			"legal research", "court", "lawyer", "attorney", "gdpr", "privacy law",
		},
	},
	{
		Name:   "Real Estate & Property",
		Weight: 1.2,
		Keywords: []string{
			"real estate", "property", "rental", "lease", "landlord", "tenant",
			"property management", "mls", "listing", "broker", "realtor", "real estate crm",
			"property listing", "housing", "apartment",
		},
	},
	{
		Name:   "Manufacturing & Supply Chain",
		Weight: 1.2,
		Keywords: []string{
			"manufacturing", "supply chain", "inventory", "warehouse", "logistics",
			"production", "quality control", "erp", "mrp", "plm", "scm", "factory", "assembly",
			"procurement", "vendor management",
		},
	},
	{
		Name:   "Logistics & Transportation",
		Weight: 1.2,
		Keywords: []string{
			"logistics", "transportation", "shipping", "delivery", "freight", "fleet",
			"tracking", "route optimization", "warehouse", "distribution", "courier",
			"last mile", "supply chain", "tms",
		},
	},
	{
		Name:   "Hospitality & Tourism",
		Weight: 1.0,
		Keywords: []string{
			"hotel", "hospitality", "tourism", "booking", "reservation", "restaurant", "travel",
			"accommodation", "guest", "pms", "hotel management", "travel agency", "tour",
			"vacation",
		},
	},
	{
		Name:   "Agriculture & Food Tech",
		Weight: 1.0,
		Keywords: []string{
			"agriculture", "farming", "agritech", "crop", "livestock", "farm management",
			"precision agriculture", "food tech", "food safety", "agricultural", "harvest",
			"irrigation", "soil",
		},
	},
	{
		Name:   "Energy & Utilities",
		Weight: 1.0,
		Keywords: []string{
			"energy", "power", "utility", "electricity", "solar", "renewable", "grid",
			"smart grid", "energy management", "utilities", "water", "gas", "oil",
			"energy efficiency", "meter", "billing",
		},
	},
	{
		Name:   "Telecommunications",
		Weight: 1.0,
		Keywords: []string{
			"telecom", "telecommunications", "network", "5g", "broadband", "voip", "telephony",
			"carrier", "mobile network", "isp", "network infrastructure", "cellular",
		},
	},
	{
		Name:   "Media & Publishing",
		Weight: 1.0,
		Keywords: []string{
			"media", "publishing", "journalism", "news", "magazine", "newspaper",
			"content publishing", "digital media", "broadcast", "press", "editorial", "print",
			"online publishing",
		},
	},
	{
		Name:   "Human Resources & Recruitment",
		Weight: 1.0,
		Keywords: []string{
			"hr", "human resources", "recruitment", "hiring", "applicant tracking", "ats",
			"hrms", "talent", "onboarding", "payroll", "employee", "job board", "recruiting",
			"benefits", "performance management",
		},
	},
	{
		Name:   "Consulting & Professional Services",
		Weight: 1.0,
		Keywords: []string{
			"consulting", "professional services", "advisory", "strategy",
			"management consulting", "business consulting", "project management",
			"client management", "service delivery",
		},
	},
	{
		Name:   "Insurance & Risk Management",
		Weight: 1.2,
		Keywords: []string{
			"insurance", "insurtech", "policy", "claims", "underwriting", "risk management",
			"actuarial", "premium", "coverage", "broker", "insurance management",
			"claims processing",
		},
	},
	{
		Name:   "Retail & Point of Sale",
		Weight: 1.0,
		Keywords: []string{
			"retail", "pos", "point of sale", "store", "shop", "inventory", "cash register",
			"barcode", "scanner", "retail management", "merchandising", "stocktaking",
		},
	},
	{
		Name:   "Non-Profit & NGO",
		Weight: 1.0,
		Keywords: []string{
			"non-profit", "nonprofit", "ngo", "charity", "donation", "fundraising", "volunteer",
			"social impact", "humanitarian", "philanthropy", "grant management",
			"donor management",
		},
	},
}
