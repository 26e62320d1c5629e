package keywords

// FeatureCategories groups project capability keywords.
var FeatureCategories = []Category{
	{
		Name: "Authentication & Authorization",
		Keywords: []string{
			"authentication", "auth", "login", "signup", "sign up", "register", "oauth",
			"oauth2", "sso", "single sign-on", "jwt", "token", "session", "cookie",
			"authorization", "rbac", "role-based", "permission", "access control",
			"multi-factor", "2fa", "mfa",
		},
	},
	{
		Name: "Security & Encryption",
		Keywords: []string{
			"security", "encryption", "ssl", "tls", "https", "secure", "hash", "bcrypt",
			"crypto", "cryptography", "password", "firewall", "csrf", "xss", "sql injection",
			"sanitization",
		},
	},
	{
		Name: "Payment Processing",
		Keywords: []string{
			"payment", "stripe", "paypal", "checkout", "transaction", "billing", "subscription",
			"invoice", "payment gateway", "credit card", "refund", "cart", "shopping cart",
		},
	},
	{
		Name: "Real-time Features",
		Keywords: []string{
			"real-time", "realtime", "live", "websocket", "socket.io", "sse",
			"server-sent events", "push notification", "live chat", "live update", "streaming",
			"real-time sync",
		},
	},
	{
		Name: "Messaging & Chat",
		Keywords: []string{
			"chat", "messaging", "message", "inbox", "conversation", "chat room",
			"direct message", "dm", "group chat",
		},
	},
	{
		Name: "Notifications",
		Keywords: []string{
			"notification", "alert", "push", "email notification", "sms", "in-app notification",
			"toast", "reminder",
		},
	},
	{
		Name: "Dashboard & Reporting",
		Keywords: []string{
			"dashboard", "report", "reporting", "chart", "graph", "visualization",
			"analytics dashboard", "admin panel", "metrics", "kpi", "statistics",
		},
	},
	{
		Name: "Search & Filter",
		Keywords: []string{
			"search", "filter", "advanced search", "full-text search", "elasticsearch",
			"algolia", "autocomplete", "typeahead", "faceted search", "query", "sort",
		},
	},
	{
		Name: "Data Import/Export",
		Keywords: []string{
			"import", "export", "csv", "excel", "pdf", "bulk import", "data migration",
			"backup", "download",
		},
	},
	{
		Name: "User Interface",
		Keywords: []string{
			"responsive", "mobile-friendly", "adaptive", "ui", "ux", "dark mode", "theme",
			"responsive design", "mobile-first",
		},
	},
	{
		Name: "Forms & Validation",
		Keywords: []string{
			"form", "validation", "input validation", "form builder", "multi-step form",
			"wizard", "field validation",
		},
	},
	{
		Name: "File Management",
		Keywords: []string{
			"file upload", "upload", "file storage", "image upload", "drag and drop",
			"file preview", "attachment", "media library",
		},
	},
	{
		Name: "API & Integration",
		Keywords: []string{
			"api", "rest api", "restful", "graphql", "api endpoint", "api integration",
			"third-party api", "webhook", "callback", "api documentation", "swagger", "openapi",
		},
	},
	{
		Name: "Email Integration",
		Keywords: []string{
			"email", "smtp", "sendgrid", "mailgun", "ses", "email template",
			"transactional email", "email campaign",
		},
	},
	{
		Name: "Collaboration",
		Keywords: []string{
			"collaboration", "team", "multi-user", "sharing", "share", "collaborative editing",
			"co-editing", "workspace",
		},
	},
	{
		Name: "Social Features",
		Keywords: []string{
			"social", "like", "comment", "follow", "share", "feed", "activity feed",
			"news feed", "social login", "profile",
		},
	},
	{
		Name: "Content Management",
		Keywords: []string{
			"cms", "content", "blog", "article", "post", "page", "wysiwyg", "editor",
			"rich text", "markdown", "content creation", "publishing",
		},
	},
	{
		Name: "Media Handling",
		Keywords: []string{
			"image", "video", "audio", "media", "gallery", "image processing", "thumbnail",
			"video player", "image optimization", "cdn",
		},
	},
	{
		Name: "Workflow & Automation",
		Keywords: []string{
			"workflow", "automation", "trigger", "scheduled", "cron", "task", "job queue",
			"background job", "pipeline", "process automation",
		},
	},
	{
		Name: "Booking & Scheduling",
		Keywords: []string{
			"booking", "reservation", "appointment", "calendar", "schedule", "availability",
			"time slot", "booking system",
		},
	},
	{
		Name: "Localization",
		Keywords: []string{
			"i18n", "internationalization", "localization", "l10n", "translation",
			"multi-language", "multilingual", "locale",
		},
	},
	{
		Name: "Caching & Performance",
		Keywords: []string{
			"cache", "caching", "redis cache", "cdn", "lazy loading", "pagination",
			"infinite scroll", "optimization", "performance", "compression",
		},
	},
	{
		Name: "Admin Features",
		Keywords: []string{
			"admin", "admin panel", "dashboard", "management", "settings", "configuration",
			"user management", "role management", "audit log",
		},
	},
}
