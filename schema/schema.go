// Package schema has the models, constants and report shapes shared by every part of hiresignal.
package schema

import (
	"strings"
	"time"
)

// UserProfile is the public GitHub profile of the candidate.
type UserProfile struct {
	Login     string    `json:"login"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Company   string    `json:"company,omitempty"`
	Blog      string    `json:"blog,omitempty"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
	Repos     int       `json:"public_repos"`
	CreatedAt time.Time `json:"created_at"`
}

// LanguageShare is the byte count and derived percentage of one language.
type LanguageShare struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// Readme is the raw README of a repository.
type Readme struct {
	Content   string `json:"content"`
	Length    int    `json:"length"`
	HasReadme bool   `json:"has_readme"`
}

// MarkdownFile is any markdown document in a repository other than the README.
type MarkdownFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Length   int    `json:"length"`
}

// Repository is one analyzed repository. It is produced by the fetch layer
// and consumed read-only by every analyzer.
type Repository struct {
	Name            string            `json:"name"`
	FullName        string            `json:"full_name,omitempty"`
	Description     string            `json:"description"`
	Topics          []string          `json:"topics"`
	Language        string            `json:"language,omitempty"`
	Languages       []LanguageShare   `json:"languages"` // ordered by bytes, largest first
	Stars           int               `json:"stargazers_count"`
	Forks           int               `json:"forks_count"`
	Watchers        int               `json:"watchers_count"`
	OpenIssues      int               `json:"open_issues_count"`
	SizeKB          int               `json:"size_kb"`
	Archived        bool              `json:"archived"`
	Fork            bool              `json:"fork"`
	DefaultBranch   string            `json:"default_branch,omitempty"`
	HTMLURL         string            `json:"html_url,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	PushedAt        time.Time         `json:"pushed_at"`
	Readme          *Readme           `json:"readme,omitempty"`
	MarkdownFiles   []MarkdownFile    `json:"markdown_files"`
	DependencyFiles map[string]string `json:"dependency_files,omitempty"`
}

// UserBundle is everything fetched for one user.
type UserBundle struct {
	User         UserProfile  `json:"user"`
	Repositories []Repository `json:"repositories"`
	FetchedAt    time.Time    `json:"fetched_at"`
}

// HasReadme reports whether the repository carries a README.
func (r *Repository) HasReadme() bool {
	return r.Readme != nil && r.Readme.HasReadme
}

// ReadmeContent returns the README text or an empty string.
func (r *Repository) ReadmeContent() string {
	if r.Readme == nil {
		return ""
	}
	return r.Readme.Content
}

// LastActivity returns the push time, falling back to the update time.
func (r *Repository) LastActivity() time.Time {
	if !r.PushedAt.IsZero() {
		return r.PushedAt
	}
	return r.UpdatedAt
}

// SearchText is the lowercased description followed by the space-joined topics.
func (r *Repository) SearchText() string {
	return strings.ToLower(r.Description + " " + strings.Join(r.Topics, " "))
}

// LanguagePercentage returns the share of a language in this repository.
func (r *Repository) LanguagePercentage(name string) float64 {
	for _, l := range r.Languages {
		if l.Name == name {
			return l.Percentage
		}
	}
	return 0
}
