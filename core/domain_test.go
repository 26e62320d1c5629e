package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/hiresignal/schema"
)

func shopRepo() schema.Repository {
	return schema.Repository{
		Name:        "shop-api",
		Description: "A FastAPI-based e-commerce checkout service using Stripe",
		Topics:      []string{"python", "ecommerce"},
		Languages: []schema.LanguageShare{
			{Name: "Python", Bytes: 9250, Percentage: 92.5},
			{Name: "Shell", Bytes: 400, Percentage: 4.0},
			{Name: "Dockerfile", Bytes: 350, Percentage: 3.5},
		},
	}
}

// TestClassifyRepository tests weighted domain selection for one repository.
func TestClassifyRepository(t *testing.T) {
	c := NewDomainClassifier()
	repo := shopRepo()

	domain, score := c.ClassifyRepository(&repo)
	assert.Equal(t, "E-commerce", domain)
	assert.InDelta(t, 3.9, score, 1e-9)

	empty := schema.Repository{Name: "dotfiles"}
	domain, score = c.ClassifyRepository(&empty)
	assert.Equal(t, schema.DefaultDomain, domain)
	assert.Equal(t, 1.0, score)
}

// TestClassifyTextShortKeywords tests that short keywords need a whole word.
func TestClassifyTextShortKeywords(t *testing.T) {
	c := NewDomainClassifier()

	for _, s := range c.ClassifyText("a positive outlook") {
		assert.NotEqual(t, "E-commerce", s.Domain, "pos must not match inside positive")
	}
	found := false
	for _, s := range c.ClassifyText("a pos terminal") {
		if s.Domain == "E-commerce" {
			found = true
		}
	}
	assert.True(t, found)
}

// TestClassifyRepositories tests aggregation across repositories.
func TestClassifyRepositories(t *testing.T) {
	c := NewDomainClassifier()

	result := c.ClassifyRepositories(nil)
	assert.Equal(t, schema.DefaultDomain, result.PrimaryDomain)
	assert.Empty(t, result.SecondaryDomains)
	assert.Empty(t, result.Specializations)
	assert.Equal(t, "No domain signals detected", result.Evidence)

	repos := []schema.Repository{
		shopRepo(),
		{Name: "clinic", Description: "Patient appointment scheduling for a medical clinic"},
	}
	result = c.ClassifyRepositories(repos)
	require.NotEmpty(t, result.Specializations)
	assert.Equal(t, result.Specializations[0], result.PrimaryDomain)
	assert.Contains(t, result.Specializations, "E-commerce")
	assert.Contains(t, result.Specializations, "Healthcare")
	assert.NotContains(t, result.SecondaryDomains, result.PrimaryDomain)
	assert.LessOrEqual(t, len(result.SecondaryDomains), 3)
	assert.Contains(t, result.Evidence, "Identified projects in ")
}
