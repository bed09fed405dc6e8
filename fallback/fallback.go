// Package fallback supplies static sample data the API client
// substitutes when the server is unreachable. The provider is injected
// so tests can swap in empty or controlled fixtures.
package fallback

import "codelearn/models"

// Provider serves replacement data for failed fetches.
type Provider interface {
	ContentForLanguage(language string) []models.Content
	SampleUser() models.User
}

// Static is a Provider backed by an in-memory sample set.
type Static struct {
	Content map[string][]models.Content
	User    models.User
}

// Empty returns a provider with no sample data, for test fixtures.
func Empty() *Static {
	return &Static{Content: map[string][]models.Content{}}
}

func (s *Static) ContentForLanguage(language string) []models.Content {
	return s.Content[language]
}

func (s *Static) SampleUser() models.User {
	return s.User
}

// Default returns the built-in sample catalog shown when the backend
// is down, so the learning pages still render something useful.
func Default() *Static {
	return &Static{
		User: models.User{
			Username: "testuser",
			Email:    "test@example.com",
			Role:     models.RoleStudent,
			LearningProgress: []models.ProgressRecord{
				{Language: "javascript", CompletedTopics: []string{"variables", "data types", "functions"}, ProgressPercent: 35},
				{Language: "python", CompletedTopics: []string{"syntax", "variables"}, ProgressPercent: 20},
				{Language: "java", CompletedTopics: []string{"syntax"}, ProgressPercent: 10},
			},
		},
		Content: map[string][]models.Content{
			"javascript": {
				sample("javascript", models.TypeTutorial, "JavaScript Fundamentals",
					"Learn the basics of JavaScript including variables, data types, functions, and control flow.",
					models.DifficultyBeginner, "3 hours"),
				sample("javascript", models.TypeTutorial, "DOM Manipulation",
					"Learn how to interact with the Document Object Model to create dynamic web pages.",
					models.DifficultyIntermediate, "4 hours"),
				sample("javascript", models.TypePractice, "JavaScript Coding Challenges",
					"Test your JavaScript skills with these coding challenges covering fundamental concepts.",
					models.DifficultyBeginner, "2 hours"),
			},
			"python": {
				sample("python", models.TypeTutorial, "Python Basics",
					"Introduction to Python programming language, covering basic syntax, variables, and data structures.",
					models.DifficultyBeginner, "3 hours"),
				sample("python", models.TypeTutorial, "Python Functions & OOP",
					"Learn about functions, classes, and object-oriented programming in Python.",
					models.DifficultyIntermediate, "5 hours"),
				sample("python", models.TypePractice, "Python Coding Exercises",
					"Practice Python with exercises covering fundamental programming concepts.",
					models.DifficultyBeginner, "3 hours"),
			},
			"java": {
				sample("java", models.TypeTutorial, "Java Fundamentals",
					"Introduction to Java programming, covering syntax, variables, and control structures.",
					models.DifficultyBeginner, "4 hours"),
				sample("java", models.TypeTutorial, "Java Object-Oriented Programming",
					"Learn about classes, objects, inheritance, and polymorphism in Java.",
					models.DifficultyIntermediate, "6 hours"),
			},
			"cpp": {
				sample("cpp", models.TypeTutorial, "C++ Basics",
					"Introduction to C++ programming, covering syntax, variables, and data types.",
					models.DifficultyBeginner, "4 hours"),
				sample("cpp", models.TypeTutorial, "C++ Object-Oriented Programming",
					"Learn about classes, objects, inheritance, and polymorphism in C++.",
					models.DifficultyIntermediate, "5 hours"),
			},
		},
	}
}

func sample(language, contentType, title, description, difficulty, duration string) models.Content {
	return models.Content{
		Language:    language,
		Type:        contentType,
		Title:       title,
		Description: description,
		Difficulty:  difficulty,
		Duration:    duration,
		Status:      models.StatusPublished,
	}
}
