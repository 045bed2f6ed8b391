package seed

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/marcelsud/locallibrary/author"
)

// Fixtures represents the structure of a seed YAML file
type Fixtures struct {
	Languages []NameFixture   `yaml:"languages"`
	Genres    []NameFixture   `yaml:"genres"`
	Authors   []AuthorFixture `yaml:"authors"`
}

// NameFixture is a language or a genre
type NameFixture struct {
	Name string `yaml:"name"`
}

// AuthorFixture represents a single author in the YAML file. Dates are YYYY-MM-DD
type AuthorFixture struct {
	FirstName   string  `yaml:"first_name"`
	LastName    string  `yaml:"last_name"`
	DateOfBirth *string `yaml:"date_of_birth"` // Optional
	DateOfDeath *string `yaml:"date_of_death"` // Optional
}

const (
	maxNameLength       = 200
	maxPersonNameLength = 100
)

// Validate checks if the name fixture is valid
func (n NameFixture) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if utf8.RuneCountInString(n.Name) > maxNameLength {
		return fmt.Errorf("name %q exceeds %d characters", n.Name, maxNameLength)
	}
	return nil
}

// Validate checks if the author fixture is valid
func (a AuthorFixture) Validate() error {
	if a.FirstName == "" || a.LastName == "" {
		return fmt.Errorf("first_name and last_name cannot be empty")
	}
	if utf8.RuneCountInString(a.FirstName) > maxPersonNameLength || utf8.RuneCountInString(a.LastName) > maxPersonNameLength {
		return fmt.Errorf("name of %s %s exceeds %d characters", a.FirstName, a.LastName, maxPersonNameLength)
	}
	if _, err := a.Author(); err != nil {
		return fmt.Errorf("invalid date for %s %s: %w", a.FirstName, a.LastName, err)
	}
	return nil
}

// Author converts the fixture into a domain author without id
func (a AuthorFixture) Author() (author.Author, error) {
	out := author.Author{
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
	var err error
	if out.DateOfBirth, err = optionalDate(a.DateOfBirth); err != nil {
		return author.Author{}, err
	}
	if out.DateOfDeath, err = optionalDate(a.DateOfDeath); err != nil {
		return author.Author{}, err
	}
	return out, nil
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	d, err := author.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
