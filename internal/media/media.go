// Package media prints details of anything Printable.
package media

import (
	"github.com/olehluchkiv/polydemo/internal/dispatch"
	"github.com/olehluchkiv/polydemo/internal/numfmt"
)

type Printable interface {
	PrintDetails() []string
}

type Book struct {
	Title  string
	Author string
}

func (b Book) PrintDetails() []string {
	return []string{
		"Book Details:",
		"Title: " + b.Title,
		"Author: " + b.Author,
	}
}

type Magazine struct {
	Name        string
	IssueNumber int
}

func (m Magazine) PrintDetails() []string {
	return []string{
		"Magazine Details:",
		"Name: " + m.Name,
		"Issue No: " + numfmt.Int(m.IssueNumber),
	}
}

func Registry() *dispatch.Registry[Printable] {
	return dispatch.NewRegistry[Printable]("media").
		MustRegister("book", func(args []string) (Printable, error) {
			if err := dispatch.Arity("book", args, "title", "author"); err != nil {
				return nil, err
			}
			return Book{Title: args[0], Author: args[1]}, nil
		}).
		MustRegister("magazine", func(args []string) (Printable, error) {
			if err := dispatch.Arity("magazine", args, "name", "issue"); err != nil {
				return nil, err
			}
			issue, err := dispatch.ParseInt("issue", args[1])
			if err != nil {
				return nil, err
			}
			return Magazine{Name: args[0], IssueNumber: issue}, nil
		})
}
