package forms

import (
	"fmt"
	"io"

	"PortfolioDesk/internal/admin/controller"
	"PortfolioDesk/internal/model"
)

// WorkDraft — черновик проекта. Images пополняется конвейером загрузки,
// первый URL становится обложкой при отправке.
type WorkDraft struct {
	Title        string
	Category     string
	Description  string
	Technologies string
	Client       string
	ProjectURL   string
	GithubURL    string
	ImageURL     string
	Images       []string
	Featured     bool
}

// Works возвращает форму таблицы works.
func Works() Form[model.Work, WorkDraft] {
	desc := controller.Descriptor[model.Work, WorkDraft]{
		Table: "works",
		Title: "work",
		ID:    func(e model.Work) string { return e.ID },
		SearchFields: func(e model.Work) []string {
			return []string{e.Title, e.Category, e.Client}
		},
		NewDraft: func() WorkDraft { return WorkDraft{} },
		Seed: func(e model.Work) WorkDraft {
			return WorkDraft{
				Title:        e.Title,
				Category:     e.Category,
				Description:  e.Description,
				Technologies: joinCSV(e.Technologies),
				Client:       e.Client,
				ProjectURL:   e.ProjectURL,
				GithubURL:    e.GithubURL,
				ImageURL:     e.ImageURL,
				Images:       append([]string(nil), e.Images...),
				Featured:     e.Featured,
			}
		},
		Transform: func(d WorkDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{
				"title":    d.Title,
				"category": d.Category,
			}, "title", "category"); err != nil {
				return nil, err
			}
			// Обложка — первое изображение галереи, если оно есть.
			cover := d.ImageURL
			if len(d.Images) > 0 {
				cover = d.Images[0]
			}
			return map[string]any{
				"title":        d.Title,
				"category":     d.Category,
				"description":  d.Description,
				"technologies": controller.SplitCSV(d.Technologies),
				"client":       d.Client,
				"project_url":  d.ProjectURL,
				"github_url":   d.GithubURL,
				"image_url":    cover,
				"images":       sliceOrEmpty(d.Images),
				"featured":     d.Featured,
			}, nil
		},
		Assets: &controller.AssetConfig[WorkDraft]{
			Dir: "works",
			Append: func(d *WorkDraft, urls []string) {
				d.Images = append(d.Images, urls...)
			},
			Remove: func(d *WorkDraft, url string) {
				rest := d.Images[:0]
				for _, u := range d.Images {
					if u != url {
						rest = append(rest, u)
					}
				}
				d.Images = rest
			},
		},
	}

	return Form[model.Work, WorkDraft]{
		Descriptor: desc,
		Set: func(d *WorkDraft, field, value string) error {
			switch field {
			case "title":
				d.Title = value
			case "category":
				d.Category = value
			case "description":
				d.Description = value
			case "technologies":
				d.Technologies = value
			case "client":
				d.Client = value
			case "project_url":
				d.ProjectURL = value
			case "github_url":
				d.GithubURL = value
			case "image_url":
				d.ImageURL = value
			case "featured":
				b, err := parseBool("featured", value)
				if err != nil {
					return err
				}
				d.Featured = b
			default:
				return unknownField("works", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.Work) {
			mark := " "
			if e.Featured {
				mark = "*"
			}
			fmt.Fprintf(w, "%s %s %-40s  %-15s  %d image(s)\n", mark, e.ID, e.Title, e.Category, len(e.Images))
		},
	}
}
