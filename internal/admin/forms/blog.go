package forms

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"PortfolioDesk/internal/admin/controller"
	"PortfolioDesk/internal/model"
)

// BlogDraft — черновик записи блога. Числа и списки держим строками,
// как их вводит пользователь; разбор происходит в Transform.
type BlogDraft struct {
	Title            string
	Content          string
	Excerpt          string
	Category         string
	Tags             string
	FeaturedImageURL string
	ReadingTime      string
	Published        bool
}

// BlogPosts возвращает форму таблицы blog_posts.
func BlogPosts() Form[model.BlogPost, BlogDraft] {
	desc := controller.Descriptor[model.BlogPost, BlogDraft]{
		Table: "blog_posts",
		Title: "blog post",
		ID:    func(e model.BlogPost) string { return e.ID },
		SearchFields: func(e model.BlogPost) []string {
			return []string{e.Title, e.Category, e.Excerpt}
		},
		NewDraft: func() BlogDraft { return BlogDraft{} },
		Seed: func(e model.BlogPost) BlogDraft {
			return BlogDraft{
				Title:            e.Title,
				Content:          e.Content,
				Excerpt:          e.Excerpt,
				Category:         e.Category,
				Tags:             joinCSV(e.Tags),
				FeaturedImageURL: e.FeaturedImageURL,
				ReadingTime:      strconv.Itoa(e.ReadingTime),
				Published:        e.Published,
			}
		},
		Transform: func(d BlogDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{
				"title":   d.Title,
				"content": d.Content,
			}, "title", "content"); err != nil {
				return nil, err
			}
			readingTime, err := controller.ParseIntField("reading_time", d.ReadingTime)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"title":              d.Title,
				"content":            d.Content,
				"excerpt":            d.Excerpt,
				"category":           d.Category,
				"tags":               controller.SplitCSV(d.Tags),
				"featured_image_url": d.FeaturedImageURL,
				"reading_time":       readingTime,
				"published":          d.Published,
				"published_at":       controller.PublishStamp(d.Published, time.Now),
			}, nil
		},
		Assets: &controller.AssetConfig[BlogDraft]{
			Dir: "blog",
			// Первый URL партии становится обложкой, как и первый
			// элемент галереи у проектов.
			Append: func(d *BlogDraft, urls []string) {
				d.FeaturedImageURL = urls[0]
			},
			Remove: func(d *BlogDraft, url string) {
				if d.FeaturedImageURL == url {
					d.FeaturedImageURL = ""
				}
			},
		},
	}

	return Form[model.BlogPost, BlogDraft]{
		Descriptor: desc,
		Set: func(d *BlogDraft, field, value string) error {
			switch field {
			case "title":
				d.Title = value
			case "content":
				d.Content = value
			case "excerpt":
				d.Excerpt = value
			case "category":
				d.Category = value
			case "tags":
				d.Tags = value
			case "image":
				d.FeaturedImageURL = value
			case "reading_time":
				d.ReadingTime = value
			case "published":
				b, err := parseBool("published", value)
				if err != nil {
					return err
				}
				d.Published = b
			default:
				return unknownField("blog_posts", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.BlogPost) {
			state := "draft"
			if e.Published {
				state = "published"
			}
			fmt.Fprintf(w, "%s  %-40s  %-15s  %s\n", e.ID, e.Title, e.Category, state)
		},
	}
}
