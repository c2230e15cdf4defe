package forms

import (
	"fmt"
	"io"
	"strconv"

	"PortfolioDesk/internal/admin/controller"
	"PortfolioDesk/internal/model"
)

// StatisticDraft — черновик счётчика главной страницы.
type StatisticDraft struct {
	Key   string
	Label string
	Value string
	Icon  string
}

// Statistics возвращает форму таблицы statistics.
func Statistics() Form[model.Statistic, StatisticDraft] {
	desc := controller.Descriptor[model.Statistic, StatisticDraft]{
		Table: "statistics",
		Title: "statistic",
		ID:    func(e model.Statistic) string { return e.ID },
		SearchFields: func(e model.Statistic) []string {
			return []string{e.Key, e.Label}
		},
		NewDraft: func() StatisticDraft { return StatisticDraft{} },
		Seed: func(e model.Statistic) StatisticDraft {
			return StatisticDraft{
				Key:   e.Key,
				Label: e.Label,
				Value: strconv.Itoa(e.Value),
				Icon:  e.Icon,
			}
		},
		Transform: func(d StatisticDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{
				"key":   d.Key,
				"label": d.Label,
			}, "key", "label"); err != nil {
				return nil, err
			}
			value, err := controller.ParseIntField("value", d.Value)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"key":   d.Key,
				"label": d.Label,
				"value": value,
				"icon":  d.Icon,
			}, nil
		},
	}

	return Form[model.Statistic, StatisticDraft]{
		Descriptor: desc,
		Set: func(d *StatisticDraft, field, value string) error {
			switch field {
			case "key":
				d.Key = value
			case "label":
				d.Label = value
			case "value":
				d.Value = value
			case "icon":
				d.Icon = value
			default:
				return unknownField("statistics", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.Statistic) {
			fmt.Fprintf(w, "%s  %-25s  %-30s  %d\n", e.ID, e.Key, e.Label, e.Value)
		},
	}
}

// BrandDraft — черновик бренда.
type BrandDraft struct {
	Name       string
	LogoURL    string
	WebsiteURL string
}

// Brands возвращает форму таблицы brands.
func Brands() Form[model.Brand, BrandDraft] {
	desc := controller.Descriptor[model.Brand, BrandDraft]{
		Table: "brands",
		Title: "brand",
		ID:    func(e model.Brand) string { return e.ID },
		SearchFields: func(e model.Brand) []string {
			return []string{e.Name}
		},
		NewDraft: func() BrandDraft { return BrandDraft{} },
		Seed: func(e model.Brand) BrandDraft {
			return BrandDraft{Name: e.Name, LogoURL: e.LogoURL, WebsiteURL: e.WebsiteURL}
		},
		Transform: func(d BrandDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{"name": d.Name}, "name"); err != nil {
				return nil, err
			}
			return map[string]any{
				"name":        d.Name,
				"logo_url":    d.LogoURL,
				"website_url": d.WebsiteURL,
			}, nil
		},
		Assets: &controller.AssetConfig[BrandDraft]{
			Dir: "brands",
			Append: func(d *BrandDraft, urls []string) {
				d.LogoURL = urls[0]
			},
			Remove: func(d *BrandDraft, url string) {
				if d.LogoURL == url {
					d.LogoURL = ""
				}
			},
		},
	}

	return Form[model.Brand, BrandDraft]{
		Descriptor: desc,
		Set: func(d *BrandDraft, field, value string) error {
			switch field {
			case "name":
				d.Name = value
			case "logo_url":
				d.LogoURL = value
			case "website_url":
				d.WebsiteURL = value
			default:
				return unknownField("brands", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.Brand) {
			fmt.Fprintf(w, "%s  %-30s  %s\n", e.ID, e.Name, e.WebsiteURL)
		},
	}
}

// TestimonialDraft — черновик отзыва.
type TestimonialDraft struct {
	ClientName     string
	ClientPosition string
	ClientCompany  string
	Content        string
	Rating         string
	AvatarURL      string
	ProjectID      string
	Featured       bool
}

// Testimonials возвращает форму таблицы testimonials.
func Testimonials() Form[model.Testimonial, TestimonialDraft] {
	desc := controller.Descriptor[model.Testimonial, TestimonialDraft]{
		Table: "testimonials",
		Title: "testimonial",
		ID:    func(e model.Testimonial) string { return e.ID },
		SearchFields: func(e model.Testimonial) []string {
			return []string{e.ClientName, e.ClientCompany, e.Content}
		},
		NewDraft: func() TestimonialDraft { return TestimonialDraft{Rating: "5"} },
		Seed: func(e model.Testimonial) TestimonialDraft {
			return TestimonialDraft{
				ClientName:     e.ClientName,
				ClientPosition: e.ClientPosition,
				ClientCompany:  e.ClientCompany,
				Content:        e.Content,
				Rating:         strconv.Itoa(e.Rating),
				AvatarURL:      e.AvatarURL,
				ProjectID:      e.ProjectID,
				Featured:       e.Featured,
			}
		},
		Transform: func(d TestimonialDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{
				"client_name": d.ClientName,
				"content":     d.Content,
			}, "client_name", "content"); err != nil {
				return nil, err
			}
			rating, err := controller.ParseIntField("rating", d.Rating)
			if err != nil {
				return nil, err
			}
			if rating < 1 || rating > 5 {
				return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
			}
			return map[string]any{
				"client_name":     d.ClientName,
				"client_position": d.ClientPosition,
				"client_company":  d.ClientCompany,
				"content":         d.Content,
				"rating":          rating,
				"avatar_url":      d.AvatarURL,
				"project_id":      d.ProjectID,
				"featured":        d.Featured,
			}, nil
		},
		Assets: &controller.AssetConfig[TestimonialDraft]{
			Dir: "avatars",
			Append: func(d *TestimonialDraft, urls []string) {
				d.AvatarURL = urls[0]
			},
			Remove: func(d *TestimonialDraft, url string) {
				if d.AvatarURL == url {
					d.AvatarURL = ""
				}
			},
		},
	}

	return Form[model.Testimonial, TestimonialDraft]{
		Descriptor: desc,
		Set: func(d *TestimonialDraft, field, value string) error {
			switch field {
			case "client_name":
				d.ClientName = value
			case "client_position":
				d.ClientPosition = value
			case "client_company":
				d.ClientCompany = value
			case "content":
				d.Content = value
			case "rating":
				d.Rating = value
			case "avatar_url":
				d.AvatarURL = value
			case "project_id":
				d.ProjectID = value
			case "featured":
				b, err := parseBool("featured", value)
				if err != nil {
					return err
				}
				d.Featured = b
			default:
				return unknownField("testimonials", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.Testimonial) {
			fmt.Fprintf(w, "%s  %-25s  %-25s  %d/5\n", e.ID, e.ClientName, e.ClientCompany, e.Rating)
		},
	}
}
