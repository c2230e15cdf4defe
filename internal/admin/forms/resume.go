package forms

import (
	"fmt"
	"io"
	"strconv"

	"PortfolioDesk/internal/admin/controller"
	"PortfolioDesk/internal/model"
)

// SkillDraft — черновик навыка.
type SkillDraft struct {
	Name     string
	Category string
	Level    string
	Icon     string
}

// Skills возвращает форму таблицы skills.
func Skills() Form[model.Skill, SkillDraft] {
	desc := controller.Descriptor[model.Skill, SkillDraft]{
		Table: "skills",
		Title: "skill",
		ID:    func(e model.Skill) string { return e.ID },
		SearchFields: func(e model.Skill) []string {
			return []string{e.Name, e.Category}
		},
		NewDraft: func() SkillDraft { return SkillDraft{} },
		Seed: func(e model.Skill) SkillDraft {
			return SkillDraft{
				Name:     e.Name,
				Category: e.Category,
				Level:    strconv.Itoa(e.Level),
				Icon:     e.Icon,
			}
		},
		Transform: func(d SkillDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{
				"name":     d.Name,
				"category": d.Category,
			}, "name", "category"); err != nil {
				return nil, err
			}
			level, err := controller.ParseIntField("level", d.Level)
			if err != nil {
				return nil, err
			}
			if level < 0 || level > 100 {
				return nil, fmt.Errorf("level must be between 0 and 100, got %d", level)
			}
			return map[string]any{
				"name":     d.Name,
				"category": d.Category,
				"level":    level,
				"icon":     d.Icon,
			}, nil
		},
	}

	return Form[model.Skill, SkillDraft]{
		Descriptor: desc,
		Set: func(d *SkillDraft, field, value string) error {
			switch field {
			case "name":
				d.Name = value
			case "category":
				d.Category = value
			case "level":
				d.Level = value
			case "icon":
				d.Icon = value
			default:
				return unknownField("skills", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.Skill) {
			fmt.Fprintf(w, "%s  %-30s  %-15s  %d%%\n", e.ID, e.Name, e.Category, e.Level)
		},
	}
}

// EducationDraft — черновик записи об образовании.
type EducationDraft struct {
	Degree      string
	Institution string
	StartDate   string
	EndDate     string
	Description string
}

// Education возвращает форму таблицы education.
func Education() Form[model.Education, EducationDraft] {
	desc := controller.Descriptor[model.Education, EducationDraft]{
		Table: "education",
		Title: "education entry",
		ID:    func(e model.Education) string { return e.ID },
		SearchFields: func(e model.Education) []string {
			return []string{e.Degree, e.Institution}
		},
		NewDraft: func() EducationDraft { return EducationDraft{} },
		Seed: func(e model.Education) EducationDraft {
			return EducationDraft{
				Degree:      e.Degree,
				Institution: e.Institution,
				StartDate:   e.StartDate,
				EndDate:     e.EndDate,
				Description: e.Description,
			}
		},
		Transform: func(d EducationDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{
				"degree":      d.Degree,
				"institution": d.Institution,
				"start_date":  d.StartDate,
			}, "degree", "institution", "start_date"); err != nil {
				return nil, err
			}
			return map[string]any{
				"degree":      d.Degree,
				"institution": d.Institution,
				"start_date":  d.StartDate,
				"end_date":    d.EndDate,
				"description": d.Description,
			}, nil
		},
	}

	return Form[model.Education, EducationDraft]{
		Descriptor: desc,
		Set: func(d *EducationDraft, field, value string) error {
			switch field {
			case "degree":
				d.Degree = value
			case "institution":
				d.Institution = value
			case "start_date":
				d.StartDate = value
			case "end_date":
				d.EndDate = value
			case "description":
				d.Description = value
			default:
				return unknownField("education", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.Education) {
			period := e.StartDate
			if e.EndDate != "" {
				period += " - " + e.EndDate
			}
			fmt.Fprintf(w, "%s  %-35s  %-25s  %s\n", e.ID, e.Degree, e.Institution, period)
		},
	}
}

// ExperienceDraft — черновик записи об опыте работы.
type ExperienceDraft struct {
	Title       string
	Company     string
	StartDate   string
	EndDate     string
	Location    string
	Description string
}

// Experience возвращает форму таблицы experience.
func Experience() Form[model.Experience, ExperienceDraft] {
	desc := controller.Descriptor[model.Experience, ExperienceDraft]{
		Table: "experience",
		Title: "experience entry",
		ID:    func(e model.Experience) string { return e.ID },
		SearchFields: func(e model.Experience) []string {
			return []string{e.Title, e.Company}
		},
		NewDraft: func() ExperienceDraft { return ExperienceDraft{} },
		Seed: func(e model.Experience) ExperienceDraft {
			return ExperienceDraft{
				Title:       e.Title,
				Company:     e.Company,
				StartDate:   e.StartDate,
				EndDate:     e.EndDate,
				Location:    e.Location,
				Description: e.Description,
			}
		},
		Transform: func(d ExperienceDraft) (map[string]any, error) {
			if err := controller.Require(map[string]string{
				"title":      d.Title,
				"company":    d.Company,
				"start_date": d.StartDate,
			}, "title", "company", "start_date"); err != nil {
				return nil, err
			}
			return map[string]any{
				"title":       d.Title,
				"company":     d.Company,
				"start_date":  d.StartDate,
				"end_date":    d.EndDate,
				"location":    d.Location,
				"description": d.Description,
			}, nil
		},
	}

	return Form[model.Experience, ExperienceDraft]{
		Descriptor: desc,
		Set: func(d *ExperienceDraft, field, value string) error {
			switch field {
			case "title":
				d.Title = value
			case "company":
				d.Company = value
			case "start_date":
				d.StartDate = value
			case "end_date":
				d.EndDate = value
			case "location":
				d.Location = value
			case "description":
				d.Description = value
			default:
				return unknownField("experience", field)
			}
			return nil
		},
		Render: func(w io.Writer, e model.Experience) {
			period := e.StartDate
			if e.EndDate != "" {
				period += " - " + e.EndDate
			}
			fmt.Fprintf(w, "%s  %-35s  %-25s  %s\n", e.ID, e.Title, e.Company, period)
		},
	}
}
