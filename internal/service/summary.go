package service

import (
	"context"

	"gorm.io/gorm"

	"PortfolioDesk/internal/model"
)

// Summary — сводка дашборда: число записей в каждой таблице и количество
// непрочитанных сообщений. Пересчитывается консолью после каждой мутации.
type Summary struct {
	BlogPosts      int64 `json:"blog_posts"`
	Works          int64 `json:"works"`
	Skills         int64 `json:"skills"`
	Education      int64 `json:"education"`
	Experience     int64 `json:"experience"`
	Statistics     int64 `json:"statistics"`
	Brands         int64 `json:"brands"`
	Testimonials   int64 `json:"testimonials"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unread_messages"`
}

// SummaryService считает сводку прямыми count-запросами.
type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

func (s *SummaryService) Summary(ctx context.Context) (*Summary, error) {
	out := &Summary{}
	counts := []struct {
		dst   *int64
		model any
	}{
		{&out.BlogPosts, &model.BlogPost{}},
		{&out.Works, &model.Work{}},
		{&out.Skills, &model.Skill{}},
		{&out.Education, &model.Education{}},
		{&out.Experience, &model.Experience{}},
		{&out.Statistics, &model.Statistic{}},
		{&out.Brands, &model.Brand{}},
		{&out.Testimonials, &model.Testimonial{}},
		{&out.Messages, &model.ContactSubmission{}},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	err := s.db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("read = ?", false).
		Count(&out.UnreadMessages).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
