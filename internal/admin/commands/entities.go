package commands

import (
	"PortfolioDesk/internal/admin/forms"
)

// Таблицы контента и их командные префиксы. Сообщения контактной формы
// регистрируются без new/edit: их создаёт публичный сайт.
func init() {
	registerEntity("blog", forms.BlogPosts(), true)
	registerEntity("work", forms.Works(), true)
	registerEntity("skill", forms.Skills(), true)
	registerEntity("edu", forms.Education(), true)
	registerEntity("exp", forms.Experience(), true)
	registerEntity("stat", forms.Statistics(), true)
	registerEntity("brand", forms.Brands(), true)
	registerEntity("tm", forms.Testimonials(), true)
	registerEntity("msg", forms.Messages(), false)
}
