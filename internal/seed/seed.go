// Package seed loads the demo catalog shown on first start: an employer
// account and a set of accessible job postings around Almaty.
package seed

import (
	"fmt"

	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// Demo creates the demo employer and its job postings. Postings are only
// added when the catalog is empty, so restarts against a shared store do not
// duplicate them.
func Demo(userStore model.UserStore, catalogStore model.CatalogStore, log *logger.Logger) error {
	if len(catalogStore.List()) > 0 {
		return nil
	}

	employer, err := userStore.Create(model.User{
		Type:               model.UserTypeEmployer,
		FullName:           "Демо Работодатель",
		Email:              "employer@demo.kz",
		Subscription:       model.SubscriptionNone,
		CompanyName:        "Инклюзив Работа",
		CompanyDescription: "Демонстрационная компания платформы",
	})
	if err != nil {
		return fmt.Errorf("failed to create demo employer: %w", err)
	}

	for _, job := range demoJobs() {
		job.Company = employer.CompanyName
		job.EmployerID = employer.ID
		if _, err := catalogStore.Add(job); err != nil {
			return fmt.Errorf("failed to add demo job %q: %w", job.Title, err)
		}
	}

	log.Info("Seed: demo catalog loaded", "employer_id", employer.ID)

	return nil
}

func demoJobs() []model.Job {
	return []model.Job{
		{
			Title:          "Оператор чата поддержки",
			Location:       "Алматы",
			Format:         model.JobFormatRemote,
			Salary:         180000,
			EmploymentType: "Полная занятость",
			Requirements:   "Грамотная письменная речь, внимательность",
			Experience:     "Без опыта",
			Description:    "Отвечаем клиентам только в чате, без телефонных звонков. Гибкий график смен.",
			Tags:           []string{"чат", "поддержка"},
			Features:       []string{"Без звонков", "Только текст", "Удобный график", "Домашний офис"},
		},
		{
			Title:          "Модератор контента",
			Location:       "Алматы",
			Format:         model.JobFormatRemote,
			Salary:         220000,
			EmploymentType: "Полная занятость",
			Requirements:   "Внимательность, знание правил площадки",
			Experience:     "От 1 года",
			Description:    "Проверка объявлений и комментариев. Работа полностью из дома, общение с командой в мессенджере.",
			Tags:           []string{"модерация"},
			Features:       []string{"Только текст", "Домашний офис", "Поддерживающая команда"},
		},
		{
			Title:          "Специалист по вводу данных",
			Location:       "Алматы",
			Format:         model.JobFormatOffice,
			Salary:         160000,
			EmploymentType: "Полная занятость",
			Requirements:   "Уверенный пользователь ПК",
			Experience:     "Без опыта",
			Description:    "Офис оборудован пандусом и лифтом, рабочее место в тихой зоне. Возможна помощь ассистента.",
			Address:        "Алматы, ул. Абая, 150",
			Coordinates:    &model.GeoPoint{Lat: 43.2389, Lng: 76.8897},
			Tags:           []string{"данные", "офис"},
			Features:       []string{"Пандус / Лифт", "Тихая зона", "Ассистент"},
		},
		{
			Title:          "Тестировщик (ручное тестирование)",
			Location:       "Астана",
			Format:         model.JobFormatHybrid,
			Salary:         300000,
			EmploymentType: "Полная занятость",
			Requirements:   "Основы тестирования, внимательность к деталям",
			Experience:     "От 1 года",
			Description:    "Два дня в офисе, остальное из дома. Команда обучает и поддерживает новичков.",
			Address:        "Астана, пр. Мангилик Ел, 55",
			Coordinates:    &model.GeoPoint{Lat: 51.0905, Lng: 71.4184},
			Tags:           []string{"QA", "тестирование"},
			Features:       []string{"Удобный график", "Поддерживающая команда", "Пандус / Лифт"},
		},
		{
			Title:          "Копирайтер",
			Location:       "Алматы",
			Format:         model.JobFormatRemote,
			Salary:         200000,
			EmploymentType: "Частичная занятость",
			Requirements:   "Грамотность, портфолио текстов",
			Experience:     "От 1 года",
			Description:    "Тексты для сайта и соцсетей. Задачи ставятся письменно, созвоны не требуются.",
			Tags:           []string{"тексты"},
			Features:       []string{"Без звонков", "Только текст", "Удобный график", "Домашний офис"},
		},
		{
			Title:          "Администратор зала",
			Location:       "Алматы",
			Format:         model.JobFormatOffice,
			Salary:         150000,
			EmploymentType: "Сменный график",
			Requirements:   "Доброжелательность, ответственность",
			Experience:     "Без опыта",
			Description:    "Встреча посетителей центра. Здание полностью доступно, рядом наставник.",
			Address:        "Алматы, пр. Достык, 200",
			Coordinates:    &model.GeoPoint{Lat: 43.2220, Lng: 76.9574},
			Tags:           []string{"администратор"},
			Features:       []string{"Пандус / Лифт", "Ассистент", "Поддерживающая команда"},
		},
	}
}
