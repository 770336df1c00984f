package generation

import (
	"fmt"
	"strings"
)

const resumePromptTemplate = `Ты — карьерный консультант платформы инклюзивного трудоустройства.
Составь краткое профессиональное резюме на русском языке по данным кандидата.
Пиши только текст резюме, без пояснений и без markdown-разметки.

Имя: %s
Навыки: %s
Опыт: %s
О себе: %s`

// ResumePrompt builds the prompt for AI resume generation.
func ResumePrompt(fullName string, skills []string, experience, description string) string {
	return fmt.Sprintf(resumePromptTemplate, fullName, strings.Join(skills, ", "), experience, description)
}

const inclusivePromptTemplate = `Ты — редактор вакансий платформы инклюзивного трудоустройства.
Перепиши описание вакансии инклюзивным языком: убери требования, не связанные
с работой, подчеркни доступность и гибкость. Сохрани факты, пиши на русском.
Верни только переписанное описание.

Описание:
%s`

// InclusivePrompt builds the prompt for inclusive job-description rewriting.
func InclusivePrompt(description string) string {
	return fmt.Sprintf(inclusivePromptTemplate, description)
}

const assistantPromptTemplate = `Ты — ассистент платформы инклюзивного трудоустройства.
Отвечай кратко и дружелюбно на русском языке. Помогай с поиском работы,
резюме и откликами.

Вопрос: %s`

// AssistantPrompt builds the prompt for a chat assistant turn.
func AssistantPrompt(message string) string {
	return fmt.Sprintf(assistantPromptTemplate, message)
}
