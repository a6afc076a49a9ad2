package shared

// messages 错误提示文案，按 key 查找
var messages = map[string]string{
	"error.bad_request":           "Некорректный запрос",
	"error.not_found":             "Страница не найдена",
	"error.post_not_found":        "Публикация не найдена",
	"error.category_not_found":    "Категория не найдена",
	"error.post_fetch_failed":     "Не удалось загрузить публикацию",
	"error.category_fetch_failed": "Не удалось загрузить категорию",
	"error.too_many_requests":     "Слишком много запросов, повторите через %d с.",
	"error.internal":              "Внутренняя ошибка сервера",
}

// Message 返回 key 对应的提示文案，未登记的 key 原样返回
func Message(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}
