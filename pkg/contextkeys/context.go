package contextkeys

// Кастомный тип ключа, чтобы избежать коллизий в context
type contextKey string

// DBContextKey - ключ, по которому *gorm.DB (пул или транзакция) хранится в context
const DBContextKey = contextKey("db")
