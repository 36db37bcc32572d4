package auth

// Owned - ресурс с единственным владельцем (Review, Comment)
type Owned interface {
	OwnerID() string
}

// Decision - явный результат проверки владения.
// Это не error: отказ в доступе - нормальный исход, а не исключение.
type Decision int

const (
	Forbidden Decision = iota
	Proceed
)

func (d Decision) Allowed() bool {
	return d == Proceed
}

// Authorize разрешает мутацию, только если caller владеет ресурсом.
// Валидная сессия сюда уже гарантирована middleware-ом; отсутствие сессии -
// более ранний отказ и до этой проверки не доходит.
func Authorize(requesterID string, res Owned) Decision {
	if requesterID != "" && res.OwnerID() == requesterID {
		return Proceed
	}
	return Forbidden
}
