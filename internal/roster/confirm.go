package roster

// RemovalPrompt задает вопрос, который показывается перед необратимым удалением
const RemovalPrompt = "Are you sure you want to delete this member?"

// Confirmer спрашивает пользователя о подтверждении действия
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc адаптирует функцию к интерфейсу Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm вызывает f(prompt); nil функция ничего не подтверждает
func (f ConfirmFunc) Confirm(prompt string) bool {
	if f == nil {
		return false
	}
	return f(prompt)
}

// RemovalIntent подтвержденное пользователем намерение удалить участника.
// Нулевое значение не подтверждено и отклоняется Manager.Remove.
type RemovalIntent struct {
	id string
}

// ID возвращает ID участника, которого нужно удалить
func (i RemovalIntent) ID() string {
	return i.id
}

func (i RemovalIntent) valid() bool {
	return i.id != ""
}

// ConfirmRemoval спрашивает подтверждение и при согласии возвращает намерение удалить id
func ConfirmRemoval(id string, c Confirmer) (RemovalIntent, bool) {
	if id == "" || c == nil {
		return RemovalIntent{}, false
	}
	if !c.Confirm(RemovalPrompt) {
		return RemovalIntent{}, false
	}
	return RemovalIntent{id: id}, true
}
