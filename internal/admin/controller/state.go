// Package controller реализует управляемую форму сущности:
// локальный список-зеркало удалённой таблицы, машину состояний формы,
// конвейер загрузки изображений и поисковый фильтр. Одна реализация
// обслуживает все таблицы; различия между ними описывает Descriptor.
package controller

import "fmt"

// Phase — фаза машины состояний формы.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseCreating
	PhaseEditing
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseCreating:
		return "creating"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// FormState — явное размеченное состояние вместо набора независимых
// флагов: невозможные комбинации ("submitting при закрытой форме")
// непредставимы. EditingID заполнен только в PhaseEditing; From — фаза,
// из которой начался Submit, туда возвращаемся при ошибке.
type FormState struct {
	Phase     Phase
	EditingID string
	From      Phase
}

func closedState() FormState { return FormState{Phase: PhaseClosed} }
