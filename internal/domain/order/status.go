package order

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusEntrada    Status = "entrada"
	StatusProducao   Status = "producao"
	StatusFinalizada Status = "finalizada"
	StatusEntregue   Status = "entregue"
)

func AllStatuses() []Status {
	return []Status{
		StatusEntrada,
		StatusProducao,
		StatusFinalizada,
		StatusEntregue,
	}
}

// ParseStatus aceita apenas os quatro valores do ciclo, case-sensitive.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusEntrada, StatusProducao, StatusFinalizada, StatusEntregue:
		return Status(s), true
	}
	return "", false
}

func (s Status) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

func InitialStatus() Status {
	return StatusEntrada
}
