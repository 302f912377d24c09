package order

import "time"

// ===============================
// Domain Actions
// ===============================

const dateLayout = "2006-01-02"

// DeliveryDateOf fixa a data-calendário da entrega no momento da escrita.
// Retorna nil quando a ordem não tem entrega prevista.
func DeliveryDateOf(scheduled *time.Time, loc *time.Location) *string {
	if scheduled == nil {
		return nil
	}
	d := scheduled.In(loc).Format(dateLayout)
	return &d
}

// ValidDate confere o formato YYYY-MM-DD usado pela agenda.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
