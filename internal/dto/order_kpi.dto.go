package dto

type StatusCountsDTO struct {
	Entrada    int64 `json:"entrada"`
	Producao   int64 `json:"producao"`
	Finalizada int64 `json:"finalizada"`
	Entregue   int64 `json:"entregue"`
}

type OrderKPIDTO struct {
	ByStatus   StatusCountsDTO `json:"by_status"`
	TotalValue float64         `json:"total_value"`
	Today      int64           `json:"today"`
}
