package dto

// Chart is a DJ chart or genre chart document.
type Chart struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	ChangeDate string       `json:"change_date"`
	Person     *ChartPerson `json:"person"`
	Image      *Image       `json:"image"`
}

// ChartPerson identifies the DJ who owns a chart. Genre charts have none.
type ChartPerson struct {
	OwnerName string `json:"owner_name"`
}
