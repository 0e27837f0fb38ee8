package tickettype

type CreateTicketTypeInput struct {
	Name string `json:"name" binding:"required,notblank,max=100" example:"incident"`
}

type UpdateTicketTypeInput struct {
	Name *string `json:"name" binding:"omitempty,notblank,max=100" example:"amélioration"`
}

// SeedFile is the YAML document listing the ticket types created on an empty database.
type SeedFile struct {
	TicketTypes []string `yaml:"ticket_types"`
}
