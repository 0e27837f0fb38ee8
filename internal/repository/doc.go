// Package repository holds the GORM-backed persistence layer.
package repository

//go:generate mockgen -source=ticket.go -destination=mock/ticket.go -package=mock
//go:generate mockgen -source=tickettype.go -destination=mock/tickettype.go -package=mock
//go:generate mockgen -source=user.go -destination=mock/user.go -package=mock
//go:generate mockgen -source=refreshtoken.go -destination=mock/refreshtoken.go -package=mock
//go:generate mockgen -source=attachment.go -destination=mock/attachment.go -package=mock
//go:generate mockgen -source=audit.go -destination=mock/audit.go -package=mock
