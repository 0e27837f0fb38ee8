package board

import "github.com/Sahindou/ifrit-ticket/internal/domain/ticket"

// NextStatus cycles TO_DO -> IN_PROGRESS -> DONE -> TO_DO.
func NextStatus(s ticket.Status) ticket.Status {
	return s.Next()
}
