package entities

import "time"

// Audit contém os campos de auditoria compartilhados por todas as entidades.
// Toda operação de escrita carimba o id do usuário que a executou.
type Audit struct {
	CreatedByID string
	UpdatedByID *string
	DeletedByID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

// MarkDeleted marca a entidade como deletada (soft delete)
func (a *Audit) MarkDeleted(deletedByID string) {
	now := time.Now()
	a.IsDeleted = true
	a.DeletedAt = &now
	a.DeletedByID = &deletedByID
}

// MarkUpdated carimba o autor da última atualização
func (a *Audit) MarkUpdated(updatedByID string) {
	a.UpdatedByID = &updatedByID
}
