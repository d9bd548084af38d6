package mapping

import (
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/cashbox-app/cashbox_backend/internal/models"
)

// ToModelBox converts a domain Box to a model Box
func ToModelBox(d domain.Box) models.Box {
	return models.Box{
		BoxID:       d.BoxID,
		Name:        d.Name,
		BoxType:     models.BoxType(d.BoxType),
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBox converts a model Box to a domain Box
func ToDomainBox(m models.Box) domain.Box {
	return domain.Box{
		BoxID:       m.BoxID,
		Name:        m.Name,
		BoxType:     domain.BoxType(m.BoxType),
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBoxSlice converts a slice of model Boxes to domain Boxes
func ToDomainBoxSlice(ms []models.Box) []domain.Box {
	ds := make([]domain.Box, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBox(m)
	}
	return ds
}
