package courier

import "marketplace/internal/entities"

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    entities.CourierStatusType(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToDomainList(couriers []CourierDB) []entities.Courier {
	result := make([]entities.Courier, 0, len(couriers))
	for i := range couriers {
		result = append(result, *ToDomain(&couriers[i]))
	}
	return result
}
