package entity

import "time"

// Production representa un registro de producción diaria de un producto.
// DateProduced es fecha calendario (sin hora), distinta de CreatedAt.
type Production struct {
	ID               int64
	ProductID        int64
	QuantityProduced int
	DateProduced     time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// ProductName se carga vía join para serialización; vacío si no se resolvió.
	ProductName string
}
