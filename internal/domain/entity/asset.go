package entity

import "time"

// AssetType clasifica los activos militares.
type AssetType string

// Tipos de activo.
const (
	AssetTypeWeapon     AssetType = "weapon"
	AssetTypeVehicle    AssetType = "vehicle"
	AssetTypeAmmunition AssetType = "ammunition"
	AssetTypeEquipment  AssetType = "equipment"
)

// Valid indica si el tipo es uno de los cuatro conocidos.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeWeapon, AssetTypeVehicle, AssetTypeAmmunition, AssetTypeEquipment:
		return true
	}
	return false
}

// AssetStatus estado actual de un registro de stock.
type AssetStatus string

// Estados de activo.
const (
	AssetAvailable AssetStatus = "available"
	AssetAssigned  AssetStatus = "assigned"
	AssetInTransit AssetStatus = "in-transit"
	AssetExpended  AssetStatus = "expended"
)

// Asset es el registro de stock de un ítem nominal en exactamente UNA base:
// el mismo ítem (ej. "M4 Carbine") en dos bases son dos registros distintos.
// Quantity nunca es negativa; solo el motor del ledger la muta, como
// proyección derivada de los eventos — nunca se borra un registro.
type Asset struct {
	ID        string
	Name      string
	Type      AssetType
	BaseID    string
	Status    AssetStatus
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
