package dto

import "github.com/shopspring/decimal"

// RecordPurchaseRequest body para POST /api/purchases.
type RecordPurchaseRequest struct {
	AssetID  string          `json:"asset_id"`
	BaseID   string          `json:"base_id"`
	Quantity int64           `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
}

// PurchaseResponse salida de una compra registrada.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	AssetID   string          `json:"asset_id"`
	AssetName string          `json:"asset_name"`
	AssetType string          `json:"asset_type"`
	BaseID    string          `json:"base_id"`
	Quantity  int64           `json:"quantity"`
	Date      string          `json:"date"`
	Cost      decimal.Decimal `json:"cost"`
}

// RecordTransferRequest body para POST /api/transfers.
type RecordTransferRequest struct {
	AssetID    string `json:"asset_id"`
	FromBaseID string `json:"from_base_id"`
	ToBaseID   string `json:"to_base_id"`
	Quantity   int64  `json:"quantity"`
}

// TransferResponse salida de un traslado.
type TransferResponse struct {
	ID         string `json:"id"`
	AssetID    string `json:"asset_id"`
	AssetName  string `json:"asset_name"`
	AssetType  string `json:"asset_type"`
	FromBaseID string `json:"from_base_id"`
	ToBaseID   string `json:"to_base_id"`
	Quantity   int64  `json:"quantity"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// RecordAssignmentRequest body para POST /api/assignments.
type RecordAssignmentRequest struct {
	AssetID       string `json:"asset_id"`
	BaseID        string `json:"base_id"`
	PersonnelID   string `json:"personnel_id"`
	PersonnelName string `json:"personnel_name"`
	Quantity      int64  `json:"quantity"`
}

// AssignmentResponse salida de una asignación.
type AssignmentResponse struct {
	ID            string `json:"id"`
	AssetID       string `json:"asset_id"`
	AssetName     string `json:"asset_name"`
	AssetType     string `json:"asset_type"`
	BaseID        string `json:"base_id"`
	PersonnelID   string `json:"personnel_id"`
	PersonnelName string `json:"personnel_name"`
	Quantity      int64  `json:"quantity"`
	Date          string `json:"date"`
}

// RecordExpenditureRequest body para POST /api/expenditures.
type RecordExpenditureRequest struct {
	AssetID  string `json:"asset_id"`
	BaseID   string `json:"base_id"`
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
}

// ExpenditureResponse salida de un gasto.
type ExpenditureResponse struct {
	ID        string `json:"id"`
	AssetID   string `json:"asset_id"`
	AssetName string `json:"asset_name"`
	AssetType string `json:"asset_type"`
	BaseID    string `json:"base_id"`
	Quantity  int64  `json:"quantity"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
}

// MetricsResponse métricas del dashboard; net_movement derivado en servidor.
type MetricsResponse struct {
	OpeningBalance int64 `json:"opening_balance"`
	ClosingBalance int64 `json:"closing_balance"`
	Purchases      int64 `json:"purchases"`
	TransferIn     int64 `json:"transfer_in"`
	TransferOut    int64 `json:"transfer_out"`
	Assigned       int64 `json:"assigned"`
	Expended       int64 `json:"expended"`
	NetMovement    int64 `json:"net_movement"`
}
