package models

import "time"

// LowStockPart is a computed view over active parts at or below their
// minimum stock. It is derived per request and never persisted.
type LowStockPart struct {
	PartID      int64   `db:"id" json:"peca_id"`
	Code        string  `db:"codigo" json:"codigo"`
	Name        string  `db:"nome" json:"nome"`
	Description *string `db:"descricao" json:"descricao,omitempty"`
	Stock       int     `db:"quantidade_estoque" json:"quantidade_estoque"`
	MinStock    int     `db:"quantidade_minima" json:"quantidade_minima"`
	CostPrice   float64 `db:"preco_custo" json:"preco_custo"`
	Category    string  `db:"categoria" json:"categoria"`
	Brand       string  `db:"marca" json:"marca"`
}

// SupplierContact carries the preferred supplier data attached to a
// reorder suggestion. Any field may be missing when the contact row is
// incomplete.
type SupplierContact struct {
	SupplierID int64   `json:"fornecedor_id"`
	Name       string  `json:"nome"`
	Phone      *string `json:"telefone"`
	Email      *string `json:"email"`
}

// ReorderSuggestion is a low-stock part enriched with supplier and
// purchase-history data plus a suggested replenishment quantity.
type ReorderSuggestion struct {
	LowStockPart
	SuggestedQty   int              `json:"quantidade_sugerida"`
	Supplier       *SupplierContact `json:"fornecedor_preferencial"`
	LastPrice      float64          `json:"ultimo_preco"`
	LastPurchaseAt *time.Time       `json:"ultima_compra_em,omitempty"`
}

// PendingSale is a pending sale order joined with customer and
// salesperson names.
type PendingSale struct {
	SaleID      int64     `db:"id" json:"venda_id"`
	Date        time.Time `db:"data_venda" json:"data_venda"`
	Total       float64   `db:"valor_total" json:"valor_total"`
	Status      string    `db:"status" json:"status"`
	Customer    string    `db:"cliente" json:"cliente"`
	Salesperson string    `db:"vendedor" json:"vendedor"`
}

// PendingPurchase is a pending purchase order joined with supplier and
// requester names.
type PendingPurchase struct {
	PurchaseID int64     `db:"id" json:"compra_id"`
	Date       time.Time `db:"data_compra" json:"data_compra"`
	Total      float64   `db:"valor_total" json:"valor_total"`
	Status     string    `db:"status" json:"status"`
	Supplier   string    `db:"fornecedor" json:"fornecedor"`
	Requester  string    `db:"solicitante" json:"solicitante"`
}

// AlertCount aggregates the three base alert categories.
type AlertCount struct {
	LowStock         int `json:"estoque_baixo"`
	PendingSales     int `json:"vendas_pendentes"`
	PendingPurchases int `json:"compras_pendentes"`
	Total            int `json:"total"`
}

// AlertStats extends AlertCount with the reorder-suggestion count for
// dashboard widgets.
type AlertStats struct {
	LowStock         int `json:"estoque_baixo"`
	Reorder          int `json:"recompra"`
	PendingSales     int `json:"vendas_pendentes"`
	PendingPurchases int `json:"compras_pendentes"`
	Total            int `json:"total"`
}

// AlertBundle is the full-alerts response body.
type AlertBundle struct {
	LowStock         []LowStockPart    `json:"estoque_baixo"`
	PendingSales     []PendingSale     `json:"vendas_pendentes"`
	PendingPurchases []PendingPurchase `json:"compras_pendentes"`
	Summary          AlertCount        `json:"resumo"`
}

// Alert is a persisted, manually-tracked alert row with a lifecycle.
// Computed categories (low stock, reorder) never materialize as rows.
type Alert struct {
	ID          int64      `db:"id" json:"id"`
	Type        string     `db:"tipo" json:"tipo"`
	Title       string     `db:"titulo" json:"titulo"`
	Description *string    `db:"descricao" json:"descricao,omitempty"`
	Status      string     `db:"status" json:"status"`
	UserID      *int64     `db:"usuario_id" json:"usuario_id"`
	ResolvedAt  *time.Time `db:"resolvido_em" json:"resolvido_em"`
	CreatedAt   time.Time  `db:"criado_em" json:"criado_em"`
}

// Alert lifecycle statuses
const (
	AlertStatusOpen      = "aberto"
	AlertStatusResolved  = "resolvido"
	AlertStatusDismissed = "dispensado"
)

// Sale order statuses
const (
	SaleStatusPending   = "pendente"
	SaleStatusFinalized = "finalizada"
	SaleStatusCanceled  = "cancelada"
)

// Purchase order statuses
const (
	PurchaseStatusPending  = "pendente"
	PurchaseStatusReceived = "recebida"
	PurchaseStatusCanceled = "cancelada"
)

// PaymentMethod represents a configurable payment method.
type PaymentMethod struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"nome" json:"nome"`
	Description *string   `db:"descricao" json:"descricao,omitempty"`
	FeePercent  float64   `db:"taxa_percentual" json:"taxa_percentual"`
	Active      bool      `db:"ativo" json:"ativo"`
	CreatedAt   time.Time `db:"criado_em" json:"criado_em"`
	UpdatedAt   time.Time `db:"atualizado_em" json:"atualizado_em"`
}

// PriceHistoryEntry records a cost-price change for a part.
type PriceHistoryEntry struct {
	ID        int64     `db:"id" json:"id"`
	PartID    int64     `db:"peca_id" json:"peca_id"`
	OldPrice  float64   `db:"preco_antigo" json:"preco_antigo"`
	NewPrice  float64   `db:"preco_novo" json:"preco_novo"`
	UserID    int64     `db:"usuario_id" json:"usuario_id"`
	ChangedAt time.Time `db:"data_alteracao" json:"data_alteracao"`
}

// PartImage holds image metadata for a part. File bytes live outside
// this service.
type PartImage struct {
	ID        int64     `db:"id" json:"id"`
	PartID    int64     `db:"peca_id" json:"peca_id"`
	FileName  string    `db:"nome_arquivo" json:"nome_arquivo"`
	Path      string    `db:"caminho" json:"caminho"`
	Primary   bool      `db:"principal" json:"principal"`
	CreatedAt time.Time `db:"criado_em" json:"criado_em"`
}
