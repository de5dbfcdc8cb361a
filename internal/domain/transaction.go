package domain

import "time"

// TransactionTier buckets a transaction amount for commission purposes.
type TransactionTier string

const (
	TxTierBudget   TransactionTier = "budget"   // <100k IDR
	TxTierStandard TransactionTier = "standard" // 100k-500k IDR
	TxTierPremium  TransactionTier = "premium"  // 500k-1M IDR
	TxTierLuxury   TransactionTier = "luxury"   // >1M IDR
)

type TransactionStatus string

const (
	TxPending    TransactionStatus = "pending"
	TxProcessing TransactionStatus = "processing"
	TxConfirmed  TransactionStatus = "confirmed"
	TxShipped    TransactionStatus = "shipped"
	TxDelivered  TransactionStatus = "delivered"
	TxCompleted  TransactionStatus = "completed"
	TxDisputed   TransactionStatus = "disputed"
	TxCancelled  TransactionStatus = "cancelled"
	TxRefunded   TransactionStatus = "refunded"
)

type Transaction struct {
	TransactionID    string            `json:"id" dynamodbav:"transaction_id"`
	BuyerID          string            `json:"buyer_id" dynamodbav:"buyer_id"`
	SellerID         string            `json:"seller_id" dynamodbav:"seller_id"`
	ProductID        string            `json:"product_id" dynamodbav:"product_id"`
	Quantity         uint32            `json:"quantity" dynamodbav:"quantity"`
	UnitPriceIDR     uint64            `json:"unit_price_idr" dynamodbav:"unit_price_idr"`
	TotalAmountIDR   uint64            `json:"total_amount_idr" dynamodbav:"total_amount_idr"`
	CommissionRate   float64           `json:"commission_rate" dynamodbav:"commission_rate"`
	CommissionAmount uint64            `json:"commission_amount" dynamodbav:"commission_amount"`
	Tier             TransactionTier   `json:"transaction_tier" dynamodbav:"transaction_tier"`
	Status           TransactionStatus `json:"status" dynamodbav:"status"`
	EscrowLocked     bool              `json:"escrow_locked" dynamodbav:"escrow_locked"`
	PaymentMethod    string            `json:"payment_method" dynamodbav:"payment_method"`
	ShippingAddress  string            `json:"shipping_address" dynamodbav:"shipping_address"`
	CreatedAt        time.Time         `json:"created" dynamodbav:"created_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty" dynamodbav:"completed_at"`
}

type CreateTransactionRequest struct {
	BuyerID         string `json:"buyer_id" validate:"required"`
	SellerID        string `json:"seller_id" validate:"required"`
	ProductID       string `json:"product_id" validate:"required"`
	Quantity        uint32 `json:"quantity" validate:"required,gt=0"`
	UnitPriceIDR    uint64 `json:"unit_price_idr" validate:"required,gt=0"`
	Tier            string `json:"transaction_tier"` // empty = derived from total amount
	PaymentMethod   string `json:"payment_method"`
	ShippingAddress string `json:"shipping_address"`
}
