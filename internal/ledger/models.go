package ledger

// Kind classifies a transaction.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Valid reports whether k is one of the accepted kinds.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Transaction is a single income or expense record.
type Transaction struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        Kind      `json:"type"`
	Category    *string   `json:"category"` // nil = uncategorized
	Date        Timestamp `json:"date"`
}

// Clone returns a copy that shares no memory with t.
func (t Transaction) Clone() Transaction {
	if t.Category != nil {
		c := *t.Category
		t.Category = &c
	}
	return t
}

// CreateTransactionInput is the payload for creating transactions.
// Pointer fields distinguish "absent" from a zero value.
type CreateTransactionInput struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        Kind     `json:"type"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
}

// UpdateTransactionInput carries a partial update. A nil field (absent or
// JSON null) leaves the stored value alone; anything else overwrites it.
type UpdateTransactionInput struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        *Kind    `json:"type"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
}

// Empty reports whether no field is present.
func (in UpdateTransactionInput) Empty() bool {
	return in.Description == nil &&
		in.Amount == nil &&
		in.Type == nil &&
		in.Category == nil &&
		in.Date == nil
}

// Event is a dated financial occurrence with a projected amount.
type Event struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Date   Timestamp `json:"date"`
	Amount float64   `json:"amount"`
}

// CreateEventInput is the payload for creating events. All fields are required.
type CreateEventInput struct {
	Name   string   `json:"name"`
	Date   *string  `json:"date"`
	Amount *float64 `json:"amount"`
}
