package portfolio

// Funds is the cash balance of the session, in USD. The balance never goes
// negative: purchases check it before debiting.
type Funds struct {
	balance Money
}

// NewFunds creates a cash account with an opening balance.
func NewFunds(opening Money) *Funds {
	return &Funds{balance: opening}
}

// Balance returns the current cash balance.
func (f *Funds) Balance() Money { return f.balance }

// Add credits the balance. Zero or negative amounts are ignored.
func (f *Funds) Add(amount Money) {
	if !amount.IsPositive() {
		return
	}
	f.balance = f.balance.Add(amount)
}

// HasAtLeast reports whether the balance covers the amount. It never
// mutates the balance.
func (f *Funds) HasAtLeast(amount Money) bool {
	return f.balance.GreaterThanOrEqual(amount)
}

// debit removes a covered amount. Operations call HasAtLeast first.
func (f *Funds) debit(amount Money) {
	f.balance = f.balance.Sub(amount)
}

// credit adds sale proceeds to the balance.
func (f *Funds) credit(amount Money) {
	f.balance = f.balance.Add(amount)
}
