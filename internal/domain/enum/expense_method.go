package enum

// ExpenseMethod is the payment channel of a shop expense. Cash expenses
// reduce cash in hand; online expenses do not.
type ExpenseMethod string

const (
	ExpenseCash   ExpenseMethod = "cash"
	ExpenseOnline ExpenseMethod = "online"
)

func (m ExpenseMethod) Valid() bool {
	return m == ExpenseCash || m == ExpenseOnline
}
