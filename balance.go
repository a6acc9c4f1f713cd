package tracker

// NetBalance reconciles deposits, expenses and trade cash flows into the
// net local-currency balance:
//
//	deposits + sell proceeds - buy costs - expenses
//
// It is a flat sum over all records, order is irrelevant. There is no
// clamping here: a negative balance means real overspending and is
// surfaced as-is.
func NetBalance(deposits []Deposit, expenses []Expense, trades []Trade) float64 {
	var in, out float64
	for _, d := range deposits {
		in += d.AmountLocal
	}
	for _, e := range expenses {
		out += e.AmountLocal
	}
	for _, t := range trades {
		switch t.Kind {
		case KindBuy:
			out += t.TotalLocal
		case KindSell:
			in += t.TotalLocal
		}
	}
	return in - out
}
